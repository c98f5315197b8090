package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/computesales/pkg/models"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	XLS  Format = "xls"
)

var (
	ErrNotFound   = errors.New("file not found")
	ErrMalformed  = errors.New("malformed document")
	ErrUnreadable = errors.New("could not read file")
)

// Error reports a failed load. Kind is one of ErrNotFound, ErrMalformed or
// ErrUnreadable and both Kind and the underlying cause match errors.Is.
type Error struct {
	Path string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Loader reads input documents from disk.
type Loader struct {
	logger *log.Logger
}

// New returns a Loader that reports failures through logger.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the whole file at path and decodes it according to its
// extension. The file is closed before decoding starts.
func (l *Loader) Load(path string) (models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Error("file not found", "path", path)
			return models.Document{}, &Error{Path: path, Kind: ErrNotFound, Err: err}
		}
		l.logger.Error("could not read file", "path", path, "error", err)
		return models.Document{}, &Error{Path: path, Kind: ErrUnreadable, Err: err}
	}

	format := detectFormat(path)
	l.logger.Debug("loading document", "path", path, "format", format, "bytes", len(data))

	value, err := l.Decode(data, format)
	if err != nil {
		l.logger.Error("invalid document", "path", path, "format", format, "error", err)
		return models.Document{}, &Error{Path: path, Kind: ErrMalformed, Err: err}
	}

	return models.Document{Path: path, Value: value}, nil
}

// Decode parses data in the given format into a generic value.
func (l *Loader) Decode(data []byte, format Format) (any, error) {
	switch format {
	case YAML:
		return decodeYAML(data)
	case XLS:
		return decodeXLS(data)
	default:
		return decodeJSON(data)
	}
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".xls":
		return XLS
	default:
		return JSON
	}
}
