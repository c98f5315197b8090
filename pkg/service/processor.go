package service

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/k0kubun/pp/v3"

	"github.com/yurifrl/computesales/pkg/catalog"
	"github.com/yurifrl/computesales/pkg/config"
	"github.com/yurifrl/computesales/pkg/loader"
	"github.com/yurifrl/computesales/pkg/report"
	"github.com/yurifrl/computesales/pkg/sales"
)

var ErrLoad = errors.New("could not load one or both input files")

// Processor runs the load, index, aggregate and report steps in sequence.
type Processor struct {
	config *config.Config
	logger *log.Logger
	out    io.Writer
}

func NewProcessor(config *config.Config, logger *log.Logger, out io.Writer) *Processor {
	return &Processor{
		config: config,
		logger: logger,
		out:    out,
	}
}

// Run computes the sales total for one catalog and one sales file. Both
// inputs are always loaded so every load failure gets reported; if either
// fails the output file is left untouched.
func (p *Processor) Run(catalogPath, salesPath string) (report.Result, error) {
	logger := p.logger.With("run", uuid.NewString())
	ld := loader.New(logger)

	start := time.Now()

	catalogDoc, catalogErr := ld.Load(catalogPath)
	salesDoc, salesErr := ld.Load(salesPath)
	if err := errors.Join(catalogErr, salesErr); err != nil {
		logger.Error("could not load one or both input files")
		return report.Result{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	prices := catalog.Build(catalogDoc, logger)
	if p.config.Debug {
		logger.Debug("price map", "prices", dump(prices))
	}

	tally := sales.Aggregate(prices, salesDoc, logger)

	result := report.Result{
		Total:   tally.Total,
		Errors:  tally.Errors,
		Elapsed: time.Since(start),
	}

	if err := report.Write(p.out, p.config.OutputFile, result); err != nil {
		return result, err
	}

	logger.Debug("results written", "path", p.config.OutputFile)
	return result, nil
}

func dump(v any) string {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer.Sprint(v)
}
