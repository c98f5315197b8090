package models

// Document is one decoded input file. Value holds whatever the decoder
// produced: []any, map[string]any, json.Number, string, bool, float64, int
// or nil.
type Document struct {
	Path  string
	Value any
}

// Items returns the top-level array of the document, or false when the
// document is not an array.
func (d Document) Items() ([]any, bool) {
	items, ok := d.Value.([]any)
	return items, ok
}

// asObject accepts both map shapes the decoders produce. yaml.v3 falls back to
// map[any]any when a mapping has a non-string key; such keys can never match a
// field name so they are dropped.
func asObject(raw any) (map[string]any, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if s, ok := k.(string); ok {
				out[s] = v
			}
		}
		return out, true
	}
	return nil, false
}
