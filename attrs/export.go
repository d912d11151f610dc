package attrs

import (
	"encoding/json"
	"slices"

	"github.com/teranos/modelkit/casing"
	"github.com/teranos/modelkit/config"
	"github.com/teranos/modelkit/errors"
	"github.com/teranos/modelkit/logger"
)

// Exportable is the array-convertible contract: values returned by getter
// mutators that implement it are recursively converted during export.
type Exportable interface {
	ToMap() (map[string]any, error)
}

// ToMap projects the model to a plain mapping: visibility filtering, key
// case conversion, getter mutation, casting, appended attributes and
// (when enabled) null filtering, in that order.
func (m *Model) ToMap() (map[string]any, error) {
	out := make(map[string]any, m.store.Len())

	// Raw values for every visible key, under converted names.
	for _, key := range m.visibleKeys() {
		raw, _ := m.store.Get(key)
		out[m.exportKey(key)] = raw
	}

	// Getter mutators override the collected raw values. Names filtered
	// out above stay out.
	for name, getter := range m.policy.Getters {
		exported := m.exportKey(name)
		raw, ok := out[exported]
		if !ok {
			continue
		}
		value, err := exportValue(getter(m, raw))
		if err != nil {
			return nil, errors.Wrapf(err, "export attribute %q", name)
		}
		out[exported] = value
	}

	// Casts apply where no getter already took over.
	for name, kind := range m.casts {
		if _, hasGetter := m.policy.Getters[name]; hasGetter {
			continue
		}
		exported := m.exportKey(name)
		raw, ok := out[exported]
		if !ok {
			continue
		}
		value, err := castValue(kind, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "cast attribute %q as %s", name, kind)
		}
		out[exported] = value
	}

	// Appended attributes are computed purely from their getter.
	for _, name := range m.appends {
		getter, ok := m.policy.Getters[name]
		if !ok {
			logger.Logger.Warnw("append has no getter, skipping",
				"type", m.TypeName(),
				"key", name)
			continue
		}
		value, err := exportValue(getter(m, nil))
		if err != nil {
			return nil, errors.Wrapf(err, "export appended attribute %q", name)
		}
		out[m.exportKey(name)] = value
	}

	if config.FilterNulls() {
		for key, value := range out {
			if value == nil {
				delete(out, key)
			}
		}
	}

	return out, nil
}

// ToJSON serializes the export mapping to JSON text. Key order follows
// encoding/json (sorted), value shape matches ToMap exactly.
func (m *Model) ToJSON() ([]byte, error) {
	out, err := m.ToMap()
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %q export", m.TypeName())
	}
	return b, nil
}

// String returns the JSON export. Failures are logged and yield "{}";
// error-aware callers should use ToJSON.
func (m *Model) String() string {
	b, err := m.ToJSON()
	if err != nil {
		logger.Logger.Warnw("string conversion failed",
			"type", m.TypeName(),
			"error", err)
		return "{}"
	}
	return string(b)
}

// visibleKeys applies the hidden/visible policy to the stored keys. A
// non-empty visible list wins outright; hidden is ignored in that case.
func (m *Model) visibleKeys() []string {
	keys := m.store.Keys()
	out := keys[:0]
	for _, key := range keys {
		if len(m.visible) > 0 {
			if slices.Contains(m.visible, key) {
				out = append(out, key)
			}
			continue
		}
		if !slices.Contains(m.hidden, key) {
			out = append(out, key)
		}
	}
	return out
}

// exportKey converts an internal attribute name to its export form per
// the policy's key case, falling back to the config default.
func (m *Model) exportKey(name string) string {
	keyCase := m.keyCase
	if keyCase == "" {
		keyCase = config.KeyCase()
	}
	switch keyCase {
	case "snake":
		return casing.SnakeDelim(name, config.SnakeDelimiter())
	case "camel":
		return casing.Camel(name)
	case "studly":
		return casing.Studly(name)
	default:
		return name
	}
}

// exportValue recursively converts array-convertible mutator results.
func exportValue(value any) (any, error) {
	if ex, ok := value.(Exportable); ok {
		return ex.ToMap()
	}
	return value, nil
}
