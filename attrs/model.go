package attrs

import (
	"slices"

	"github.com/teranos/modelkit/errors"
	"github.com/teranos/modelkit/logger"
)

// Model is one attribute container governed by a registered Policy.
//
// A Model owns its store plus private copies of the policy's facet lists;
// the mutator tables stay shared with the registered policy. Guard state
// (the unguarded flag) is instance-scoped, so force-filling one model
// never loosens another.
//
// A Model is not safe for concurrent use.
type Model struct {
	policy *Policy
	store  *Store

	fillable []string
	guarded  []string
	hidden   []string
	visible  []string
	appends  []string
	casts    map[string]string
	keyCase  string

	unguarded bool
}

// New creates a model of the named registered type and mass-assigns the
// initial attributes through the fillable/guarded pipeline.
func New(typeName string, attributes map[string]any) (*Model, error) {
	p, err := Lookup(typeName)
	if err != nil {
		return nil, err
	}

	m := newFromPolicy(p)
	if len(attributes) > 0 {
		if err := m.Fill(attributes); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func newFromPolicy(p *Policy) *Model {
	casts := make(map[string]string, len(p.Casts))
	for k, v := range p.Casts {
		casts[k] = v
	}
	return &Model{
		policy:   p,
		store:    NewStore(),
		fillable: slices.Clone(p.Fillable),
		guarded:  slices.Clone(p.Guarded),
		hidden:   slices.Clone(p.Hidden),
		visible:  slices.Clone(p.Visible),
		appends:  slices.Clone(p.Appends),
		casts:    casts,
		keyCase:  p.KeyCase,
	}
}

// TypeName returns the name of the concrete model type.
func (m *Model) TypeName() string {
	return m.policy.Name
}

// Store exposes the raw attribute store. Setter mutators write through
// it; normal code should prefer Get/Set.
func (m *Model) Store() *Store {
	return m.store
}

// Fill mass-assigns attributes, honoring the fillable/guarded policy.
// When the type is totally guarded the whole call is a silent no-op;
// individually guarded keys are dropped without error.
func (m *Model) Fill(attributes map[string]any) error {
	for key, value := range m.fillableFromMassAssignment(attributes) {
		if m.IsFillable(key) {
			if err := m.SetAttribute(key, value); err != nil {
				return errors.Wrapf(err, "fill %q", key)
			}
			continue
		}

		if m.TotallyGuarded() {
			// Nothing else can be fillable either; drop the rest.
			logger.Logger.Debugw("fill skipped: type is totally guarded",
				"type", m.TypeName())
			break
		}

		logger.Logger.Debugw("attribute rejected by mass-assignment guard",
			"type", m.TypeName(),
			"key", key)
	}
	return nil
}

// ForceFill mass-assigns attributes with guarding disabled for the
// duration of the call. The previous guard state is restored on every
// exit path.
func (m *Model) ForceFill(attributes map[string]any) error {
	return m.Unguarded(func() error {
		return m.Fill(attributes)
	})
}

// Unguarded runs fn with this model's mass-assignment checks disabled,
// restoring the prior guard state afterward even when fn fails.
func (m *Model) Unguarded(fn func() error) error {
	prev := m.unguarded
	m.unguarded = true
	defer func() { m.unguarded = prev }()
	return fn()
}

// IsFillable reports whether key may be mass-assigned right now. With the
// unguarded flag set everything is fillable. An empty fillable list is
// "default open": any key that is not guarded passes.
func (m *Model) IsFillable(key string) bool {
	if m.unguarded {
		return true
	}
	if slices.Contains(m.fillable, key) {
		return true
	}
	if m.IsGuarded(key) {
		return false
	}
	return len(m.fillable) == 0
}

// IsGuarded reports whether key is blocked from mass assignment: either
// listed literally or covered by a sole-wildcard guarded list.
func (m *Model) IsGuarded(key string) bool {
	return slices.Contains(m.guarded, key) || m.guardedIsWildcard()
}

// TotallyGuarded reports whether mass assignment is closed entirely: no
// fillable list and a guarded list of exactly [Wildcard].
func (m *Model) TotallyGuarded() bool {
	return len(m.fillable) == 0 && m.guardedIsWildcard()
}

func (m *Model) guardedIsWildcard() bool {
	return len(m.guarded) == 1 && m.guarded[0] == Wildcard
}

// fillableFromMassAssignment narrows the supplied attributes to the
// fillable allow-list when one is configured and the model is guarded.
func (m *Model) fillableFromMassAssignment(attributes map[string]any) map[string]any {
	if len(m.fillable) == 0 || m.unguarded {
		return attributes
	}
	out := make(map[string]any, len(attributes))
	for key, value := range attributes {
		if slices.Contains(m.fillable, key) {
			out[key] = value
		}
	}
	return out
}

// SetAttribute writes one attribute. A registered setter mutator takes
// over completely; otherwise array/json/object-cast values are serialized
// to JSON text before storage.
func (m *Model) SetAttribute(key string, value any) error {
	if setter, ok := m.policy.Setters[key]; ok {
		setter(m, value)
		return nil
	}

	if kind, ok := m.casts[key]; ok && isJSONCast(kind) {
		serialized, err := serializeJSON(value)
		if err != nil {
			return errors.Wrapf(err, "serialize attribute %q", key)
		}
		m.store.Set(key, serialized)
		return nil
	}

	m.store.Set(key, value)
	return nil
}

// GetAttribute reads one attribute through mutation and casting. The
// second result is false when the attribute is neither stored nor backed
// by a getter; absence is not an error.
func (m *Model) GetAttribute(key string) (any, bool, error) {
	if !m.store.Has(key) {
		if _, ok := m.policy.Getters[key]; !ok {
			return nil, false, nil
		}
	}
	v, err := m.GetAttributeValue(key)
	return v, true, err
}

// GetAttributeValue resolves key's value: a getter mutator overrides
// everything (including casts), then configured casts apply, then the raw
// value passes through. Absent keys read as nil.
func (m *Model) GetAttributeValue(key string) (any, error) {
	raw, _ := m.store.Get(key)

	if getter, ok := m.policy.Getters[key]; ok {
		return getter(m, raw), nil
	}
	return m.Cast(key, raw)
}

// Get is the keyed-access read: the mutated/cast value and whether the
// attribute is present. Cast failures are logged and surface the raw
// stored value; error-aware callers should use GetAttribute.
func (m *Model) Get(key string) (any, bool) {
	v, ok, err := m.GetAttribute(key)
	if err != nil {
		logger.Logger.Warnw("attribute read failed, returning raw value",
			"type", m.TypeName(),
			"key", key,
			"error", err)
		raw, present := m.store.Get(key)
		return raw, present
	}
	return v, ok
}

// Set is the keyed-access write, routed through SetAttribute.
func (m *Model) Set(key string, value any) error {
	return m.SetAttribute(key, value)
}

// Has reports whether key would be found by Get: stored, or computed by
// a getter.
func (m *Model) Has(key string) bool {
	if m.store.Has(key) {
		return true
	}
	_, ok := m.policy.Getters[key]
	return ok
}

// Unset removes key from the store.
func (m *Model) Unset(key string) {
	m.store.Unset(key)
}

// Attributes returns a copy of the raw stored attributes, before any
// mutation or casting.
func (m *Model) Attributes() map[string]any {
	return m.store.Raw()
}

// Fillable returns a copy of the instance's fillable list.
func (m *Model) Fillable() []string { return slices.Clone(m.fillable) }

// SetFillable replaces the instance's fillable list.
func (m *Model) SetFillable(keys ...string) { m.fillable = slices.Clone(keys) }

// Guarded returns a copy of the instance's guarded list.
func (m *Model) Guarded() []string { return slices.Clone(m.guarded) }

// SetGuarded replaces the instance's guarded list.
func (m *Model) SetGuarded(keys ...string) { m.guarded = slices.Clone(keys) }

// Hidden returns a copy of the instance's hidden list.
func (m *Model) Hidden() []string { return slices.Clone(m.hidden) }

// SetHidden replaces the instance's hidden list.
func (m *Model) SetHidden(keys ...string) { m.hidden = slices.Clone(keys) }

// Visible returns a copy of the instance's visible list.
func (m *Model) Visible() []string { return slices.Clone(m.visible) }

// SetVisible replaces the instance's visible list.
func (m *Model) SetVisible(keys ...string) { m.visible = slices.Clone(keys) }

// Appends returns a copy of the instance's appended attribute names.
func (m *Model) Appends() []string { return slices.Clone(m.appends) }

// SetAppends replaces the instance's appended attribute names.
func (m *Model) SetAppends(keys ...string) { m.appends = slices.Clone(keys) }

// Casts returns a copy of the instance's cast table.
func (m *Model) Casts() map[string]string {
	out := make(map[string]string, len(m.casts))
	for k, v := range m.casts {
		out[k] = v
	}
	return out
}

// SetCast declares or replaces the cast kind for one attribute.
func (m *Model) SetCast(key, kind string) {
	m.casts[key] = kind
}

// Clean returns a copy of the model with all export filters (hidden,
// visible, appends) reset, so every stored attribute exports.
func (m *Model) Clean() *Model {
	clone := m.clone()
	clone.hidden = nil
	clone.visible = nil
	clone.appends = nil
	return clone
}

// Replicate returns a fresh model of the same type holding the same
// attributes, assigned via ForceFill so guarding cannot drop any of them.
func (m *Model) Replicate() (*Model, error) {
	clone := newFromPolicy(m.policy)
	if err := clone.ForceFill(m.store.Raw()); err != nil {
		return nil, errors.Wrapf(err, "replicate %q", m.TypeName())
	}
	return clone, nil
}

func (m *Model) clone() *Model {
	casts := make(map[string]string, len(m.casts))
	for k, v := range m.casts {
		casts[k] = v
	}
	return &Model{
		policy:   m.policy,
		store:    m.store.Clone(),
		fillable: slices.Clone(m.fillable),
		guarded:  slices.Clone(m.guarded),
		hidden:   slices.Clone(m.hidden),
		visible:  slices.Clone(m.visible),
		appends:  slices.Clone(m.appends),
		casts:    casts,
		keyCase:  m.keyCase,
	}
}
