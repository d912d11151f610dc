// Package attrs implements the attribute projection engine: a flexible
// attribute container with mass-assignment guarding, accessor/mutator
// functions, declared type casts and filtered map/JSON export.
//
// A concrete model type is described by a Policy registered once under the
// type's name. Instances are created with New and carry their own copy of
// the policy's facet lists, so per-instance tweaks (SetHidden, SetCast)
// never leak back into the registered policy.
//
//	attrs.Register(&attrs.Policy{
//	    Name:     "user",
//	    Fillable: []string{"name", "email"},
//	    Hidden:   []string{"password"},
//	    Casts:    map[string]string{"settings": "json"},
//	})
//
//	user, err := attrs.New("user", map[string]any{"name": "Ada"})
//	out, err := user.ToMap()
package attrs

import (
	"sync"

	"github.com/teranos/modelkit/errors"
)

// Wildcard is the guarded-list entry that closes every attribute to mass
// assignment. Only a guarded list of exactly [Wildcard] counts; Wildcard
// mixed with other entries matches a literal "*" key, nothing more.
const Wildcard = "*"

// Getter transforms the raw stored value when an attribute is read or
// exported. It fully overrides normal handling: configured casts are
// skipped. Appended attributes invoke their getter with a nil raw value.
type Getter func(m *Model, raw any) any

// Setter stores an attribute write. A registered setter is solely
// responsible for writing into the model's store; SetAttribute does
// nothing else when one is present.
type Setter func(m *Model, value any)

// Policy describes a concrete model type: which attributes mass
// assignment may touch, which are visible in exports, declared casts and
// the mutator tables. Policies are registered once and treated as
// immutable afterward.
type Policy struct {
	// Name identifies the concrete model type.
	Name string

	// Fillable is the mass-assignment allow-list. Empty means "default
	// open": any key not guarded may be filled.
	Fillable []string

	// Guarded is the mass-assignment deny-list. Exactly [Wildcard] with
	// an empty Fillable closes the type entirely.
	Guarded []string

	// Hidden and Visible are mutually exclusive export filters: when
	// Visible is non-empty only those names export, otherwise everything
	// except Hidden exports.
	Hidden  []string
	Visible []string

	// Appends names computed attributes included in exports. Each must
	// have a Getter; there is no underlying store entry.
	Appends []string

	// Casts maps attribute names to cast kinds (see cast.go).
	Casts map[string]string

	// KeyCase sets the export key convention ("snake", "camel",
	// "studly"). Empty means the config default.
	KeyCase string

	// Getters and Setters are the explicit mutator registration tables.
	Getters map[string]Getter
	Setters map[string]Setter

	// Boot runs exactly once, when the policy is registered.
	Boot func(*Policy)
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]*Policy)
)

// Register validates p, files it under its name and runs its Boot hook.
// Registering the same name twice is an error.
func Register(p *Policy) error {
	if p == nil {
		return errors.NewInvalidPolicyError("policy is nil")
	}
	if err := p.validate(); err != nil {
		return err
	}

	registryMu.Lock()
	if _, exists := registry[p.Name]; exists {
		registryMu.Unlock()
		return errors.Wrapf(errors.ErrTypeAlreadyRegistered, "%q", p.Name)
	}
	registry[p.Name] = p
	registryMu.Unlock()

	// Boot outside the lock: a hook may register further types.
	if p.Boot != nil {
		p.Boot(p)
	}
	return nil
}

// Lookup returns the policy registered under name.
func Lookup(name string) (*Policy, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	p, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrTypeNotRegistered, "%q", name)
	}
	return p, nil
}

// ResetRegistry clears all registered policies (useful for testing).
func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]*Policy)
}

func (p *Policy) validate() error {
	if p.Name == "" {
		return errors.NewInvalidPolicyError("policy must have a name")
	}
	switch p.KeyCase {
	case "", "snake", "camel", "studly":
	default:
		return errors.NewInvalidPolicyError("policy %q: unknown key case %q", p.Name, p.KeyCase)
	}
	for _, name := range p.Appends {
		if _, ok := p.Getters[name]; !ok {
			return errors.NewInvalidPolicyError("policy %q: append %q has no getter", p.Name, name)
		}
	}
	return nil
}
