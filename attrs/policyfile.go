package attrs

import (
	"github.com/BurntSushi/toml"

	"github.com/teranos/modelkit/errors"
)

// policyFile is the declarative TOML form of a Policy. Mutators and boot
// hooks are code-only; a loaded policy can have them attached before
// Register.
//
//	name = "user"
//	fillable = ["name", "email"]
//	hidden = ["password"]
//	key_case = "snake"
//
//	[casts]
//	age = "int"
//	settings = "json"
type policyFile struct {
	Name     string            `toml:"name"`
	Fillable []string          `toml:"fillable"`
	Guarded  []string          `toml:"guarded"`
	Hidden   []string          `toml:"hidden"`
	Visible  []string          `toml:"visible"`
	Appends  []string          `toml:"appends"`
	KeyCase  string            `toml:"key_case"`
	Casts    map[string]string `toml:"casts"`
}

// LoadPolicyFile parses a declarative policy from a TOML document.
func LoadPolicyFile(path string) (*Policy, error) {
	var pf policyFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, errors.Wrapf(err, "load policy file %s", path)
	}
	return pf.policy(path)
}

// LoadPolicy parses a declarative policy from TOML text.
func LoadPolicy(data []byte) (*Policy, error) {
	var pf policyFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, errors.Wrap(err, "load policy")
	}
	return pf.policy("inline")
}

func (pf *policyFile) policy(source string) (*Policy, error) {
	if pf.Name == "" {
		return nil, errors.NewInvalidPolicyError("policy from %s has no name", source)
	}
	return &Policy{
		Name:     pf.Name,
		Fillable: pf.Fillable,
		Guarded:  pf.Guarded,
		Hidden:   pf.Hidden,
		Visible:  pf.Visible,
		Appends:  pf.Appends,
		KeyCase:  pf.KeyCase,
		Casts:    pf.Casts,
	}, nil
}
