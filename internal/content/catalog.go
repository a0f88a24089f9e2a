package content

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateName = errors.New("duplicate definition name")
	ErrMissingName   = errors.New("definition has no name")
	ErrUnknownEffect = errors.New("unknown effect name")
)

// TraitDef is the raw, string-tagged form of a trait as authored.
type TraitDef struct {
	Name        string
	Side        Side
	Description string
	Effects     []string
}

// Definitions is the authored content before load-time resolution.
type Definitions struct {
	Archetypes []Archetype
	Traits     []TraitDef
	Conditions []Condition
	Secrets    []SecretTemplate
	Conflicts  []Conflict
}

// Catalog is the resolved, read-only set of lookup tables.
type Catalog struct {
	archetypes map[string]Archetype
	traits     map[string]Trait
	conditions map[string]Condition
	secrets    map[string]SecretTemplate

	// Ordered views, kept in authoring order so selection is reproducible.
	archetypeOrder []string
	traitOrder     []string
	secretOrder    []string
	conflicts      []Conflict
}

// Load validates definitions and resolves trait effect names into tags. When
// knownEffects is given, every conflict and secret effect must be one of them.
func Load(defs Definitions, knownEffects ...string) (*Catalog, error) {
	c := &Catalog{
		archetypes: make(map[string]Archetype, len(defs.Archetypes)),
		traits:     make(map[string]Trait, len(defs.Traits)),
		conditions: make(map[string]Condition, len(defs.Conditions)),
		secrets:    make(map[string]SecretTemplate, len(defs.Secrets)),
	}

	for _, a := range defs.Archetypes {
		if a.Name == "" {
			return nil, fmt.Errorf("archetype: %w", ErrMissingName)
		}
		if _, dup := c.archetypes[a.Name]; dup {
			return nil, fmt.Errorf("archetype %q: %w", a.Name, ErrDuplicateName)
		}
		c.archetypes[a.Name] = a
		c.archetypeOrder = append(c.archetypeOrder, a.Name)
	}

	for _, td := range defs.Traits {
		if td.Name == "" {
			return nil, fmt.Errorf("trait: %w", ErrMissingName)
		}
		if _, dup := c.traits[td.Name]; dup {
			return nil, fmt.Errorf("trait %q: %w", td.Name, ErrDuplicateName)
		}
		t := Trait{Name: td.Name, Side: td.Side, Description: td.Description}
		for _, e := range td.Effects {
			tag, err := ParseEffectTag(e)
			if err != nil {
				return nil, fmt.Errorf("trait %q: %w", td.Name, err)
			}
			t.Effects = append(t.Effects, tag)
		}
		c.traits[t.Name] = t
		c.traitOrder = append(c.traitOrder, t.Name)
	}

	for _, cd := range defs.Conditions {
		if cd.Name == "" {
			return nil, fmt.Errorf("condition: %w", ErrMissingName)
		}
		if _, dup := c.conditions[cd.Name]; dup {
			return nil, fmt.Errorf("condition %q: %w", cd.Name, ErrDuplicateName)
		}
		c.conditions[cd.Name] = cd
	}

	for _, s := range defs.Secrets {
		if s.Name == "" {
			return nil, fmt.Errorf("secret: %w", ErrMissingName)
		}
		if _, dup := c.secrets[s.Name]; dup {
			return nil, fmt.Errorf("secret %q: %w", s.Name, ErrDuplicateName)
		}
		c.secrets[s.Name] = s
		c.secretOrder = append(c.secretOrder, s.Name)
	}

	for _, cf := range defs.Conflicts {
		if cf.Name == "" {
			return nil, fmt.Errorf("conflict: %w", ErrMissingName)
		}
		c.conflicts = append(c.conflicts, cf)
	}

	if len(knownEffects) > 0 {
		if err := c.CheckEffects(knownEffects); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// CheckEffects reports the first conflict or secret effect not in known.
func (c *Catalog) CheckEffects(known []string) error {
	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[k] = true
	}
	for _, cf := range c.conflicts {
		if cf.Effect != "" && !set[cf.Effect] {
			return fmt.Errorf("conflict %q: %w: %s", cf.Name, ErrUnknownEffect, cf.Effect)
		}
	}
	for _, name := range c.secretOrder {
		for _, e := range c.secrets[name].Effects {
			if !set[e] {
				return fmt.Errorf("secret %q: %w: %s", name, ErrUnknownEffect, e)
			}
		}
	}
	return nil
}

// Archetype looks up an archetype by name.
func (c *Catalog) Archetype(name string) (Archetype, bool) {
	a, ok := c.archetypes[name]
	return a, ok
}

// Trait looks up a trait by name.
func (c *Catalog) Trait(name string) (Trait, bool) {
	t, ok := c.traits[name]
	return t, ok
}

// Condition looks up a condition by name.
func (c *Catalog) Condition(name string) (Condition, bool) {
	cd, ok := c.conditions[name]
	return cd, ok
}

// Secret looks up a secret template by name.
func (c *Catalog) Secret(name string) (SecretTemplate, bool) {
	s, ok := c.secrets[name]
	return s, ok
}

// ArchetypesFor returns the archetypes usable by side, in authoring order.
func (c *Catalog) ArchetypesFor(side Side) []Archetype {
	var out []Archetype
	for _, name := range c.archetypeOrder {
		if a := c.archetypes[name]; a.Side.Matches(side) {
			out = append(out, a)
		}
	}
	return out
}

// TraitsFor returns the traits an actor of side can be assigned.
func (c *Catalog) TraitsFor(side Side) []Trait {
	var out []Trait
	for _, name := range c.traitOrder {
		if t := c.traits[name]; t.Side.Matches(side) {
			out = append(out, t)
		}
	}
	return out
}

// SecretsFor returns the secret templates for side, in authoring order.
func (c *Catalog) SecretsFor(side Side) []SecretTemplate {
	var out []SecretTemplate
	for _, name := range c.secretOrder {
		if s := c.secrets[name]; s.Side.Matches(side) {
			out = append(out, s)
		}
	}
	return out
}

// Conflicts returns a copy of every registered conflict outcome.
func (c *Catalog) Conflicts() []Conflict {
	out := make([]Conflict, len(c.conflicts))
	copy(out, c.conflicts)
	return out
}
