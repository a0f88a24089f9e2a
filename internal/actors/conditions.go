package actors

import "github.com/talgya/resistance-core/internal/content"

// HasCondition reports whether the actor carries the named condition.
func (a *Actor) HasCondition(name string) bool {
	for _, c := range a.Conditions {
		if c.Name == name {
			return true
		}
	}
	return false
}

// AddCondition grants a condition. Returns false if already present.
func (a *Actor) AddCondition(c content.Condition) bool {
	if a.HasCondition(c.Name) {
		return false
	}
	a.Conditions = append(a.Conditions, c)
	return true
}

// RemoveCondition removes the named condition. Returns false if absent.
func (a *Actor) RemoveCondition(name string) bool {
	for i, c := range a.Conditions {
		if c.Name == name {
			a.Conditions = append(a.Conditions[:i], a.Conditions[i+1:]...)
			return true
		}
	}
	return false
}

// IncompatibleConditions returns the conditions that strain a subordinate's
// loyalty, in the order they were gained.
func (a *Actor) IncompatibleConditions() []content.Condition {
	var out []content.Condition
	for _, c := range a.Conditions {
		if c.Incompatible {
			out = append(out, c)
		}
	}
	return out
}
