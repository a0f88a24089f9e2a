package actors

// Bounds is the inclusive range every datapoint is clamped to.
type Bounds struct {
	Min int
	Max int
}

// Clamp limits v to the bounds.
func (b Bounds) Clamp(v int) int {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Contains reports whether v lies within the bounds.
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

// Datapoint returns the value at index i.
func (a *Actor) Datapoint(i int) int {
	return a.Datapoints[i]
}

// SetDatapoint stores v at index i, clamped to b.
func (a *Actor) SetDatapoint(i, v int, b Bounds) {
	a.Datapoints[i] = b.Clamp(v)
}

// AdjustDatapoint adds delta at index i, clamped to b, and returns the new value.
func (a *Actor) AdjustDatapoint(i, delta int, b Bounds) int {
	a.Datapoints[i] = b.Clamp(a.Datapoints[i] + delta)
	return a.Datapoints[i]
}

// Motivation returns the Motivation datapoint.
func (a *Actor) Motivation() int {
	return a.Datapoints[DatapointMotivation]
}

// Invisibility returns the Invisibility datapoint. Only meaningful for the
// Resistance.
func (a *Actor) Invisibility() int {
	return a.Datapoints[DatapointInvisibility]
}
