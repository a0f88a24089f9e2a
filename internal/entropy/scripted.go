package entropy

// Sequence is a Source that replays fixed values in order, wrapping around
// when exhausted. Each value is reduced modulo n.
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a Sequence over values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn implements Source.
func (q *Sequence) Intn(n int) int {
	if len(q.values) == 0 {
		return 0
	}
	v := q.values[q.next%len(q.values)]
	q.next++
	return v % n
}

// Fixed is a Source that always yields the same value modulo n.
type Fixed int

// Intn implements Source.
func (f Fixed) Intn(n int) int {
	return int(f) % n
}
