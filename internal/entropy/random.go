// Package entropy provides the single seeded random stream every probability
// check in a turn draws from, plus the ordered log of those draws.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	mrand "math/rand"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// Dice is what the simulation consumes: percentage checks and uniform picks,
// both drawn from one stream in call order.
type Dice interface {
	// Roll draws a value in [0,100) and reports whether it is below threshold.
	Roll(check string, actorID int, threshold int) bool
	// Pick draws an index in [0,n). It returns -1 without drawing if n <= 0.
	Pick(purpose string, n int) int
}

// Kind distinguishes a percentage check from a selection draw.
type Kind string

const (
	KindRoll Kind = "roll"
	KindPick Kind = "pick"
)

// Record is one logged draw.
type Record struct {
	Seq       int    `db:"seq" json:"seq"`
	Turn      int    `db:"turn" json:"turn"`
	Kind      Kind   `db:"kind" json:"kind"`
	Check     string `db:"check_name" json:"check"`
	ActorID   int    `db:"actor_id" json:"actor_id"`
	Value     int    `db:"value" json:"value"`
	Threshold int    `db:"threshold" json:"threshold"`
	Success   bool   `db:"success" json:"success"`
}

// Stream is the shared PRNG stream. Not safe for concurrent use: a turn is a
// single sequential pass.
type Stream struct {
	src  Source
	seq  int
	turn int
	log  []Record
}

// NewStream wraps src. Use NewSeeded for a math/rand backed stream.
func NewStream(src Source) *Stream {
	return &Stream{src: src}
}

// NewSeeded creates a reproducible stream from seed.
func NewSeeded(seed int64) *Stream {
	return NewStream(SeededSource(seed))
}

// SeededSource returns a math/rand backed Source.
func SeededSource(seed int64) Source {
	return mrand.New(mrand.NewSource(seed))
}

// SetTurn stamps subsequent records with turn.
func (s *Stream) SetTurn(turn int) {
	s.turn = turn
}

// Roll implements Dice.
func (s *Stream) Roll(check string, actorID int, threshold int) bool {
	value := s.src.Intn(100)
	ok := value < threshold
	s.append(Record{Kind: KindRoll, Check: check, ActorID: actorID, Value: value, Threshold: threshold, Success: ok})
	slog.Debug("roll", "turn", s.turn, "check", check, "actor", actorID, "value", value, "threshold", threshold, "success", ok)
	return ok
}

// Pick implements Dice.
func (s *Stream) Pick(purpose string, n int) int {
	if n <= 0 {
		return -1
	}
	value := s.src.Intn(n)
	s.append(Record{Kind: KindPick, Check: purpose, Value: value, Threshold: n, Success: true})
	return value
}

func (s *Stream) append(r Record) {
	s.seq++
	r.Seq = s.seq
	r.Turn = s.turn
	s.log = append(s.log, r)
}

// Records returns a copy of every draw logged since the last Drain.
func (s *Stream) Records() []Record {
	out := make([]Record, len(s.log))
	copy(out, s.log)
	return out
}

// Drain returns the logged draws and clears the log. Sequence numbers keep
// counting.
func (s *Stream) Drain() []Record {
	out := s.log
	s.log = nil
	return out
}

// Len returns the total number of draws consumed from the stream.
func (s *Stream) Len() int {
	return s.seq
}

// NewSeed generates a seed from crypto/rand for runs that don't pin one.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	// Keep it positive so it round-trips through env vars and sqlite cleanly.
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1), nil
}
