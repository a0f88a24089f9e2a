package roster

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrSameSlot         = errors.New("an actor can't relate to themselves")
	ErrRelationExists   = errors.New("slot already has a relation")
	ErrRelationCooldown = errors.New("relations can't change yet")
	ErrInvalidRelation  = errors.New("relation kind must be friend or enemy")
)

// RelationKind is the nature of a bond between two on-map actors.
type RelationKind uint8

const (
	RelationNone RelationKind = iota
	RelationFriend
	RelationEnemy
)

func (k RelationKind) String() string {
	switch k {
	case RelationFriend:
		return "Friend"
	case RelationEnemy:
		return "Enemy"
	default:
		return "None"
	}
}

// Relation is one end of a bond, keyed by slot.
type Relation struct {
	Slot  int
	Other int
	Kind  RelationKind
}

// Relations holds a side's bonds. Each slot has at most one relation, and a
// shared cooldown gates any new one.
type Relations struct {
	links map[int]Relation
	timer int
}

// NewRelations creates an empty relation table.
func NewRelations() *Relations {
	return &Relations{links: make(map[int]Relation)}
}

// Timer returns the turns left before relations can change.
func (r *Relations) Timer() int {
	return r.timer
}

// Set links two slots and starts the cooldown.
func (r *Relations) Set(slot, other int, kind RelationKind, cooldown int) error {
	if kind == RelationNone {
		return ErrInvalidRelation
	}
	if slot == other {
		return ErrSameSlot
	}
	if r.timer > 0 {
		return fmt.Errorf("%w (%d turns)", ErrRelationCooldown, r.timer)
	}
	if _, ok := r.links[slot]; ok {
		return fmt.Errorf("slot %d: %w", slot, ErrRelationExists)
	}
	if _, ok := r.links[other]; ok {
		return fmt.Errorf("slot %d: %w", other, ErrRelationExists)
	}
	r.links[slot] = Relation{Slot: slot, Other: other, Kind: kind}
	r.links[other] = Relation{Slot: other, Other: slot, Kind: kind}
	r.timer = cooldown
	return nil
}

// Get returns the relation for slot.
func (r *Relations) Get(slot int) (Relation, bool) {
	rel, ok := r.links[slot]
	return rel, ok
}

// Clear removes the relation for slot and its partner.
func (r *Relations) Clear(slot int) bool {
	rel, ok := r.links[slot]
	if !ok {
		return false
	}
	delete(r.links, slot)
	delete(r.links, rel.Other)
	return true
}

// Tick counts the cooldown down by one turn.
func (r *Relations) Tick() {
	if r.timer > 0 {
		r.timer--
	}
}

// Pairs returns each relation once, ordered by its lower slot.
func (r *Relations) Pairs() []Relation {
	slots := make([]int, 0, len(r.links))
	for slot := range r.links {
		slots = append(slots, slot)
	}
	sort.Ints(slots)

	visited := make(map[int]bool, len(slots))
	var out []Relation
	for _, slot := range slots {
		if visited[slot] {
			continue
		}
		rel := r.links[slot]
		visited[slot] = true
		visited[rel.Other] = true
		out = append(out, rel)
	}
	return out
}
