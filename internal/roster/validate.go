package roster

import (
	"errors"
	"fmt"

	"github.com/talgya/resistance-core/internal/actors"
)

// ErrInconsistent marks a registry whose collections disagree with actor state.
var ErrInconsistent = errors.New("roster inconsistent")

// Validate checks the registry's structural invariants: every actor sits in
// exactly one collection that agrees with its state, slots match, hq ids are
// unique and every datapoint is within bounds.
func (r *Registry) Validate(b actors.Bounds) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInconsistent}, args...)...))
	}

	seen := make(map[actors.ActorID]int, len(r.actors))
	hqIDs := make(map[int]actors.ActorID)

	for i := range r.onMap {
		for slot, a := range r.onMap[i] {
			if a == nil {
				continue
			}
			seen[a.ID]++
			if !a.Status().OnMap() {
				fail("actor %d in slot %d has status %s", a.ID, slot, a.Status())
			}
			if a.SlotID != slot {
				fail("actor %d in slot %d records slot %d", a.ID, slot, a.SlotID)
			}
			if sideIndex(a.Side) != i {
				fail("actor %d on the wrong side's map", a.ID)
			}
		}
		for lvl, pool := range r.recruit[i] {
			for _, a := range pool {
				seen[a.ID]++
				if a.Status() != actors.StatusRecruitPool {
					fail("actor %d in recruit pool has status %s", a.ID, a.Status())
				}
				if a.Level != lvl+1 {
					fail("actor %d level %d in level %d pool", a.ID, a.Level, lvl+1)
				}
			}
		}
		for _, a := range r.reserve[i] {
			seen[a.ID]++
			if a.Status() != actors.StatusReserve {
				fail("actor %d in reserve has status %s", a.ID, a.Status())
			}
		}
		for _, a := range r.hq[i] {
			seen[a.ID]++
			if a.Status() != actors.StatusHQ {
				fail("actor %d at hq has status %s", a.ID, a.Status())
			}
			id := a.HQID()
			if id <= 0 {
				fail("actor %d at hq without an hq id", a.ID)
			} else if other, dup := hqIDs[id]; dup {
				fail("hq id %d shared by actors %d and %d", id, other, a.ID)
			} else {
				hqIDs[id] = a.ID
			}
		}
		for _, a := range r.departed[i] {
			seen[a.ID]++
			if !a.Status().Terminal() {
				fail("departed actor %d has status %s", a.ID, a.Status())
			}
		}
	}

	for id, a := range r.actors {
		if n := seen[id]; n != 1 {
			fail("actor %d appears in %d collections", id, n)
		}
		if !a.Status().OnMap() && a.SlotID != -1 {
			fail("actor %d off the map holds slot %d", id, a.SlotID)
		}
		checkBounds(a, b, fail)
	}
	if len(seen) != len(r.actors) {
		fail("%d actors in collections, %d registered", len(seen), len(r.actors))
	}

	for _, p := range r.players {
		if p == nil {
			continue
		}
		if _, dup := r.actors[p.ID]; dup {
			fail("player id %d reused by a roster actor", p.ID)
		}
		checkBounds(p, b, fail)
	}

	return errors.Join(errs...)
}

func checkBounds(a *actors.Actor, b actors.Bounds, fail func(string, ...any)) {
	for i, v := range a.Datapoints {
		if !b.Contains(v) {
			fail("actor %d datapoint %d = %d outside [%d, %d]", a.ID, i, v, b.Min, b.Max)
		}
	}
}
