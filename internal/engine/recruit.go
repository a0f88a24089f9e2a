package engine

import (
	"fmt"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
	"github.com/talgya/resistance-core/internal/roster"
)

// RecruitKind distinguishes the places a recruitment offer can be opened
// from. Each keeps its own cached offer.
type RecruitKind uint8

const (
	RecruitResistancePlayer  RecruitKind = iota // the Resistance player at their own node
	RecruitResistanceContact                    // the Resistance acting through a contact
	RecruitAuthority
)

// Side returns the side recruiting.
func (k RecruitKind) Side() content.Side {
	if k == RecruitAuthority {
		return content.SideAuthority
	}
	return content.SideResistance
}

// RecruitContext identifies where an offer was opened.
type RecruitContext struct {
	Kind      RecruitKind
	Node      int
	ContactID actors.ActorID
}

type offerKey struct {
	ctx   RecruitContext
	level int
}

// Recruiter draws recruitment offers and remembers them for the rest of the
// current action, so reopening the picker shows the same candidates.
type Recruiter struct {
	sim    *Simulation
	turn   int
	offers map[offerKey][]*actors.Actor
}

func newRecruiter(s *Simulation) *Recruiter {
	return &Recruiter{sim: s, offers: make(map[offerKey][]*actors.Actor)}
}

// BeginAction starts a new player action and forgets cached offers.
func (r *Recruiter) BeginAction() {
	clear(r.offers)
}

// Offer returns up to MaxGenericOptions distinct candidates from the
// recruit pool at level. An empty pool gives an empty offer.
func (r *Recruiter) Offer(ctx RecruitContext, level int) []*actors.Actor {
	s := r.sim
	if r.turn != s.Turn {
		r.turn = s.Turn
		clear(r.offers)
	}
	key := offerKey{ctx: ctx, level: level}
	if cached, ok := r.offers[key]; ok {
		return append([]*actors.Actor(nil), cached...)
	}

	side := ctx.Kind.Side()
	pool := s.Registry.RecruitPool(side, level)
	if ctx.Kind == RecruitResistancePlayer {
		pool = r.excludeOnMapArchetypes(side, pool)
	}

	n := min(s.Tuning.MaxGenericOptions, len(pool))
	for i := 0; i < n; i++ {
		j := i + s.Dice.Pick("recruit offer", len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	offer := pool[:n]
	r.offers[key] = offer

	if n == 0 {
		s.emit(side, 0, CategoryRecruit, "No recruits are available")
	}
	return append([]*actors.Actor(nil), offer...)
}

func (r *Recruiter) excludeOnMapArchetypes(side content.Side, pool []*actors.Actor) []*actors.Actor {
	present := make(map[string]bool)
	for _, a := range r.sim.Registry.OnMap(side) {
		present[a.Arc.Name] = true
	}
	out := pool[:0]
	for _, a := range pool {
		if !present[a.Arc.Name] {
			out = append(out, a)
		}
	}
	return out
}

// ConfirmRecruit moves a chosen candidate from the recruit pool to the
// reserve pool as a new recruit.
func (s *Simulation) ConfirmRecruit(a *actors.Actor) (ManageResult, error) {
	if got, ok := s.Registry.Get(a.ID); !ok || got != a || a.Status() != actors.StatusRecruitPool {
		return ManageResult{}, fmt.Errorf("recruit %d: %w", a.ID, roster.ErrNotInPool)
	}
	if err := s.Registry.AddToReserve(a); err != nil {
		return ManageResult{}, fmt.Errorf("recruit %d: %w", a.ID, err)
	}
	a.UnhappyTimer = s.unhappyTimerFor(a)
	a.IsNewRecruit = true
	a.JoinedTurn = s.Turn
	s.StatsFor(a.Side).Recruited++
	clear(s.Recruiter.offers)

	text := fmt.Sprintf("%s the %s has joined your reserve pool", a.Name, a.Arc.Name)
	s.emit(a.Side, a.ID, CategoryRecruit, text)
	return ManageResult{Done: true, Text: text}, nil
}

// CreateActor builds an actor and, when slotID > -1, places it on the map.
// Actors for a pool are returned unplaced.
func (s *Simulation) CreateActor(side content.Side, arcName string, level int, status actors.Status, slotID int) (*actors.Actor, error) {
	a, err := s.Spawner.Create(side, arcName, level, status, slotID)
	if err != nil {
		return nil, err
	}
	if slotID > -1 {
		a.Renown = 0
		if err := s.Registry.AddToMap(a, slotID); err != nil {
			return nil, fmt.Errorf("place %s: %w", arcName, err)
		}
		a.JoinedTurn = s.Turn
	}
	return a, nil
}

// SeedRecruitPools fills each level of side's recruit pool with
// RecruitCopies actors per archetype.
func (s *Simulation) SeedRecruitPools(side content.Side) error {
	for level := 1; level <= 3; level++ {
		for _, arc := range s.Catalog.ArchetypesFor(side) {
			for i := 0; i < s.Tuning.RecruitCopies; i++ {
				a, err := s.CreateActor(side, arc.Name, level, actors.StatusRecruitPool, -1)
				if err != nil {
					return fmt.Errorf("seed recruit pool: %w", err)
				}
				if err := s.Registry.AddToRecruitPool(a); err != nil {
					return fmt.Errorf("seed recruit pool: %w", err)
				}
			}
		}
	}
	return nil
}

// SeedMap fills up to n vacant slots with level 1 actors of distinct
// archetypes where possible.
func (s *Simulation) SeedMap(side content.Side, n int) error {
	arcs := s.Catalog.ArchetypesFor(side)
	if len(arcs) == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		slot := s.Registry.VacantSlot(side)
		if slot < 0 {
			return nil
		}
		idx := s.Dice.Pick("starting archetype", len(arcs))
		arc := arcs[idx]
		arcs = append(arcs[:idx:idx], arcs[idx+1:]...)
		if len(arcs) == 0 {
			arcs = s.Catalog.ArchetypesFor(side)
		}
		if _, err := s.CreateActor(side, arc.Name, 1, actors.StatusActive, slot); err != nil {
			return fmt.Errorf("seed map: %w", err)
		}
	}
	return nil
}
