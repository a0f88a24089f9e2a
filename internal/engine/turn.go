package engine

import (
	"github.com/dustin/go-humanize"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
)

type turnStamper interface {
	SetTurn(turn int)
}

// RunTurn advances every actor and both players by one turn.
func (s *Simulation) RunTurn() {
	s.Turn++
	if ts, ok := s.Dice.(turnStamper); ok {
		ts.SetTurn(s.Turn)
	}

	order := s.sideOrder()
	for _, side := range order {
		s.processSide(side)
	}
	s.checkBetrayal()
	for _, side := range order {
		s.processReserve(side)
	}
	for _, side := range order {
		s.Registry.Relations(side).Tick()
		s.UpdateRelationMessages(side)
	}
	if s.LieLowTimer > 0 {
		s.LieLowTimer--
	}
}

func (s *Simulation) sideOrder() [2]content.Side {
	return [2]content.Side{s.Driving, s.Driving.Other()}
}

// processSide runs the inactive pass and then the active pass. An actor that
// recovers in the first pass is checked for hazards in the second.
func (s *Simulation) processSide(side content.Side) {
	p := s.player(side)

	if p != nil {
		s.resolveInactive(p)
	}
	for _, a := range s.Registry.OnMap(side) {
		if !s.Registry.IsOnMap(a) {
			continue
		}
		s.resolveInactive(a)
	}

	if p != nil && p.Status() == actors.StatusActive {
		s.checkBreakdown(p)
	}
	for _, a := range s.Registry.OnMap(side) {
		if !s.Registry.IsOnMap(a) || a.Status() != actors.StatusActive {
			continue
		}
		s.runHazards(a)
	}
}

// resolveInactive handles recovery for Inactive and Captured states.
func (s *Simulation) resolveInactive(a *actors.Actor) {
	switch st := a.State.(type) {
	case actors.Inactive:
		switch st.Reason {
		case actors.InactiveLieLow:
			s.resolveLieLow(a)
		case actors.InactiveBreakdown:
			a.State = actors.Active{}
			s.emitf(a.Side, a.ID, CategoryStatus, "%s has recovered from their breakdown", a.Name)
		case actors.InactiveStressLeave:
			if a.IsStressLeave {
				a.IsStressLeave = false
				return
			}
			a.State = actors.Active{}
			a.RemoveCondition(content.CondStressed)
			s.emitf(a.Side, a.ID, CategoryStatus, "%s is back from stress leave", a.Name)
		default:
			s.integrity("inactive", a, errUnknownReason)
		}
	case actors.Captured:
		st.Timer--
		if st.Timer > 0 {
			a.State = st
			return
		}
		a.State = st
		s.World.ReleaseCaptive(a)
		s.emitf(a.Side, a.ID, CategoryStatus, "%s has been released", a.Name)
	}
}

func (s *Simulation) resolveLieLow(a *actors.Actor) {
	if a.IsLieLowFirstTurn {
		a.IsLieLowFirstTurn = false
	} else {
		a.AdjustDatapoint(actors.DatapointInvisibility, 1, s.bounds)
	}

	if a.Invisibility() >= s.bounds.Max {
		a.State = actors.Active{}
		a.RemoveCondition(content.CondStressed)
		s.emitf(a.Side, a.ID, CategoryStatus, "%s has finished lying low", a.Name)
		return
	}
	a.Counters.DaysLieLow++
	s.StatsFor(a.Side).DaysLieLow++
	s.emitf(a.Side, a.ID, CategoryStatus, "%s is lying low for a %s day", a.Name, humanize.Ordinal(a.Counters.DaysLieLow))
}

// runHazards runs the per-actor active checks in order. They are independent,
// but an actor that leaves the map stops being checked.
func (s *Simulation) runHazards(a *actors.Actor) {
	if a.HasCondition(content.CondStressed) {
		a.Counters.DaysStressed++
	}
	checks := []func(*actors.Actor){
		s.checkBreakdown,
		s.checkSecrets,
		s.checkBlackmail,
		s.checkCompatibility,
		s.checkWarnings,
	}
	for _, check := range checks {
		if !s.Registry.IsOnMap(a) {
			return
		}
		check(a)
	}
}
