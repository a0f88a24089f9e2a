package engine

import (
	"github.com/dustin/go-humanize/english"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
)

// processReserve runs the unhappiness escalator over side's reserve pool.
func (s *Simulation) processReserve(side content.Side) {
	for _, a := range s.Registry.Reserve(side) {
		if !s.Registry.IsInReserve(a) {
			continue
		}
		s.escalate(a)
		a.IsNewRecruit = false
	}
}

// escalate advances one reserve actor: timer, then motivation loss, then a
// take-action roll once motivation is gone.
func (s *Simulation) escalate(a *actors.Actor) {
	if a.UnhappyTimer > 0 {
		a.UnhappyTimer--
		switch a.UnhappyTimer {
		case 1:
			s.emitf(a.Side, a.ID, CategoryReserve, "%s is getting restless in the reserve pool", a.Name)
		case 0:
			s.grantCondition(a, content.CondUnhappy)
			s.emitf(a.Side, a.ID, CategoryReserve, "%s is UNHAPPY at being left in reserve", a.Name)
		}
		return
	}

	if a.Motivation() > s.bounds.Min {
		chance := s.Tuning.UnhappyLoseMotivationChance
		if a.IsPromised {
			chance = 100
		}
		if s.Dice.Roll("unhappy lose motivation", int(a.ID), chance) {
			v := a.AdjustDatapoint(actors.DatapointMotivation, -1, s.bounds)
			s.emitf(a.Side, a.ID, CategoryReserve, "%s loses Motivation while waiting (now %d)", a.Name, v)
			return
		}
		s.emitf(a.Side, a.ID, CategoryReserve, "%s is still unhappy", a.Name)
		return
	}

	chance := s.Tuning.UnhappyTakeActionChance
	if a.IsPromised {
		chance *= 2
	}
	if a.IsReassured {
		chance *= 2
	}
	if !s.Dice.Roll("unhappy take action", int(a.ID), chance) {
		s.emitf(a.Side, a.ID, CategoryWarning, "%s is about to do something drastic", a.Name)
		return
	}
	s.takeAction(a)
}

// takeAction is the ordered cascade. The first success ends it.
func (s *Simulation) takeAction(a *actors.Actor) {
	if sec := a.OldestSecret(); sec != nil {
		chance := s.Tuning.UnhappyRevealSecretChance
		if a.IsComplaining {
			chance *= 2
		}
		if s.Dice.Roll("unhappy reveal secret", int(a.ID), chance) {
			s.RevealSecret(a, sec)
			return
		}
	}

	chance := s.Tuning.UnhappyResignChance
	if a.IsComplaining {
		chance *= 2
	}
	if s.Dice.Roll("unhappy resign", int(a.ID), chance) {
		s.depart(a, actors.StatusResigned, "tired of waiting in reserve")
		return
	}

	if !a.IsComplaining {
		if s.Dice.Roll("unhappy complain", int(a.ID), s.Tuning.UnhappyComplainChance) {
			a.IsComplaining = true
			a.Counters.TimesComplained++
			s.emitf(a.Side, a.ID, CategoryReserve, "%s has complained about their treatment", a.Name)
			return
		}
	}

	s.emitf(a.Side, a.ID, CategoryWarning, "%s failed to act this time, but will", a.Name)
}

// unhappyTimerFor is the reserve wait before a new arrival turns unhappy.
func (s *Simulation) unhappyTimerFor(a *actors.Actor) int {
	t := s.Tuning.UnhappyTimerBase
	switch {
	case a.Has(content.TagUnhappyTimerLonger):
		t *= 2
	case a.Has(content.TagUnhappyTimerShorter):
		t /= 2
	}
	return max(t, 1)
}

// grantCondition adds a catalog condition by name.
func (s *Simulation) grantCondition(a *actors.Actor, name string) bool {
	cond, ok := s.Catalog.Condition(name)
	if !ok {
		s.integrity("condition "+name, a, ErrUnknownCondition)
		return false
	}
	return a.AddCondition(cond)
}

func turnsLeft(n int) string {
	return english.Plural(n, "turn", "")
}
