package engine

import (
	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
)

// checkBreakdown rolls for a stress breakdown. A breakdown sets a guard that
// skips the next turn's check.
func (s *Simulation) checkBreakdown(a *actors.Actor) {
	if !a.HasCondition(content.CondStressed) {
		return
	}
	if a.IsBreakdown {
		a.IsBreakdown = false
		return
	}

	chance := s.Tuning.BreakdownChance
	if s.World.SurveillanceCrackdown() {
		chance *= 2
	}
	switch {
	case a.Has(content.TagNoBreakdown):
		chance = 0
	case a.Has(content.TagBreakdownChanceHigh):
		chance *= 2
	case a.Has(content.TagBreakdownChanceLow):
		chance /= 2
	}

	if !s.Dice.Roll("breakdown", int(a.ID), chance) {
		a.IsBreakdown = false
		return
	}
	a.State = actors.Inactive{Reason: actors.InactiveBreakdown}
	a.IsBreakdown = true
	a.Counters.TimesBreakdown++
	s.StatsFor(a.Side).Breakdowns++
	s.emitf(a.Side, a.ID, CategoryHazard, "%s has suffered a breakdown", a.Name)
}

// checkSecrets gives the actor a chance to learn each of the player's
// secrets that has been held for at least a full turn.
func (s *Simulation) checkSecrets(a *actors.Actor) {
	p := s.player(a.Side)
	if p == nil {
		return
	}
	held := make([]*actors.Secret, len(p.Secrets))
	copy(held, p.Secrets)

	for _, sec := range held {
		if sec.Revealed || a.KnowsSecret(sec.ID) || sec.GainedTurn+1 >= s.Turn {
			continue
		}
		chance := s.Tuning.SecretChance
		switch {
		case a.Has(content.TagNoSecrets):
			chance = 0
		case a.Has(content.TagSecretChanceHigh):
			chance *= 3
		}
		if !s.Dice.Roll("secret", int(a.ID), chance) {
			continue
		}
		s.learnSecret(a, sec)

		if a.Has(content.TagBlabbermouth) {
			for _, other := range s.Registry.OnMap(a.Side) {
				if other == a || other.KnowsSecret(sec.ID) {
					continue
				}
				s.learnSecret(other, sec)
				s.emitf(a.Side, other.ID, CategorySecret, "%s couldn't keep it to themselves: %s now knows too", a.Name, other.Name)
			}
		}
	}
}

func (s *Simulation) learnSecret(a *actors.Actor, sec *actors.Secret) {
	if !a.LearnSecret(sec) {
		return
	}
	a.Counters.SecretsLearned++
	s.StatsFor(a.Side).SecretsLearned++
	s.emitf(a.Side, a.ID, CategorySecret, "%s has learned your secret (%s)", a.Name, sec.Name())
}

// checkBlackmail counts down a blackmailer's threat. A fully motivated actor
// drops it unless vindictive.
func (s *Simulation) checkBlackmail(a *actors.Actor) {
	if !a.HasCondition(content.CondBlackmailer) {
		return
	}
	if a.BlackmailTimer > 0 {
		a.BlackmailTimer--
	}

	switch {
	case a.Motivation() >= s.bounds.Max && !a.Has(content.TagVindictive):
		a.RemoveCondition(content.CondBlackmailer)
		a.BlackmailTimer = 0
		s.emitf(a.Side, a.ID, CategorySecret, "%s is happy again and drops the blackmail threat", a.Name)
	case a.BlackmailTimer == 0:
		if sec := a.OldestSecret(); sec != nil {
			s.RevealSecret(a, sec)
		}
		a.RemoveCondition(content.CondBlackmailer)
	default:
		s.emitf(a.Side, a.ID, CategoryWarning, "%s will reveal your secret in %s unless placated",
			a.Name, turnsLeft(a.BlackmailTimer))
	}
}

// checkCompatibility makes the actor consider resigning over the player's
// incompatible conditions.
func (s *Simulation) checkCompatibility(a *actors.Actor) {
	p := s.player(a.Side)
	if p == nil {
		return
	}
	bad := p.IncompatibleConditions()
	if len(bad) == 0 {
		return
	}

	chance := s.Tuning.ActorResignChance * len(bad)
	if a.Has(content.TagResignChanceHigh) {
		chance *= 3
	}
	if !s.Dice.Roll("compatibility", int(a.ID), chance) {
		return
	}
	if a.Has(content.TagNeverResignCompatibility) {
		s.emitf(a.Side, a.ID, CategoryWarning, "%s considered quitting over your conduct but stays loyal", a.Name)
		return
	}
	cond := bad[s.Dice.Pick("compatibility condition", len(bad))]
	s.depart(a, actors.StatusResigned, "won't work for someone "+cond.Name)
}

// checkWarnings reports datapoints sitting at the floor.
func (s *Simulation) checkWarnings(a *actors.Actor) {
	if a.Side == content.SideResistance && a.Invisibility() <= s.bounds.Min {
		s.emitf(a.Side, a.ID, CategoryWarning, "%s has no Invisibility left and risks capture", a.Name)
	}
	if a.Motivation() <= s.bounds.Min {
		s.emitf(a.Side, a.ID, CategoryWarning, "%s has no Motivation left and risks a conflict", a.Name)
	}
}

// checkBetrayal rolls once per turn for a traitor compromising the
// Resistance player.
func (s *Simulation) checkBetrayal() {
	p := s.player(content.SideResistance)
	if p == nil {
		return
	}
	traitors := 0
	for _, a := range s.Registry.OnMap(content.SideResistance) {
		if a.IsTraitor {
			traitors++
		}
	}

	chance := s.Tuning.TraitorActiveChance + s.Tuning.TraitorActiveChance*traitors
	if !s.Dice.Roll("betrayal", int(p.ID), chance) {
		return
	}
	inv := p.AdjustDatapoint(actors.DatapointInvisibility, -1, s.bounds)
	s.StatsFor(content.SideResistance).Betrayals++
	s.emitf(content.SideResistance, p.ID, CategoryBetrayal, "Someone has betrayed you. Invisibility now %d", inv)
	if inv <= s.bounds.Min {
		s.World.ImmediateDetection(p)
	}
}
