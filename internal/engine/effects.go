package engine

import (
	"fmt"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
)

// EffectContext describes where an effect came from.
type EffectContext struct {
	Side   content.Side
	Turn   int
	Source string
}

// EffectResult is the narrative outcome of applying an effect. Err is set
// when the effect couldn't be applied; Top and Bottom are then empty.
type EffectResult struct {
	Top    string
	Bottom string
	Err    bool
}

// EffectApplier applies a named effect at a node. a is the actor the effect
// concerns, possibly nil.
type EffectApplier interface {
	ApplyEffect(effect string, node int, ctx EffectContext, a *actors.Actor) EffectResult
}

// Effect names understood by BasicEffects.
const (
	EffectPlayerRenownMinus1       = "PlayerRenownMinus1"
	EffectPlayerRenownMinus2       = "PlayerRenownMinus2"
	EffectPlayerRenownPlus1        = "PlayerRenownPlus1"
	EffectPlayerInvisibilityMinus1 = "PlayerInvisibilityMinus1"
	EffectPlayerStressed           = "PlayerStressed"
	EffectPlayerCorrupt            = "PlayerCorrupt"
	EffectPlayerQuestionable       = "PlayerQuestionable"
	EffectPlayerIncompetent        = "PlayerIncompetent"
	EffectActorMotivationPlus1     = "ActorMotivationPlus1"
	EffectActorMotivationMinus1    = "ActorMotivationMinus1"
	EffectActorStressed            = "ActorStressed"
	EffectActorBlackmails          = "ActorBlackmails"
	EffectActorThreatens           = "ActorThreatens"
	EffectActorKillsRandom         = "ActorKillsRandom"
	EffectActorLosesGear           = "ActorLosesGear"
)

// EffectNames lists the vocabulary BasicEffects understands.
func EffectNames() []string {
	return []string{
		EffectPlayerRenownMinus1, EffectPlayerRenownMinus2, EffectPlayerRenownPlus1,
		EffectPlayerInvisibilityMinus1, EffectPlayerStressed, EffectPlayerCorrupt,
		EffectPlayerQuestionable, EffectPlayerIncompetent,
		EffectActorMotivationPlus1, EffectActorMotivationMinus1, EffectActorStressed,
		EffectActorBlackmails, EffectActorThreatens, EffectActorKillsRandom,
		EffectActorLosesGear,
	}
}

// BasicEffects applies the built-in effect vocabulary to the simulation's
// players and actors. Node is only used for reporting.
type BasicEffects struct {
	sim *Simulation
}

// ApplyEffect implements EffectApplier.
func (e *BasicEffects) ApplyEffect(effect string, node int, ctx EffectContext, a *actors.Actor) EffectResult {
	s := e.sim
	p := s.player(ctx.Side)

	needPlayer := func() bool { return p != nil }
	needActor := func() bool { return a != nil }

	switch effect {
	case EffectPlayerRenownMinus1, EffectPlayerRenownMinus2, EffectPlayerRenownPlus1:
		if !needPlayer() {
			return EffectResult{Err: true}
		}
		delta := 1
		switch effect {
		case EffectPlayerRenownMinus1:
			delta = -1
		case EffectPlayerRenownMinus2:
			delta = -2
		}
		p.Renown = max(p.Renown+delta, 0)
		return EffectResult{Top: fmt.Sprintf("Your Renown is now %d", p.Renown), Bottom: fmt.Sprintf("at node %d", node)}

	case EffectPlayerInvisibilityMinus1:
		if !needPlayer() {
			return EffectResult{Err: true}
		}
		inv := p.AdjustDatapoint(actors.DatapointInvisibility, -1, s.bounds)
		if inv <= s.bounds.Min {
			s.World.ImmediateDetection(p)
		}
		return EffectResult{Top: fmt.Sprintf("Your Invisibility drops to %d", inv)}

	case EffectPlayerStressed:
		return e.condition(p, content.CondStressed, "You are STRESSED")
	case EffectPlayerCorrupt:
		return e.condition(p, content.CondCorrupt, "You are now seen as CORRUPT")
	case EffectPlayerQuestionable:
		return e.condition(p, content.CondQuestionable, "Your loyalty is QUESTIONABLE")
	case EffectPlayerIncompetent:
		return e.condition(p, content.CondIncompetent, "You are now seen as INCOMPETENT")

	case EffectActorMotivationPlus1, EffectActorMotivationMinus1:
		if !needActor() {
			return EffectResult{Err: true}
		}
		delta := 1
		if effect == EffectActorMotivationMinus1 {
			delta = -1
		}
		v := a.AdjustDatapoint(actors.DatapointMotivation, delta, s.bounds)
		return EffectResult{Top: fmt.Sprintf("%s Motivation is now %d", a.Name, v)}

	case EffectActorStressed:
		if !needActor() {
			return EffectResult{Err: true}
		}
		return e.condition(a, content.CondStressed, a.Name+" is STRESSED")

	case EffectActorBlackmails:
		if !needActor() {
			return EffectResult{Err: true}
		}
		if len(a.Secrets) == 0 {
			return EffectResult{Top: a.Name + " has nothing to hold over you"}
		}
		if res := e.condition(a, content.CondBlackmailer, ""); res.Err {
			return res
		}
		a.BlackmailTimer = s.Tuning.BlackmailTimer
		return EffectResult{Top: fmt.Sprintf("%s will reveal your secret in %s", a.Name, turnsLeft(a.BlackmailTimer))}

	case EffectActorThreatens:
		if !needActor() {
			return EffectResult{Err: true}
		}
		a.IsThreatening = true
		return EffectResult{Top: a.Name + " is now THREATENING"}

	case EffectActorLosesGear:
		if !needActor() || a.Gear == "" {
			return EffectResult{Err: true}
		}
		gear := a.Gear
		a.Gear = ""
		return EffectResult{Top: fmt.Sprintf("%s is gone for good", gear)}

	case EffectActorKillsRandom:
		if !needActor() {
			return EffectResult{Err: true}
		}
		k := s.ProcessKillRandomActor(a)
		return EffectResult{Top: k.Text}
	}

	return EffectResult{Err: true}
}

func (e *BasicEffects) condition(target *actors.Actor, name, text string) EffectResult {
	if target == nil {
		return EffectResult{Err: true}
	}
	if !e.sim.grantCondition(target, name) && !target.HasCondition(name) {
		return EffectResult{Err: true}
	}
	return EffectResult{Top: text}
}
