// Relationship conflicts: what an actor does when pushed past the floor of
// their Motivation.

package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
)

// ConflictResult is the narrative outcome of a relationship conflict.
type ConflictResult struct {
	Outcome  string // conflict name, empty when nothing happened
	Text     string
	Nothing  bool
	Resigned bool
}

// ProcessActorConflict picks a weighted outcome from the eligible conflicts
// and applies it.
func (s *Simulation) ProcessActorConflict(a *actors.Actor) ConflictResult {
	if a.Has(content.TagNoConflict) {
		res := ConflictResult{Nothing: true, Text: fmt.Sprintf("%s lets it slide. Nothing happens", a.Name)}
		s.emit(a.Side, a.ID, CategoryConflict, res.Text)
		return res
	}

	pool := s.conflictPool(a)
	if len(pool) == 0 {
		res := ConflictResult{Nothing: true, Text: fmt.Sprintf("%s sulks, but nothing happens", a.Name)}
		s.emit(a.Side, a.ID, CategoryConflict, res.Text)
		return res
	}

	c := pool[s.Dice.Pick("conflict", len(pool))]
	a.Counters.TimesConflict++
	s.StatsFor(a.Side).Conflicts++

	res := ConflictResult{Outcome: c.Name}
	lines := []string{fmt.Sprintf(c.Text, a.Name)}
	if c.Detail != "" {
		lines = append(lines, c.Detail)
	}

	if c.Resigns {
		if a.Has(content.TagConflictNeverResigns) {
			lines = []string{fmt.Sprintf("%s thinks about walking out but stays put", a.Name)}
		} else if s.depart(a, actors.StatusResigned, "relationship conflict") {
			res.Resigned = true
		}
	}

	if c.Effect != "" {
		node := s.World.SafeNode(a.Side)
		if c.Target == content.TargetPlayer {
			node = s.World.CurrentNode(a.Side)
		}
		ctx := EffectContext{Side: a.Side, Turn: s.Turn, Source: "conflict " + c.Name}
		out := s.Effects.ApplyEffect(c.Effect, node, ctx, a)
		if out.Err {
			slog.Error("conflict effect failed", "conflict", c.Name, "effect", c.Effect, "actor", a.ID, "turn", s.Turn)
		} else {
			for _, t := range []string{out.Top, out.Bottom} {
				if t != "" {
					lines = append(lines, t)
				}
			}
		}
	}

	res.Text = strings.Join(lines, "\n")
	s.emit(a.Side, a.ID, CategoryConflict, res.Text)
	return res
}

// conflictPool expands every eligible conflict into Copies() entries so a
// uniform pick favours higher tiers proportionally.
func (s *Simulation) conflictPool(a *actors.Actor) []content.Conflict {
	var pool []content.Conflict
	for _, c := range s.Catalog.Conflicts() {
		if !c.Side.Matches(a.Side) {
			continue
		}
		if c.Type == content.OutcomeGood && a.Has(content.TagConflictNoGood) {
			continue
		}
		if !s.criteriaMet(a, c.Criteria) {
			continue
		}
		for i := 0; i < c.Chance.Copies(); i++ {
			pool = append(pool, c)
		}
	}
	return pool
}

func (s *Simulation) criteriaMet(a *actors.Actor, criteria []content.Criterion) bool {
	for _, cr := range criteria {
		var ok bool
		switch cr {
		case content.CriterionActorKnowsSecret:
			ok = len(a.Secrets) > 0
		case content.CriterionActorHasGear:
			ok = a.Gear != ""
		case content.CriterionOtherActorsOnMap:
			ok = len(s.otherOnMap(a)) > 0
		case content.CriterionPlayerHasRenown:
			p := s.player(a.Side)
			ok = p != nil && p.Renown > 0
		case content.CriterionActorNotThreatening:
			ok = !a.IsThreatening
		case content.CriterionActorIsPsychopath:
			ok = a.Has(content.TagPsychopath)
		}
		if !ok {
			return false
		}
	}
	return true
}

func (s *Simulation) otherOnMap(a *actors.Actor) []*actors.Actor {
	var out []*actors.Actor
	for _, x := range s.Registry.OnMap(a.Side) {
		if x != a {
			out = append(out, x)
		}
	}
	return out
}

// KillResult reports the outcome of ProcessKillRandomActor.
type KillResult struct {
	Victim *actors.Actor // nil when nobody was available
	Text   string
}

// ProcessKillRandomActor has killer take out a random colleague on the map.
func (s *Simulation) ProcessKillRandomActor(killer *actors.Actor) KillResult {
	pool := s.otherOnMap(killer)
	if len(pool) == 0 {
		return KillResult{Text: fmt.Sprintf("%s looks for someone to blame but nobody is around", killer.Name)}
	}
	victim := pool[s.Dice.Pick("kill victim", len(pool))]
	if !s.depart(victim, actors.StatusKilled, "killed by "+killer.Name) {
		return KillResult{Text: fmt.Sprintf("%s lashes out but nobody is hurt", killer.Name)}
	}
	return KillResult{Victim: victim, Text: fmt.Sprintf("%s has killed %s", killer.Name, victim.Name)}
}
