package engine

import (
	"errors"
	"fmt"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
	"github.com/talgya/resistance-core/internal/roster"
)

var errBrokenRelation = errors.New("relation points at a vacant slot")

// SetRelation makes two on-map actors friends or enemies and starts the
// shared cooldown.
func (s *Simulation) SetRelation(a, b *actors.Actor, kind roster.RelationKind) error {
	if err := s.Registry.SetRelation(a, b, kind, s.Tuning.RelationTimer); err != nil {
		return fmt.Errorf("relate %d and %d: %w", a.ID, b.ID, err)
	}
	s.emitf(a.Side, a.ID, CategoryRelation, "%s and %s are now %s", a.Name, b.Name, relationNoun(kind))
	return nil
}

// UpdateRelationMessages reports each existing relation once. Returns the
// number of pairs reported.
func (s *Simulation) UpdateRelationMessages(side content.Side) int {
	n := 0
	for _, rel := range s.Registry.Relations(side).Pairs() {
		a := s.Registry.Slot(side, rel.Slot)
		b := s.Registry.Slot(side, rel.Other)
		if a == nil || b == nil {
			s.Registry.Relations(side).Clear(rel.Slot)
			if a != nil {
				s.integrity("relations", a, errBrokenRelation)
			}
			continue
		}
		shift := "Motivation changes are shared between them"
		if rel.Kind == roster.RelationEnemy {
			shift = "Motivation changes work against each other"
		}
		s.emitf(side, a.ID, CategoryRelation, "%s and %s are %s. %s", a.Name, b.Name, relationNoun(rel.Kind), shift)
		n++
	}
	return n
}

func relationNoun(kind roster.RelationKind) string {
	if kind == roster.RelationEnemy {
		return "enemies"
	}
	return "friends"
}
