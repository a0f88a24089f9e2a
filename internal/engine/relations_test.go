package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/resistance-core/internal/content"
	"github.com/talgya/resistance-core/internal/entropy"
	"github.com/talgya/resistance-core/internal/roster"
)

func relationEvents(events []Event) []string {
	var out []string
	for _, e := range events {
		if e.Category == CategoryRelation {
			out = append(out, e.Description)
		}
	}
	return out
}

func TestTurnReportsEachRelationOnce(t *testing.T) {
	f := newFixture(t, entropy.Fixed(99), quietTuning())
	a := f.place(t, content.SideResistance, 0)
	b := f.place(t, content.SideResistance, 1)
	c := f.place(t, content.SideResistance, 2)
	d := f.place(t, content.SideResistance, 3)
	rels := f.sim.Registry.Relations(content.SideResistance)
	require.NoError(t, rels.Set(0, 1, roster.RelationFriend, 0))
	require.NoError(t, rels.Set(2, 3, roster.RelationEnemy, 0))

	f.sim.RunTurn()

	got := relationEvents(f.sim.DrainEvents())
	assert.Equal(t, []string{
		fmt.Sprintf("%s and %s are friends. Motivation changes are shared between them", a.Name, b.Name),
		fmt.Sprintf("%s and %s are enemies. Motivation changes work against each other", c.Name, d.Name),
	}, got)
	assert.Equal(t, 0, f.sim.UpdateRelationMessages(content.SideAuthority))
}

func TestBrokenRelationIsCleared(t *testing.T) {
	f := newFixture(t, entropy.Fixed(99), quietTuning())
	f.place(t, content.SideAuthority, 0)
	rels := f.sim.Registry.Relations(content.SideAuthority)
	require.NoError(t, rels.Set(0, 4, roster.RelationFriend, 0))

	f.sim.RunTurn()

	assert.Empty(t, relationEvents(f.sim.DrainEvents()))
	_, ok := rels.Get(0)
	assert.False(t, ok)
	_, ok = rels.Get(4)
	assert.False(t, ok)
}
