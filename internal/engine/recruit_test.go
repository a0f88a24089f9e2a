package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
	"github.com/talgya/resistance-core/internal/entropy"
	"github.com/talgya/resistance-core/internal/roster"
)

func ids(list []*actors.Actor) []actors.ActorID {
	out := make([]actors.ActorID, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

func arcNames(list []*actors.Actor) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Arc.Name
	}
	return out
}

func seededPools(t *testing.T, src entropy.Source) *fixture {
	t.Helper()
	f := newFixture(t, src, quietTuning())
	for _, side := range content.Sides {
		require.NoError(t, f.sim.SeedRecruitPools(side))
	}
	return f
}

func TestOfferIsCachedWithinAnAction(t *testing.T) {
	f := seededPools(t, entropy.SeededSource(5))
	ctx := RecruitContext{Kind: RecruitResistancePlayer, Node: 3}
	r := f.sim.Recruiter

	r.BeginAction()
	first := r.Offer(ctx, 1)
	require.Len(t, first, f.sim.Tuning.MaxGenericOptions)
	drawn := f.stream.Len()

	again := r.Offer(ctx, 1)
	assert.Equal(t, ids(first), ids(again))
	assert.Equal(t, drawn, f.stream.Len(), "reopening draws nothing")

	seen := make(map[actors.ActorID]bool)
	for _, a := range first {
		assert.False(t, seen[a.ID], "duplicate candidate")
		seen[a.ID] = true
		assert.Equal(t, 1, a.Level)
	}

	r.Offer(RecruitContext{Kind: RecruitResistanceContact, ContactID: 12}, 1)
	assert.Greater(t, f.stream.Len(), drawn, "another context has its own offer")
}

func TestOfferRedrawnForNewActionOrTurn(t *testing.T) {
	f := seededPools(t, entropy.Fixed(0))
	ctx := RecruitContext{Kind: RecruitAuthority}
	r := f.sim.Recruiter

	r.Offer(ctx, 2)
	before := f.stream.Len()

	r.BeginAction()
	r.Offer(ctx, 2)
	afterAction := f.stream.Len()
	assert.Greater(t, afterAction, before)

	f.sim.RunTurn()
	mark := f.stream.Len()
	r.Offer(ctx, 2)
	assert.Greater(t, f.stream.Len(), mark)
}

func TestOfferExcludesArchetypesOnMap(t *testing.T) {
	f := seededPools(t, entropy.Fixed(0))
	a := f.place(t, content.SideResistance, 0)
	arc, ok := f.cat.Archetype("ANARCHIST")
	require.True(t, ok)
	a.Arc = arc

	own := f.sim.Recruiter.Offer(RecruitContext{Kind: RecruitResistancePlayer}, 1)
	assert.NotContains(t, arcNames(own), "ANARCHIST")
	assert.Len(t, own, 3)

	contact := f.sim.Recruiter.Offer(RecruitContext{Kind: RecruitResistanceContact}, 1)
	assert.Contains(t, arcNames(contact), "ANARCHIST")
}

func TestEmptyPoolGivesEmptyOffer(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	offer := f.sim.Recruiter.Offer(RecruitContext{Kind: RecruitAuthority}, 3)
	assert.Empty(t, offer)
	assert.Equal(t, 0, f.stream.Len())
	require.NotEmpty(t, f.sim.Events)
	assert.Equal(t, CategoryRecruit, f.sim.Events[len(f.sim.Events)-1].Category)
}

func TestConfirmRecruit(t *testing.T) {
	f := seededPools(t, entropy.Fixed(0))
	offer := f.sim.Recruiter.Offer(RecruitContext{Kind: RecruitAuthority}, 1)
	require.NotEmpty(t, offer)
	a := offer[0]

	res, err := f.sim.ConfirmRecruit(a)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, actors.StatusReserve, a.Status())
	assert.True(t, a.IsNewRecruit)
	assert.Equal(t, f.sim.unhappyTimerFor(a), a.UnhappyTimer)
	assert.Equal(t, 1, f.sim.StatsFor(content.SideAuthority).Recruited)
	assert.NotContains(t, ids(f.sim.Registry.RecruitPool(content.SideAuthority, 1)), a.ID)

	_, err = f.sim.ConfirmRecruit(a)
	assert.ErrorIs(t, err, roster.ErrNotInPool)

	res, err = f.sim.LetGo(a)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, actors.StatusRecruitPool, a.Status())
	assert.NoError(t, f.sim.Validate())
}

func TestSeedRecruitPools(t *testing.T) {
	f := seededPools(t, entropy.Fixed(0))
	for _, side := range content.Sides {
		arcs := len(f.cat.ArchetypesFor(side))
		for level := 1; level <= 3; level++ {
			pool := f.sim.Registry.RecruitPool(side, level)
			assert.Len(t, pool, arcs*f.sim.Tuning.RecruitCopies)
			for _, a := range pool {
				assert.Equal(t, level, a.Level)
				assert.Equal(t, side, a.Side)
			}
		}
	}
}

func TestSeedMapUsesDistinctArchetypes(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	require.NoError(t, f.sim.SeedMap(content.SideResistance, 10))

	onMap := f.sim.Registry.OnMap(content.SideResistance)
	require.Len(t, onMap, f.sim.Tuning.MaxOnMapActors)
	names := make(map[string]bool)
	for i, a := range onMap {
		assert.Equal(t, i, a.SlotID)
		assert.Equal(t, 0, a.Renown)
		names[a.Arc.Name] = true
	}
	assert.Len(t, names, len(onMap))
	assert.NoError(t, f.sim.Validate())
}
