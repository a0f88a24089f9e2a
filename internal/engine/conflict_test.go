package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
	"github.com/talgya/resistance-core/internal/entropy"
)

// conflictFixture loads the stock content with only the named conflicts.
func conflictFixture(t *testing.T, src entropy.Source, names ...string) *fixture {
	t.Helper()
	defs := content.DefaultDefinitions()
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	var conflicts []content.Conflict
	for _, c := range defs.Conflicts {
		if keep[c.Name] {
			conflicts = append(conflicts, c)
		}
	}
	require.Len(t, conflicts, len(names))
	defs.Conflicts = conflicts

	cat, err := content.Load(defs)
	require.NoError(t, err)
	return newFixtureWith(t, src, quietTuning(), cat, true)
}

func TestThinSkinnedNeverGetsAGoodOutcome(t *testing.T) {
	f := conflictFixture(t, entropy.SeededSource(42), "Forgives", "Shrugs", "Vents")
	thin := f.place(t, content.SideResistance, 0)
	f.setTrait(t, thin, "Thin Skinned")
	control := f.place(t, content.SideResistance, 1)

	good := map[string]bool{"Forgives": true, "Shrugs": true}
	controlGood := 0
	for i := 0; i < 1000; i++ {
		res := f.sim.ProcessActorConflict(thin)
		require.False(t, good[res.Outcome], "run %d gave %s", i, res.Outcome)
		assert.Equal(t, "Vents", res.Outcome)

		if good[f.sim.ProcessActorConflict(control).Outcome] {
			controlGood++
		}
	}
	assert.Positive(t, controlGood)
	assert.Equal(t, 1000, thin.Counters.TimesConflict)
}

func TestEasyGoingHasNoConflict(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.place(t, content.SideResistance, 0)
	f.setTrait(t, a, "Easy Going")

	res := f.sim.ProcessActorConflict(a)
	assert.True(t, res.Nothing)
	assert.Empty(t, res.Outcome)
	assert.Equal(t, 0, f.draws("conflict"))
	assert.Equal(t, 0, f.sim.StatsFor(content.SideResistance).Conflicts)
}

func TestStubbornDoesNotResign(t *testing.T) {
	f := conflictFixture(t, entropy.Fixed(0), "Resigns")
	stubborn := f.place(t, content.SideResistance, 0)
	f.setTrait(t, stubborn, "Stubborn")
	plain := f.place(t, content.SideResistance, 1)

	res := f.sim.ProcessActorConflict(stubborn)
	assert.Equal(t, "Resigns", res.Outcome)
	assert.False(t, res.Resigned)
	assert.Equal(t, actors.StatusActive, stubborn.Status())

	res = f.sim.ProcessActorConflict(plain)
	assert.True(t, res.Resigned)
	assert.Equal(t, actors.StatusResigned, plain.Status())
	assert.Equal(t, 1, f.sim.StatsFor(content.SideResistance).Resignations)
	assert.NoError(t, f.sim.Validate())
}

func TestConflictCriteria(t *testing.T) {
	f := conflictFixture(t, entropy.Fixed(0), "Blackmails")
	a := f.place(t, content.SideResistance, 0)

	res := f.sim.ProcessActorConflict(a)
	assert.True(t, res.Nothing, "no secret to blackmail with")

	sec, err := f.sim.GrantSecret(content.SideResistance, "Skimming")
	require.NoError(t, err)
	a.LearnSecret(sec)

	res = f.sim.ProcessActorConflict(a)
	assert.Equal(t, "Blackmails", res.Outcome)
	assert.True(t, a.HasCondition(content.CondBlackmailer))
	assert.Equal(t, f.sim.Tuning.BlackmailTimer, a.BlackmailTimer)
}

func TestGearConflictNeedsGear(t *testing.T) {
	f := conflictFixture(t, entropy.Fixed(0), "Walks Off With Gear")
	a := f.place(t, content.SideAuthority, 0)

	res := f.sim.ProcessActorConflict(a)
	assert.True(t, res.Nothing, "nothing to walk off with")

	given, err := f.sim.GiveGear(a, "Riot Shield")
	require.NoError(t, err)
	require.True(t, given.Done)

	res = f.sim.ProcessActorConflict(a)
	assert.Equal(t, "Walks Off With Gear", res.Outcome)
	assert.Contains(t, res.Text, "Riot Shield is gone for good")
	assert.Empty(t, a.Gear)
}

func TestSideRestrictedConflicts(t *testing.T) {
	f := conflictFixture(t, entropy.Fixed(0), "Leaks")
	auth := f.place(t, content.SideAuthority, 0)
	res := f.sim.ProcessActorConflict(auth)
	assert.True(t, res.Nothing)

	res2 := f.sim.ProcessActorConflict(f.place(t, content.SideResistance, 0))
	assert.Equal(t, "Leaks", res2.Outcome)
	assert.Equal(t, 2, f.player(content.SideResistance).Invisibility())
}

func TestPsychopathKillsAColleague(t *testing.T) {
	f := conflictFixture(t, entropy.Fixed(0), "Kills")
	killer := f.place(t, content.SideResistance, 0)
	f.setTrait(t, killer, "Psychopath")

	res := f.sim.ProcessActorConflict(killer)
	assert.True(t, res.Nothing, "nobody else on the map")

	victim := f.place(t, content.SideResistance, 2)
	res = f.sim.ProcessActorConflict(killer)
	assert.Equal(t, "Kills", res.Outcome)
	assert.Contains(t, res.Text, victim.Name)
	assert.Equal(t, actors.StatusKilled, victim.Status())
	assert.Equal(t, actors.StatusActive, killer.Status())
	assert.Equal(t, 1, f.sim.StatsFor(content.SideResistance).Kills)
	assert.NoError(t, f.sim.Validate())
}

func TestKillRandomActorWithNobodyAround(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	killer := f.place(t, content.SideResistance, 0)

	res := f.sim.ProcessKillRandomActor(killer)
	assert.Nil(t, res.Victim)
	assert.Equal(t, 0, f.draws("kill victim"))
}
