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

func TestDismissCost(t *testing.T) {
	tune := quietTuning()
	tune.DismissRenown = 3
	tune.ManageSecretRenown = 2
	f := newFixture(t, entropy.Fixed(0), tune)
	a := f.place(t, content.SideResistance, 0)
	for _, name := range []string{"Affair", "Skimming"} {
		sec, err := f.sim.GrantSecret(content.SideResistance, name)
		require.NoError(t, err)
		a.LearnSecret(sec)
	}
	a.IsThreatening = true
	p := f.player(content.SideResistance)

	p.Renown = 13
	res, err := f.sim.Dismiss(a)
	require.NoError(t, err)
	assert.False(t, res.Done)
	assert.Contains(t, res.Text, "need 14")
	assert.Equal(t, 13, p.Renown)
	assert.True(t, f.sim.Registry.IsOnMap(a))

	p.Renown = 20
	res, err = f.sim.Dismiss(a)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, 14, res.Cost)
	assert.Equal(t, 6, p.Renown)
	assert.Equal(t, actors.StatusDismissed, a.Status())
	assert.Equal(t, 1, f.sim.StatsFor(content.SideResistance).Dismissals)
	assert.NoError(t, f.sim.Validate())

	_, err = f.sim.Dismiss(a)
	assert.ErrorIs(t, err, roster.ErrNotInPool)
}

func TestDisposeFromReserve(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.reserve(t, content.SideAuthority)
	f.setTrait(t, a, "Expendable")
	p := f.player(content.SideAuthority)
	p.Renown = 5

	res, err := f.sim.Dispose(a)
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Equal(t, f.sim.Tuning.DisposeRenown/2, res.Cost)
	assert.Equal(t, actors.StatusKilled, a.Status())
	assert.Equal(t, 1, f.sim.StatsFor(content.SideAuthority).Kills)
}

func TestChangeMotivationSpreadsToFriend(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.place(t, content.SideResistance, 0)
	b := f.place(t, content.SideResistance, 1)
	require.NoError(t, f.sim.SetRelation(a, b, roster.RelationFriend))

	res := f.sim.ChangeMotivation(a, -1, "reprimand")
	assert.Equal(t, 1, res.Value)
	assert.Same(t, b, res.Partner)
	assert.Equal(t, 1, b.Motivation())
	assert.Nil(t, res.Conflict)

	f.sim.ChangeMotivation(b, 1, "praise")
	assert.Equal(t, 2, b.Motivation())
	assert.Equal(t, 2, a.Motivation())
}

func TestChangeMotivationOpposesEnemy(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.place(t, content.SideResistance, 0)
	b := f.place(t, content.SideResistance, 3)
	require.NoError(t, f.sim.SetRelation(a, b, roster.RelationEnemy))

	f.sim.ChangeMotivation(a, -2, "demotion")
	assert.Equal(t, 0, a.Motivation())
	assert.Equal(t, 3, b.Motivation())

	err := f.sim.SetRelation(a, f.place(t, content.SideResistance, 1), roster.RelationFriend)
	assert.Error(t, err, "cooldown still running")
}

func TestChangeMotivationBelowFloorTriggersConflict(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.place(t, content.SideResistance, 0)
	a.SetDatapoint(actors.DatapointMotivation, 0, f.sim.Bounds())

	res := f.sim.ChangeMotivation(a, -1, "insult")
	require.NotNil(t, res.Conflict)
	assert.Equal(t, "Forgives", res.Conflict.Outcome)
	assert.Equal(t, 1, res.Value)
	assert.Equal(t, 1, f.draws("conflict"))
}

func TestLieLowNeedsRoomToRecover(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.place(t, content.SideResistance, 0)
	a.SetDatapoint(actors.DatapointInvisibility, 3, f.sim.Bounds())

	res, err := f.sim.LieLow(a)
	require.NoError(t, err)
	assert.False(t, res.Done)
	assert.Equal(t, 0, f.sim.LieLowTimer)
}

func TestLieLowTimerExpires(t *testing.T) {
	tune := quietTuning()
	tune.LieLowTimer = 2
	f := newFixture(t, entropy.Fixed(99), tune)
	a := f.place(t, content.SideResistance, 0)
	b := f.place(t, content.SideResistance, 1)
	a.SetDatapoint(actors.DatapointInvisibility, 0, f.sim.Bounds())

	res, err := f.sim.LieLow(a)
	require.NoError(t, err)
	require.True(t, res.Done)
	f.sim.RunTurn()
	f.sim.RunTurn()
	assert.Equal(t, 0, f.sim.LieLowTimer)

	res, err = f.sim.LieLow(b)
	require.NoError(t, err)
	assert.True(t, res.Done)
}

func TestStressLeaveRefusals(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.place(t, content.SideResistance, 0)
	p := f.player(content.SideResistance)
	p.Renown = 0

	res, err := f.sim.GiveStressLeave(a)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "isn't stressed")

	f.addCondition(t, a, content.CondStressed)
	res, err = f.sim.GiveStressLeave(a)
	require.NoError(t, err)
	assert.False(t, res.Done)
	assert.Equal(t, actors.StatusActive, a.Status())
}

func TestReserveRoundTrip(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.place(t, content.SideResistance, 2)

	res, err := f.sim.SendToReserve(a)
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Equal(t, actors.StatusReserve, a.Status())
	assert.Equal(t, f.sim.Tuning.UnhappyTimerBase, a.UnhappyTimer)

	_, err = f.sim.SendToReserve(a)
	assert.ErrorIs(t, err, roster.ErrNotOnMap)

	res, err = f.sim.Reassure(a)
	require.NoError(t, err)
	require.True(t, res.Done)
	res, err = f.sim.Reassure(a)
	require.NoError(t, err)
	assert.False(t, res.Done, "reassurance works once")

	res, err = f.sim.Promise(a)
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Equal(t, 1, a.Counters.TimesPromised)

	res, err = f.sim.ActivateFromReserve(a)
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Equal(t, 0, a.SlotID, "lowest vacant slot")
	assert.Equal(t, actors.StatusActive, a.Status())
	assert.False(t, a.IsPromised)
	assert.False(t, a.IsReassured)
	assert.Equal(t, 0, a.UnhappyTimer)
}

func TestActivateWithFullMap(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	for slot := 0; slot < f.sim.Tuning.MaxOnMapActors; slot++ {
		f.place(t, content.SideAuthority, slot)
	}
	a := f.reserve(t, content.SideAuthority)

	res, err := f.sim.ActivateFromReserve(a)
	require.NoError(t, err)
	assert.False(t, res.Done)
	assert.Equal(t, actors.StatusReserve, a.Status())
}

func TestTransferToHQ(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.place(t, content.SideAuthority, 0)

	res, err := f.sim.TransferToHQ(a)
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Equal(t, actors.StatusHQ, a.Status())
	assert.Nil(t, f.sim.Registry.Slot(content.SideAuthority, 0))
	assert.NoError(t, f.sim.Validate())
}

func TestCaptureRequiresMap(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.reserve(t, content.SideResistance)
	assert.ErrorIs(t, f.sim.Capture(a), roster.ErrNotOnMap)
}

func TestGiveAndTakeGear(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.place(t, content.SideResistance, 0)

	res, err := f.sim.GiveGear(a, "Drone")
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Equal(t, "Drone", a.Gear)

	res, err = f.sim.GiveGear(a, "Fake ID")
	require.NoError(t, err)
	assert.False(t, res.Done, "one piece of gear at a time")
	assert.Equal(t, "Drone", a.Gear)

	res, err = f.sim.TakeGear(a)
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.Empty(t, a.Gear)

	res, err = f.sim.TakeGear(a)
	require.NoError(t, err)
	assert.False(t, res.Done)

	_, err = f.sim.GiveGear(f.newActor(t, content.SideResistance), "Drone")
	assert.ErrorIs(t, err, roster.ErrNotInPool)
}

func TestTurnTraitor(t *testing.T) {
	f := newFixture(t, entropy.Fixed(0), quietTuning())
	a := f.place(t, content.SideResistance, 0)

	res, err := f.sim.TurnTraitor(a)
	require.NoError(t, err)
	require.True(t, res.Done)
	assert.True(t, a.IsTraitor)
	last := f.sim.Events[len(f.sim.Events)-1]
	assert.Equal(t, content.SideAuthority.String(), last.Side)
	assert.Equal(t, CategoryBetrayal, last.Category)

	res, err = f.sim.TurnTraitor(a)
	require.NoError(t, err)
	assert.False(t, res.Done)

	_, err = f.sim.TurnTraitor(f.place(t, content.SideAuthority, 0))
	assert.ErrorIs(t, err, ErrWrongSide)
	_, err = f.sim.TurnTraitor(f.reserve(t, content.SideResistance))
	assert.ErrorIs(t, err, roster.ErrNotOnMap)
}
