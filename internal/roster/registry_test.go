package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
)

var bounds = actors.Bounds{Min: 0, Max: 3}

func newActor(id int, side content.Side) *actors.Actor {
	return &actors.Actor{
		ID:     actors.ActorID(id),
		Name:   "Test",
		Side:   side,
		Level:  1,
		SlotID: -1,
	}
}

func TestTransitionsKeepOneCollection(t *testing.T) {
	r := New(3)
	a := newActor(1, content.SideResistance)

	require.NoError(t, r.AddToRecruitPool(a))
	assert.Len(t, r.RecruitPool(content.SideResistance, 1), 1)
	assert.Equal(t, actors.StatusRecruitPool, a.Status())

	require.NoError(t, r.AddToReserve(a))
	assert.Empty(t, r.RecruitPool(content.SideResistance, 1))
	assert.Len(t, r.Reserve(content.SideResistance), 1)

	require.NoError(t, r.AddToMap(a, 2))
	assert.Empty(t, r.Reserve(content.SideResistance))
	assert.Same(t, a, r.Slot(content.SideResistance, 2))
	assert.Equal(t, 2, a.SlotID)
	assert.Equal(t, actors.StatusActive, a.Status())
	assert.True(t, r.IsOnMap(a))

	require.NoError(t, r.AddToHQ(a))
	assert.Nil(t, r.Slot(content.SideResistance, 2))
	assert.Equal(t, -1, a.SlotID)
	assert.Equal(t, 1, a.HQID())

	require.NoError(t, r.Depart(a, actors.StatusResigned))
	assert.Empty(t, r.HQ(content.SideResistance))
	assert.Len(t, r.Departed(content.SideResistance), 1)
	assert.Equal(t, actors.StatusResigned, a.Status())

	got, ok := r.Get(a.ID)
	assert.True(t, ok)
	assert.Same(t, a, got)
	assert.NoError(t, r.Validate(bounds))
}

func TestAddToMapRejections(t *testing.T) {
	r := New(2)
	a := newActor(1, content.SideResistance)
	b := newActor(2, content.SideResistance)
	require.NoError(t, r.AddToReserve(a))
	require.NoError(t, r.AddToReserve(b))
	require.NoError(t, r.AddToMap(a, 0))

	assert.ErrorIs(t, r.AddToMap(b, 0), ErrSlotOccupied)
	assert.ErrorIs(t, r.AddToMap(a, 0), ErrAlreadyThere)
	assert.ErrorIs(t, r.AddToMap(b, 2), ErrSlotOutOfRange)
	assert.ErrorIs(t, r.AddToMap(b, -1), ErrSlotOutOfRange)

	// Failed moves leave b where it was.
	assert.True(t, r.IsInReserve(b))
	assert.NoError(t, r.Validate(bounds))
}

func TestDepartedActorsCannotReturn(t *testing.T) {
	r := New(2)
	a := newActor(1, content.SideAuthority)
	require.NoError(t, r.AddToReserve(a))
	require.NoError(t, r.Depart(a, actors.StatusKilled))

	assert.ErrorIs(t, r.AddToMap(a, 0), ErrDeparted)
	assert.ErrorIs(t, r.AddToReserve(a), ErrDeparted)
	assert.ErrorIs(t, r.Depart(a, actors.StatusDismissed), ErrDeparted)
	assert.ErrorIs(t, r.Depart(newActor(5, content.SideAuthority), actors.StatusReserve), ErrNotTerminal)
}

func TestDuplicateIDsRejected(t *testing.T) {
	r := New(2)
	require.NoError(t, r.AddToReserve(newActor(1, content.SideResistance)))
	assert.ErrorIs(t, r.AddToReserve(newActor(1, content.SideResistance)), ErrDuplicateID)

	p := newActor(9, content.SideResistance)
	require.NoError(t, r.SetPlayer(p, true))
	assert.ErrorIs(t, r.AddToReserve(newActor(9, content.SideResistance)), ErrDuplicateID)
	assert.True(t, r.IsHuman(content.SideResistance))
	assert.False(t, r.IsHuman(content.SideAuthority))
	assert.Same(t, p, r.Player(content.SideResistance))
}

func TestHQIDsAreUnique(t *testing.T) {
	r := New(2)
	a := newActor(1, content.SideResistance)
	b := newActor(2, content.SideAuthority)
	require.NoError(t, r.AddToHQ(a))
	require.NoError(t, r.AddToHQ(b))
	assert.NotEqual(t, a.HQID(), b.HQID())
	assert.ErrorIs(t, r.AddToHQ(a), ErrAlreadyThere)
	assert.NoError(t, r.Validate(bounds))
}

func TestHQIsOneWay(t *testing.T) {
	r := New(2)
	a := newActor(1, content.SideResistance)
	require.NoError(t, r.AddToReserve(a))
	require.NoError(t, r.AddToHQ(a))
	first := a.HQID()

	assert.ErrorIs(t, r.AddToReserve(a), ErrAtHQ)
	assert.ErrorIs(t, r.AddToMap(a, 0), ErrAtHQ)
	assert.ErrorIs(t, r.AddToRecruitPool(a), ErrAtHQ)
	assert.ErrorIs(t, r.AddToHQ(a), ErrAlreadyThere)

	assert.Equal(t, first, a.HQID())
	assert.Len(t, r.HQ(content.SideResistance), 1)
	assert.Empty(t, r.Reserve(content.SideResistance))
	assert.Nil(t, r.Slot(content.SideResistance, 0))
	assert.NoError(t, r.Validate(bounds))
}

func TestVacantSlotAndSnapshots(t *testing.T) {
	r := New(2)
	a := newActor(1, content.SideResistance)
	b := newActor(2, content.SideResistance)
	require.NoError(t, r.AddToMap(a, 0))
	assert.Equal(t, 1, r.VacantSlot(content.SideResistance))
	require.NoError(t, r.AddToMap(b, 1))
	assert.Equal(t, -1, r.VacantSlot(content.SideResistance))

	// Removing actors while iterating a snapshot visits every entry once.
	visited := 0
	for _, x := range r.OnMap(content.SideResistance) {
		require.NoError(t, r.Depart(x, actors.StatusDismissed))
		visited++
	}
	assert.Equal(t, 2, visited)
	assert.Empty(t, r.OnMap(content.SideResistance))
}

func TestLeavingTheMapClearsRelations(t *testing.T) {
	r := New(3)
	a := newActor(1, content.SideResistance)
	b := newActor(2, content.SideResistance)
	require.NoError(t, r.AddToMap(a, 0))
	require.NoError(t, r.AddToMap(b, 2))
	require.NoError(t, r.SetRelation(a, b, RelationFriend, 0))

	rel, ok := r.Relations(content.SideResistance).Get(2)
	require.True(t, ok)
	assert.Equal(t, 0, rel.Other)

	require.NoError(t, r.AddToReserve(b))
	_, ok = r.Relations(content.SideResistance).Get(0)
	assert.False(t, ok)
}

func TestForgetSecretSkipsDeparted(t *testing.T) {
	r := New(2)
	s := &actors.Secret{ID: 1}
	p := newActor(10, content.SideResistance)
	a := newActor(1, content.SideResistance)
	gone := newActor(2, content.SideResistance)
	for _, x := range []*actors.Actor{p, a, gone} {
		x.LearnSecret(s)
	}
	require.NoError(t, r.SetPlayer(p, false))
	require.NoError(t, r.AddToMap(a, 0))
	require.NoError(t, r.AddToReserve(gone))
	require.NoError(t, r.Depart(gone, actors.StatusKilled))

	assert.Equal(t, 2, r.ForgetSecret(s.ID))
	assert.False(t, p.KnowsSecret(s.ID))
	assert.False(t, a.KnowsSecret(s.ID))
	assert.True(t, gone.KnowsSecret(s.ID))
}

func TestValidateCatchesCorruption(t *testing.T) {
	r := New(2)
	a := newActor(1, content.SideResistance)
	require.NoError(t, r.AddToMap(a, 0))
	require.NoError(t, r.Validate(bounds))

	a.State = actors.InReserve{}
	err := r.Validate(bounds)
	assert.ErrorIs(t, err, ErrInconsistent)

	a.State = actors.Active{}
	a.Datapoints[actors.DatapointMotivation] = 9
	assert.ErrorIs(t, r.Validate(bounds), ErrInconsistent)
}
