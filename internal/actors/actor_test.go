package actors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/resistance-core/internal/content"
)

func TestStateVariants(t *testing.T) {
	a := &Actor{}
	assert.Equal(t, StatusNone, a.Status())

	a.State = Inactive{Reason: InactiveLieLow}
	assert.Equal(t, StatusInactive, a.Status())
	assert.Equal(t, InactiveLieLow, a.InactiveReason())
	assert.True(t, a.Status().OnMap())

	a.State = AtHQ{HQID: 4}
	assert.Equal(t, 4, a.HQID())
	assert.Equal(t, InactiveNone, a.InactiveReason())

	a.State = Departed{Kind: StatusKilled}
	assert.Equal(t, StatusKilled, a.Status())
	assert.True(t, a.Status().Terminal())
	assert.Equal(t, -1, a.HQID())
}

func TestDatapointsClamp(t *testing.T) {
	a := &Actor{}
	a.SetDatapoint(DatapointMotivation, 7, testBounds)
	assert.Equal(t, 3, a.Motivation())
	assert.Equal(t, 0, a.AdjustDatapoint(DatapointMotivation, -10, testBounds))
	assert.Equal(t, 1, a.AdjustDatapoint(DatapointMotivation, 1, testBounds))
}

func TestConditions(t *testing.T) {
	a := &Actor{}
	corrupt := content.Condition{Name: content.CondCorrupt, Type: content.ConditionBad, Incompatible: true}
	stressed := content.Condition{Name: content.CondStressed, Type: content.ConditionBad}

	assert.True(t, a.AddCondition(corrupt))
	assert.False(t, a.AddCondition(corrupt))
	assert.True(t, a.AddCondition(stressed))
	assert.Len(t, a.IncompatibleConditions(), 1)

	assert.True(t, a.RemoveCondition(content.CondCorrupt))
	assert.False(t, a.RemoveCondition(content.CondCorrupt))
	assert.Empty(t, a.IncompatibleConditions())
	assert.True(t, a.HasCondition(content.CondStressed))
}

func TestSecretsOldestFirst(t *testing.T) {
	a := &Actor{}
	assert.Nil(t, a.OldestSecret())

	first := &Secret{ID: 7}
	second := &Secret{ID: 3}
	assert.True(t, a.LearnSecret(first))
	assert.True(t, a.LearnSecret(second))
	assert.False(t, a.LearnSecret(first))
	assert.Same(t, first, a.OldestSecret())

	assert.True(t, a.ForgetSecret(7))
	assert.Same(t, second, a.OldestSecret())
	assert.False(t, a.KnowsSecret(7))
}

func TestHistoryIsCapped(t *testing.T) {
	a := &Actor{}
	for i := 0; i < MaxHistory+5; i++ {
		a.AddHistory(i, 1, "act")
	}
	assert.Len(t, a.History, MaxHistory)
	assert.Equal(t, 5, a.History[0].Turn)
}
