// Package actors provides the actor data model: availability state, datapoints,
// conditions, known secrets and the spawner that creates actors from archetypes.
package actors

import (
	"github.com/talgya/resistance-core/internal/content"
)

// ActorID is a unique, never reused identifier for an actor.
type ActorID int

// NumDatapoints is the number of bounded stat values an actor carries.
const NumDatapoints = 3

// Datapoint indices. Index 2 is Invisibility for the Resistance and Ability
// for the Authority.
const (
	DatapointConnections  = 0 // Influence for the Authority
	DatapointMotivation   = 1
	DatapointInvisibility = 2
	DatapointAbility      = 2
)

// NumFactors is the length of the personality factor vector.
const NumFactors = 5

// Counters tallies an actor's history for narrative and balancing.
type Counters struct {
	TimesBullied    int `json:"times_bullied"`
	TimesConflict   int `json:"times_conflict"`
	TimesBreakdown  int `json:"times_breakdown"`
	TimesComplained int `json:"times_complained"`
	TimesReassured  int `json:"times_reassured"`
	TimesPromised   int `json:"times_promised"`
	DaysStressed    int `json:"days_stressed"`
	DaysLieLow      int `json:"days_lie_low"`
	SecretsLearned  int `json:"secrets_learned"`
}

// Actor is one individual on either side, or a player entity.
type Actor struct {
	ID     ActorID           `json:"id"`
	Name   string            `json:"name"`
	Side   content.Side      `json:"side"`
	Arc    content.Archetype `json:"arc"`
	Level  int               `json:"level"`
	SlotID int               `json:"slot_id"` // -1 when not on the map

	State      State               `json:"-"`
	Datapoints [NumDatapoints]int  `json:"datapoints"`
	Renown     int                 `json:"renown"`
	Trait      content.Trait       `json:"trait"`
	Conditions []content.Condition `json:"conditions"`
	Secrets    []*Secret           `json:"-"`
	Gear       string              `json:"gear,omitempty"`
	Factors    [NumFactors]int     `json:"factors"`
	History    []NodeActionData    `json:"history,omitempty"`
	Counters   Counters            `json:"counters"`

	// Timers, decremented once per applicable turn.
	UnhappyTimer   int `json:"unhappy_timer"`
	BlackmailTimer int `json:"blackmail_timer"`

	IsBreakdown       bool `json:"is_breakdown"` // one-turn guard after a breakdown
	IsLieLowFirstTurn bool `json:"is_lie_low_first_turn"`
	IsStressLeave     bool `json:"is_stress_leave"` // leave began this turn
	IsNewRecruit      bool `json:"is_new_recruit"`
	IsPromised        bool `json:"is_promised"`
	IsReassured       bool `json:"is_reassured"`
	IsComplaining     bool `json:"is_complaining"`
	IsThreatening     bool `json:"is_threatening"`
	IsTraitor         bool `json:"is_traitor"`

	JoinedTurn int `json:"joined_turn"`
}

// Status returns the coarse availability status derived from State.
func (a *Actor) Status() Status {
	if a.State == nil {
		return StatusNone
	}
	return a.State.Status()
}

// InactiveReason returns why the actor is inactive, or InactiveNone.
func (a *Actor) InactiveReason() InactiveReason {
	if in, ok := a.State.(Inactive); ok {
		return in.Reason
	}
	return InactiveNone
}

// HQID returns the actor's hierarchy id, or -1 when not at HQ.
func (a *Actor) HQID() int {
	if hq, ok := a.State.(AtHQ); ok {
		return hq.HQID
	}
	return -1
}

// Has reports whether the actor's trait carries the effect tag.
func (a *Actor) Has(tag content.EffectTag) bool {
	return a.Trait.Has(tag)
}

// NodeActionData is one entry of an actor's audit trail.
type NodeActionData struct {
	Turn   int    `json:"turn"`
	NodeID int    `json:"node_id"`
	Action string `json:"action"`
}

// MaxHistory caps the audit trail length.
const MaxHistory = 50

// AddHistory appends to the actor's audit trail, dropping the oldest entry
// when full.
func (a *Actor) AddHistory(turn, nodeID int, action string) {
	if len(a.History) >= MaxHistory {
		a.History = a.History[1:]
	}
	a.History = append(a.History, NodeActionData{Turn: turn, NodeID: nodeID, Action: action})
}
