// Package content holds the static game-content lookup tables: archetypes,
// traits, conditions, secret templates and relationship conflicts.
// Tables are immutable once loaded; all string-named trait effects are
// resolved into EffectTag values at load time.
package content

// Side is one of the two opposing factions.
type Side uint8

const (
	SideResistance Side = iota
	SideAuthority
	SideBoth // Definitions usable by either side. Never a live actor's side.
)

// Sides lists the two playable sides in their canonical order.
var Sides = [2]Side{SideResistance, SideAuthority}

func (s Side) String() string {
	switch s {
	case SideResistance:
		return "Resistance"
	case SideAuthority:
		return "Authority"
	case SideBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideResistance {
		return SideAuthority
	}
	return SideResistance
}

// Matches reports whether a definition tagged with s applies to side.
func (s Side) Matches(side Side) bool {
	return s == SideBoth || s == side
}

// ParseSide converts a side name ("resistance", "authority") to a Side.
func ParseSide(name string) (Side, bool) {
	switch name {
	case "resistance", "Resistance":
		return SideResistance, true
	case "authority", "Authority":
		return SideAuthority, true
	}
	return SideBoth, false
}

// Archetype is the fixed template an actor is created from.
type Archetype struct {
	Name          string
	Side          Side
	PreferredTeam string
	PreferredGear string
	NodeAction    string
	Sprite        string
}

// Trait is the single immutable personality quirk every actor carries.
type Trait struct {
	Name        string
	Side        Side
	Description string
	Effects     []EffectTag
}

// Has reports whether the trait carries the effect tag.
func (t Trait) Has(tag EffectTag) bool {
	for _, e := range t.Effects {
		if e == tag {
			return true
		}
	}
	return false
}

// ConditionType classifies a condition for display and for filtering.
type ConditionType uint8

const (
	ConditionNeutral ConditionType = iota
	ConditionGood
	ConditionBad
)

// Condition is a status effect carried by an actor or a player.
type Condition struct {
	Name string
	Type ConditionType
	// Incompatible conditions on a player make subordinates consider resigning.
	Incompatible bool
}

// Well-known condition names referenced directly by the turn engine.
const (
	CondStressed     = "STRESSED"
	CondBlackmailer  = "BLACKMAILER"
	CondUnhappy      = "UNHAPPY"
	CondCorrupt      = "CORRUPT"
	CondIncompetent  = "INCOMPETENT"
	CondQuestionable = "QUESTIONABLE"
)

// SecretTemplate describes a secret the player can acquire. Effects name
// entries in the effect vocabulary applied when the secret is revealed.
type SecretTemplate struct {
	Name        string
	Side        Side
	Description string
	Effects     []string
}

// OutcomeType is the flavour of a relationship conflict outcome.
type OutcomeType uint8

const (
	OutcomeNeutral OutcomeType = iota
	OutcomeGood
	OutcomeBad
)

// ChanceTier weights a conflict outcome in the selection pool.
type ChanceTier uint8

const (
	ChanceLow ChanceTier = iota
	ChanceMedium
	ChanceHigh
	ChanceExtreme
)

// Copies returns how many entries a tier contributes to the selection pool.
func (c ChanceTier) Copies() int {
	switch c {
	case ChanceLow:
		return 1
	case ChanceMedium:
		return 2
	case ChanceHigh:
		return 3
	case ChanceExtreme:
		return 5
	}
	return 0
}

// Criterion is a precondition a conflict outcome needs to be eligible.
type Criterion uint8

const (
	CriterionActorKnowsSecret Criterion = iota
	CriterionActorHasGear
	CriterionOtherActorsOnMap
	CriterionPlayerHasRenown
	CriterionActorNotThreatening
	CriterionActorIsPsychopath
)

// ConflictTarget selects which node a conflict's effect is applied against.
type ConflictTarget uint8

const (
	TargetActor ConflictTarget = iota
	TargetPlayer
)

// Conflict is one possible outcome of a relationship conflict.
type Conflict struct {
	Name     string
	Side     Side
	Type     OutcomeType
	Chance   ChanceTier
	Criteria []Criterion
	Target   ConflictTarget
	Effect   string
	Text     string // %s is replaced with the actor's name
	Detail   string
	Resigns  bool
}
