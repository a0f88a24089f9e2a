package content

import (
	"errors"
	"fmt"
)

// ErrUnknownEffectTag is returned when a definition names an effect the
// engine does not know about.
var ErrUnknownEffectTag = errors.New("unknown effect tag")

// EffectTag is a trait capability checked by the turn engine.
type EffectTag uint8

const (
	TagNone                EffectTag = iota
	TagBreakdownChanceHigh           // doubles stress breakdown chance
	TagBreakdownChanceLow            // halves stress breakdown chance
	TagNoBreakdown                   // never breaks down
	TagSecretChanceHigh              // triples secret discovery chance
	TagNoSecrets                     // never discovers secrets
	TagBlabbermouth                  // shares learned secrets with every colleague
	TagVindictive                    // keeps blackmailing even when content
	TagResignChanceHigh              // triples compatibility resign chance
	TagNeverResignCompatibility      // loyal: compatibility never causes resignation
	TagConflictNoGood                // thin-skinned: no Good conflict outcomes
	TagNoConflict                    // relationship conflicts never happen
	TagConflictNeverResigns          // a conflict can't make them resign
	TagManageCostHigh                // doubles renown cost to remove
	TagManageCostLow                 // halves renown cost to remove
	TagUnhappyTimerLonger            // doubles reserve unhappy timer
	TagUnhappyTimerShorter           // halves reserve unhappy timer
	TagPsychopath                    // may kill a colleague
)

var tagNames = map[string]EffectTag{
	"ActorBreakdownChanceHigh": TagBreakdownChanceHigh,
	"ActorBreakdownChanceLow":  TagBreakdownChanceLow,
	"ActorBreakdownChanceNone": TagNoBreakdown,
	"ActorSecretChanceHigh":    TagSecretChanceHigh,
	"ActorSecretChanceNone":    TagNoSecrets,
	"ActorSecretTellAll":       TagBlabbermouth,
	"ActorBlackmailNone":       TagVindictive,
	"ActorResignHigh":          TagResignChanceHigh,
	"ActorResignNone":          TagNeverResignCompatibility,
	"ActorConflictNoGood":      TagConflictNoGood,
	"ActorConflictNone":        TagNoConflict,
	"ActorConflictNoResign":    TagConflictNeverResigns,
	"ActorManageCostHigh":      TagManageCostHigh,
	"ActorManageCostLow":       TagManageCostLow,
	"ActorReserveTimerDoubled": TagUnhappyTimerLonger,
	"ActorReserveTimerHalved":  TagUnhappyTimerShorter,
	"ActorConflictKill":        TagPsychopath,
}

// ParseEffectTag resolves a definition's effect name.
func ParseEffectTag(name string) (EffectTag, error) {
	tag, ok := tagNames[name]
	if !ok {
		return TagNone, fmt.Errorf("%w: %q", ErrUnknownEffectTag, name)
	}
	return tag, nil
}

func (t EffectTag) String() string {
	for name, tag := range tagNames {
		if tag == t {
			return name
		}
	}
	return "None"
}
