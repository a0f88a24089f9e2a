package actors

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"

	"github.com/talgya/resistance-core/internal/content"
)

// ManageRenownCost computes the renown needed to dismiss, dispose of or
// otherwise remove an actor, with a short explanation of how it was reached.
// Known secrets add secretRenown each, a threatening actor doubles the total,
// and cost-modifying traits double or halve it last. Never mutates a.
func ManageRenownCost(a *Actor, baseCost, secretRenown int) (int, string) {
	var why []string
	cost := baseCost
	why = append(why, fmt.Sprintf("base %d", baseCost))

	if n := len(a.Secrets); n > 0 {
		cost += n * secretRenown
		why = append(why, fmt.Sprintf("+%d for knowing %s", n*secretRenown, english.Plural(n, "secret", "")))
	}
	if a.IsThreatening {
		cost *= 2
		why = append(why, "x2 while threatening")
	}
	switch {
	case a.Has(content.TagManageCostHigh):
		cost *= 2
		why = append(why, fmt.Sprintf("x2 for being %s", a.Trait.Name))
	case a.Has(content.TagManageCostLow):
		cost /= 2
		why = append(why, fmt.Sprintf("halved for being %s", a.Trait.Name))
	}
	if cost < 0 {
		cost = 0
	}
	return cost, fmt.Sprintf("%s = %d Renown", strings.Join(why, ", "), cost)
}
