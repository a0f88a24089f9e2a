// Actor spawning: creates actors from archetype templates with level-based
// datapoints, a random trait and a personality factor vector.

package actors

import (
	"errors"
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/resistance-core/internal/content"
	"github.com/talgya/resistance-core/internal/entropy"
)

var (
	ErrInvalidLevel     = errors.New("level must be between 1 and 3")
	ErrInvalidSlot      = errors.New("slot out of range")
	ErrInvalidStatus    = errors.New("status not valid for a new actor")
	ErrUnknownArchetype = errors.New("unknown archetype")
	ErrSideMismatch     = errors.New("archetype belongs to the other side")
)

// Spawner creates actors. IDs are issued from a monotonic counter.
type Spawner struct {
	dice     entropy.Dice
	catalog  *content.Catalog
	bounds   Bounds
	maxOnMap int
	noise    opensimplex.Noise
	nextID   ActorID
}

// NewSpawner creates a spawner. seed only shapes personality factors; every
// other random choice is drawn from dice.
func NewSpawner(dice entropy.Dice, catalog *content.Catalog, bounds Bounds, maxOnMap int, seed int64) *Spawner {
	return &Spawner{
		dice:     dice,
		catalog:  catalog,
		bounds:   bounds,
		maxOnMap: maxOnMap,
		noise:    opensimplex.NewNormalized(seed + 300),
		nextID:   1,
	}
}

// SetNextID sets the next actor ID to be issued.
func (s *Spawner) SetNextID(id ActorID) {
	s.nextID = id
}

// NextID returns the ID the next created actor will receive.
func (s *Spawner) NextID() ActorID {
	return s.nextID
}

// Create builds a new actor of the named archetype. slotID is -1 for actors
// headed for a pool; otherwise status must be Active. The actor is not
// registered anywhere; the caller places it.
func (s *Spawner) Create(side content.Side, arcName string, level int, status Status, slotID int) (*Actor, error) {
	if level < 1 || level > 3 {
		return nil, fmt.Errorf("create %s level %d: %w", arcName, level, ErrInvalidLevel)
	}
	if slotID < -1 || slotID >= s.maxOnMap {
		return nil, fmt.Errorf("create %s slot %d: %w", arcName, slotID, ErrInvalidSlot)
	}
	arc, ok := s.catalog.Archetype(arcName)
	if !ok {
		return nil, fmt.Errorf("create %q: %w", arcName, ErrUnknownArchetype)
	}
	if !arc.Side.Matches(side) {
		return nil, fmt.Errorf("create %q for %s: %w", arcName, side, ErrSideMismatch)
	}

	var state State
	switch {
	case slotID > -1 && status == StatusActive:
		state = Active{}
	case slotID == -1 && status == StatusRecruitPool:
		state = InRecruitPool{}
	case slotID == -1 && status == StatusReserve:
		state = InReserve{}
	default:
		return nil, fmt.Errorf("create %q as %s in slot %d: %w", arcName, status, slotID, ErrInvalidStatus)
	}

	id := s.nextID
	s.nextID++

	a := &Actor{
		ID:     id,
		Name:   s.generateName(side),
		Side:   side,
		Arc:    arc,
		Level:  level,
		SlotID: slotID,
		State:  state,
	}

	if traits := s.catalog.TraitsFor(side); len(traits) > 0 {
		a.Trait = traits[s.dice.Pick("trait", len(traits))]
	}

	a.SetDatapoint(DatapointConnections, s.levelDatapoint(level), s.bounds)
	a.SetDatapoint(DatapointMotivation, s.levelDatapoint(level), s.bounds)
	if side == content.SideResistance {
		a.SetDatapoint(DatapointInvisibility, s.startingInvisibility(id, level), s.bounds)
	} else {
		a.SetDatapoint(DatapointAbility, s.levelDatapoint(level), s.bounds)
	}

	a.Factors = s.personality(id)
	return a, nil
}

// CreatePlayer builds a player entity for side. Players never occupy a slot.
func (s *Spawner) CreatePlayer(side content.Side, name string) *Actor {
	id := s.nextID
	s.nextID++

	p := &Actor{
		ID:     id,
		Name:   name,
		Side:   side,
		Level:  3,
		SlotID: -1,
		State:  Active{},
	}
	p.SetDatapoint(DatapointMotivation, s.bounds.Max, s.bounds)
	p.SetDatapoint(DatapointInvisibility, s.bounds.Max, s.bounds)
	return p
}

// levelDatapoint samples a starting datapoint. Higher levels raise the range
// and level 3 also raises the floor.
func (s *Spawner) levelDatapoint(level int) int {
	lower := 1
	if level == 3 {
		lower = 2
	}
	upper := min(4, level+2)
	return lower + s.dice.Pick("datapoint", upper-lower)
}

// startingInvisibility biases Resistance invisibility toward the maximum.
func (s *Spawner) startingInvisibility(id ActorID, level int) int {
	maxInv := s.bounds.Max
	switch level {
	case 3:
		return maxInv
	case 2:
		if s.dice.Roll("invisibility", int(id), 25) {
			return maxInv - 1
		}
		return maxInv
	default:
		if s.dice.Roll("invisibility", int(id), 50) {
			return maxInv - 1
		}
		return maxInv
	}
}

// personality samples a smooth noise field so factors are stable per actor
// and don't draw from the shared stream.
func (s *Spawner) personality(id ActorID) [NumFactors]int {
	var f [NumFactors]int
	for i := range f {
		v := s.noise.Eval2(float64(id)*0.37, float64(i)*1.7)
		f[i] = int(math.Round(v*4)) - 2
	}
	return f
}

var (
	resistanceNames = []string{"Ada", "Bex", "Cato", "Dara", "Emil", "Fen", "Gus", "Hale", "Ines", "Juno", "Kai", "Lark", "Milo", "Nix", "Orla", "Pim"}
	authorityNames  = []string{"Abbott", "Blake", "Crane", "Doyle", "Ellis", "Forde", "Grant", "Hayes", "Irwin", "Jervis", "Kemp", "Lowe"}
	surnames        = []string{"Voss", "Marek", "Quill", "Rourke", "Sato", "Thorne", "Ueda", "Vale", "Wren", "Yates"}
)

func (s *Spawner) generateName(side content.Side) string {
	first := resistanceNames
	if side == content.SideAuthority {
		first = authorityNames
	}
	return first[s.dice.Pick("name", len(first))] + " " + surnames[s.dice.Pick("name", len(surnames))]
}
