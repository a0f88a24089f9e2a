// Package roster is the actor registry: who is on the map, who waits in
// which pool, who has departed, and the two player entities.
//
// Every transition detaches an actor from its old collection only after the
// new placement has been validated, so a failed move leaves state untouched.
package roster

import (
	"errors"
	"fmt"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
)

var (
	ErrUnknownSide    = errors.New("actor has no playable side")
	ErrSlotOutOfRange = errors.New("slot out of range")
	ErrSlotOccupied   = errors.New("slot occupied")
	ErrAlreadyThere   = errors.New("actor already in that collection")
	ErrDeparted       = errors.New("actor has departed")
	ErrDuplicateID    = errors.New("actor id already registered to another actor")
	ErrNotTerminal    = errors.New("status is not a departure")
	ErrInvalidLevel   = errors.New("recruit pool level must be between 1 and 3")
	ErrNotOnMap       = errors.New("actor not on the map")
	ErrNotInPool      = errors.New("actor not in that pool")
	ErrAtHQ           = errors.New("actor serves at hq")
)

type collection uint8

const (
	colNone collection = iota
	colMap
	colRecruit
	colReserve
	colHQ
	colDeparted
)

// Registry owns every actor record for a session.
type Registry struct {
	maxOnMap int

	actors map[actors.ActorID]*actors.Actor
	where  map[actors.ActorID]collection

	onMap    [2][]*actors.Actor // indexed by slot, nil when vacant
	recruit  [2][3][]*actors.Actor
	reserve  [2][]*actors.Actor
	hq       [2][]*actors.Actor
	departed [2][]*actors.Actor

	players   [2]*actors.Actor
	human     [2]bool
	relations [2]*Relations

	nextHQID int
}

// New creates an empty registry with maxOnMap slots per side.
func New(maxOnMap int) *Registry {
	r := &Registry{
		maxOnMap: maxOnMap,
		actors:   make(map[actors.ActorID]*actors.Actor),
		where:    make(map[actors.ActorID]collection),
	}
	for i := range r.onMap {
		r.onMap[i] = make([]*actors.Actor, maxOnMap)
		r.relations[i] = NewRelations()
	}
	return r
}

func sideIndex(side content.Side) int {
	switch side {
	case content.SideResistance:
		return 0
	case content.SideAuthority:
		return 1
	}
	return -1
}

// MaxOnMap returns the number of slots per side.
func (r *Registry) MaxOnMap() int {
	return r.maxOnMap
}

// SetPlayer installs the player entity for its side.
func (r *Registry) SetPlayer(p *actors.Actor, human bool) error {
	i := sideIndex(p.Side)
	if i < 0 {
		return fmt.Errorf("set player %d: %w", p.ID, ErrUnknownSide)
	}
	if _, taken := r.actors[p.ID]; taken {
		return fmt.Errorf("set player %d: %w", p.ID, ErrDuplicateID)
	}
	r.players[i] = p
	r.human[i] = human
	return nil
}

// Player returns the player entity for side, or nil.
func (r *Registry) Player(side content.Side) *actors.Actor {
	if i := sideIndex(side); i >= 0 {
		return r.players[i]
	}
	return nil
}

// IsHuman reports whether side is controlled by a human.
func (r *Registry) IsHuman(side content.Side) bool {
	if i := sideIndex(side); i >= 0 {
		return r.human[i]
	}
	return false
}

// Get looks up a roster actor by id. Players are not included.
func (r *Registry) Get(id actors.ActorID) (*actors.Actor, bool) {
	a, ok := r.actors[id]
	return a, ok
}

// Relations returns the relation table for side.
func (r *Registry) Relations(side content.Side) *Relations {
	if i := sideIndex(side); i >= 0 {
		return r.relations[i]
	}
	return nil
}

// AddToMap places an actor in a vacant slot as Active.
func (r *Registry) AddToMap(a *actors.Actor, slot int) error {
	i, err := r.checkReturnable(a)
	if err != nil {
		return fmt.Errorf("add %d to map: %w", a.ID, err)
	}
	if slot < 0 || slot >= r.maxOnMap {
		return fmt.Errorf("add %d to slot %d: %w", a.ID, slot, ErrSlotOutOfRange)
	}
	if occ := r.onMap[i][slot]; occ != nil {
		if occ == a {
			return fmt.Errorf("add %d to slot %d: %w", a.ID, slot, ErrAlreadyThere)
		}
		return fmt.Errorf("add %d to slot %d: %w", a.ID, slot, ErrSlotOccupied)
	}

	r.detach(a, i)
	r.onMap[i][slot] = a
	a.SlotID = slot
	a.State = actors.Active{}
	r.place(a, colMap)
	return nil
}

// AddToRecruitPool puts an actor in the recruit pool for its level.
func (r *Registry) AddToRecruitPool(a *actors.Actor) error {
	i, err := r.checkReturnable(a)
	if err != nil {
		return fmt.Errorf("add %d to recruit pool: %w", a.ID, err)
	}
	if a.Level < 1 || a.Level > 3 {
		return fmt.Errorf("add %d to recruit pool: %w", a.ID, ErrInvalidLevel)
	}
	if r.where[a.ID] == colRecruit {
		return fmt.Errorf("add %d to recruit pool: %w", a.ID, ErrAlreadyThere)
	}

	r.detach(a, i)
	r.recruit[i][a.Level-1] = append(r.recruit[i][a.Level-1], a)
	a.State = actors.InRecruitPool{}
	r.place(a, colRecruit)
	return nil
}

// AddToReserve puts an actor in the reserve pool.
func (r *Registry) AddToReserve(a *actors.Actor) error {
	i, err := r.checkReturnable(a)
	if err != nil {
		return fmt.Errorf("add %d to reserve: %w", a.ID, err)
	}
	if r.where[a.ID] == colReserve {
		return fmt.Errorf("add %d to reserve: %w", a.ID, ErrAlreadyThere)
	}

	r.detach(a, i)
	r.reserve[i] = append(r.reserve[i], a)
	a.State = actors.InReserve{}
	r.place(a, colReserve)
	return nil
}

// AddToHQ moves an actor into the HQ hierarchy and assigns its hq id.
func (r *Registry) AddToHQ(a *actors.Actor) error {
	i, err := r.checkMovable(a)
	if err != nil {
		return fmt.Errorf("add %d to hq: %w", a.ID, err)
	}
	if r.where[a.ID] == colHQ {
		return fmt.Errorf("add %d to hq: %w", a.ID, ErrAlreadyThere)
	}

	r.detach(a, i)
	r.nextHQID++
	r.hq[i] = append(r.hq[i], a)
	a.State = actors.AtHQ{HQID: r.nextHQID}
	r.place(a, colHQ)
	return nil
}

// Depart removes an actor from play with a terminal status. The record is
// kept for later lookups.
func (r *Registry) Depart(a *actors.Actor, kind actors.Status) error {
	if !kind.Terminal() {
		return fmt.Errorf("depart %d as %s: %w", a.ID, kind, ErrNotTerminal)
	}
	i, err := r.checkMovable(a)
	if err != nil {
		return fmt.Errorf("depart %d: %w", a.ID, err)
	}

	r.detach(a, i)
	r.departed[i] = append(r.departed[i], a)
	a.State = actors.Departed{Kind: kind}
	r.place(a, colDeparted)
	return nil
}

func (r *Registry) checkMovable(a *actors.Actor) (int, error) {
	i := sideIndex(a.Side)
	if i < 0 {
		return i, ErrUnknownSide
	}
	if existing, ok := r.actors[a.ID]; ok && existing != a {
		return i, ErrDuplicateID
	}
	for _, p := range r.players {
		if p != nil && p.ID == a.ID {
			return i, ErrDuplicateID
		}
	}
	if r.where[a.ID] == colDeparted {
		return i, ErrDeparted
	}
	return i, nil
}

// checkReturnable is checkMovable for moves back into play. HQ is one way:
// an hq id, once assigned, is never reassigned.
func (r *Registry) checkReturnable(a *actors.Actor) (int, error) {
	i, err := r.checkMovable(a)
	if err != nil {
		return i, err
	}
	if r.where[a.ID] == colHQ {
		return i, ErrAtHQ
	}
	return i, nil
}

func (r *Registry) place(a *actors.Actor, c collection) {
	r.actors[a.ID] = a
	r.where[a.ID] = c
}

// detach removes a from whatever collection currently holds it.
func (r *Registry) detach(a *actors.Actor, i int) {
	switch r.where[a.ID] {
	case colMap:
		if a.SlotID >= 0 && a.SlotID < r.maxOnMap && r.onMap[i][a.SlotID] == a {
			r.onMap[i][a.SlotID] = nil
			r.relations[i].Clear(a.SlotID)
		}
	case colRecruit:
		for lvl := range r.recruit[i] {
			r.recruit[i][lvl] = without(r.recruit[i][lvl], a)
		}
	case colReserve:
		r.reserve[i] = without(r.reserve[i], a)
	case colHQ:
		r.hq[i] = without(r.hq[i], a)
	}
	a.SlotID = -1
	r.where[a.ID] = colNone
}

func without(list []*actors.Actor, a *actors.Actor) []*actors.Actor {
	for j, x := range list {
		if x == a {
			return append(list[:j:j], list[j+1:]...)
		}
	}
	return list
}

func snapshot(list []*actors.Actor) []*actors.Actor {
	out := make([]*actors.Actor, len(list))
	copy(out, list)
	return out
}

// OnMap returns the side's on-map actors in slot order. The slice is a
// snapshot: removing actors while iterating it is safe.
func (r *Registry) OnMap(side content.Side) []*actors.Actor {
	i := sideIndex(side)
	if i < 0 {
		return nil
	}
	var out []*actors.Actor
	for _, a := range r.onMap[i] {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// Slot returns the actor in slot, or nil if vacant.
func (r *Registry) Slot(side content.Side, slot int) *actors.Actor {
	i := sideIndex(side)
	if i < 0 || slot < 0 || slot >= r.maxOnMap {
		return nil
	}
	return r.onMap[i][slot]
}

// VacantSlot returns the lowest vacant slot, or -1 when the map is full.
func (r *Registry) VacantSlot(side content.Side) int {
	i := sideIndex(side)
	if i < 0 {
		return -1
	}
	for slot, a := range r.onMap[i] {
		if a == nil {
			return slot
		}
	}
	return -1
}

// IsOnMap reports whether a currently occupies a slot.
func (r *Registry) IsOnMap(a *actors.Actor) bool {
	return r.actors[a.ID] == a && r.where[a.ID] == colMap
}

// IsInReserve reports whether a currently waits in the reserve pool.
func (r *Registry) IsInReserve(a *actors.Actor) bool {
	return r.actors[a.ID] == a && r.where[a.ID] == colReserve
}

// RecruitPool returns a snapshot of the side's recruit pool at level.
func (r *Registry) RecruitPool(side content.Side, level int) []*actors.Actor {
	i := sideIndex(side)
	if i < 0 || level < 1 || level > 3 {
		return nil
	}
	return snapshot(r.recruit[i][level-1])
}

// Reserve returns a snapshot of the side's reserve pool.
func (r *Registry) Reserve(side content.Side) []*actors.Actor {
	if i := sideIndex(side); i >= 0 {
		return snapshot(r.reserve[i])
	}
	return nil
}

// HQ returns a snapshot of the side's HQ pool.
func (r *Registry) HQ(side content.Side) []*actors.Actor {
	if i := sideIndex(side); i >= 0 {
		return snapshot(r.hq[i])
	}
	return nil
}

// Departed returns a snapshot of the side's dismissed, resigned and killed
// actors.
func (r *Registry) Departed(side content.Side) []*actors.Actor {
	if i := sideIndex(side); i >= 0 {
		return snapshot(r.departed[i])
	}
	return nil
}

// Len returns the number of roster actors, players excluded.
func (r *Registry) Len() int {
	return len(r.actors)
}

// ForgetSecret removes a revealed secret from every live holder: both
// players and every actor not yet departed. Returns how many lost it.
func (r *Registry) ForgetSecret(id actors.SecretID) int {
	n := 0
	for _, p := range r.players {
		if p != nil && p.ForgetSecret(id) {
			n++
		}
	}
	for aid, a := range r.actors {
		if r.where[aid] == colDeparted {
			continue
		}
		if a.ForgetSecret(id) {
			n++
		}
	}
	return n
}

// SetRelation links two on-map actors of the same side.
func (r *Registry) SetRelation(a, b *actors.Actor, kind RelationKind, cooldown int) error {
	if !r.IsOnMap(a) || !r.IsOnMap(b) {
		return fmt.Errorf("relation %d-%d: %w", a.ID, b.ID, ErrNotOnMap)
	}
	if a.Side != b.Side {
		return fmt.Errorf("relation %d-%d: %w", a.ID, b.ID, ErrUnknownSide)
	}
	return r.Relations(a.Side).Set(a.SlotID, b.SlotID, kind, cooldown)
}
