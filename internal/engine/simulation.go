// Package engine ties the roster, content tables and random stream together
// and runs the per-turn actor state machine.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/config"
	"github.com/talgya/resistance-core/internal/content"
	"github.com/talgya/resistance-core/internal/entropy"
	"github.com/talgya/resistance-core/internal/roster"
)

var (
	ErrMissingDependency = errors.New("simulation missing a dependency")
	ErrNoPlayer          = errors.New("side has no player")
	ErrUnknownSecret     = errors.New("unknown secret")
	ErrWrongSide         = errors.New("definition belongs to the other side")
	ErrUnknownCondition  = errors.New("unknown condition")

	errUnknownReason = errors.New("unknown inactive reason")
)

// Event is a notable occurrence reported to a side's player.
type Event struct {
	Turn        int    `db:"turn" json:"turn"`
	Side        string `db:"side" json:"side"`
	ActorID     int    `db:"actor_id" json:"actor_id"`
	Category    string `db:"category" json:"category"`
	Description string `db:"description" json:"description"`
}

// Event categories.
const (
	CategoryStatus   = "status"
	CategoryHazard   = "hazard"
	CategorySecret   = "secret"
	CategoryConflict = "conflict"
	CategoryReserve  = "reserve"
	CategoryRelation = "relation"
	CategoryManage   = "manage"
	CategoryRecruit  = "recruit"
	CategoryWarning  = "warning"
	CategoryBetrayal = "betrayal"
)

// Notifier receives player-facing events as they happen. Return values are
// never consulted.
type Notifier interface {
	Notify(e Event)
}

// SideStats tallies what happened to one side's actors.
type SideStats struct {
	Breakdowns      int `json:"breakdowns"`
	Resignations    int `json:"resignations"`
	Dismissals      int `json:"dismissals"`
	Kills           int `json:"kills"`
	SecretsLearned  int `json:"secrets_learned"`
	SecretsRevealed int `json:"secrets_revealed"`
	DaysLieLow      int `json:"days_lie_low"`
	Betrayals       int `json:"betrayals"`
	Conflicts       int `json:"conflicts"`
	Recruited       int `json:"recruited"`
}

// Config carries a Simulation's collaborators.
type Config struct {
	Registry *roster.Registry
	Catalog  *content.Catalog
	Tuning   config.Tuning
	Dice     entropy.Dice
	Spawner  *actors.Spawner

	World    World         // nil uses a DefaultWorld
	Effects  EffectApplier // nil uses the built-in effect vocabulary
	Notifier Notifier      // optional

	// Driving is the side processed first each turn.
	Driving content.Side
}

// Simulation holds everything the turn pass reads and mutates.
type Simulation struct {
	Registry *roster.Registry
	Catalog  *content.Catalog
	Tuning   config.Tuning
	Dice     entropy.Dice
	Spawner  *actors.Spawner
	World    World
	Effects  EffectApplier
	Notifier Notifier

	Turn        int
	Driving     content.Side
	LieLowTimer int // process-wide, blocks a new lie low while > 0

	Events    []Event
	Stats     [2]SideStats
	Recruiter *Recruiter

	bounds       actors.Bounds
	nextSecretID actors.SecretID
}

// NewSimulation wires a Simulation from cfg.
func NewSimulation(cfg Config) (*Simulation, error) {
	switch {
	case cfg.Registry == nil:
		return nil, fmt.Errorf("%w: registry", ErrMissingDependency)
	case cfg.Catalog == nil:
		return nil, fmt.Errorf("%w: catalog", ErrMissingDependency)
	case cfg.Dice == nil:
		return nil, fmt.Errorf("%w: dice", ErrMissingDependency)
	case cfg.Spawner == nil:
		return nil, fmt.Errorf("%w: spawner", ErrMissingDependency)
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		Registry: cfg.Registry,
		Catalog:  cfg.Catalog,
		Tuning:   cfg.Tuning,
		Dice:     cfg.Dice,
		Spawner:  cfg.Spawner,
		World:    cfg.World,
		Effects:  cfg.Effects,
		Notifier: cfg.Notifier,
		Driving:  cfg.Driving,
		bounds:   actors.Bounds{Min: cfg.Tuning.MinStatValue, Max: cfg.Tuning.MaxStatValue},
	}
	if s.World == nil {
		s.World = &DefaultWorld{CaptureTimer: cfg.Tuning.CaptureTimer}
	}
	if s.Effects == nil {
		if err := s.Catalog.CheckEffects(EffectNames()); err != nil {
			return nil, fmt.Errorf("content: %w", err)
		}
		s.Effects = &BasicEffects{sim: s}
	}
	if s.Driving != content.SideAuthority {
		s.Driving = content.SideResistance
	}
	s.Recruiter = newRecruiter(s)
	return s, nil
}

// Bounds returns the datapoint range.
func (s *Simulation) Bounds() actors.Bounds {
	return s.bounds
}

// Validate checks the registry invariants against the configured bounds.
func (s *Simulation) Validate() error {
	return s.Registry.Validate(s.bounds)
}

// StatsFor returns the tallies for side.
func (s *Simulation) StatsFor(side content.Side) *SideStats {
	return &s.Stats[sideIndex(side)]
}

// DrainEvents returns the events collected since the last drain.
func (s *Simulation) DrainEvents() []Event {
	out := s.Events
	s.Events = nil
	return out
}

func (s *Simulation) player(side content.Side) *actors.Actor {
	return s.Registry.Player(side)
}

func sideIndex(side content.Side) int {
	if side == content.SideAuthority {
		return 1
	}
	return 0
}

// integrity logs a data-integrity problem. The caller skips the actor.
func (s *Simulation) integrity(op string, a *actors.Actor, err error) {
	slog.Error("skipping actor", "op", op, "turn", s.Turn, "actor", a.ID, "side", a.Side, "error", err)
}

// depart removes a with a terminal status and reports it.
func (s *Simulation) depart(a *actors.Actor, kind actors.Status, why string) bool {
	if err := s.Registry.Depart(a, kind); err != nil {
		s.integrity("depart", a, err)
		return false
	}
	st := s.StatsFor(a.Side)
	switch kind {
	case actors.StatusResigned:
		st.Resignations++
	case actors.StatusKilled:
		st.Kills++
	case actors.StatusDismissed:
		st.Dismissals++
	}
	s.emitf(a.Side, a.ID, CategoryStatus, "%s %s (%s)", a.Name, departVerb(kind), why)
	return true
}

func departVerb(kind actors.Status) string {
	switch kind {
	case actors.StatusResigned:
		return "has resigned"
	case actors.StatusKilled:
		return "has been killed"
	default:
		return "has been dismissed"
	}
}
