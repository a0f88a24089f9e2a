// Management actions the player (or the AI standing in for them) takes on
// their subordinates between turns.

package engine

import (
	"fmt"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
	"github.com/talgya/resistance-core/internal/roster"
)

// ManageResult is the outcome of a management action. A refused action
// (not enough renown, wrong state) has Done false and says why in Text.
type ManageResult struct {
	Done bool
	Cost int
	Text string
}

func refuse(format string, args ...any) ManageResult {
	return ManageResult{Text: fmt.Sprintf(format, args...)}
}

// Dismiss lets an on-map or reserve actor go for good, for a renown fee.
func (s *Simulation) Dismiss(a *actors.Actor) (ManageResult, error) {
	return s.removeForRenown(a, s.Tuning.DismissRenown, actors.StatusDismissed, "dismissed")
}

// Dispose has an on-map or reserve actor quietly killed, for a renown fee.
func (s *Simulation) Dispose(a *actors.Actor) (ManageResult, error) {
	return s.removeForRenown(a, s.Tuning.DisposeRenown, actors.StatusKilled, "disposed of")
}

func (s *Simulation) removeForRenown(a *actors.Actor, base int, kind actors.Status, verb string) (ManageResult, error) {
	if !s.Registry.IsOnMap(a) && !s.Registry.IsInReserve(a) {
		return ManageResult{}, fmt.Errorf("%s %d: %w", verb, a.ID, roster.ErrNotInPool)
	}
	p := s.player(a.Side)
	if p == nil {
		return ManageResult{}, fmt.Errorf("%s %d: %w", verb, a.ID, ErrNoPlayer)
	}

	cost, why := actors.ManageRenownCost(a, base, s.Tuning.ManageSecretRenown)
	if p.Renown < cost {
		return refuse("%s can't be %s: you need %d Renown and have %d (%s)", a.Name, verb, cost, p.Renown, why), nil
	}
	if err := s.Registry.Depart(a, kind); err != nil {
		return ManageResult{}, fmt.Errorf("%s %d: %w", verb, a.ID, err)
	}
	p.Renown -= cost
	if kind == actors.StatusKilled {
		s.StatsFor(a.Side).Kills++
	} else {
		s.StatsFor(a.Side).Dismissals++
	}
	a.AddHistory(s.Turn, s.World.CurrentNode(a.Side), verb)

	text := fmt.Sprintf("%s has been %s for %d Renown (%s)", a.Name, verb, cost, why)
	s.emit(a.Side, a.ID, CategoryManage, text)
	return ManageResult{Done: true, Cost: cost, Text: text}, nil
}

// LieLow sends a Resistance actor into hiding to recover Invisibility. Only
// one actor at a time may start lying low until the shared timer runs out.
func (s *Simulation) LieLow(a *actors.Actor) (ManageResult, error) {
	if a.Side != content.SideResistance {
		return refuse("only the Resistance can lie low"), nil
	}
	if !s.Registry.IsOnMap(a) {
		return ManageResult{}, fmt.Errorf("lie low %d: %w", a.ID, roster.ErrNotOnMap)
	}
	switch {
	case a.Status() != actors.StatusActive:
		return refuse("%s is not available", a.Name), nil
	case s.LieLowTimer > 0:
		return refuse("Nobody can lie low for another %s", turnsLeft(s.LieLowTimer)), nil
	case a.Invisibility() >= s.bounds.Max:
		return refuse("%s is already as invisible as they can be", a.Name), nil
	}

	a.State = actors.Inactive{Reason: actors.InactiveLieLow}
	a.IsLieLowFirstTurn = true
	s.LieLowTimer = s.Tuning.LieLowTimer
	a.AddHistory(s.Turn, s.World.CurrentNode(a.Side), "lie low")

	text := fmt.Sprintf("%s is lying low", a.Name)
	s.emit(a.Side, a.ID, CategoryManage, text)
	return ManageResult{Done: true, Text: text}, nil
}

// GiveStressLeave rests a stressed actor for a turn at a flat renown cost.
func (s *Simulation) GiveStressLeave(a *actors.Actor) (ManageResult, error) {
	if !s.Registry.IsOnMap(a) {
		return ManageResult{}, fmt.Errorf("stress leave %d: %w", a.ID, roster.ErrNotOnMap)
	}
	p := s.player(a.Side)
	if p == nil {
		return ManageResult{}, fmt.Errorf("stress leave %d: %w", a.ID, ErrNoPlayer)
	}
	switch {
	case a.Status() != actors.StatusActive:
		return refuse("%s is not available", a.Name), nil
	case !a.HasCondition(content.CondStressed):
		return refuse("%s isn't stressed", a.Name), nil
	case p.Renown < s.Tuning.StressLeaveRenown:
		return refuse("Stress leave costs %d Renown and you have %d", s.Tuning.StressLeaveRenown, p.Renown), nil
	}

	p.Renown -= s.Tuning.StressLeaveRenown
	a.State = actors.Inactive{Reason: actors.InactiveStressLeave}
	a.IsStressLeave = true

	text := fmt.Sprintf("%s is on stress leave", a.Name)
	s.emit(a.Side, a.ID, CategoryManage, text)
	return ManageResult{Done: true, Cost: s.Tuning.StressLeaveRenown, Text: text}, nil
}

// SendToReserve moves an on-map actor to the reserve pool and starts their
// unhappy timer.
func (s *Simulation) SendToReserve(a *actors.Actor) (ManageResult, error) {
	if !s.Registry.IsOnMap(a) {
		return ManageResult{}, fmt.Errorf("send %d to reserve: %w", a.ID, roster.ErrNotOnMap)
	}
	if a.Status() != actors.StatusActive {
		return refuse("%s is not available", a.Name), nil
	}
	if err := s.Registry.AddToReserve(a); err != nil {
		return ManageResult{}, fmt.Errorf("send %d to reserve: %w", a.ID, err)
	}
	a.UnhappyTimer = s.unhappyTimerFor(a)

	text := fmt.Sprintf("%s has been sent to the reserve pool", a.Name)
	s.emit(a.Side, a.ID, CategoryManage, text)
	return ManageResult{Done: true, Text: text}, nil
}

// ActivateFromReserve puts a reserve actor back on the map in the lowest
// vacant slot. Their unhappiness resets.
func (s *Simulation) ActivateFromReserve(a *actors.Actor) (ManageResult, error) {
	if !s.Registry.IsInReserve(a) {
		return ManageResult{}, fmt.Errorf("activate %d: %w", a.ID, roster.ErrNotInPool)
	}
	slot := s.Registry.VacantSlot(a.Side)
	if slot < 0 {
		return refuse("There is no room on the map for %s", a.Name), nil
	}
	if err := s.Registry.AddToMap(a, slot); err != nil {
		return ManageResult{}, fmt.Errorf("activate %d: %w", a.ID, err)
	}
	a.RemoveCondition(content.CondUnhappy)
	a.UnhappyTimer = 0
	a.IsPromised = false
	a.IsReassured = false
	a.IsComplaining = false
	a.IsNewRecruit = false

	text := fmt.Sprintf("%s is back in action", a.Name)
	s.emit(a.Side, a.ID, CategoryManage, text)
	return ManageResult{Done: true, Text: text}, nil
}

// TransferToHQ moves an on-map or reserve actor into the HQ hierarchy.
func (s *Simulation) TransferToHQ(a *actors.Actor) (ManageResult, error) {
	if !s.Registry.IsOnMap(a) && !s.Registry.IsInReserve(a) {
		return ManageResult{}, fmt.Errorf("transfer %d to hq: %w", a.ID, roster.ErrNotInPool)
	}
	if err := s.Registry.AddToHQ(a); err != nil {
		return ManageResult{}, fmt.Errorf("transfer %d to hq: %w", a.ID, err)
	}
	text := fmt.Sprintf("%s has joined HQ", a.Name)
	s.emit(a.Side, a.ID, CategoryManage, text)
	return ManageResult{Done: true, Text: text}, nil
}

// Reassure buys a reserve actor some patience once.
func (s *Simulation) Reassure(a *actors.Actor) (ManageResult, error) {
	if !s.Registry.IsInReserve(a) {
		return ManageResult{}, fmt.Errorf("reassure %d: %w", a.ID, roster.ErrNotInPool)
	}
	if a.IsReassured {
		return refuse("%s has heard it all before", a.Name), nil
	}
	a.IsReassured = true
	a.Counters.TimesReassured++
	a.UnhappyTimer += max(s.Tuning.UnhappyTimerBase/2, 1)
	a.RemoveCondition(content.CondUnhappy)

	text := fmt.Sprintf("%s has been reassured and will wait another %s", a.Name, turnsLeft(a.UnhappyTimer))
	s.emit(a.Side, a.ID, CategoryManage, text)
	return ManageResult{Done: true, Text: text}, nil
}

// Promise buys a reserve actor a full timer once. Broken promises hurt: a
// promised actor loses Motivation for sure once the timer runs out.
func (s *Simulation) Promise(a *actors.Actor) (ManageResult, error) {
	if !s.Registry.IsInReserve(a) {
		return ManageResult{}, fmt.Errorf("promise %d: %w", a.ID, roster.ErrNotInPool)
	}
	if a.IsPromised {
		return refuse("%s is still waiting on your last promise", a.Name), nil
	}
	a.IsPromised = true
	a.Counters.TimesPromised++
	a.UnhappyTimer += s.Tuning.UnhappyTimerBase
	a.RemoveCondition(content.CondUnhappy)

	text := fmt.Sprintf("%s has been promised a place and will wait %s", a.Name, turnsLeft(a.UnhappyTimer))
	s.emit(a.Side, a.ID, CategoryManage, text)
	return ManageResult{Done: true, Text: text}, nil
}

// LetGo returns a new recruit to the recruit pool before their first turn
// in reserve ends.
func (s *Simulation) LetGo(a *actors.Actor) (ManageResult, error) {
	if !s.Registry.IsInReserve(a) {
		return ManageResult{}, fmt.Errorf("let go %d: %w", a.ID, roster.ErrNotInPool)
	}
	if !a.IsNewRecruit {
		return refuse("%s has been with you too long to simply let go", a.Name), nil
	}
	if err := s.Registry.AddToRecruitPool(a); err != nil {
		return ManageResult{}, fmt.Errorf("let go %d: %w", a.ID, err)
	}
	a.IsNewRecruit = false
	a.UnhappyTimer = 0

	text := fmt.Sprintf("%s has been let go", a.Name)
	s.emit(a.Side, a.ID, CategoryManage, text)
	return ManageResult{Done: true, Text: text}, nil
}

// Capture takes an on-map actor into custody for the configured time.
func (s *Simulation) Capture(a *actors.Actor) error {
	if !s.Registry.IsOnMap(a) {
		return fmt.Errorf("capture %d: %w", a.ID, roster.ErrNotOnMap)
	}
	a.State = actors.Captured{Timer: s.Tuning.CaptureTimer}
	s.emitf(a.Side, a.ID, CategoryStatus, "%s has been captured", a.Name)
	return nil
}

// GiveGear hands an on-map or reserve actor a piece of gear. An actor
// carries at most one.
func (s *Simulation) GiveGear(a *actors.Actor, gear string) (ManageResult, error) {
	if !s.Registry.IsOnMap(a) && !s.Registry.IsInReserve(a) {
		return ManageResult{}, fmt.Errorf("give gear to %d: %w", a.ID, roster.ErrNotInPool)
	}
	if gear == "" {
		return refuse("there is nothing to hand over"), nil
	}
	if a.Gear != "" {
		return refuse("%s already carries %s", a.Name, a.Gear), nil
	}
	a.Gear = gear
	a.AddHistory(s.Turn, s.World.CurrentNode(a.Side), "given "+gear)
	text := fmt.Sprintf("%s now carries %s", a.Name, gear)
	s.emit(a.Side, a.ID, CategoryManage, text)
	return ManageResult{Done: true, Text: text}, nil
}

// TakeGear takes back whatever gear an actor carries.
func (s *Simulation) TakeGear(a *actors.Actor) (ManageResult, error) {
	if !s.Registry.IsOnMap(a) && !s.Registry.IsInReserve(a) {
		return ManageResult{}, fmt.Errorf("take gear from %d: %w", a.ID, roster.ErrNotInPool)
	}
	if a.Gear == "" {
		return refuse("%s isn't carrying anything", a.Name), nil
	}
	gear := a.Gear
	a.Gear = ""
	text := fmt.Sprintf("%s hands back %s", a.Name, gear)
	s.emit(a.Side, a.ID, CategoryManage, text)
	return ManageResult{Done: true, Text: text}, nil
}

// TurnTraitor has the Authority turn an on-map Resistance actor into an
// informant. Only the Authority hears about it.
func (s *Simulation) TurnTraitor(a *actors.Actor) (ManageResult, error) {
	if a.Side != content.SideResistance {
		return ManageResult{}, fmt.Errorf("turn %d: %w", a.ID, ErrWrongSide)
	}
	if !s.Registry.IsOnMap(a) {
		return ManageResult{}, fmt.Errorf("turn %d: %w", a.ID, roster.ErrNotOnMap)
	}
	if a.IsTraitor {
		return refuse("%s already reports to you", a.Name), nil
	}
	a.IsTraitor = true
	text := fmt.Sprintf("%s now reports to you", a.Name)
	s.emit(content.SideAuthority, a.ID, CategoryBetrayal, text)
	return ManageResult{Done: true, Text: text}, nil
}

// MotivationResult reports a ChangeMotivation call.
type MotivationResult struct {
	Value    int
	Conflict *ConflictResult // set when the change triggered a conflict

	Partner         *actors.Actor // friend or enemy who felt it too
	PartnerConflict *ConflictResult
}

// ChangeMotivation shifts an actor's Motivation. Dropping below the floor
// triggers a relationship conflict instead. A friend shifts by one the same
// way, an enemy the opposite way; their shift doesn't propagate further.
func (s *Simulation) ChangeMotivation(a *actors.Actor, delta int, reason string) MotivationResult {
	side, slot := a.Side, a.SlotID
	onMap := s.Registry.IsOnMap(a)

	var res MotivationResult
	res.Value, res.Conflict = s.shiftMotivation(a, delta, reason)

	if delta == 0 || !onMap {
		return res
	}
	rel, ok := s.Registry.Relations(side).Get(slot)
	if !ok {
		return res
	}
	partner := s.Registry.Slot(side, rel.Other)
	if partner == nil {
		return res
	}
	shift := 1
	if delta < 0 {
		shift = -1
	}
	if rel.Kind == roster.RelationEnemy {
		shift = -shift
	}
	res.Partner = partner
	_, res.PartnerConflict = s.shiftMotivation(partner, shift, fmt.Sprintf("%s of %s", rel.Kind, a.Name))
	return res
}

func (s *Simulation) shiftMotivation(a *actors.Actor, delta int, reason string) (int, *ConflictResult) {
	if a.Motivation()+delta < s.bounds.Min {
		a.SetDatapoint(actors.DatapointMotivation, s.bounds.Min, s.bounds)
		c := s.ProcessActorConflict(a)
		return a.Motivation(), &c
	}
	v := a.AdjustDatapoint(actors.DatapointMotivation, delta, s.bounds)
	if delta != 0 {
		s.emitf(a.Side, a.ID, CategoryManage, "%s Motivation %+d (%s), now %d", a.Name, delta, reason, v)
	}
	return v, nil
}
