package main

import (
	"log/slog"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
	"github.com/talgya/resistance-core/internal/engine"
)

// manageSide stands in for a player between turns: rest the stressed, kit
// out the empty-handed, bring waiting actors back, recruit into empty slots,
// and reassure the unhappy.
// Both sides use it; only message delivery differs for the human side.
func manageSide(sim *engine.Simulation, side content.Side) {
	reg := sim.Registry

	for _, a := range reg.OnMap(side) {
		if a.Status() != actors.StatusActive || !a.HasCondition(content.CondStressed) {
			continue
		}
		var res engine.ManageResult
		var err error
		if side == content.SideResistance && a.Invisibility() < sim.Bounds().Max {
			res, err = sim.LieLow(a)
		}
		if err == nil && !res.Done {
			res, err = sim.GiveStressLeave(a)
		}
		logAction(side, a, "rest", res, err)
	}

	for _, a := range reg.OnMap(side) {
		if a.Gear == "" && a.Arc.PreferredGear != "" {
			res, err := sim.GiveGear(a, a.Arc.PreferredGear)
			logAction(side, a, "gear", res, err)
		}
	}

	for _, a := range reg.Reserve(side) {
		switch {
		case reg.VacantSlot(side) >= 0:
			res, err := sim.ActivateFromReserve(a)
			logAction(side, a, "activate", res, err)
		case a.HasCondition(content.CondUnhappy) && !a.IsReassured:
			res, err := sim.Reassure(a)
			logAction(side, a, "reassure", res, err)
		}
	}

	if reg.VacantSlot(side) < 0 {
		return
	}
	kind := engine.RecruitResistancePlayer
	if side == content.SideAuthority {
		kind = engine.RecruitAuthority
	}
	sim.Recruiter.BeginAction()
	if offer := sim.Recruiter.Offer(engine.RecruitContext{Kind: kind}, 1); len(offer) > 0 {
		res, err := sim.ConfirmRecruit(offer[0])
		logAction(side, offer[0], "recruit", res, err)
	}
}

func logAction(side content.Side, a *actors.Actor, action string, res engine.ManageResult, err error) {
	switch {
	case err != nil:
		slog.Error("management action failed", "side", side, "actor", a.ID, "action", action, "error", err)
	case res.Done:
		slog.Debug("management action", "side", side, "actor", a.ID, "action", action, "cost", res.Cost)
	}
}
