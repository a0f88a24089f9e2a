// Command turnsim runs the actor turn simulation headless: both sides are
// seeded, driven for a number of turns and every roll is journaled.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/config"
	"github.com/talgya/resistance-core/internal/content"
	"github.com/talgya/resistance-core/internal/engine"
	"github.com/talgya/resistance-core/internal/entropy"
	"github.com/talgya/resistance-core/internal/persistence"
	"github.com/talgya/resistance-core/internal/roster"
)

// logNotifier prints player-facing messages as they happen.
type logNotifier struct{}

func (logNotifier) Notify(e engine.Event) {
	slog.Info(e.Description, "turn", e.Turn, "side", e.Side, "category", e.Category)
}

func main() {
	if err := run(); err != nil {
		slog.Error("turnsim failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLevel(settings.LogLevel),
	})))

	tuning, err := config.LoadTuning(settings.TuningPath)
	if err != nil {
		return err
	}
	human, ok := content.ParseSide(settings.HumanSide)
	if !ok {
		return fmt.Errorf("unknown human side %q", settings.HumanSide)
	}

	seed := settings.Seed
	if seed == 0 {
		if seed, err = entropy.NewSeed(); err != nil {
			return err
		}
	}

	// ── Journal ───────────────────────────────────────────────────────
	if dir := filepath.Dir(settings.DBPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	journal, err := persistence.Open(settings.DBPath)
	if err != nil {
		return err
	}
	defer journal.Close()
	runID, err := journal.StartRun(seed, human.String())
	if err != nil {
		return err
	}

	// ── Roster ────────────────────────────────────────────────────────
	catalog, err := content.Load(content.DefaultDefinitions(), engine.EffectNames()...)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	stream := entropy.NewSeeded(seed)
	bounds := actors.Bounds{Min: tuning.MinStatValue, Max: tuning.MaxStatValue}
	spawner := actors.NewSpawner(stream, catalog, bounds, tuning.MaxOnMapActors, seed)

	reg := roster.New(tuning.MaxOnMapActors)
	for _, side := range content.Sides {
		p := spawner.CreatePlayer(side, side.String()+" Command")
		if err := reg.SetPlayer(p, side == human); err != nil {
			return err
		}
	}

	sim, err := engine.NewSimulation(engine.Config{
		Registry: reg,
		Catalog:  catalog,
		Tuning:   tuning,
		Dice:     stream,
		Spawner:  spawner,
		Notifier: logNotifier{},
		Driving:  human,
	})
	if err != nil {
		return err
	}
	for _, side := range content.Sides {
		if err := sim.SeedRecruitPools(side); err != nil {
			return err
		}
		if err := sim.SeedMap(side, tuning.MaxOnMapActors-1); err != nil {
			return err
		}
		if secrets := catalog.SecretsFor(side); len(secrets) > 0 {
			if _, err := sim.GrantSecret(side, secrets[0].Name); err != nil {
				return err
			}
		}
	}
	if err := sim.Validate(); err != nil {
		return fmt.Errorf("seeded roster: %w", err)
	}
	slog.Info("roster ready", "run", runID, "seed", seed, "actors", reg.Len(), "human", human)

	// ── Engine ────────────────────────────────────────────────────────
	eng := engine.NewEngine()
	eng.OnTurn = func(int) {
		for _, side := range content.Sides {
			manageSide(sim, side)
		}
		sim.RunTurn()
	}
	eng.OnAfterTurn = func(turn int) {
		if err := journal.SaveTurn(turn, stream.Drain(), sim.DrainEvents()); err != nil {
			slog.Error("journal save failed", "turn", turn, "error", err)
		}
		if err := sim.Validate(); err != nil {
			slog.Error("roster invariant broken", "turn", turn, "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := eng.Run(ctx, settings.Turns); err != nil {
		slog.Warn("run interrupted", "turn", eng.Turn, "error", err)
	}

	// ── Summary ───────────────────────────────────────────────────────
	for _, side := range content.Sides {
		st := sim.StatsFor(side)
		slog.Info("side summary",
			"side", side,
			"on_map", len(reg.OnMap(side)),
			"reserve", len(reg.Reserve(side)),
			"departed", len(reg.Departed(side)),
			"breakdowns", st.Breakdowns,
			"conflicts", st.Conflicts,
			"resignations", st.Resignations,
			"secrets_revealed", st.SecretsRevealed,
			"renown", reg.Player(side).Renown,
		)
	}
	if err := journal.SaveMeta("turns_run", fmt.Sprintf("%d", eng.Turn)); err != nil {
		slog.Error("journal meta failed", "error", err)
	}
	fmt.Printf("\n%s turns played, %s rolls drawn (run %s, seed %d)\n",
		humanize.Comma(int64(eng.Turn)), humanize.Comma(int64(stream.Len())), runID, seed)
	return nil
}
