package engine

import (
	"context"
	"log/slog"
)

// Engine is the external turn scheduler: it decides when turns run and
// hands each one to its callbacks.
type Engine struct {
	Turn int // last turn started

	// Callbacks, populated during setup.
	OnTurn      func(turn int) // runs the turn pass
	OnAfterTurn func(turn int) // journaling, summaries
}

// NewEngine creates a scheduler at turn 0.
func NewEngine() *Engine {
	return &Engine{}
}

// Run steps through turns until n have run or ctx is cancelled. A turn in
// progress always completes.
func (e *Engine) Run(ctx context.Context, n int) error {
	slog.Info("turn engine started", "turn", e.Turn, "turns", n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			slog.Info("turn engine stopped", "turn", e.Turn, "reason", err)
			return err
		}
		e.Step()
	}
	slog.Info("turn engine finished", "turn", e.Turn)
	return nil
}

// Step runs exactly one turn.
func (e *Engine) Step() {
	e.Turn++
	if e.OnTurn != nil {
		e.OnTurn(e.Turn)
	}
	if e.OnAfterTurn != nil {
		e.OnAfterTurn(e.Turn)
	}
}
