package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
)

// emit reports text to side's player. AI-controlled sides only get a debug
// log line; the state change behind the message has already happened.
func (s *Simulation) emit(side content.Side, actorID actors.ActorID, category, text string) {
	if !s.Registry.IsHuman(side) {
		slog.Debug("ai message", "turn", s.Turn, "side", side, "actor", actorID, "category", category, "text", text)
		return
	}
	e := Event{
		Turn:        s.Turn,
		Side:        side.String(),
		ActorID:     int(actorID),
		Category:    category,
		Description: text,
	}
	s.Events = append(s.Events, e)
	if s.Notifier != nil {
		s.Notifier.Notify(e)
	}
}

func (s *Simulation) emitf(side content.Side, actorID actors.ActorID, category, format string, args ...any) {
	s.emit(side, actorID, category, fmt.Sprintf(format, args...))
}
