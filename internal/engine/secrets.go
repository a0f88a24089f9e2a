package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
)

// GrantSecret gives side's player a new secret from the named template.
func (s *Simulation) GrantSecret(side content.Side, name string) (*actors.Secret, error) {
	tmpl, ok := s.Catalog.Secret(name)
	if !ok {
		return nil, fmt.Errorf("grant %q: %w", name, ErrUnknownSecret)
	}
	if !tmpl.Side.Matches(side) {
		return nil, fmt.Errorf("grant %q to %s: %w", name, side, ErrWrongSide)
	}
	p := s.player(side)
	if p == nil {
		return nil, fmt.Errorf("grant %q to %s: %w", name, side, ErrNoPlayer)
	}

	s.nextSecretID++
	sec := &actors.Secret{
		ID:         s.nextSecretID,
		Template:   tmpl,
		Side:       side,
		GainedTurn: s.Turn,
	}
	p.LearnSecret(sec)
	return sec, nil
}

// RevealSecret makes a secret public: its effects land on the player and
// every live holder forgets it.
func (s *Simulation) RevealSecret(by *actors.Actor, sec *actors.Secret) {
	if sec.Revealed {
		return
	}
	sec.Revealed = true
	sec.RevealedTurn = s.Turn
	sec.RevealedBy = by.ID
	s.StatsFor(sec.Side).SecretsRevealed++
	s.emitf(sec.Side, by.ID, CategorySecret, "%s has revealed your secret: %s", by.Name, sec.Template.Description)

	node := s.World.CurrentNode(sec.Side)
	ctx := EffectContext{Side: sec.Side, Turn: s.Turn, Source: "secret " + sec.Name()}
	for _, eff := range sec.Template.Effects {
		res := s.Effects.ApplyEffect(eff, node, ctx, by)
		if res.Err {
			slog.Error("secret effect failed", "secret", sec.Name(), "effect", eff, "turn", s.Turn)
			continue
		}
		if res.Top != "" {
			s.emit(sec.Side, by.ID, CategorySecret, res.Top)
		}
	}

	n := s.Registry.ForgetSecret(sec.ID)
	slog.Debug("secret revealed", "secret", sec.Name(), "by", by.ID, "holders", n, "turn", s.Turn)
}
