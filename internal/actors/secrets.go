package actors

import "github.com/talgya/resistance-core/internal/content"

// SecretID identifies a live secret instance.
type SecretID int

// Secret is a player secret in play. Holders share the same pointer.
type Secret struct {
	ID           SecretID
	Template     content.SecretTemplate
	Side         content.Side
	GainedTurn   int // turn the player acquired it
	Revealed     bool
	RevealedTurn int
	RevealedBy   ActorID
}

// Name returns the template name.
func (s *Secret) Name() string {
	return s.Template.Name
}

// KnowsSecret reports whether the actor holds the secret.
func (a *Actor) KnowsSecret(id SecretID) bool {
	for _, s := range a.Secrets {
		if s.ID == id {
			return true
		}
	}
	return false
}

// LearnSecret adds the secret. Returns false if already known.
func (a *Actor) LearnSecret(s *Secret) bool {
	if a.KnowsSecret(s.ID) {
		return false
	}
	a.Secrets = append(a.Secrets, s)
	return true
}

// ForgetSecret drops the secret. Returns false if not known.
func (a *Actor) ForgetSecret(id SecretID) bool {
	for i, s := range a.Secrets {
		if s.ID == id {
			a.Secrets = append(a.Secrets[:i], a.Secrets[i+1:]...)
			return true
		}
	}
	return false
}

// OldestSecret returns the secret the actor learned first, or nil. This is
// the secret given up by both a blackmail reveal and an unhappy reveal.
func (a *Actor) OldestSecret() *Secret {
	if len(a.Secrets) == 0 {
		return nil
	}
	return a.Secrets[0]
}
