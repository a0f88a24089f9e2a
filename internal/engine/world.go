package engine

import (
	"github.com/talgya/resistance-core/internal/actors"
	"github.com/talgya/resistance-core/internal/content"
)

// World is the slice of the wider game the turn pass consults: node
// positions, the crackdown state, and the capture/detection hooks.
type World interface {
	CurrentNode(side content.Side) int
	SafeNode(side content.Side) int
	SurveillanceCrackdown() bool
	// ReleaseCaptive frees an actor or player whose capture timer ran out.
	ReleaseCaptive(a *actors.Actor)
	// ImmediateDetection fires when a player's Invisibility hits the floor.
	ImmediateDetection(p *actors.Actor)
}

// DefaultWorld is a self-contained World for headless runs and tests.
type DefaultWorld struct {
	Crackdown    bool
	Nodes        [2]int
	Safe         [2]int
	CaptureTimer int // 0 disables capture on detection

	Releases   int
	Detections [2]int
}

func (w *DefaultWorld) CurrentNode(side content.Side) int { return w.Nodes[sideIndex(side)] }
func (w *DefaultWorld) SafeNode(side content.Side) int    { return w.Safe[sideIndex(side)] }
func (w *DefaultWorld) SurveillanceCrackdown() bool       { return w.Crackdown }

// ReleaseCaptive returns the captive to Active.
func (w *DefaultWorld) ReleaseCaptive(a *actors.Actor) {
	w.Releases++
	a.State = actors.Active{}
}

// ImmediateDetection captures the player.
func (w *DefaultWorld) ImmediateDetection(p *actors.Actor) {
	w.Detections[sideIndex(p.Side)]++
	if w.CaptureTimer > 0 {
		p.State = actors.Captured{Timer: w.CaptureTimer}
	}
}
