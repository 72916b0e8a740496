// Package audio plays the short synthesized cues games emit.
package audio

import (
	"errors"
	"sync"
)

// ErrUnknownSound is returned when a cue name has no tone table entry.
var ErrUnknownSound = errors.New("audio: unknown sound")

// Source is what the host needs from an audio backend.
type Source interface {
	Play(name string)
	SetVolume(v float64)
	Volume() float64
}

// DefaultVolume is the initial volume of a new source.
const DefaultVolume = 0.5

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Silent implements Source without producing output. It still tracks the
// volume so the HUD can show it.
type Silent struct {
	mu     sync.Mutex
	volume float64
	set    bool
}

// Play does nothing.
func (s *Silent) Play(string) {}

// SetVolume stores v clamped to [0, 1].
func (s *Silent) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = clampVolume(v)
	s.set = true
}

// Volume returns the stored volume.
func (s *Silent) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return DefaultVolume
	}
	return s.volume
}
