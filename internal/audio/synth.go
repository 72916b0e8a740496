package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	attack     = 5 * time.Millisecond
	release    = 30 * time.Millisecond
)

var (
	speakerOnce  sync.Once
	speakerMixer *beep.Mixer
	speakerErr   error
)

// openSpeaker initializes the output device once per process and returns a
// sink that mixes streamers into it.
func openSpeaker() (func(beep.Streamer), error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
		if speakerErr != nil {
			return
		}
		speakerMixer = &beep.Mixer{}
		speaker.Play(speakerMixer)
	})
	if speakerErr != nil {
		return nil, speakerErr
	}
	return func(s beep.Streamer) {
		speaker.Lock()
		speakerMixer.Add(s)
		speaker.Unlock()
	}, nil
}

// Synth renders cues from a tone table with beep oscillators. When no output
// device is available it stays silent; the volume is kept either way.
type Synth struct {
	mu     sync.Mutex
	volume float64
	cues   map[string]Cue
	out    func(beep.Streamer)
	logger *log.Logger
}

// SynthOption configures a Synth.
type SynthOption func(*Synth)

// WithOutput sends rendered cues to out instead of the speaker.
func WithOutput(out func(beep.Streamer)) SynthOption {
	return func(s *Synth) {
		s.out = out
	}
}

// WithSynthLogger sets the logger for playback problems.
func WithSynthLogger(l *log.Logger) SynthOption {
	return func(s *Synth) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSynth creates a synth loaded with the cues of gameID.
func NewSynth(gameID string, opts ...SynthOption) *Synth {
	s := &Synth{
		volume: DefaultVolume,
		cues:   Cues(gameID),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "audio"})
	}
	if s.out == nil {
		out, err := openSpeaker()
		if err != nil {
			// No device: carry on without sound.
			s.logger.Debug("speaker unavailable", "error", err)
		}
		s.out = out
	}
	return s
}

// Enabled reports whether the synth has an output.
func (s *Synth) Enabled() bool {
	return s.out != nil
}

// SetVolume sets the playback volume, clamped to [0, 1].
func (s *Synth) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = clampVolume(v)
}

// Volume returns the playback volume.
func (s *Synth) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Play renders and plays the named cue. Failures are logged.
func (s *Synth) Play(name string) {
	if s.out == nil {
		return
	}
	vol := s.Volume()
	if vol <= 0 {
		return
	}
	st, err := s.Streamer(name, vol)
	if err != nil {
		s.logger.Warn("cannot play sound", "error", err)
		return
	}
	s.out(st)
}

// Streamer renders the named cue at volume vol.
func (s *Synth) Streamer(name string, vol float64) (beep.Streamer, error) {
	cue, ok := s.cues[name]
	if !ok || len(cue) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}

	parts := make([]beep.Streamer, 0, len(cue))
	for _, t := range cue {
		osc := newOscillator(t.Freq, t.Duration, t.Wave, sampleRate)
		parts = append(parts, newEnvelope(osc, t.Duration, attack, release, sampleRate))
	}
	return newVolume(beep.Seq(parts...), clampVolume(vol)), nil
}
