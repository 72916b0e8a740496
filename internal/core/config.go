package core

import "strings"

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW    int        // Screen width in cells
	ScreenH    int        // Screen height in cells
	FrameRate  int        // Display frames per second (default 60)
	Seed       int64      // RNG seed, 0 means the platform picks one
	Difficulty Difficulty // Preset applied at the next start
	ConfigPath string     // Custom game config file, empty for the search path
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		FrameRate:  60,
		Difficulty: Medium,
	}
}

// Level names a difficulty preset.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Levels lists the presets in display order.
var Levels = []Level{LevelEasy, LevelMedium, LevelHard}

// ParseLevel normalizes s to a known level. The second result is false
// when s is not recognised; the returned level is then LevelMedium.
func ParseLevel(s string) (Level, bool) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelEasy:
		return LevelEasy, true
	case LevelMedium, "normal":
		return LevelMedium, true
	case LevelHard:
		return LevelHard, true
	}
	return LevelMedium, false
}

// Next returns the level after l, wrapping from hard to easy.
func (l Level) Next() Level {
	for i, v := range Levels {
		if v == l {
			return Levels[(i+1)%len(Levels)]
		}
	}
	return LevelMedium
}

// Difficulty scales the base constants of a game.
// SpeedMultiplier applies to movement speeds and spawn rates, TimeMultiplier
// to time limits and visibility windows.
type Difficulty struct {
	Level           Level
	SpeedMultiplier float64
	TimeMultiplier  float64
}

// Medium is the neutral preset; unknown levels fall back to it.
var Medium = Difficulty{Level: LevelMedium, SpeedMultiplier: 1, TimeMultiplier: 1}

// Speed scales a speed-like value.
func (d Difficulty) Speed(base float64) float64 {
	return base * d.speed()
}

// Interval scales a tick interval inversely to speed, never below 1.
func (d Difficulty) Interval(baseTicks int) int {
	return max(1, int(float64(baseTicks)/d.speed()+0.5))
}

// Duration scales a tick count by the time multiplier, never below 1.
func (d Difficulty) Duration(baseTicks int) int {
	t := d.TimeMultiplier
	if t <= 0 {
		t = 1
	}
	return max(1, int(float64(baseTicks)*t+0.5))
}

func (d Difficulty) speed() float64 {
	if d.SpeedMultiplier <= 0 {
		return 1
	}
	return d.SpeedMultiplier
}

// ScoreOrder tells the score store which direction is an improvement.
type ScoreOrder int

const (
	// HigherIsBetter is used by point-based games.
	HigherIsBetter ScoreOrder = iota
	// LowerIsBetter is used by time-based games (seconds to solve).
	LowerIsBetter
)

// Improves reports whether next strictly improves on prev.
func (o ScoreOrder) Improves(next, prev int) bool {
	if o == LowerIsBetter {
		return next < prev
	}
	return next > prev
}

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Score    int
	Phase    Phase
	Lives    int // -1 when the game has no lives
	TimeLeft int // ticks remaining, -1 when the game has no timer
	Won      bool
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether the run is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// Sound names a sound cue emitted by a game. The platform maps it onto the
// active audio source.
type Sound string

// Sound cues common to most games. Games may emit their own names too.
const (
	SoundStart    Sound = "start"
	SoundScore    Sound = "score"
	SoundHit      Sound = "hit"
	SoundMiss     Sound = "miss"
	SoundLifeLost Sound = "life_lost"
	SoundGameOver Sound = "game_over"
	SoundWin      Sound = "win"
	SoundMove     Sound = "move"
)

// StepResult is returned by Game.Step after each fixed update.
type StepResult struct {
	State  GameState
	Sounds []Sound
}
