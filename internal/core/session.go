package core

import "errors"

// ErrDifficultyLocked is returned when the difficulty is changed during a run.
var ErrDifficultyLocked = errors.New("core: difficulty cannot change while a game is in progress")

// Phase is the lifecycle state of a game run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Session is the state every game shares: phase, score, the difficulty in
// effect, tick timers and the sound cues emitted during the current step.
// Games embed it and keep their entity state alongside.
//
// Transitions: idle -> playing <-> paused -> gameOver -> idle, and
// gameOver -> playing on restart.
type Session struct {
	phase      Phase
	score      int
	won        bool
	difficulty Difficulty
	Timers     Timers
	sounds     []Sound
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Playing reports whether the simulation should advance.
func (s *Session) Playing() bool {
	return s.phase == PhasePlaying
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// AddScore adds points to the score.
func (s *Session) AddScore(points int) {
	s.score += points
}

// SetScore overwrites the score (time-based games report elapsed seconds).
func (s *Session) SetScore(v int) {
	s.score = v
}

// ResetScore sets the score back to zero. Calling it repeatedly is harmless.
func (s *Session) ResetScore() {
	s.score = 0
}

// Won reports whether the last run ended in a win.
func (s *Session) Won() bool {
	return s.won
}

// Difficulty returns the difficulty applied at the last start, or the one
// that will be applied at the next start while idle.
func (s *Session) Difficulty() Difficulty {
	if s.difficulty.Level == "" {
		return Medium
	}
	return s.difficulty
}

// SetDifficulty selects the preset for the next start. It is rejected while
// a run is playing or paused.
func (s *Session) SetDifficulty(d Difficulty) error {
	if s.phase == PhasePlaying || s.phase == PhasePaused {
		return ErrDifficultyLocked
	}
	s.difficulty = d
	return nil
}

// Idle returns to the start screen and drops all run state.
func (s *Session) Idle() {
	s.phase = PhaseIdle
	s.score = 0
	s.won = false
	s.Timers.Clear()
}

// Start begins a new run from idle or game over. It returns false when a
// run is already in progress.
func (s *Session) Start() bool {
	if s.phase == PhasePlaying || s.phase == PhasePaused {
		return false
	}
	s.phase = PhasePlaying
	s.score = 0
	s.won = false
	s.Timers.Clear()
	s.Emit(SoundStart)
	return true
}

// TogglePause switches between playing and paused. Other phases are unaffected.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhasePlaying:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhasePlaying
	}
}

// End finishes the run. Pending timers are dropped so nothing fires after
// the logical stop.
func (s *Session) End(won bool) {
	if s.phase != PhasePlaying && s.phase != PhasePaused {
		return
	}
	s.phase = PhaseGameOver
	s.won = won
	s.Timers.Clear()
	if won {
		s.Emit(SoundWin)
	} else {
		s.Emit(SoundGameOver)
	}
}

// Emit queues a sound cue for the current step.
func (s *Session) Emit(snd Sound) {
	s.sounds = append(s.sounds, snd)
}

// Control applies the lifecycle actions shared by all games and reports
// whether the simulation should advance this step.
//
//	Confirm/Fire in idle, Confirm/Restart in game over -> start (calls begin)
//	Back in game over                                 -> idle
//	Pause while playing or paused                     -> toggle
func (s *Session) Control(in InputFrame, begin func()) bool {
	switch s.phase {
	case PhaseIdle:
		if in.Has(ActionConfirm) || in.Has(ActionFire) {
			if s.Start() {
				begin()
			}
		}
		return false
	case PhaseGameOver:
		switch {
		case in.Has(ActionRestart) || in.Has(ActionConfirm):
			if s.Start() {
				begin()
			}
		case in.Has(ActionBack):
			s.Idle()
		}
		return false
	}

	if in.Has(ActionPause) {
		s.TogglePause()
	}
	if s.phase != PhasePlaying {
		return false
	}
	s.Timers.Advance()
	return s.phase == PhasePlaying
}

// Result builds the step result and drains queued sound cues.
func (s *Session) Result(lives, timeLeft int) StepResult {
	res := StepResult{State: s.State(lives, timeLeft)}
	if len(s.sounds) > 0 {
		res.Sounds = s.sounds
		s.sounds = nil
	}
	return res
}

// State builds the game state summary.
func (s *Session) State(lives, timeLeft int) GameState {
	return GameState{
		Score:    s.score,
		Phase:    s.phase,
		Lives:    lives,
		TimeLeft: timeLeft,
		Won:      s.won,
	}
}
