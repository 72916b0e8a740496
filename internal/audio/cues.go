package audio

import (
	"maps"
	"time"
)

// Tone is one enveloped note.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// Cue is a sequence of tones played back to back.
type Cue []Tone

func note(freq float64, ms int, wave Wave) Tone {
	return Tone{Freq: freq, Duration: time.Duration(ms) * time.Millisecond, Wave: wave}
}

// Note frequencies (Hz).
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// common cues shared by every game.
var common = map[string]Cue{
	"start":     {note(noteC5, 80, WaveSquare), note(noteE5, 80, WaveSquare), note(noteG5, 120, WaveSquare)},
	"score":     {note(noteE5, 60, WaveSquare), note(noteC6, 90, WaveSquare)},
	"hit":       {note(noteA4, 50, WaveSquare)},
	"miss":      {note(110, 120, WaveSaw)},
	"life_lost": {note(noteG4, 120, WaveSaw), note(noteE4, 120, WaveSaw), note(noteC4, 200, WaveSaw)},
	"game_over": {note(noteE4, 180, WaveTriangle), note(noteC4, 180, WaveTriangle), note(130.81, 360, WaveTriangle)},
	"win":       {note(noteC5, 100, WaveSquare), note(noteE5, 100, WaveSquare), note(noteG5, 100, WaveSquare), note(noteC6, 300, WaveSquare)},
	"move":      {note(880, 20, WaveSine)},
}

// per-game additions and overrides.
var games = map[string]map[string]Cue{
	"snake": {
		"eat": {note(noteC6, 40, WaveSquare)},
	},
	"tetris": {
		"rotate": {note(noteG5, 25, WaveSine)},
		"lock":   {note(noteC4, 40, WaveTriangle)},
		"line":   {note(noteC5, 60, WaveSquare), note(noteG5, 60, WaveSquare), note(noteC6, 120, WaveSquare)},
	},
	"pong": {
		"paddle": {note(noteA4, 30, WaveSquare)},
		"wall":   {note(noteE4, 25, WaveSquare)},
	},
	"breakout": {
		"paddle": {note(noteC5, 30, WaveSquare)},
		"brick":  {note(noteG5, 35, WaveSquare)},
	},
	"invaders": {
		"shoot":   {note(1200, 40, WaveSaw)},
		"explode": {note(0, 120, WaveNoise)},
		"march":   {note(98, 50, WaveSquare)},
	},
	"memory": {
		"flip":  {note(noteE5, 30, WaveSine)},
		"match": {note(noteC5, 70, WaveSine), note(noteG5, 110, WaveSine)},
	},
	"balloon": {
		"pop": {note(0, 60, WaveNoise)},
	},
	"puzzle": {
		"pick": {note(noteG4, 40, WaveSine)},
		"drop": {note(noteC5, 50, WaveSine)},
	},
	"simon": {
		"pad_0": {note(noteE4, 300, WaveTriangle)},
		"pad_1": {note(277.18, 300, WaveTriangle)},
		"pad_2": {note(noteA4, 300, WaveTriangle)},
		"pad_3": {note(164.81, 300, WaveTriangle)},
	},
	"whackamole": {
		"whack": {note(noteC4, 50, WaveSquare), note(noteC5, 50, WaveSquare)},
	},
}

// Cues returns the tone table for gameID: the common cues plus the game's
// own. Unknown ids get the common cues only.
func Cues(gameID string) map[string]Cue {
	out := maps.Clone(common)
	maps.Copy(out, games[gameID])
	return out
}
