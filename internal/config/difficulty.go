package config

import (
	"math"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Presets maps each level to its multipliers.
var Presets = map[core.Level]core.Difficulty{
	core.LevelEasy:   {Level: core.LevelEasy, SpeedMultiplier: 0.75, TimeMultiplier: 1.5},
	core.LevelMedium: core.Medium,
	core.LevelHard:   {Level: core.LevelHard, SpeedMultiplier: 1.5, TimeMultiplier: 0.75},
}

// Lookup returns the preset for a level name. Unknown names get medium.
func Lookup(name string) core.Difficulty {
	level, _ := core.ParseLevel(name)
	return ForLevel(level)
}

// ForLevel returns the preset for level, medium when it has none.
func ForLevel(level core.Level) core.Difficulty {
	if d, ok := Presets[level]; ok {
		return d
	}
	return core.Medium
}

// Ramp calculates the in-run speed factor from score or elapsed ticks.
type Ramp struct {
	cfg RampConfig
}

// NewRamp creates a ramp from its configuration.
func NewRamp(cfg RampConfig) Ramp {
	return Ramp{cfg: cfg}
}

// Progress returns how far the run is along the ramp, in [0, 1].
func (r Ramp) Progress(score, ticks int) float64 {
	maxAt := float64(r.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch r.cfg.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return 0
	}
	return clampF(progress, 0.0, 1.0)
}

// Factor returns the speed factor, from 1 up to 1 + SpeedBonus.
func (r Ramp) Factor(score, ticks int) float64 {
	return 1.0 + r.Progress(score, ticks)*r.cfg.SpeedBonus
}

// Interval shortens baseTicks by the current factor, never below minTicks.
func (r Ramp) Interval(baseTicks, minTicks, score, ticks int) int {
	v := int(float64(baseTicks)/r.Factor(score, ticks) + 0.5)
	return max(v, minTicks, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
