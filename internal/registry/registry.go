// Package registry provides a global registry for game factories and the
// hub catalog. Games register themselves in init() functions, allowing the
// platform to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered id.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, audio, storage and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake", "tetris").
	// Used for CLI commands and score storage keys.
	ID() string

	// Title returns a human-readable name for display (e.g., "Space Invaders").
	Title() string

	// Reset constructs the game in the idle phase.
	// The RuntimeConfig provides screen dimensions, RNG seed and difficulty.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Fire, Pause, etc.).
	// Returns the current game state and the sound cues of this tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// It must not change the game state.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// SetDifficulty selects the preset applied at the next start.
	// It fails with core.ErrDifficultyLocked while a run is in progress.
	SetDifficulty(d core.Difficulty) error

	// ScoreOrder tells whether higher or lower scores are better.
	ScoreOrder() core.ScoreOrder
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Order core.ScoreOrder
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	g := f()
	infos[id] = GameInfo{ID: id, Title: g.Title(), Order: g.ScoreOrder()}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error wrapping ErrUnknownGame if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
