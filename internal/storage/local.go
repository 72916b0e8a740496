package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// HighScoreKey is the key of the best score of a game at a level.
func HighScoreKey(gameID string, level core.Level) string {
	return fmt.Sprintf("%s_%s_highscore", gameID, level)
}

// DifficultyKey is the key of the selected level of a game.
func DifficultyKey(gameID string) string {
	return gameID + "_difficulty"
}

// Local stores JSON values over a persistent KV and mirrors every write in
// memory under the same key. A missing or failing KV never blocks a game:
// reads fall back to the default and writes keep the in-memory value.
type Local struct {
	mu     sync.Mutex
	kv     KV
	mem    map[string]string
	logger *log.Logger
}

// NewLocal wraps kv, which may be nil for memory-only storage.
func NewLocal(kv KV, logger *log.Logger) *Local {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "storage"})
	}
	return &Local{
		kv:     kv,
		mem:    make(map[string]string),
		logger: logger,
	}
}

func (l *Local) raw(key string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.mem[key]; ok {
		return v, true
	}
	if l.kv == nil {
		return "", false
	}
	v, ok, err := l.kv.Load(key)
	if err != nil {
		l.logger.Warn("read failed, using default", "key", key, "error", err)
		return "", false
	}
	if ok {
		l.mem[key] = v
	}
	return v, ok
}

// Get decodes the value at key into a T. It returns def when the key is
// missing, unreadable or does not decode.
func Get[T any](l *Local, key string, def T) T {
	v, ok := l.raw(key)
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(v), &out); err != nil {
		l.logger.Warn("corrupt value, using default", "key", key, "error", err)
		return def
	}
	return out
}

// Has reports whether key holds a decodable value.
func (l *Local) Has(key string) bool {
	v, ok := l.raw(key)
	return ok && json.Valid([]byte(v))
}

// GetInt returns the integer at key, or def.
func (l *Local) GetInt(key string, def int) int {
	return Get(l, key, def)
}

// GetString returns the string at key, or def.
func (l *Local) GetString(key, def string) string {
	return Get(l, key, def)
}

// Set stores value as JSON. It returns false when the value cannot be
// encoded or the persistent write fails; in the latter case the value is
// still kept in memory.
func (l *Local) Set(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		l.logger.Error("cannot encode value", "key", key, "error", err)
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.mem[key] = string(data)
	if l.kv == nil {
		return true
	}
	if err := l.kv.Save(key, string(data)); err != nil {
		l.logger.Warn("write failed, keeping value in memory", "key", key, "error", err)
		return false
	}
	return true
}

// HighScore returns the stored best score for gameID at level.
func (l *Local) HighScore(gameID string, level core.Level) (int, bool) {
	key := HighScoreKey(gameID, level)
	if !l.Has(key) {
		return 0, false
	}
	return l.GetInt(key, 0), true
}

// SetHighScore stores score when it strictly improves on the stored value
// in the given order, and reports whether it did. Equal or worse scores
// leave the store untouched.
func (l *Local) SetHighScore(gameID string, level core.Level, score int, order core.ScoreOrder) bool {
	if prev, ok := l.HighScore(gameID, level); ok && !order.Improves(score, prev) {
		return false
	}
	l.Set(HighScoreKey(gameID, level), score)
	return true
}

// Difficulty returns the selected level of gameID, medium when unset or
// unrecognised.
func (l *Local) Difficulty(gameID string) core.Level {
	level, _ := core.ParseLevel(l.GetString(DifficultyKey(gameID), string(core.LevelMedium)))
	return level
}

// SetDifficulty stores the selected level of gameID.
func (l *Local) SetDifficulty(gameID string, level core.Level) bool {
	return l.Set(DifficultyKey(gameID), string(level))
}
