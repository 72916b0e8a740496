package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreKV(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Load("missing"); err != nil || ok {
		t.Fatalf("Load(missing) = (_, %v, %v), expected (_, false, nil)", ok, err)
	}

	if err := store.Save("snake_medium_highscore", "40"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save("snake_medium_highscore", "90"); err != nil {
		t.Fatalf("Save() overwrite failed: %v", err)
	}

	v, ok, err := store.Load("snake_medium_highscore")
	if err != nil || !ok || v != "90" {
		t.Errorf("Load() = (%q, %v, %v), expected (\"90\", true, nil)", v, ok, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(ScoreEntry{GameID: "snake", Level: "medium", Score: score}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore(ScoreEntry{GameID: "pong", Score: 500}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake", "", core.HigherIsBetter, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].RunID == "" {
		t.Error("SaveScore should generate a run id")
	}

	pong, _ := store.TopScores("pong", "", core.HigherIsBetter, 10)
	if len(pong) != 1 || pong[0].Level != "medium" {
		t.Errorf("pong scores = %v, expected one medium entry", pong)
	}
}

func TestStoreTopScoresLowerIsBetter(t *testing.T) {
	store := openTestStore(t)

	for _, secs := range []int{95, 42, 61} {
		store.SaveScore(ScoreEntry{GameID: "puzzle", Level: "hard", Score: secs})
	}
	store.SaveScore(ScoreEntry{GameID: "puzzle", Level: "easy", Score: 10})

	scores, err := store.TopScores("puzzle", "hard", core.LowerIsBetter, 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 42 || scores[1].Score != 61 {
		t.Errorf("TopScores() = %v, expected [42 61]", scores)
	}

	best, ok, err := store.BestScore("puzzle", "hard", core.LowerIsBetter)
	if err != nil || !ok || best != 42 {
		t.Errorf("BestScore() = (%d, %v, %v), expected (42, true, nil)", best, ok, err)
	}
}

func TestStoreBestScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestScore("tetris", "medium", core.HigherIsBetter)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if ok {
		t.Error("expected no best score for an empty game")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "snake", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "snake", Score: 200})
	store.SaveScore(ScoreEntry{GameID: "pong", Score: 300})

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	snake, _ := store.TopScores("snake", "", core.HigherIsBetter, 10)
	if len(snake) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(snake))
	}
	pong, _ := store.TopScores("pong", "", core.HigherIsBetter, 10)
	if len(pong) != 1 {
		t.Errorf("pong scores should not be affected by clearing snake")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{10, 20, 30} {
		store.SaveScore(ScoreEntry{GameID: "whackamole", Score: s})
	}

	stats, err := store.GetGameStats("whackamole")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.TotalScore != 60 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
