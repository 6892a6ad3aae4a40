package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// saveScore records a tier-1 run with only a score.
func saveScore(store *Store, gameID string, score int) (int64, error) {
	return store.SaveRun(gameID, Run{Score: score, Tier: 1})
}

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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SetBestScore("flappy", 12); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("flappy")
	if err != nil || best != 12 {
		t.Errorf("BestScore() = %d, %v; want 12", best, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := saveScore(store, "flappy", score); err != nil {
			t.Fatalf("saveScore() failed: %v", err)
		}
	}
	if _, err := saveScore(store, "other", 500); err != nil {
		t.Fatalf("saveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}
	if scores[0].Tier != 1 {
		t.Errorf("saveScore should record tier 1, got %d", scores[0].Tier)
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for the other game, got %d", len(other))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun("flappy", Run{Score: 23, Tier: 3, Duration: 41500 * time.Millisecond})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected a positive id, got %d", id)
	}

	scores, err := store.AllScores("flappy")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 23 || got.Tier != 3 || got.Duration != 41500*time.Millisecond {
		t.Errorf("unexpected run %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	scores, err = store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("non-positive limit should use the default, got %d rows", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveScore(store, "flappy", 100)
	saveScore(store, "flappy", 300)
	saveScore(store, "flappy", 200)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBestScoreIsMonotonic(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("flappy")
	if err != nil || best != 0 {
		t.Fatalf("BestScore() on empty store = %d, %v", best, err)
	}

	steps := []struct {
		score   int
		updated bool
		want    int
	}{
		{5, true, 5},
		{3, false, 5},
		{5, false, 5},
		{9, true, 9},
	}
	for _, s := range steps {
		updated, err := store.SetBestScore("flappy", s.score)
		if err != nil {
			t.Fatalf("SetBestScore(%d) failed: %v", s.score, err)
		}
		if updated != s.updated {
			t.Errorf("SetBestScore(%d) updated = %v, want %v", s.score, updated, s.updated)
		}
		best, err := store.BestScore("flappy")
		if err != nil {
			t.Fatalf("BestScore() failed: %v", err)
		}
		if best != s.want {
			t.Errorf("after SetBestScore(%d) best = %d, want %d", s.score, best, s.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(store, "flappy", 100)
	saveScore(store, "flappy", 200)
	saveScore(store, "other", 300)
	store.SetBestScore("flappy", 200)
	store.SetBestScore("other", 300)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	flappyScores, _ := store.TopScores("flappy", 10)
	if len(flappyScores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappyScores))
	}
	if best, _ := store.BestScore("flappy"); best != 0 {
		t.Errorf("Expected best score reset, got %d", best)
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("Other game's scores should not be affected")
	}
	if best, _ := store.BestScore("other"); best != 300 {
		t.Errorf("Other game's best changed to %d", best)
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		saveScore(store, "test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", stats)
	}

	store.SaveRun("flappy", Run{Score: 10, Tier: 2, Duration: 20 * time.Second})
	store.SaveRun("flappy", Run{Score: 30, Tier: 4, Duration: 50 * time.Second})
	store.SaveRun("other", Run{Score: 99, Tier: 9, Duration: time.Hour})

	stats, err = store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
	if stats.BestTier != 4 {
		t.Errorf("BestTier = %d, want 4", stats.BestTier)
	}
	if stats.PlayTime != 70*time.Second {
		t.Errorf("PlayTime = %v, want 70s", stats.PlayTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
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

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.arcade/flappy.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".arcade", "flappy.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestStoreHistoryLimitZeroReturnsAll(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 12; i++ {
		saveScore(store, "flappy", i)
	}

	all, err := store.History("flappy", 0)
	if err != nil {
		t.Fatalf("History(0) failed: %v", err)
	}
	if len(all) != 12 {
		t.Errorf("History(0) returned %d runs, want 12", len(all))
	}
	if len(all) > 0 && all[0].Score != 12 {
		t.Errorf("best run = %d, want 12", all[0].Score)
	}

	top, err := store.History("flappy", 3)
	if err != nil {
		t.Fatalf("History(3) failed: %v", err)
	}
	if len(top) != 3 || top[2].Score != 10 {
		t.Errorf("History(3) = %d runs, want the top 3 ending with 10", len(top))
	}
}
