package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("jumper", "alice", s); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", s, err)
		}
	}
	if _, err := store.SaveScore("other", "bob", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("jumper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].Player != "alice" || scores[i].GameID != "jumper" {
			t.Errorf("scores[%d] = %+v, expected alice/jumper", i, scores[i])
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
	if time.Since(scores[0].CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt = %v, expected a recent time", scores[0].CreatedAt)
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("jumper", "first", 300)
	store.SaveScore("jumper", "second", 300)
	for i := 0; i < 15; i++ {
		store.SaveScore("jumper", "filler", i)
	}

	top, err := store.TopScores("jumper", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 2 || top[0].Player != "first" || top[1].Player != "second" {
		t.Errorf("ties should keep insertion order, got %+v", top)
	}

	def, err := store.TopScores("jumper", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(def) != DefaultLimit {
		t.Errorf("non-positive limit returned %d entries, expected %d", len(def), DefaultLimit)
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("jumper", "alice", -1); err == nil {
		t.Error("SaveScore() should reject negative scores")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("jumper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty leaderboard, got %d", high)
	}

	store.SaveScore("jumper", "alice", 120)
	store.SaveScore("jumper", "bob", 480)
	store.SaveScore("jumper", "carol", 90)

	high, err = store.HighScore("jumper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 480 {
		t.Errorf("Expected high score 480, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("jumper")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore("jumper", "alice", 100)
	store.SaveScore("jumper", "bob", 300)

	stats, err := store.Stats("jumper")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Stats() = %+v, expected 2 games, high 300, avg 200", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveScore("jumper", "alice", 100)

	high, err := b.HighScore("jumper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("second store sees %d, expected an empty leaderboard", high)
	}
}
