package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSubmitAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, s := range []struct {
		name  string
		score int
	}{
		{"alice", 100},
		{"alice", 50},
		{"bob", 200},
		{"carol", 75},
	} {
		if err := store.Submit(s.name, s.score); err != nil {
			t.Fatalf("Submit(%s, %d) failed: %v", s.name, s.score, err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[0].PlayerName != "bob" {
		t.Errorf("Expected top entry bob/200, got %s/%d", scores[0].PlayerName, scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[3].Score != 50 {
		t.Errorf("Expected last score to be 50, got %d", scores[3].Score)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 20; i++ {
		if err := store.Submit("alice", i*10); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", scores[0].Score)
	}
}

func TestPlayerScoresAndHighScore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.Submit("alice", 30)
	store.Submit("alice", 90)
	store.Submit("bob", 500)

	scores, err := store.PlayerScores("alice")
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores for alice, got %d", len(scores))
	}
	if scores[0].Score != 90 {
		t.Errorf("Expected alice's best first, got %d", scores[0].Score)
	}

	high, err := store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 90 {
		t.Errorf("HighScore(alice) = %d, want 90", high)
	}

	// Unknown player has no high score
	high, err = store.HighScore("nobody")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore(nobody) = %d, want 0", high)
	}
}

func TestClearScores(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.Submit("alice", 10)
	store.Submit("bob", 20)

	if err := store.ClearScores("alice"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].PlayerName != "bob" {
		t.Errorf("Expected only bob's score to remain, got %v", scores)
	}
}

func TestGetPlayerStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.Submit("alice", 10)
	store.Submit("alice", 20)
	store.Submit("alice", 30)

	stats, err := store.GetPlayerStats("alice")
	if err != nil {
		t.Fatalf("GetPlayerStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
}
