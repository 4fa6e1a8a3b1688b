package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/proto-pong/internal/pong"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.protopong/history.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".protopong", "history.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	won := pong.MatchResult{
		Mode:   pong.ModeSingle,
		ScoreA: 10,
		ScoreB: 7,
		Winner: pong.PointA,
		Reason: pong.EndCompleted,
		Ticks:  5400,
	}
	id, err := store.SaveMatch(won)
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	m, err := store.MatchByID(id)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m == nil {
		t.Fatal("MatchByID() returned nil for a saved match")
	}

	if m.Mode != "single" || m.ScoreRight != 10 || m.ScoreLeft != 7 {
		t.Errorf("unexpected match %+v", m)
	}
	if m.Winner != "right" || m.EndReason != "completed" || m.Ticks != 5400 {
		t.Errorf("unexpected outcome %+v", m)
	}
	if m.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	m, err := store.MatchByID(42)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m != nil {
		t.Errorf("Expected nil for missing match, got %+v", m)
	}
}

func TestStoreRecentMatches(t *testing.T) {
	store := openTestStore(t)

	results := []pong.MatchResult{
		{Mode: pong.ModeSingle, ScoreA: 10, Winner: pong.PointA, Reason: pong.EndCompleted},
		{Mode: pong.ModeVersus, ScoreB: 10, Winner: pong.PointB, Reason: pong.EndCompleted},
		{Mode: pong.ModeSingle, ScoreA: 2, ScoreB: 3, Reason: pong.EndAborted},
	}
	for _, r := range results {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	tests := []struct {
		name  string
		mode  string
		limit int
		want  []string // end reasons, newest first
	}{
		{"all", "", 10, []string{"aborted", "completed", "completed"}},
		{"limited", "", 2, []string{"aborted", "completed"}},
		{"single only", "single", 10, []string{"aborted", "completed"}},
		{"versus only", "versus", 10, []string{"completed"}},
		{"unknown mode", "demo", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := store.RecentMatches(tt.mode, tt.limit)
			if err != nil {
				t.Fatalf("RecentMatches() failed: %v", err)
			}
			if len(matches) != len(tt.want) {
				t.Fatalf("Expected %d matches, got %d", len(tt.want), len(matches))
			}
			for i, m := range matches {
				if m.EndReason != tt.want[i] {
					t.Errorf("match %d: expected %s, got %s", i, tt.want[i], m.EndReason)
				}
			}
		})
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []pong.MatchResult{
		{Mode: pong.ModeSingle, Winner: pong.PointA, Reason: pong.EndCompleted, Ticks: 100},
		{Mode: pong.ModeSingle, Winner: pong.PointB, Reason: pong.EndCompleted, Ticks: 300},
		{Mode: pong.ModeSingle, Reason: pong.EndAborted, Ticks: 200},
		{Mode: pong.ModeDemo, Winner: pong.PointB, Reason: pong.EndCompleted, Ticks: 50},
	} {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 modes, got %d", len(stats))
	}

	single := stats["single"]
	if single == nil {
		t.Fatal("missing single stats")
	}
	if single.Matches != 3 || single.Completed != 2 || single.Aborted() != 1 {
		t.Errorf("unexpected counts %+v", single)
	}
	if single.RightWins != 1 || single.LeftWins != 1 {
		t.Errorf("unexpected wins %+v", single)
	}
	if single.AvgTicks != 200 {
		t.Errorf("Expected average of 200 ticks, got %v", single.AvgTicks)
	}
	if single.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	if stats["demo"].LeftWins != 1 {
		t.Errorf("unexpected demo stats %+v", stats["demo"])
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(pong.MatchResult{Mode: pong.ModeVersus, Reason: pong.EndAborted}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	matches, err := store.RecentMatches("", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Expected empty history, got %d matches", len(matches))
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("Expected no stats, got %d", len(stats))
	}
}

func TestStoreRecorder(t *testing.T) {
	store := openTestStore(t)

	record := store.Recorder(nil)
	record(pong.MatchResult{Mode: pong.ModeDemo, ScoreA: 10, ScoreB: 3, Winner: pong.PointA, Reason: pong.EndCompleted, Ticks: 900})

	matches, err := store.RecentMatches("", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 recorded match, got %d", len(matches))
	}
	if matches[0].Mode != "demo" || matches[0].ScoreRight != 10 {
		t.Errorf("unexpected recorded match: %+v", matches[0])
	}

	var nilStore *Store
	if nilStore.Recorder(nil) != nil {
		t.Error("nil store should not return a recorder")
	}
}
