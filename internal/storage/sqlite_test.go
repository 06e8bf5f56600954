package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/shooter"
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	started := time.UnixMilli(1_700_000_000_000)
	id, err := store.SaveSession(SessionRecord{
		Origin:           "local",
		StartedAt:        started,
		Duration:         42 * time.Second,
		ShotsFired:       12,
		TargetsRemaining: 0,
		Cleared:          true,
		EndReason:        EndQuit,
	})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}

	got := sessions[0]
	if got.Origin != "local" || got.ShotsFired != 12 || !got.Cleared || got.EndReason != EndQuit {
		t.Errorf("Unexpected session: %+v", got)
	}
	if !got.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, expected %v", got.StartedAt, started)
	}
	if got.Duration != 42*time.Second {
		t.Errorf("Duration = %v, expected 42s", got.Duration)
	}
}

func TestStoreRecentSessionsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	base := time.UnixMilli(1_700_000_000_000)
	for i := 0; i < 5; i++ {
		_, err := store.SaveSession(SessionRecord{
			Origin:     "local",
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			ShotsFired: i,
			EndReason:  EndRestart,
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}

	// Newest first: 4, 3, 2
	if sessions[0].ShotsFired != 4 || sessions[1].ShotsFired != 3 || sessions[2].ShotsFired != 2 {
		t.Errorf("Sessions not in expected order: %+v", sessions)
	}
}

func TestStoreSessionsByOrigin(t *testing.T) {
	store := openTestStore(t)

	now := time.Now()
	for _, origin := range []string{"local", "ssh:alice", "ssh:alice", "window"} {
		if _, err := store.SaveSession(SessionRecord{Origin: origin, StartedAt: now, EndReason: EndQuit}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	alice, err := store.SessionsByOrigin("ssh:alice", 10)
	if err != nil {
		t.Fatalf("SessionsByOrigin() failed: %v", err)
	}
	if len(alice) != 2 {
		t.Errorf("Expected 2 sessions for ssh:alice, got %d", len(alice))
	}

	origins, err := store.Origins()
	if err != nil {
		t.Fatalf("Origins() failed: %v", err)
	}
	if len(origins) != 3 || origins[0] != "local" || origins[1] != "ssh:alice" || origins[2] != "window" {
		t.Errorf("Origins() = %v, expected [local ssh:alice window]", origins)
	}

	none, err := store.SessionsByOrigin("ssh:bob", 10)
	if err != nil {
		t.Fatalf("SessionsByOrigin() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no sessions for ssh:bob, got %d", len(none))
	}
}

func TestStoreSummarize(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() on empty store failed: %v", err)
	}
	if sum.Sessions != 0 || sum.PlayTime != 0 {
		t.Errorf("Empty summary expected, got %+v", sum)
	}

	records := []SessionRecord{
		{Origin: "local", Duration: 10 * time.Second, ShotsFired: 7, Cleared: true, EndReason: EndQuit},
		{Origin: "local", Duration: 5 * time.Second, ShotsFired: 3, TargetsRemaining: 4, EndReason: EndDisconnect},
	}
	for _, r := range records {
		r.StartedAt = time.Now()
		if _, err := store.SaveSession(r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sum, err = store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Sessions != 2 || sum.Cleared != 1 || sum.ShotsFired != 10 || sum.PlayTime != 15*time.Second {
		t.Errorf("Unexpected summary: %+v", sum)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		store.SaveSession(SessionRecord{Origin: "local", StartedAt: time.Now(), EndReason: EndQuit})
	}

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestNewSessionRecord(t *testing.T) {
	started := time.UnixMilli(1_700_000_000_000)
	rec := NewSessionRecord("ssh:alice", started, shooter.Stats{
		ElapsedMs:        1500,
		ShotsFired:       9,
		TargetsRemaining: 0,
		Cleared:          true,
	}, EndDisconnect)

	if rec.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, expected 1.5s", rec.Duration)
	}
	if rec.Origin != "ssh:alice" || rec.ShotsFired != 9 || !rec.Cleared || rec.EndReason != EndDisconnect {
		t.Errorf("Unexpected record: %+v", rec)
	}
	if !rec.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, expected %v", rec.StartedAt, started)
	}
}
