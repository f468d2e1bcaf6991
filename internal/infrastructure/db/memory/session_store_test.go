package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/99minutos/jobboard/internal/core/domain"
)

func TestSessionStore_SaveGetDelete(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()

	sess := domain.NewSession("s1", time.Now())
	sess.Bind(&domain.User{ID: 4, Username: "alice"})
	sess.AddFlash("hi")
	if err := s.Save(ctx, sess, time.Hour); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.UserID != 4 || got.Username != "alice" || len(got.Flashes) != 1 {
		t.Fatalf("unexpected record: %+v", got)
	}

	got.PopFlashes()
	again, _ := s.Get(ctx, "s1")
	if len(again.Flashes) != 1 {
		t.Fatalf("mutating a loaded record must not change the store")
	}

	if err := s.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	if err := s.Save(ctx, domain.NewSession("s1", base), time.Minute); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := s.Get(ctx, "s1"); err != nil {
		t.Fatalf("record should be live: %v", err)
	}

	s.now = func() time.Time { return base.Add(time.Minute) }
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestSessionStore_SaveSweepsExpiredRecords(t *testing.T) {
	s := NewSessionStore()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	const abandoned = 3 * sweepBatch
	for i := 0; i < abandoned; i++ {
		if err := s.Save(ctx, domain.NewSession(fmt.Sprintf("anon-%d", i), base), time.Minute); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	if len(s.records) != abandoned {
		t.Fatalf("expected %d records, got %d", abandoned, len(s.records))
	}

	later := base.Add(48 * time.Hour)
	s.now = func() time.Time { return later }

	if err := s.Save(ctx, domain.NewSession("fresh-0", later), time.Minute); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if want := abandoned - sweepBatch + 1; len(s.records) != want {
		t.Fatalf("expected %d records after one sweep, got %d", want, len(s.records))
	}

	for i := 1; i <= 10; i++ {
		if err := s.Save(ctx, domain.NewSession(fmt.Sprintf("fresh-%d", i), later), time.Minute); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	if len(s.records) != 11 {
		t.Fatalf("expected only the 11 live records to remain, got %d", len(s.records))
	}
	if _, err := s.Get(ctx, "fresh-0"); err != nil {
		t.Fatalf("live record swept: %v", err)
	}
}
