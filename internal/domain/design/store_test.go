package design

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestStoreSaveGetDelete(t *testing.T) {
	store := NewStore(nil, time.Hour)
	ctx := context.Background()

	session := NewSession(1440, 900)
	store.Save(ctx, session)

	got, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != session.ID {
		t.Fatalf("got session %s, want %s", got.ID, session.ID)
	}

	store.Delete(ctx, session.ID)
	if _, err := store.Get(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestStoreUpdateMissWithoutRedis(t *testing.T) {
	store := NewStore(nil, time.Hour)

	_, err := store.Update(context.Background(), uuid.New(), func(s *Session) error {
		return nil
	})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStoreUpdateErrorLeavesSessionUntouched(t *testing.T) {
	store := NewStore(nil, time.Hour)
	ctx := context.Background()

	session := NewSession(1440, 900)
	store.Save(ctx, session)

	sentinel := errors.New("rejected")
	_, err := store.Update(ctx, session.ID, func(s *Session) error {
		s.ActiveSlot = 5
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

func TestStoreEvictsIdleSessions(t *testing.T) {
	store := NewStore(nil, 10*time.Millisecond)
	ctx := context.Background()

	session := NewSession(1440, 900)
	store.Save(ctx, session)

	time.Sleep(20 * time.Millisecond)
	store.evictExpired()

	if _, err := store.Get(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected eviction, got %v", err)
	}
}
