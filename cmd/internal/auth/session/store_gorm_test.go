package session

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A fresh connection would see a fresh in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Session{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestGormStore_UpsertKeepsOneRowPerOwner(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	store := NewGormStore(db)

	if err := store.Upsert(ctx, Session{Username: "alice", SessionID: "aaaa1111", Secret: "s1"}); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if err := store.Upsert(ctx, Session{Username: "alice", SessionID: "bbbb2222", Secret: "s2"}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	var count int64
	if err := db.Model(&Session{}).Where("username = ?", "alice").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rows for alice = %d, want 1", count)
	}

	got, err := store.GetByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByOwner: %v", err)
	}
	if got.SessionID != "bbbb2222" || got.Secret != "s2" {
		t.Fatalf("row not replaced: %+v", got)
	}
}

func TestGormStore_GetMissingOwner(t *testing.T) {
	store := NewGormStore(testDB(t))

	_, err := store.GetByOwner(context.Background(), "ghost")
	if !errors.Is(err, ErrUnknownOwner) {
		t.Fatalf("expected ErrUnknownOwner, got %v", err)
	}
}

func TestGormStore_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewGormStore(testDB(t))

	if err := store.Upsert(ctx, Session{Username: "alice", SessionID: "aaaa1111", Secret: "s1"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := store.DeleteByOwner(ctx, "alice"); err != nil {
		t.Fatalf("DeleteByOwner: %v", err)
	}
	if err := store.DeleteByOwner(ctx, "alice"); err != nil {
		t.Fatalf("second DeleteByOwner: %v", err)
	}

	if _, err := store.GetByOwner(ctx, "alice"); !errors.Is(err, ErrUnknownOwner) {
		t.Fatalf("expected ErrUnknownOwner after delete, got %v", err)
	}
}

func TestGormStore_OwnerNormalized(t *testing.T) {
	ctx := context.Background()
	store := NewGormStore(testDB(t))

	if err := store.Upsert(ctx, Session{Username: " Alice ", SessionID: "aaaa1111", Secret: "s1"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := store.GetByOwner(ctx, "ALICE")
	if err != nil {
		t.Fatalf("GetByOwner: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("owner = %q, want alice", got.Username)
	}
}
