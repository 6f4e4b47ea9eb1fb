package session

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on a GORM-managed user_sessions table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps the given DB handle. The handle's lifecycle is owned by the caller.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func normalizeOwner(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Upsert replaces the owner's session row in a single ON CONFLICT statement,
// so id and secret are swapped atomically and a failed write leaves the prior
// row intact.
func (s *GormStore) Upsert(ctx context.Context, sess Session) error {
	sess.Username = normalizeOwner(sess.Username)

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"session_id", "secret", "updated_at"}),
	}).Create(&sess).Error
}

// GetByOwner loads the current session row for owner.
func (s *GormStore) GetByOwner(ctx context.Context, owner string) (Session, error) {
	var sess Session
	err := s.db.WithContext(ctx).
		Where("username = ?", normalizeOwner(owner)).
		First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, ErrUnknownOwner
	}
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

// DeleteByOwner removes the owner's session row. Deleting a missing row is a no-op.
func (s *GormStore) DeleteByOwner(ctx context.Context, owner string) error {
	return s.db.WithContext(ctx).
		Where("username = ?", normalizeOwner(owner)).
		Delete(&Session{}).Error
}
