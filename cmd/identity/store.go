package identity

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Store is the user persistence boundary.
type Store interface {
	Create(ctx context.Context, u User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Update(ctx context.Context, u User) (User, error)
}

// GormStore implements Store on a GORM-managed users table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps the given DB handle. The handle's lifecycle is owned by the caller.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Create inserts a new user. Uniqueness conflicts surface as ConflictError.
func (s *GormStore) Create(ctx context.Context, u User) (User, error) {
	u.Username = NormalizeUsername(u.Username)

	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return User{}, ConflictError{Op: "identity.Create", Field: "username"}
		}
		return User{}, err
	}
	return u, nil
}

// GetByUsername loads a user by normalized username.
func (s *GormStore) GetByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := s.db.WithContext(ctx).
		Where("username = ?", NormalizeUsername(username)).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// Update persists mutable profile fields for an existing user.
func (s *GormStore) Update(ctx context.Context, u User) (User, error) {
	if u.ID == 0 {
		return User{}, ErrInvalidInput
	}

	err := s.db.WithContext(ctx).Model(&User{ID: u.ID}).Updates(map[string]any{
		"full_name": u.FullName,
		"phone":     u.Phone,
		"password":  u.Password,
		"email":     u.Email,
	}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return User{}, ConflictError{Op: "identity.Update", Field: "phone"}
		}
		return User{}, err
	}

	return s.GetByUsername(ctx, u.Username)
}
