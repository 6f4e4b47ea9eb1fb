package merchant

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Store is the persistence boundary for merchants.
type Store interface {
	Create(ctx context.Context, m Merchant) (Merchant, error)
	GetByID(ctx context.Context, id uint) (Merchant, error)
	List(ctx context.Context) ([]Merchant, error)
	Update(ctx context.Context, m Merchant) (Merchant, error)
	Delete(ctx context.Context, id uint) error
}

// GormStore implements Store on a GORM handle.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, m Merchant) (Merchant, error) {
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Merchant{}, ErrNameTaken
		}
		return Merchant{}, err
	}
	return m, nil
}

func (s *GormStore) GetByID(ctx context.Context, id uint) (Merchant, error) {
	var m Merchant
	err := s.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Merchant{}, ErrNotFound
		}
		return Merchant{}, err
	}
	return m, nil
}

func (s *GormStore) List(ctx context.Context) ([]Merchant, error) {
	var out []Merchant
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) Update(ctx context.Context, m Merchant) (Merchant, error) {
	if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Merchant{}, ErrNameTaken
		}
		return Merchant{}, err
	}
	return m, nil
}

func (s *GormStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&Merchant{}, id).Error
}
