package product

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Store is the persistence boundary for categories, items and pricing.
type Store interface {
	CreateCategory(ctx context.Context, c Category) (Category, error)
	GetCategory(ctx context.Context, id uint) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	UpdateCategory(ctx context.Context, c Category) (Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	CreateItem(ctx context.Context, it Item) (Item, error)
	GetItem(ctx context.Context, id uint) (Item, error)
	ListItems(ctx context.Context) ([]Item, error)
	UpdateItem(ctx context.Context, it Item) (Item, error)
	DeleteItem(ctx context.Context, id uint) error

	CreatePricing(ctx context.Context, p Pricing) (Pricing, error)
	GetPricing(ctx context.Context, id uint) (Pricing, error)
	ListPricingByProduct(ctx context.Context, productID uint) ([]Pricing, error)
	UpdatePricing(ctx context.Context, p Pricing) (Pricing, error)
}

// GormStore implements Store on a GORM handle.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateCategory(ctx context.Context, c Category) (Category, error) {
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Category{}, ErrNameTaken
		}
		return Category{}, err
	}
	return c, nil
}

func (s *GormStore) GetCategory(ctx context.Context, id uint) (Category, error) {
	var c Category
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return Category{}, mapNotFound(err)
	}
	return c, nil
}

func (s *GormStore) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) UpdateCategory(ctx context.Context, c Category) (Category, error) {
	if err := s.db.WithContext(ctx).Save(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Category{}, ErrNameTaken
		}
		return Category{}, err
	}
	return c, nil
}

func (s *GormStore) DeleteCategory(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&Category{}, id).Error
}

func (s *GormStore) CreateItem(ctx context.Context, it Item) (Item, error) {
	if err := s.db.WithContext(ctx).Create(&it).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Item{}, ErrSKUTaken
		}
		return Item{}, err
	}
	return it, nil
}

func (s *GormStore) GetItem(ctx context.Context, id uint) (Item, error) {
	var it Item
	if err := s.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return Item{}, mapNotFound(err)
	}
	return it, nil
}

func (s *GormStore) ListItems(ctx context.Context) ([]Item, error) {
	var out []Item
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) UpdateItem(ctx context.Context, it Item) (Item, error) {
	if err := s.db.WithContext(ctx).Save(&it).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Item{}, ErrSKUTaken
		}
		return Item{}, err
	}
	return it, nil
}

func (s *GormStore) DeleteItem(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&Item{}, id).Error
}

func (s *GormStore) CreatePricing(ctx context.Context, p Pricing) (Pricing, error) {
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Pricing{}, err
	}
	return p, nil
}

func (s *GormStore) GetPricing(ctx context.Context, id uint) (Pricing, error) {
	var p Pricing
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return Pricing{}, mapNotFound(err)
	}
	return p, nil
}

func (s *GormStore) ListPricingByProduct(ctx context.Context, productID uint) ([]Pricing, error) {
	var out []Pricing
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("valid_from").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) UpdatePricing(ctx context.Context, p Pricing) (Pricing, error) {
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return Pricing{}, err
	}
	return p, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
