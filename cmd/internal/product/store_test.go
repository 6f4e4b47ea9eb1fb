package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Category{}, &Item{}, &Pricing{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormStore(db)
}

func TestCategoryCRUD(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	cat, err := s.CreateCategory(ctx, Category{Name: "Electronics"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	child, err := s.CreateCategory(ctx, Category{Name: "Phones", ParentID: &cat.ID})
	if err != nil {
		t.Fatalf("create child: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != cat.ID {
		t.Fatalf("child parent = %v, want %d", child.ParentID, cat.ID)
	}

	if _, err := s.CreateCategory(ctx, Category{Name: "Electronics"}); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("duplicate name: err = %v, want ErrNameTaken", err)
	}

	cats, err := s.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("list returned %d categories, want 2", len(cats))
	}

	cat.Description = "gadgets"
	if _, err := s.UpdateCategory(ctx, cat); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := s.GetCategory(ctx, cat.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description != "gadgets" {
		t.Fatalf("description = %q", got.Description)
	}

	if err := s.DeleteCategory(ctx, child.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetCategory(ctx, child.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get deleted: err = %v, want ErrNotFound", err)
	}
}

func TestItemSKUUnique(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first := Item{SellerID: 1, CategoryID: 1, Name: "Widget", SKU: "WID-001", Currency: "IDR", Status: StatusActive}
	if _, err := s.CreateItem(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := Item{SellerID: 2, CategoryID: 1, Name: "Other", SKU: "WID-001", Currency: "IDR", Status: StatusActive}
	if _, err := s.CreateItem(ctx, dup); !errors.Is(err, ErrSKUTaken) {
		t.Fatalf("duplicate sku: err = %v, want ErrSKUTaken", err)
	}
}

func TestPricingByProduct(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	it, err := s.CreateItem(ctx, Item{SellerID: 1, CategoryID: 1, Name: "Widget", SKU: "WID-001", Currency: "IDR", Status: StatusActive})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, price := range []int64{10000, 9000} {
		_, err := s.CreatePricing(ctx, Pricing{
			ProductID: it.ID,
			BasePrice: price,
			Currency:  "IDR",
			ValidFrom: base.AddDate(0, i, 0),
		})
		if err != nil {
			t.Fatalf("create pricing: %v", err)
		}
	}

	prices, err := s.ListPricingByProduct(ctx, it.ID)
	if err != nil {
		t.Fatalf("list pricing: %v", err)
	}
	if len(prices) != 2 {
		t.Fatalf("got %d pricing rows, want 2", len(prices))
	}
	if !prices[0].ValidFrom.Before(prices[1].ValidFrom) {
		t.Fatalf("pricing not ordered by valid_from: %v, %v", prices[0].ValidFrom, prices[1].ValidFrom)
	}

	prices[0].DiscountPrice = 8000
	if _, err := s.UpdatePricing(ctx, prices[0]); err != nil {
		t.Fatalf("update pricing: %v", err)
	}
	got, err := s.GetPricing(ctx, prices[0].ID)
	if err != nil {
		t.Fatalf("get pricing: %v", err)
	}
	if got.DiscountPrice != 8000 {
		t.Fatalf("discount = %d, want 8000", got.DiscountPrice)
	}

	other, err := s.ListPricingByProduct(ctx, it.ID+99)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("unrelated product has %d pricing rows", len(other))
	}
}
