package product

import "time"

// Category groups items into a tree. ParentID is nil for top-level categories.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"size:128;uniqueIndex" json:"name"`
	ParentID    *uint  `gorm:"index" json:"parent_id,omitempty"`
	Description string `gorm:"size:512" json:"description"`
}

func (Category) TableName() string { return "product_categories" }

// Item statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Item is a sellable product listing. Prices are in minor units of Currency.
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SellerID    uint   `gorm:"index" json:"seller_id"`
	CategoryID  uint   `gorm:"index" json:"category_id"`
	Name        string `gorm:"size:128" json:"name"`
	Description string `gorm:"size:1024" json:"description"`
	Price       int64  `json:"price"`
	Currency    string `gorm:"size:3" json:"currency"`
	Stock       int    `json:"stock"`
	SKU         string `gorm:"size:64;uniqueIndex" json:"sku"`
	Status      string `gorm:"size:16" json:"status"`
}

func (Item) TableName() string { return "product_items" }

// Pricing is a time-bounded price override for an item. A zero ValidTo means
// the entry does not expire.
type Pricing struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProductID     uint      `gorm:"index" json:"product_id"`
	BasePrice     int64     `json:"base_price"`
	DiscountPrice int64     `json:"discount_price"`
	Currency      string    `gorm:"size:3" json:"currency"`
	ValidFrom     time.Time `json:"valid_from"`
	ValidTo       time.Time `json:"valid_to"`
}

func (Pricing) TableName() string { return "product_pricing" }
