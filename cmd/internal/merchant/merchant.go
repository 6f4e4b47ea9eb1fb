package merchant

import "time"

// Merchant is a storefront registered by a user. The owner is the username of
// the account that created it; only the owner may update or delete it.
type Merchant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"size:128;uniqueIndex" json:"name"`
	Description string `gorm:"size:512" json:"description"`
	City        string `gorm:"size:64" json:"city"`
	Owner       string `gorm:"size:64;index" json:"owner"`
}

func (Merchant) TableName() string { return "merchants" }
