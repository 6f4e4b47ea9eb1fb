package identity

import "time"

// User is the marketplace's security principal.
// Password holds the Argon2id hash, never the plaintext.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string  `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password string  `gorm:"size:256;not null" json:"-"`
	FullName string  `gorm:"size:128" json:"fullname"`
	Phone    string  `gorm:"size:16;uniqueIndex;not null" json:"phone"`
	Email    *string `gorm:"size:128" json:"email,omitempty"`
}

// TableName keeps the historical table name.
func (User) TableName() string { return "users" }
