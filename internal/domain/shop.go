package domain

import "time"

// Shop is a persisted shop. A user can be associated with zero or more
// shops; the first associated shop is the authoritative one for token
// context.
type Shop struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Invoice is a persisted invoice linked to a user and a shop. Only the
// most recent invoice per (user, shop) pair is embedded into tokens.
type Invoice struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"index;not null" json:"user_id"`
	ShopID    int64     `gorm:"index;not null" json:"shop_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
