package models

// Transaction represents a single income or expense record. Amount is a
// positive integer in the smallest currency unit. Polarity is fixed at
// creation; only the amount may change afterwards, through the explicit
// change-amount operation.
type Transaction struct {
	Base
	UserID     uint     `gorm:"not null;index" json:"user_id"`
	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Polarity   Polarity `gorm:"not null" json:"polarity"`
	Amount     int64    `gorm:"type:bigint;not null" json:"amount"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
