package models

import "time"

// ActivationToken is a short-lived credential mailed to a freshly registered
// user. It is consumed (hard-deleted) on first use whether or not it is
// still valid.
type ActivationToken struct {
	Base
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Expired reports whether the token's lifetime has passed at now.
func (t *ActivationToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
