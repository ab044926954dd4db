package models

import "time"

// Frequency is the period between two materializations of a recurring
// transaction.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Period returns the amount of time the schedule advances per
// materialization. MONTHLY is a fixed four weeks, not calendar-month
// arithmetic.
func (f Frequency) Period() time.Duration {
	switch f {
	case FrequencyDaily:
		return 24 * time.Hour
	case FrequencyWeekly:
		return 7 * 24 * time.Hour
	default:
		return 28 * 24 * time.Hour
	}
}

// RecurringTransaction is a template that the recurring engine materializes
// into concrete transactions. NextDueDate is date-only, stored at UTC
// midnight. A record whose NextDueDate has fallen strictly before the
// processing date is stale and gets deleted without materialization.
type RecurringTransaction struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Polarity    Polarity  `gorm:"not null" json:"polarity"`
	Amount      int64     `gorm:"type:bigint;not null" json:"amount"`
	Frequency   Frequency `gorm:"not null" json:"frequency"`
	NextDueDate time.Time `gorm:"not null" json:"next_due_date"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
