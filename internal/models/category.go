package models

// Category represents a transaction category. Names are globally unique.
// Percentage is the share of a user's total income planned for the category;
// it is meaningful only for expense polarity and the sum over all expense
// categories must never exceed 100. That invariant is enforced by the
// category service before every write, not by a database constraint.
type Category struct {
	Base
	Name       string   `gorm:"uniqueIndex;not null" json:"name"`
	Polarity   Polarity `gorm:"not null" json:"polarity"`
	Percentage int      `gorm:"not null;default:0" json:"percentage,omitempty"`

	Transactions          []Transaction          `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
	RecurringTransactions []RecurringTransaction `gorm:"foreignKey:CategoryID" json:"recurring_transactions,omitempty"`
}
