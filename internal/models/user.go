package models

// Role controls access to admin-only endpoints.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account holder. Users are created inactive and become
// active once they consume their activation token.
type User struct {
	Base
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"not null;default:user" json:"role"`
	IsActive bool   `gorm:"default:false" json:"is_active"`

	Transactions          []Transaction          `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	RecurringTransactions []RecurringTransaction `gorm:"foreignKey:UserID" json:"recurring_transactions,omitempty"`
}
