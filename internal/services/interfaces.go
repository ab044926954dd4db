package services

import (
	"time"

	"budgeteer/internal/models"
	"budgeteer/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(name, email, password, passwordConfirmation string, role models.Role) (*models.User, error)
	Activate(token string) (*models.User, error)
	AttemptLogin(name, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByName(name string) (*models.User, error)
	TotalIncome(userID uint) (int64, error)
}

// CategoryServicer defines the contract for the category ledger.
type CategoryServicer interface {
	CreateCategory(name string, polarity models.Polarity, percentage int) (*models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	GetCategoryByName(name string) (*models.Category, error)
	ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	UpdateExpensePercentage(categoryID uint, percentage int) (*models.Category, error)
	DeleteCategoryByName(name string) error
}

// TransactionServicer defines the contract for the transaction store.
type TransactionServicer interface {
	CreateTransaction(userID, categoryID uint, amount int64) (*models.Transaction, error)
	GetTransactionByID(id uint) (*models.Transaction, error)
	ChangeAmount(transactionID uint, newAmount int64) (*models.Transaction, error)
	FindHigherThan(amount int64, polarity models.Polarity) ([]models.Transaction, error)
	ListByCategory(categoryName string) ([]models.Transaction, error)
}

// BudgetEntry is one row of a user's budget report: the planned spend for an
// expense category against what was actually spent. A negative difference
// signals overspend, not an error.
type BudgetEntry struct {
	Category   string `json:"category"`
	Planned    int64  `json:"planned_amount"`
	Actual     int64  `json:"actual_amount"`
	Difference int64  `json:"difference"`
}

// BudgetServicer defines the contract for the budget allocation read-model.
type BudgetServicer interface {
	GenerateEntriesForUser(userID uint) ([]BudgetEntry, error)
	GenerateEntriesForAllUsers() (map[uint][]BudgetEntry, error)
}

// CreateRecurringInput carries the fields for a new recurring transaction.
type CreateRecurringInput struct {
	UserID      uint
	CategoryID  uint
	Amount      int64
	Frequency   models.Frequency
	NextDueDate time.Time
}

// UpdateRecurringInput carries a partial update; nil fields are left
// untouched.
type UpdateRecurringInput struct {
	Amount      *int64
	Frequency   *models.Frequency
	NextDueDate *time.Time
}

// RecurringServicer defines the contract for the recurring transaction
// engine.
type RecurringServicer interface {
	CreateRecurringTransaction(in CreateRecurringInput) (*models.RecurringTransaction, error)
	GetRecurringByID(id uint) (*models.RecurringTransaction, error)
	ListRecurring(page pagination.PageRequest) (*pagination.PageResponse[models.RecurringTransaction], error)
	UpdateRecurringTransaction(id uint, patch UpdateRecurringInput) (*models.RecurringTransaction, error)
	DeleteRecurring(id uint) error
	ProcessRecurringTransactions() ([]models.Transaction, error)
}
