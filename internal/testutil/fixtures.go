package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgeteer/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an active user with a hashed password and unique
// name and email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Tester%d", n),
		Email:    fmt.Sprintf("user%d@test.com", n),
		Password: string(hash),
		Role:     models.RoleUser,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category of the given polarity. Expense
// categories get the supplied percentage.
func CreateTestCategory(t *testing.T, db *gorm.DB, polarity models.Polarity, percentage int) *models.Category {
	t.Helper()

	if polarity == models.PolarityIncome {
		percentage = 0
	}
	category := &models.Category{
		Name:       fmt.Sprintf("Category%d", nextID()),
		Polarity:   polarity,
		Percentage: percentage,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction with the category's polarity.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, category *models.Category, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:     userID,
		CategoryID: category.ID,
		Polarity:   category.Polarity,
		Amount:     amount,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestRecurring creates a recurring transaction due on the given date.
func CreateTestRecurring(t *testing.T, db *gorm.DB, userID uint, category *models.Category, amount int64, frequency models.Frequency, nextDueDate time.Time) *models.RecurringTransaction {
	t.Helper()

	rec := &models.RecurringTransaction{
		UserID:      userID,
		CategoryID:  category.ID,
		Polarity:    category.Polarity,
		Amount:      amount,
		Frequency:   frequency,
		NextDueDate: nextDueDate,
	}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("failed to create test recurring transaction: %v", err)
	}
	return rec
}

// Midnight truncates t to UTC midnight, matching how due dates are stored.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
