package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgeteer/internal/errors"
	"budgeteer/internal/models"
)

// budgetService is a pure read-model over the category ledger and the
// transaction store. It never writes.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GenerateEntriesForUser builds the budget report for one user: one entry
// per distinct expense category the user has actually spent in. Expense
// categories the user never used produce no entry.
func (s *budgetService) GenerateEntriesForUser(userID uint) ([]BudgetEntry, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.entriesFor(userID)
}

// GenerateEntriesForAllUsers builds every user's report independently; there
// is no cross-user aggregation.
func (s *budgetService) GenerateEntriesForAllUsers() (map[uint][]BudgetEntry, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(users) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrUserNotFound, "No users exist")
	}

	report := make(map[uint][]BudgetEntry, len(users))
	for _, user := range users {
		entries, err := s.entriesFor(user.ID)
		if err != nil {
			return nil, err
		}
		report[user.ID] = entries
	}
	return report, nil
}

func (s *budgetService) entriesFor(userID uint) ([]BudgetEntry, error) {
	totalIncome, err := s.totalIncome(userID)
	if err != nil {
		return nil, err
	}

	var categoryIDs []uint
	err = s.db.Model(&models.Transaction{}).
		Distinct("category_id").
		Where("user_id = ? AND polarity = ?", userID, models.PolarityExpense).
		Pluck("category_id", &categoryIDs).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]BudgetEntry, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		var category models.Category
		if err := s.db.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		actual, err := s.actualSpend(userID, categoryID)
		if err != nil {
			return nil, err
		}

		planned := totalIncome * int64(category.Percentage) / 100
		entries = append(entries, BudgetEntry{
			Category:   category.Name,
			Planned:    planned,
			Actual:     actual,
			Difference: planned - actual,
		})
	}
	return entries, nil
}

func (s *budgetService) totalIncome(userID uint) (int64, error) {
	var total int64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND polarity = ?", userID, models.PolarityIncome).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

func (s *budgetService) actualSpend(userID, categoryID uint) (int64, error) {
	var total int64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category_id = ? AND polarity = ?", userID, categoryID, models.PolarityExpense).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}
