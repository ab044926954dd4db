package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgeteer/internal/errors"
	"budgeteer/internal/logger"
	"budgeteer/internal/models"
	"budgeteer/internal/pagination"
)

// categoryService owns category definitions and the percentage invariant:
// the percentages of all expense categories must sum to at most 100.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// expensePercentageSum returns the current sum of expense category
// percentages.
func (s *categoryService) expensePercentageSum() (int, error) {
	var sum int
	err := s.db.Model(&models.Category{}).
		Select("COALESCE(SUM(percentage), 0)").
		Where("polarity = ?", models.PolarityExpense).
		Scan(&sum).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return sum, nil
}

// CreateCategory creates a new category. Expense categories must state a
// percentage that keeps the ledger-wide sum at or below 100; income
// categories carry no percentage.
func (s *categoryService) CreateCategory(name string, polarity models.Polarity, percentage int) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if !polarity.Valid() {
		return nil, apperrors.ErrInvalidPolarity
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategoryName
	}

	if polarity == models.PolarityIncome {
		percentage = 0
	} else {
		sum, err := s.expensePercentageSum()
		if err != nil {
			return nil, err
		}
		if sum+percentage > 100 {
			return nil, apperrors.ErrPercentageOverflow
		}
	}

	category := &models.Category{
		Name:       name,
		Polarity:   polarity,
		Percentage: percentage,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// GetCategoryByName retrieves a category by its unique name.
func (s *categoryService) GetCategoryByName(name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// ListCategories returns a paginated list of all categories.
func (s *categoryService) ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Category{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := base.Scopes(pagination.Paginate(page)).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateExpensePercentage changes an expense category's percentage. The
// overflow check excludes the category's own prior value so a percentage can
// be lowered and raised again without a false overflow. Setting the current
// value is a logged no-op.
func (s *categoryService) UpdateExpensePercentage(categoryID uint, percentage int) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("id = ? AND polarity = ?", categoryID, models.PolarityExpense).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if category.Percentage == percentage {
		logger.Get().Infow("expense percentage unchanged",
			"category", category.Name,
			"percentage", percentage,
		)
		return &category, nil
	}

	sum, err := s.expensePercentageSum()
	if err != nil {
		return nil, err
	}
	if sum-category.Percentage+percentage > 100 {
		return nil, apperrors.ErrPercentageOverflow
	}

	category.Percentage = percentage
	if err := s.db.Save(&category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &category, nil
}

// DeleteCategoryByName deletes a category together with all transactions and
// recurring transactions that reference it, in one database transaction.
func (s *categoryService) DeleteCategoryByName(name string) error {
	category, err := s.GetCategoryByName(name)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.RecurringTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
