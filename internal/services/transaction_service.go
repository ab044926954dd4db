package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgeteer/internal/errors"
	"budgeteer/internal/logger"
	"budgeteer/internal/models"
)

// transactionService is the append/query store for income and expense
// records. The minimum-amount rule (>= 10) lives in the request validation
// layer, not here.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a transaction for the user. The polarity is
// resolved from the referenced category, so an income transaction can only
// ever point at an income category.
func (s *transactionService) CreateTransaction(userID, categoryID uint, amount int64) (*models.Transaction, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	transaction := &models.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Polarity:   category.Polarity,
		Amount:     amount,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// ChangeAmount sets a new amount on an existing transaction. Setting the
// current amount is a logged no-op.
func (s *transactionService) ChangeAmount(transactionID uint, newAmount int64) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(transactionID)
	if err != nil {
		return nil, err
	}

	if transaction.Amount == newAmount {
		logger.Get().Infow("transaction amount unchanged",
			"transaction_id", transaction.ID,
			"amount", newAmount,
		)
		return transaction, nil
	}

	transaction.Amount = newAmount
	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// FindHigherThan returns all transactions of the given polarity with an
// amount strictly above the threshold, in no particular order.
func (s *transactionService) FindHigherThan(amount int64, polarity models.Polarity) ([]models.Transaction, error) {
	if !polarity.Valid() {
		return nil, apperrors.ErrInvalidPolarity
	}

	var transactions []models.Transaction
	err := s.db.Where("amount > ? AND polarity = ?", amount, polarity).Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// ListByCategory returns every transaction recorded under the named
// category.
func (s *transactionService) ListByCategory(categoryName string) ([]models.Transaction, error) {
	var category models.Category
	if err := s.db.Where("name = ?", categoryName).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := s.db.Where("category_id = ?", category.ID).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
