package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "budgeteer/internal/errors"
	"budgeteer/internal/logger"
	"budgeteer/internal/models"
	"budgeteer/internal/pagination"
)

// recurringService owns the recurring transaction lifecycle. Each record is
// evaluated against the processing date: a record due today is materialized
// into a concrete transaction and its schedule advances by one period; a
// record whose due date has already passed is stale and gets deleted without
// ever being materialized; future records are left alone.
type recurringService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB) RecurringServicer {
	return &recurringService{db: db, now: time.Now}
}

// dateOnly truncates t to UTC midnight. All due-date comparisons are
// date-only.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateRecurringTransaction registers a new recurring definition. The first
// due date must not lie in the past.
func (s *recurringService) CreateRecurringTransaction(in CreateRecurringInput) (*models.RecurringTransaction, error) {
	if !in.Frequency.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown frequency")
	}

	today := dateOnly(s.now())
	dueDate := dateOnly(in.NextDueDate)
	if dueDate.Before(today) {
		return nil, apperrors.ErrInvalidDueDate
	}

	var user models.User
	if err := s.db.First(&user, in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var category models.Category
	if err := s.db.First(&category, in.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	recurring := &models.RecurringTransaction{
		UserID:      in.UserID,
		CategoryID:  in.CategoryID,
		Polarity:    category.Polarity,
		Amount:      in.Amount,
		Frequency:   in.Frequency,
		NextDueDate: dueDate,
	}

	if err := s.db.Create(recurring).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return recurring, nil
}

// GetRecurringByID retrieves a recurring transaction by ID.
func (s *recurringService) GetRecurringByID(id uint) (*models.RecurringTransaction, error) {
	var recurring models.RecurringTransaction
	if err := s.db.First(&recurring, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurringNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &recurring, nil
}

// ListRecurring returns a paginated list of all recurring transactions.
func (s *recurringService) ListRecurring(page pagination.PageRequest) (*pagination.PageResponse[models.RecurringTransaction], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.RecurringTransaction{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var recurrings []models.RecurringTransaction
	if err := base.Scopes(pagination.Paginate(page)).Find(&recurrings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(recurrings, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateRecurringTransaction applies a partial update: only the supplied
// fields change, everything else keeps its value.
func (s *recurringService) UpdateRecurringTransaction(id uint, patch UpdateRecurringInput) (*models.RecurringTransaction, error) {
	recurring, err := s.GetRecurringByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
	if patch.Frequency != nil {
		if !patch.Frequency.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown frequency")
		}
		updates["frequency"] = *patch.Frequency
	}
	if patch.NextDueDate != nil {
		updates["next_due_date"] = dateOnly(*patch.NextDueDate)
	}

	if len(updates) > 0 {
		if err := s.db.Model(recurring).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return recurring, nil
}

// DeleteRecurring removes a recurring transaction.
func (s *recurringService) DeleteRecurring(id uint) error {
	recurring, err := s.GetRecurringByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(recurring).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ProcessRecurringTransactions evaluates every recurring transaction against
// today's date: stale records are deleted, due records are materialized, and
// future records are left untouched. Each record's fate is decided
// independently; a failure on one record is logged and does not block the
// rest of the batch. Returns the transactions created in this pass.
func (s *recurringService) ProcessRecurringTransactions() ([]models.Transaction, error) {
	today := dateOnly(s.now())

	var recurrings []models.RecurringTransaction
	if err := s.db.Find(&recurrings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	log := logger.Get()
	created := make([]models.Transaction, 0)

	for i := range recurrings {
		rec := &recurrings[i]

		switch {
		case rec.NextDueDate.Before(today):
			// Stale: the due date passed without materialization.
			if err := s.db.Unscoped().Delete(rec).Error; err != nil {
				log.Errorw("failed to delete stale recurring transaction",
					"recurring_id", rec.ID,
					"next_due_date", rec.NextDueDate.Format(time.DateOnly),
					"error", err.Error(),
				)
				continue
			}
			log.Infow("deleted stale recurring transaction",
				"recurring_id", rec.ID,
				"next_due_date", rec.NextDueDate.Format(time.DateOnly),
			)

		case rec.NextDueDate.After(today):
			// Not due yet.

		default:
			transaction, err := s.materialize(rec.ID, today)
			if err != nil {
				log.Errorw("failed to materialize recurring transaction",
					"recurring_id", rec.ID,
					"error", err.Error(),
				)
				continue
			}
			if transaction != nil {
				created = append(created, *transaction)
			}
		}
	}

	log.Infow("recurring transaction processing complete",
		"processing_date", today.Format(time.DateOnly),
		"checked", len(recurrings),
		"materialized", len(created),
	)

	return created, nil
}

// materialize creates the concrete transaction for a due recurring record
// and advances its schedule by one period. Both writes happen inside a
// single database transaction under a row lock; the due date is re-checked
// after acquiring the lock so a concurrent batch cannot materialize the same
// record twice.
func (s *recurringService) materialize(recurringID uint, today time.Time) (*models.Transaction, error) {
	var transaction *models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx
		// SQLite has no SELECT FOR UPDATE; its single writer serializes
		// transactions anyway.
		if tx.Dialector.Name() != "sqlite" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var rec models.RecurringTransaction
		if err := query.First(&rec, recurringID).Error; err != nil {
			return err
		}

		if !rec.NextDueDate.Equal(today) {
			// Another batch got here first.
			return nil
		}

		transaction = &models.Transaction{
			UserID:     rec.UserID,
			CategoryID: rec.CategoryID,
			Polarity:   rec.Polarity,
			Amount:     rec.Amount,
		}
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		rec.NextDueDate = rec.NextDueDate.Add(rec.Frequency.Period())
		return tx.Save(&rec).Error
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}
