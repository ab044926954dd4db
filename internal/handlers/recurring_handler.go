package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"budgeteer/internal/models"
	"budgeteer/internal/pagination"
	"budgeteer/internal/services"
)

const dueDateLayout = "2006-01-02"

// RecurringHandler handles recurring transaction requests.
type RecurringHandler struct {
	recurringService services.RecurringServicer
}

// NewRecurringHandler creates a new RecurringHandler.
func NewRecurringHandler(recurringService services.RecurringServicer) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// CreateRecurringRequest represents the recurring transaction creation payload.
type CreateRecurringRequest struct {
	CategoryID  uint             `json:"category_id" binding:"required" example:"3"`
	Amount      int64            `json:"amount" binding:"required,min=10" example:"129900"`
	Frequency   models.Frequency `json:"frequency" binding:"required,frequency" example:"MONTHLY"`
	NextDueDate string           `json:"next_due_date" binding:"required,datetime=2006-01-02" example:"2026-09-01"`
}

// UpdateRecurringRequest represents a partial recurring transaction update.
// Omitted fields are left untouched.
type UpdateRecurringRequest struct {
	Amount      *int64            `json:"amount" binding:"omitempty,min=10"`
	Frequency   *models.Frequency `json:"frequency" binding:"omitempty,frequency"`
	NextDueDate *string           `json:"next_due_date" binding:"omitempty,datetime=2006-01-02"`
}

// RecurringResponse represents a recurring transaction in responses.
type RecurringResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	CategoryID  uint      `json:"category_id"`
	Polarity    string    `json:"polarity"`
	Amount      int64     `json:"amount"`
	Frequency   string    `json:"frequency"`
	NextDueDate string    `json:"next_due_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func recurringJSON(rec *models.RecurringTransaction) RecurringResponse {
	return RecurringResponse{
		ID:          rec.ID,
		UserID:      rec.UserID,
		CategoryID:  rec.CategoryID,
		Polarity:    string(rec.Polarity),
		Amount:      rec.Amount,
		Frequency:   string(rec.Frequency),
		NextDueDate: rec.NextDueDate.Format(dueDateLayout),
		CreatedAt:   rec.CreatedAt,
	}
}

// CreateRecurring handles recurring transaction creation
// @Summary     Create recurring transaction
// @Description Schedule a transaction to repeat at a fixed frequency
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateRecurringRequest true "Recurring transaction details"
// @Success     201 {object} RecurringResponse "Created recurring transaction"
// @Failure     400 {object} ErrorResponse "Invalid input or past due date"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /recurring [post]
func (h *RecurringHandler) CreateRecurring(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, err)
		return
	}

	dueDate, _ := time.Parse(dueDateLayout, req.NextDueDate)

	rec, err := h.recurringService.CreateRecurringTransaction(services.CreateRecurringInput{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Frequency:   req.Frequency,
		NextDueDate: dueDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recurring_transaction": recurringJSON(rec)})
}

// GetRecurring handles recurring transaction lookup by ID
// @Summary     Get recurring transaction
// @Description Get a recurring transaction by its ID
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Recurring transaction ID"
// @Success     200 {object} RecurringResponse "Recurring transaction details"
// @Failure     404 {object} ErrorResponse "Recurring transaction not found"
// @Router      /recurring/{id} [get]
func (h *RecurringHandler) GetRecurring(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	rec, err := h.recurringService.GetRecurringByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recurring_transaction": recurringJSON(rec)})
}

// ListRecurring handles listing recurring transactions
// @Summary     List recurring transactions
// @Description List all recurring transactions with pagination
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[RecurringResponse] "Recurring transactions"
// @Router      /recurring [get]
func (h *RecurringHandler) ListRecurring(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.recurringService.ListRecurring(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]RecurringResponse, 0, len(result.Data))
	for i := range result.Data {
		out = append(out, recurringJSON(&result.Data[i]))
	}

	c.JSON(http.StatusOK, pagination.PageResponse[RecurringResponse]{
		Data:       out,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

// UpdateRecurring handles partial updates of a recurring transaction
// @Summary     Update recurring transaction
// @Description Update amount, frequency or next due date. Omitted fields are unchanged.
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Recurring transaction ID"
// @Param       request body UpdateRecurringRequest true "Fields to update"
// @Success     200 {object} RecurringResponse "Updated recurring transaction"
// @Failure     404 {object} ErrorResponse "Recurring transaction not found"
// @Router      /recurring/{id} [patch]
func (h *RecurringHandler) UpdateRecurring(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, err)
		return
	}

	patch := services.UpdateRecurringInput{
		Amount:    req.Amount,
		Frequency: req.Frequency,
	}
	if req.NextDueDate != nil {
		dueDate, _ := time.Parse(dueDateLayout, *req.NextDueDate)
		patch.NextDueDate = &dueDate
	}

	rec, err := h.recurringService.UpdateRecurringTransaction(id, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recurring_transaction": recurringJSON(rec)})
}

// DeleteRecurring handles recurring transaction deletion
// @Summary     Delete recurring transaction
// @Description Stop a scheduled recurring transaction
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Recurring transaction ID"
// @Success     200 {object} MessageResponse "Recurring transaction deleted"
// @Failure     404 {object} ErrorResponse "Recurring transaction not found"
// @Router      /recurring/{id} [delete]
func (h *RecurringHandler) DeleteRecurring(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recurringService.DeleteRecurring(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Recurring transaction deleted successfully"})
}

// ProcessRecurring handles a manual materialization sweep
// @Summary     Process recurring transactions
// @Description Materialize due recurring transactions and purge stale ones. Admin only.
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} TransactionResponse "Transactions created by this sweep"
// @Failure     403 {object} ErrorResponse "Insufficient permissions"
// @Router      /recurring/process [post]
func (h *RecurringHandler) ProcessRecurring(c *gin.Context) {
	created, err := h.recurringService.ProcessRecurringTransactions()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"created_transactions": transactionListJSON(created)})
}
