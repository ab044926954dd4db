package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgeteer/internal/errors"
	"budgeteer/internal/models"
	"budgeteer/internal/services"
)

// TransactionHandler handles transaction requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the transaction creation payload.
// Amounts are integer minor currency units; anything below 10 is rejected.
type CreateTransactionRequest struct {
	CategoryID uint  `json:"category_id" binding:"required" example:"3"`
	Amount     int64 `json:"amount" binding:"required,min=10" example:"2500"`
}

// ChangeAmountRequest represents an amount update payload.
type ChangeAmountRequest struct {
	Amount int64 `json:"amount" binding:"required,min=10" example:"3000"`
}

// TransactionResponse represents a transaction in responses.
type TransactionResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	CategoryID uint      `json:"category_id"`
	Polarity   string    `json:"polarity"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

func transactionJSON(txn *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         txn.ID,
		UserID:     txn.UserID,
		CategoryID: txn.CategoryID,
		Polarity:   string(txn.Polarity),
		Amount:     txn.Amount,
		CreatedAt:  txn.CreatedAt,
	}
}

func transactionListJSON(txns []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, transactionJSON(&txns[i]))
	}
	return out
}

// CreateTransaction handles transaction creation
// @Summary     Create transaction
// @Description Record a new transaction for the authenticated user
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Created transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(userID, req.CategoryID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transactionJSON(txn)})
}

// GetTransaction handles transaction lookup by ID
// @Summary     Get transaction
// @Description Get a transaction by its ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction details"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	txn, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transactionJSON(txn)})
}

// ChangeAmount handles amount updates
// @Summary     Change transaction amount
// @Description Update the amount of an existing transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Param       request body ChangeAmountRequest true "New amount"
// @Success     200 {object} TransactionResponse "Updated transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id}/amount [put]
func (h *TransactionHandler) ChangeAmount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChangeAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, err)
		return
	}

	txn, err := h.transactionService.ChangeAmount(id, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transactionJSON(txn)})
}

// FindHigherThan handles threshold queries
// @Summary     Find transactions above a threshold
// @Description List transactions of one polarity with amount strictly above the threshold
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       amount query int true "Exclusive lower bound in minor units"
// @Param       polarity query string true "Polarity" Enums(income, expense)
// @Success     200 {array} TransactionResponse "Matching transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/higher-than [get]
func (h *TransactionHandler) FindHigherThan(c *gin.Context) {
	var query struct {
		Amount   int64           `form:"amount" binding:"required,min=1"`
		Polarity models.Polarity `form:"polarity" binding:"required,polarity"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, err)
		return
	}

	txns, err := h.transactionService.FindHigherThan(query.Amount, query.Polarity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactionListJSON(txns)})
}

// ListByCategory handles listing transactions of a category
// @Summary     List transactions by category
// @Description List all transactions recorded against a category name
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       category query string true "Category name"
// @Success     200 {array} TransactionResponse "Transactions"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /transactions [get]
func (h *TransactionHandler) ListByCategory(c *gin.Context) {
	name := c.Query("category")
	if name == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing category query parameter"))
		return
	}

	txns, err := h.transactionService.ListByCategory(name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactionListJSON(txns)})
}
