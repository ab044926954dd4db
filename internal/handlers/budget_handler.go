package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgeteer/internal/services"
)

// BudgetHandler handles budget report requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GetBudget handles the budget report for the authenticated user
// @Summary     Get budget report
// @Description Planned versus actual spend per expense category the user has spent in
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.BudgetEntry "Budget entries"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entries, err := h.budgetService.GenerateEntriesForUser(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetAllBudgets handles the budget report across all users
// @Summary     Get all budget reports
// @Description Budget entries for every user, keyed by user ID. Admin only.
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[uint][]services.BudgetEntry "Entries per user"
// @Failure     403 {object} ErrorResponse "Insufficient permissions"
// @Failure     404 {object} ErrorResponse "No users exist"
// @Router      /budgets/all [get]
func (h *BudgetHandler) GetAllBudgets(c *gin.Context) {
	entries, err := h.budgetService.GenerateEntriesForAllUsers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
