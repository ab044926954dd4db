package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgeteer/internal/services"
)

// UserHandler handles user lookup requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUserByID handles the retrieval of a user by ID
// @Summary     Get user by ID
// @Description Get a user's public profile by ID
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} UserResponse "User details"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

// GetTotalIncome handles the total income lookup for a user
// @Summary     Get total income
// @Description Sum of all income transaction amounts for the user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} map[string]int64 "Total income"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id}/income/total [get]
func (h *UserHandler) GetTotalIncome(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.userService.TotalIncome(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": id, "total_income": total})
}
