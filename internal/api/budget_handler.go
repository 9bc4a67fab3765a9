package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fintrack-backend-go/internal/core"
	"fintrack-backend-go/internal/models"
)

// BudgetHandler handles the /budgets endpoints.
type BudgetHandler struct {
	budgetService core.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(bs core.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: bs}
}

func mapBudgetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrBudgetNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrBudgetNotFound.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// List handles GET /budgets.
func (h *BudgetHandler) List(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	budgets, err := h.budgetService.List(c.Request.Context(), identity.Subject)
	if err != nil {
		mapBudgetError(c, err)
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// Get handles GET /budgets/:budgetId.
func (h *BudgetHandler) Get(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	budgetID := c.Param("budgetId")
	if budgetID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Budget ID is required"})
		return
	}

	budget, err := h.budgetService.Get(c.Request.Context(), identity.Subject, budgetID)
	if err != nil {
		mapBudgetError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// Create handles POST /budgets. Note the required-field check means a budget
// can only be created with isActive set truthy; isActive:false trips the
// truthiness validation.
func (h *BudgetHandler) Create(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	raw := map[string]interface{}{}
	if !bindBody(c, &raw) {
		return
	}
	if missing := ValidateRequired(raw, []string{"name", "isActive"}); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields", Details: strings.Join(missing, ", ")})
		return
	}

	var req models.CreateBudgetRequest
	if !bindBody(c, &req) {
		return
	}

	budget, err := h.budgetService.Create(c.Request.Context(), identity.Subject, req)
	if err != nil {
		mapBudgetError(c, err)
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// Update handles PUT /budgets/:budgetId.
func (h *BudgetHandler) Update(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	budgetID := c.Param("budgetId")
	if budgetID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Budget ID is required"})
		return
	}

	fields := map[string]interface{}{}
	if !bindBody(c, &fields) {
		return
	}

	budget, err := h.budgetService.Update(c.Request.Context(), identity.Subject, budgetID, fields)
	if err != nil {
		mapBudgetError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// Delete handles DELETE /budgets/:budgetId.
func (h *BudgetHandler) Delete(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	budgetID := c.Param("budgetId")
	if budgetID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Budget ID is required"})
		return
	}

	if err := h.budgetService.Delete(c.Request.Context(), identity.Subject, budgetID); err != nil {
		mapBudgetError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Budget deleted successfully"})
}
