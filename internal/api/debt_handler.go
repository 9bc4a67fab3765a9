package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fintrack-backend-go/internal/core"
	"fintrack-backend-go/internal/models"
)

// DebtHandler handles the /debts endpoints.
type DebtHandler struct {
	debtService core.DebtService
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(ds core.DebtService) *DebtHandler {
	return &DebtHandler{debtService: ds}
}

func mapDebtError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrDebtNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrDebtNotFound.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// List handles GET /debts.
func (h *DebtHandler) List(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	debts, err := h.debtService.List(c.Request.Context(), identity.Subject)
	if err != nil {
		mapDebtError(c, err)
		return
	}
	c.JSON(http.StatusOK, debts)
}

// Get handles GET /debts/:debtId.
func (h *DebtHandler) Get(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	debtID := c.Param("debtId")
	if debtID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Debt ID is required"})
		return
	}

	debt, err := h.debtService.Get(c.Request.Context(), identity.Subject, debtID)
	if err != nil {
		mapDebtError(c, err)
		return
	}
	c.JSON(http.StatusOK, debt)
}

// Create handles POST /debts.
func (h *DebtHandler) Create(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	raw := map[string]interface{}{}
	if !bindBody(c, &raw) {
		return
	}
	required := []string{"name", "currentBalance", "interestRate", "minimumPayment"}
	if missing := ValidateRequired(raw, required); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields", Details: strings.Join(missing, ", ")})
		return
	}

	var req models.CreateDebtRequest
	if !bindBody(c, &req) {
		return
	}

	debt, err := h.debtService.Create(c.Request.Context(), identity.Subject, req)
	if err != nil {
		mapDebtError(c, err)
		return
	}
	c.JSON(http.StatusCreated, debt)
}

// Update handles PUT /debts/:debtId.
func (h *DebtHandler) Update(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	debtID := c.Param("debtId")
	if debtID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Debt ID is required"})
		return
	}

	fields := map[string]interface{}{}
	if !bindBody(c, &fields) {
		return
	}

	debt, err := h.debtService.Update(c.Request.Context(), identity.Subject, debtID, fields)
	if err != nil {
		mapDebtError(c, err)
		return
	}
	c.JSON(http.StatusOK, debt)
}

// Delete handles DELETE /debts/:debtId.
func (h *DebtHandler) Delete(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	debtID := c.Param("debtId")
	if debtID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Debt ID is required"})
		return
	}

	if err := h.debtService.Delete(c.Request.Context(), identity.Subject, debtID); err != nil {
		mapDebtError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Debt deleted successfully"})
}
