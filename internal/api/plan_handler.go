package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fintrack-backend-go/internal/core"
	"fintrack-backend-go/internal/models"
)

// PlanHandler handles the /plans endpoints.
type PlanHandler struct {
	planService core.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(ps core.PlanService) *PlanHandler {
	return &PlanHandler{planService: ps}
}

func mapPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrPlanNotFound.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// List handles GET /plans.
func (h *PlanHandler) List(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	plans, err := h.planService.List(c.Request.Context(), identity.Subject)
	if err != nil {
		mapPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// Get handles GET /plans/:planId.
func (h *PlanHandler) Get(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}

	plan, err := h.planService.Get(c.Request.Context(), identity.Subject, planID)
	if err != nil {
		mapPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Create handles POST /plans.
func (h *PlanHandler) Create(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	raw := map[string]interface{}{}
	if !bindBody(c, &raw) {
		return
	}
	if missing := ValidateRequired(raw, []string{"name"}); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields", Details: strings.Join(missing, ", ")})
		return
	}

	var req models.CreatePlanRequest
	if !bindBody(c, &req) {
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), identity.Subject, req)
	if err != nil {
		mapPlanError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// Update handles PUT /plans/:planId.
func (h *PlanHandler) Update(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}

	fields := map[string]interface{}{}
	if !bindBody(c, &fields) {
		return
	}

	plan, err := h.planService.Update(c.Request.Context(), identity.Subject, planID, fields)
	if err != nil {
		mapPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Delete handles DELETE /plans/:planId.
func (h *PlanHandler) Delete(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}
	planID := c.Param("planId")
	if planID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plan ID is required"})
		return
	}

	if err := h.planService.Delete(c.Request.Context(), identity.Subject, planID); err != nil {
		mapPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Plan deleted successfully"})
}
