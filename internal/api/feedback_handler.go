package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fintrack-backend-go/internal/core"
	"fintrack-backend-go/internal/models"
)

// FeedbackHandler handles POST /budgets/feedback.
type FeedbackHandler struct {
	feedbackService core.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(fs core.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: fs}
}

// Generate handles POST /budgets/feedback. Upstream generative-text faults
// surface as the fixed generic 500. Unparseable replies do not fail because
// the parser substitutes defaults.
func (h *FeedbackHandler) Generate(c *gin.Context) {
	if _, ok := callerIdentity(c); !ok {
		return
	}

	raw := map[string]interface{}{}
	if !bindBody(c, &raw) {
		return
	}
	required := []string{"budgetName", "income", "expenses", "totalIncome", "totalExpenses"}
	if missing := ValidateRequired(raw, required); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields", Details: strings.Join(missing, ", ")})
		return
	}

	var req models.FeedbackRequest
	if !bindBody(c, &req) {
		return
	}

	feedback, err := h.feedbackService.Generate(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, feedback)
}
