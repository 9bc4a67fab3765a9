package core

import (
	"context"
	"fmt"
	"strings"

	"fintrack-backend-go/internal/llm"
	"fintrack-backend-go/internal/models"
)

// feedbackService implements the FeedbackService interface.
type feedbackService struct {
	client llm.Client
}

// NewFeedbackService creates a new FeedbackService instance.
func NewFeedbackService(client llm.Client) FeedbackService {
	return &feedbackService{client: client}
}

// Generate builds a deterministic prompt from the budget figures, calls the
// generative backend and distills the free-text reply into a structured
// result. An upstream failure propagates as an error; an unparseable reply
// does not, since the parser falls back to fixed defaults.
func (s *feedbackService) Generate(ctx context.Context, req models.FeedbackRequest) (*models.BudgetFeedback, error) {
	prompt := BuildFeedbackPrompt(req)

	reply, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("feedback completion failed: %w", err)
	}

	feedback := ParseFeedback(reply)
	return &feedback, nil
}

// BuildFeedbackPrompt renders the budget into a natural-language prompt. The
// output is deterministic for a given request so the upstream call is
// reproducible.
func BuildFeedbackPrompt(req models.FeedbackRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a personal finance adviser. Review the monthly budget %q.\n\n", req.BudgetName)

	b.WriteString("Income:\n")
	for _, item := range req.Income {
		fmt.Fprintf(&b, "- %s: %.2f\n", item.Name, item.Amount)
	}
	b.WriteString("Expenses:\n")
	for _, item := range req.Expenses {
		fmt.Fprintf(&b, "- %s: %.2f\n", item.Name, item.Amount)
	}

	fmt.Fprintf(&b, "Total income: %.2f\n", req.TotalIncome)
	fmt.Fprintf(&b, "Total expenses: %.2f\n", req.TotalExpenses)
	fmt.Fprintf(&b, "Savings rate: %s%%\n\n", SavingsRate(req.TotalIncome, req.TotalExpenses))

	b.WriteString("Respond with three sections.\n")
	b.WriteString("Improvements: up to three bullet points starting with '-'.\n")
	b.WriteString("Strengths: up to two bullet points starting with '-'.\n")
	b.WriteString("Summary: a short paragraph, no bullets.\n")

	return b.String()
}

// SavingsRate renders (income-expenses)/income*100 to one decimal place, or
// "0" when income is zero.
func SavingsRate(totalIncome, totalExpenses float64) string {
	if totalIncome == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", (totalIncome-totalExpenses)/totalIncome*100)
}
