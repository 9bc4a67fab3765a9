package core

import (
	"strings"

	"fintrack-backend-go/internal/models"
)

// Caps applied to the parsed result.
const (
	maxImprovements = 3
	maxStrengths    = 2
	maxSummaryLen   = 300
)

// Fallback text substituted for any bucket the reply left empty.
var (
	defaultImprovements = []string{"Review your largest expense categories for savings opportunities."}
	defaultStrengths    = []string{"You are actively tracking your budget."}
	defaultSummary      = "Keep monitoring your income and expenses to stay on track."
)

const (
	sectionNone = iota
	sectionImprovements
	sectionStrengths
	sectionSummary
)

// ParseFeedback distills a free-text completion into structured feedback.
// The reply is scanned line by line. A line containing "improvement",
// "strength"/"doing well" or "summary" (case-insensitive) switches the
// current section. Bullet lines ("-" or "•" prefixed) bucket into the
// improvements and strengths lists; non-bulleted lines after the summary
// marker accumulate into the summary string. The parser is heuristic and
// deliberately format-fragile: the upstream model's phrasing drives
// correctness, and empty buckets fall back to fixed defaults.
func ParseFeedback(text string) models.BudgetFeedback {
	var improvements, strengths []string
	var summaryParts []string
	section := sectionNone

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		lower := strings.ToLower(trimmed)
		switch {
		case strings.Contains(lower, "improvement"):
			section = sectionImprovements
			continue
		case strings.Contains(lower, "strength"), strings.Contains(lower, "doing well"):
			section = sectionStrengths
			continue
		case strings.Contains(lower, "summary"):
			section = sectionSummary
			continue
		}

		bullet := strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•")
		switch {
		case section == sectionImprovements && bullet && len(improvements) < maxImprovements:
			improvements = append(improvements, trimBullet(trimmed))
		case section == sectionStrengths && bullet && len(strengths) < maxStrengths:
			strengths = append(strengths, trimBullet(trimmed))
		case section == sectionSummary && !bullet:
			summaryParts = append(summaryParts, trimmed)
		}
	}

	summary := strings.Join(summaryParts, " ")
	if len(summary) > maxSummaryLen {
		summary = summary[:maxSummaryLen]
	}

	if len(improvements) == 0 {
		improvements = append([]string(nil), defaultImprovements...)
	}
	if len(strengths) == 0 {
		strengths = append([]string(nil), defaultStrengths...)
	}
	if summary == "" {
		summary = defaultSummary
	}

	return models.BudgetFeedback{
		Improvements: improvements,
		Strengths:    strengths,
		Summary:      summary,
	}
}

func trimBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "-• "))
}
