package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fintrack-backend-go/internal/core"
)

func TestParseFeedback_WellFormedReply(t *testing.T) {
	reply := strings.Join([]string{
		"Improvements:",
		"- Cut discretionary dining out",
		"- Raise your automatic savings transfer",
		"Strengths:",
		"- Housing costs are well below a third of income",
		"Summary:",
		"A healthy budget overall.",
		"Savings could grow faster with small cuts.",
	}, "\n")

	got := core.ParseFeedback(reply)

	assert.Equal(t, []string{
		"Cut discretionary dining out",
		"Raise your automatic savings transfer",
	}, got.Improvements)
	assert.Equal(t, []string{"Housing costs are well below a third of income"}, got.Strengths)
	assert.Equal(t, "A healthy budget overall. Savings could grow faster with small cuts.", got.Summary)
}

func TestParseFeedback_MarkersAreCaseInsensitive(t *testing.T) {
	reply := strings.Join([]string{
		"AREAS FOR IMPROVEMENT",
		"• Trim subscription services",
		"What you are DOING WELL",
		"• Consistent surplus every month",
		"SUMMARY",
		"Solid footing.",
	}, "\n")

	got := core.ParseFeedback(reply)

	assert.Equal(t, []string{"Trim subscription services"}, got.Improvements)
	assert.Equal(t, []string{"Consistent surplus every month"}, got.Strengths)
	assert.Equal(t, "Solid footing.", got.Summary)
}

func TestParseFeedback_CapsBuckets(t *testing.T) {
	reply := strings.Join([]string{
		"Improvements:",
		"- one",
		"- two",
		"- three",
		"- four",
		"- five",
		"Strengths:",
		"- a",
		"- b",
		"- c",
	}, "\n")

	got := core.ParseFeedback(reply)

	assert.Equal(t, []string{"one", "two", "three"}, got.Improvements)
	assert.Equal(t, []string{"a", "b"}, got.Strengths)
}

func TestParseFeedback_SummaryCappedAt300Chars(t *testing.T) {
	long := strings.Repeat("word ", 100) // 500 chars
	reply := "Summary:\n" + long

	got := core.ParseFeedback(reply)

	assert.Len(t, got.Summary, 300)
}

func TestParseFeedback_BulletsIgnoredInSummary(t *testing.T) {
	reply := strings.Join([]string{
		"Summary:",
		"- this bullet is skipped",
		"Only prose counts.",
	}, "\n")

	got := core.ParseFeedback(reply)

	assert.Equal(t, "Only prose counts.", got.Summary)
}

func TestParseFeedback_NoRecognizableSections_FallsBackToDefaults(t *testing.T) {
	got := core.ParseFeedback("The model rambled about something else entirely.")

	assert.NotEmpty(t, got.Improvements)
	assert.NotEmpty(t, got.Strengths)
	assert.NotEmpty(t, got.Summary)
}

func TestParseFeedback_EmptyInput_FallsBackToDefaults(t *testing.T) {
	got := core.ParseFeedback("")

	assert.Len(t, got.Improvements, 1)
	assert.Len(t, got.Strengths, 1)
	assert.NotEmpty(t, got.Summary)
}

func TestParseFeedback_BulletsOutsideAnySectionAreDropped(t *testing.T) {
	reply := strings.Join([]string{
		"- stray bullet before any marker",
		"Strengths:",
		"- kept",
	}, "\n")

	got := core.ParseFeedback(reply)

	assert.Equal(t, []string{"kept"}, got.Strengths)
	// Improvements stayed empty, so the default applies.
	assert.Len(t, got.Improvements, 1)
	assert.NotEqual(t, "stray bullet before any marker", got.Improvements[0])
}
