package research

import (
	"time"

	"github.com/google/uuid"
)

// categoryTitles are the display labels used for stored entry titles.
var categoryTitles = map[Category]string{
	CategoryCompetitor:  "Competitor Analysis",
	CategoryMarket:      "Market Analysis",
	CategoryVideoAd:     "Video/Ad Analysis",
	CategorySocialMedia: "Social Media Intel",
	CategoryAudience:    "Audience Research",
	CategoryTrend:       "Trend Analysis",
}

// Entry is the stored record for one per-category result. It flattens the
// input and result into a single document.
type Entry struct {
	ID         string         `json:"id" firestore:"id"`
	ProjectID  string         `json:"project_id" firestore:"project_id"`
	UserID     string         `json:"user_id" firestore:"user_id"`
	Category   Category       `json:"category" firestore:"category"`
	Query      string         `json:"query" firestore:"query"`
	InputType  InputType      `json:"input_type" firestore:"input_type"`
	Context    map[string]any `json:"context,omitempty" firestore:"context,omitempty"`
	Analysis   map[string]any `json:"analysis" firestore:"analysis"`
	Summary    string         `json:"summary" firestore:"summary"`
	Sources    []Source       `json:"sources" firestore:"sources"`
	Confidence float64        `json:"confidence" firestore:"confidence"`
	ToolsUsed  []string       `json:"tools_used" firestore:"tools_used"`
	DurationMS int64          `json:"duration_ms" firestore:"duration_ms"`
	Status     Status         `json:"status" firestore:"status"`
	Err        string         `json:"error,omitempty" firestore:"error,omitempty"`
	Title      string         `json:"title" firestore:"title"`
	Tags       []string       `json:"tags" firestore:"tags"`
	CreatedAt  time.Time      `json:"created_at" firestore:"created_at"`
}

// NewEntry builds a storable record from one settled result.
func NewEntry(projectID, userID string, input Input, result Result) *Entry {
	return &Entry{
		ID:         uuid.NewString(),
		ProjectID:  projectID,
		UserID:     userID,
		Category:   result.Category,
		Query:      input.Query,
		InputType:  input.InputType,
		Context:    input.Context,
		Analysis:   result.Analysis,
		Summary:    result.Summary,
		Sources:    result.Sources,
		Confidence: result.Confidence,
		ToolsUsed:  result.ToolsUsed,
		DurationMS: result.Duration.Milliseconds(),
		Status:     result.Status,
		Err:        result.Err,
		Title:      entryTitle(input.Query, result.Category),
		Tags:       []string{},
		CreatedAt:  time.Now().UTC(),
	}
}

// entryTitle builds a display title like "Market Analysis: Nike running shoes".
func entryTitle(query string, category Category) string {
	label, ok := categoryTitles[category]
	if !ok {
		label = "Research"
	}
	name := query
	if len(name) > 50 {
		name = name[:50] + "..."
	}
	return label + ": " + name
}
