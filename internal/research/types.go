package research

import (
	"context"
	"fmt"
	"time"
)

// Category identifies which research agent handles a request.
type Category string

const (
	CategoryCompetitor  Category = "competitor"
	CategoryMarket      Category = "market"
	CategoryVideoAd     Category = "video_ad"
	CategorySocialMedia Category = "social_media"
	CategoryAudience    Category = "audience"
	CategoryTrend       Category = "trend"
)

// categoryOrder fixes the ordinal order used whenever results need a
// deterministic serialization order. Completion order under concurrency is
// intentionally non-deterministic and must never be relied on.
var categoryOrder = []Category{
	CategoryCompetitor,
	CategoryMarket,
	CategoryVideoAd,
	CategorySocialMedia,
	CategoryAudience,
	CategoryTrend,
}

// Categories returns all known categories in ordinal order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	for _, c := range categoryOrder {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid research category %q", s)
}

// ordinal returns the declaration index of a category. Unknown categories
// sort after all known ones.
func ordinal(c Category) int {
	for i, k := range categoryOrder {
		if k == c {
			return i
		}
	}
	return len(categoryOrder)
}

// InputType describes the nature of the query. It only enriches the prompt
// context; the orchestrator attaches no behavior to it.
type InputType string

const (
	InputTypeURL       InputType = "url"
	InputTypeVideoURL  InputType = "video_url"
	InputTypeTopic     InputType = "topic"
	InputTypeBrandName InputType = "brand_name"
	InputTypeText      InputType = "text"
)

// ParseInputType validates a raw input type string.
func ParseInputType(s string) (InputType, error) {
	switch t := InputType(s); t {
	case InputTypeURL, InputTypeVideoURL, InputTypeTopic, InputTypeBrandName, InputTypeText:
		return t, nil
	}
	return "", fmt.Errorf("invalid input type %q", s)
}

// Status is the terminal state of a research result.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Source is a single reference used during research.
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Kind  string `json:"kind"` // "web", "youtube", "social", "rag"
}

// Input is the immutable value shared read-only by every agent in a batch.
type Input struct {
	Query     string         `json:"query"`
	InputType InputType      `json:"input_type"`
	Context   map[string]any `json:"context,omitempty"`
}

// Result is the per-category outcome of one research task.
type Result struct {
	Category   Category       `json:"category"`
	Status     Status         `json:"status"`
	Analysis   map[string]any `json:"analysis"`
	Summary    string         `json:"summary"`
	Sources    []Source       `json:"sources"`
	Confidence float64        `json:"confidence"`
	ToolsUsed  []string       `json:"tools_used"`
	Duration   time.Duration  `json:"duration"`
	Err        string         `json:"error,omitempty"`
}

// FailedResult builds the uniform failure value used for every failure kind:
// unknown category, timeout, and agent execution failure.
func FailedResult(category Category, reason string, elapsed time.Duration) Result {
	return Result{
		Category: category,
		Status:   StatusFailed,
		Analysis: map[string]any{"error": reason},
		Summary:  "Research failed: " + reason,
		Sources:  []Source{},
		Duration: elapsed,
		Err:      reason,
	}
}

// AgentInfo is static agent metadata exposed for discovery.
type AgentInfo struct {
	Category     Category `json:"category"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Tools        []string `json:"tools"`
	OutputFields []string `json:"output_fields"`
}

// Agent turns a research input into a result for one category.
//
// Research must not return an error and must not let a panic escape: any
// internal failure is reported as a Result with StatusFailed and a non-empty
// Err. The orchestrator still recovers at the task boundary as a backstop.
type Agent interface {
	Research(ctx context.Context, input Input) Result
	Describe() AgentInfo
}
