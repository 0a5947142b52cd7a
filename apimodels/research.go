package apimodels

// ResearchRequest is the body of POST /api/v1/research.
type ResearchRequest struct {
	// ProjectID and UserID key the stored entries.
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`

	// Categories lists the research categories to run. Duplicates collapse.
	Categories []string `json:"categories"`

	// Query is the subject of the research: a URL, brand name, or free text.
	Query string `json:"query"`

	// InputType is auto-detected from the query when omitted.
	InputType string `json:"input_type,omitempty"`

	// Context carries optional extra hints for the agents.
	Context map[string]any `json:"context,omitempty"`

	// TimeoutSeconds overrides the per-agent deadline when positive.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
}

// CategoryResult is one category's outcome as serialized to clients.
type CategoryResult struct {
	Category   string         `json:"category"`
	Status     string         `json:"status"`
	Analysis   map[string]any `json:"analysis"`
	Summary    string         `json:"summary"`
	Sources    []SourceInfo   `json:"sources"`
	Confidence float64        `json:"confidence"`
	ToolsUsed  []string       `json:"tools_used"`
	DurationMS int64          `json:"duration_ms"`
	Error      string         `json:"error,omitempty"`
}

type SourceInfo struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
}

// ResearchResponse is the reply to a batch research call. Results are ordered
// by category ordinal, not by completion time.
type ResearchResponse struct {
	Results   []CategoryResult  `json:"results"`
	Synthesis SynthesisResponse `json:"synthesis"`
}

// SynthesisResponse is the cross-category aggregate summary.
type SynthesisResponse struct {
	TotalRequested    int                        `json:"total_requested"`
	Successful        int                        `json:"successful"`
	Failed            int                        `json:"failed"`
	TotalSources      int                        `json:"total_sources"`
	AverageConfidence float64                    `json:"average_confidence"`
	TotalDurationMS   int64                      `json:"total_duration_ms"`
	KeyFindings       []KeyFinding               `json:"key_findings"`
	ByCategory        map[string]CategorySummary `json:"by_category"`
}

type KeyFinding struct {
	Category string `json:"category"`
	Finding  string `json:"finding"`
}

type CategorySummary struct {
	Status      string  `json:"status"`
	Summary     string  `json:"summary"`
	Confidence  float64 `json:"confidence"`
	SourceCount int     `json:"source_count"`
}

// AgentInfoResponse describes one registered agent for discovery.
type AgentInfoResponse struct {
	Category     string   `json:"category"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Tools        []string `json:"tools"`
	OutputFields []string `json:"output_fields"`
}
