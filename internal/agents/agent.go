package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/brandscope/research-hub/internal/llm"
	"github.com/brandscope/research-hub/internal/research"
)

// definition carries the static capability contract of one agent variant:
// which category it serves, which tool tags it requires, and the shape of the
// analysis it promises to produce. The tool set is fixed per variant and is
// validated when the registry is built, not at call time.
type definition struct {
	category     research.Category
	name         string
	description  string
	tools        []string
	outputFields []string

	// role is the analyst persona and instructions prepended to every prompt.
	role string
}

// Agent is a single research agent backed by an inference provider. All six
// category variants share this implementation and differ only by definition.
type Agent struct {
	provider llm.Provider
	def      definition
}

func newAgent(provider llm.Provider, def definition) *Agent {
	return &Agent{provider: provider, def: def}
}

// Describe returns the agent's static metadata. It has no side effects.
func (a *Agent) Describe() research.AgentInfo {
	return research.AgentInfo{
		Category:     a.def.category,
		Name:         a.def.name,
		Description:  a.def.description,
		Tools:        a.def.tools,
		OutputFields: a.def.outputFields,
	}
}

// Research runs one inference round and shapes the response into a Result.
// It never returns an error: provider failures, malformed output and every
// other internal problem become a failed Result.
func (a *Agent) Research(ctx context.Context, input research.Input) research.Result {
	start := time.Now()

	prompt := a.buildPrompt(input)
	resp, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		slog.Error("inference call failed", "category", a.def.category, "error", err)
		res := research.FailedResult(a.def.category, err.Error(), time.Since(start))
		res.ToolsUsed = a.def.tools
		return res
	}

	analysis := parseAnalysis(resp.Content)
	if _, bad := analysis["parse_error"]; bad {
		slog.Warn("malformed model response", "category", a.def.category)
		res := research.FailedResult(a.def.category, "malformed model response", time.Since(start))
		res.Analysis = analysis
		res.ToolsUsed = a.def.tools
		return res
	}
	confidence := completeness(analysis, a.def.outputFields)

	return research.Result{
		Category:   a.def.category,
		Status:     research.StatusCompleted,
		Analysis:   analysis,
		Summary:    a.summarize(analysis),
		Sources:    extractSources(analysis),
		Confidence: confidence,
		ToolsUsed:  a.def.tools,
		Duration:   time.Since(start),
	}
}

// buildPrompt assembles the full prompt: persona, subject, optional context,
// and the strict JSON output contract listing the expected fields.
func (a *Agent) buildPrompt(input research.Input) string {
	var b strings.Builder
	b.WriteString(a.def.role)
	b.WriteString("\n\nSubject/Query: ")
	b.WriteString(input.Query)
	b.WriteString("\nInput type: ")
	b.WriteString(string(input.InputType))
	if len(input.Context) > 0 {
		if ctxJSON, err := json.Marshal(input.Context); err == nil {
			b.WriteString("\nContext: ")
			b.Write(ctxJSON)
		}
	}

	b.WriteString("\n\nReturn your analysis as a single valid JSON object with exactly these top-level fields:\n")
	for _, f := range a.def.outputFields {
		fmt.Fprintf(&b, "  - %s\n", f)
	}
	b.WriteString("  - summary (executive summary of the findings)\n")
	b.WriteString("  - sources (list of {url, title} objects you relied on)\n")
	b.WriteString(`
Requirements:
- Be thorough and accurate
- Include real, verifiable information
- Only return the JSON object, no additional text or markdown code blocks
- If you cannot find information for a field, use null or an empty array
`)
	return b.String()
}

// summarize picks the model-provided summary or degrades to a field digest.
func (a *Agent) summarize(analysis map[string]any) string {
	if s, ok := analysis["summary"].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}

	var parts []string
	for _, field := range a.def.outputFields {
		if len(parts) == 3 {
			break
		}
		switch v := analysis[field].(type) {
		case string:
			if v != "" {
				parts = append(parts, fmt.Sprintf("%s: %.100s", field, v))
			}
		case []any:
			if len(v) > 0 {
				parts = append(parts, fmt.Sprintf("%s: %d items found", field, len(v)))
			}
		}
	}
	if len(parts) == 0 {
		return "Analysis completed"
	}
	return strings.Join(parts, "; ")
}

// parseAnalysis decodes the model output, tolerating markdown code fences.
// Unparseable output is preserved raw under "raw_response" and flagged.
func parseAnalysis(text string) map[string]any {
	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err == nil {
		return out
	}

	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")

	if err := json.Unmarshal([]byte(strings.TrimSpace(trimmed)), &out); err == nil {
		return out
	}
	return map[string]any{"raw_response": text, "parse_error": true}
}

// completeness scores how many expected fields the analysis actually filled.
func completeness(analysis map[string]any, fields []string) float64 {
	if _, bad := analysis["parse_error"]; bad {
		return 0.0
	}
	if len(fields) == 0 {
		return 0.5
	}

	filled := 0
	for _, field := range fields {
		switch v := analysis[field].(type) {
		case nil:
		case string:
			if strings.TrimSpace(v) != "" {
				filled++
			}
		case []any:
			if len(v) > 0 {
				filled++
			}
		case map[string]any:
			if len(v) > 0 {
				filled++
			}
		default:
			filled++
		}
	}
	return float64(filled) / float64(len(fields))
}

// extractSources lifts the sources array, when present, out of the analysis.
func extractSources(analysis map[string]any) []research.Source {
	sources := []research.Source{}
	raw, ok := analysis["sources"].([]any)
	if !ok {
		return sources
	}
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		url, _ := m["url"].(string)
		if url == "" {
			continue
		}
		title, _ := m["title"].(string)
		sources = append(sources, research.Source{URL: url, Title: title, Kind: "web"})
	}
	return sources
}
