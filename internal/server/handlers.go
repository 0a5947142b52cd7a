package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brandscope/research-hub/apimodels"
	"github.com/brandscope/research-hub/internal/research"
)

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var body apimodels.ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req, err := toResearchRequest(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Debug("received research request", "categories", body.Categories, "query", body.Query)

	results, err := s.orchestrator.ExecuteResearch(r.Context(), req)
	if err != nil {
		slog.Error("research request failed", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, toResearchResponse(results))
}

func (s *Server) handleResearchSingle(w http.ResponseWriter, r *http.Request) {
	category, err := research.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body apimodels.ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	body.Categories = []string{string(category)}
	req, err := toResearchRequest(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := s.orchestrator.ExecuteSingle(r.Context(), category, req)
	writeJSON(w, toCategoryResult(result))
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	infos := s.orchestrator.AvailableAgents()
	out := make([]apimodels.AgentInfoResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, apimodels.AgentInfoResponse{
			Category:     string(info.Category),
			Name:         info.Name,
			Description:  info.Description,
			Tools:        info.Tools,
			OutputFields: info.OutputFields,
		})
	}
	writeJSON(w, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResearchRequest(body apimodels.ResearchRequest) (research.Request, error) {
	if body.Query == "" {
		return research.Request{}, fmt.Errorf("query is required")
	}
	if len(body.Categories) == 0 {
		return research.Request{}, fmt.Errorf("at least one category is required")
	}

	categories := make([]research.Category, 0, len(body.Categories))
	for _, raw := range body.Categories {
		cat, err := research.ParseCategory(raw)
		if err != nil {
			return research.Request{}, err
		}
		categories = append(categories, cat)
	}

	var inputType research.InputType
	if body.InputType != "" {
		parsed, err := research.ParseInputType(body.InputType)
		if err != nil {
			return research.Request{}, err
		}
		inputType = parsed
	}

	return research.Request{
		ProjectID:  body.ProjectID,
		UserID:     body.UserID,
		Categories: categories,
		Query:      body.Query,
		InputType:  inputType,
		Context:    body.Context,
		Timeout:    time.Duration(body.TimeoutSeconds) * time.Second,
	}, nil
}

func toResearchResponse(results map[research.Category]research.Result) apimodels.ResearchResponse {
	resp := apimodels.ResearchResponse{
		Results:   make([]apimodels.CategoryResult, 0, len(results)),
		Synthesis: toSynthesisResponse(research.Synthesize(results)),
	}
	for _, cat := range research.SortedCategories(results) {
		resp.Results = append(resp.Results, toCategoryResult(results[cat]))
	}
	return resp
}

func toCategoryResult(res research.Result) apimodels.CategoryResult {
	sources := make([]apimodels.SourceInfo, 0, len(res.Sources))
	for _, src := range res.Sources {
		sources = append(sources, apimodels.SourceInfo{URL: src.URL, Title: src.Title, Kind: src.Kind})
	}
	return apimodels.CategoryResult{
		Category:   string(res.Category),
		Status:     string(res.Status),
		Analysis:   res.Analysis,
		Summary:    res.Summary,
		Sources:    sources,
		Confidence: res.Confidence,
		ToolsUsed:  res.ToolsUsed,
		DurationMS: res.Duration.Milliseconds(),
		Error:      res.Err,
	}
}

func toSynthesisResponse(s research.Synthesis) apimodels.SynthesisResponse {
	out := apimodels.SynthesisResponse{
		TotalRequested:    s.TotalRequested,
		Successful:        s.Successful,
		Failed:            s.Failed,
		TotalSources:      s.TotalSources,
		AverageConfidence: s.AverageConfidence,
		TotalDurationMS:   s.TotalDuration.Milliseconds(),
		KeyFindings:       make([]apimodels.KeyFinding, 0, len(s.KeyFindings)),
		ByCategory:        make(map[string]apimodels.CategorySummary, len(s.ByCategory)),
	}
	for _, f := range s.KeyFindings {
		out.KeyFindings = append(out.KeyFindings, apimodels.KeyFinding{
			Category: string(f.Category),
			Finding:  f.Finding,
		})
	}
	for cat, summary := range s.ByCategory {
		out.ByCategory[string(cat)] = apimodels.CategorySummary{
			Status:      string(summary.Status),
			Summary:     summary.Summary,
			Confidence:  summary.Confidence,
			SourceCount: summary.SourceCount,
		}
	}
	return out
}
