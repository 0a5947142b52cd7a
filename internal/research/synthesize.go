package research

import "time"

// Synthesis is the cross-category aggregate derived from a settled batch. It
// is computed on demand and never persisted.
type Synthesis struct {
	TotalRequested    int                          `json:"total_requested"`
	Successful        int                          `json:"successful"`
	Failed            int                          `json:"failed"`
	TotalSources      int                          `json:"total_sources"`
	AverageConfidence float64                      `json:"average_confidence"`
	TotalDuration     time.Duration                `json:"total_duration"`
	KeyFindings       []Finding                    `json:"key_findings"`
	ByCategory        map[Category]CategorySummary `json:"by_category"`
}

// Finding is one successful category's headline result.
type Finding struct {
	Category Category `json:"category"`
	Finding  string   `json:"finding"`
}

// CategorySummary is the per-category slice of a synthesis. Failed categories
// appear too, with the summary degraded to the failure reason.
type CategorySummary struct {
	Status      Status  `json:"status"`
	Summary     string  `json:"summary"`
	Confidence  float64 `json:"confidence"`
	SourceCount int     `json:"source_count"`
}

// Synthesize reduces a full result map into a Synthesis. It is pure and
// total: it never errors, and an empty or all-failed map yields zero counts
// with an average confidence of 0 rather than a division by zero.
func Synthesize(results map[Category]Result) Synthesis {
	s := Synthesis{
		TotalRequested: len(results),
		KeyFindings:    []Finding{},
		ByCategory:     make(map[Category]CategorySummary, len(results)),
	}

	var confidenceSum float64
	for _, cat := range SortedCategories(results) {
		res := results[cat]
		if res.Status == StatusCompleted {
			s.Successful++
			confidenceSum += res.Confidence
			if res.Summary != "" {
				s.KeyFindings = append(s.KeyFindings, Finding{Category: cat, Finding: res.Summary})
			}
		} else {
			s.Failed++
		}

		s.TotalSources += len(res.Sources)
		s.TotalDuration += res.Duration

		s.ByCategory[cat] = CategorySummary{
			Status:      res.Status,
			Summary:     res.Summary,
			Confidence:  res.Confidence,
			SourceCount: len(res.Sources),
		}
	}

	if s.Successful > 0 {
		s.AverageConfidence = confidenceSum / float64(s.Successful)
	}
	return s
}
