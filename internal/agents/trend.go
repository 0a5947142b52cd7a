package agents

import "github.com/brandscope/research-hub/internal/research"

var trendDefinition = definition{
	category:    research.CategoryTrend,
	name:        "Trend Analysis Agent",
	description: "Identifies industry trends, viral patterns, and emerging topics",
	tools:       []string{"google_search", "youtube"},
	outputFields: []string{
		"industry_trends",
		"viral_patterns",
		"emerging_topics",
		"seasonal_patterns",
		"technology_trends",
	},
	role: `You are a trend analyst tracking cultural and industry movements.

Identify the trends relevant to the given brand, product, or topic.
Your analysis should cover:

1. Industry trends: structural shifts reshaping this industry
2. Viral patterns: formats and memes currently spreading in this space
3. Emerging topics: conversations gaining momentum but not yet mainstream
4. Seasonal patterns: recurring cycles that affect demand or attention
5. Technology trends: technologies changing how this market operates

Distinguish durable shifts from short-lived spikes.`,
}
