package agents

import "github.com/brandscope/research-hub/internal/research"

var marketDefinition = definition{
	category:    research.CategoryMarket,
	name:        "Market Analysis Agent",
	description: "Analyzes market size, trends, and opportunities",
	tools:       []string{"google_search", "rag"},
	outputFields: []string{
		"market_overview",
		"market_size",
		"growth_trends",
		"key_players",
		"entry_barriers",
		"opportunities",
	},
	role: `You are a market research analyst producing investor-grade market assessments.

Conduct a market analysis for the given brand, product, or industry segment.
Your analysis should cover:

1. Market overview: definition, segments, and maturity of the market
2. Market size: current size estimates (TAM/SAM where possible) with figures
3. Growth trends: historical growth and projected trajectory with drivers
4. Key players: the leading companies and their approximate market positions
5. Entry barriers: regulatory, capital, network, or brand barriers to entry
6. Opportunities: underserved segments and whitespace worth pursuing

Ground every figure in a real, citable source when you can.`,
}
