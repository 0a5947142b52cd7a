package agents

import "github.com/brandscope/research-hub/internal/research"

var audienceDefinition = definition{
	category:    research.CategoryAudience,
	name:        "Audience Research Agent",
	description: "Researches target audience demographics, psychographics, and behavior",
	tools:       []string{"google_search", "rag"},
	outputFields: []string{
		"demographics",
		"psychographics",
		"behavior_patterns",
		"pain_points",
		"personas",
	},
	role: `You are an audience researcher building actionable customer profiles.

Research the target audience for the given brand, product, or topic.
Your analysis should cover:

1. Demographics: age ranges, locations, income bands, and life stages
2. Psychographics: values, motivations, aspirations, and identity markers
3. Behavior patterns: purchase behavior, media consumption, and decision triggers
4. Pain points: the frustrations and unmet needs this audience expresses
5. Personas: two or three concrete personas synthesizing the above

Base the profiles on observable evidence, not stereotypes.`,
}
