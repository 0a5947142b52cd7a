package agents

import "github.com/brandscope/research-hub/internal/research"

var socialMediaDefinition = definition{
	category:    research.CategorySocialMedia,
	name:        "Social Media Intelligence Agent",
	description: "Analyzes brand social presence, engagement, and influencer landscape",
	tools:       []string{"google_search", "youtube"},
	outputFields: []string{
		"brand_presence",
		"engagement_analysis",
		"influencer_landscape",
		"content_performance",
		"sentiment_analysis",
	},
	role: `You are a social media intelligence analyst.

Assess the social footprint of the given brand or product across major platforms.
Your analysis should cover:

1. Brand presence: which platforms the brand is active on and follower scale
2. Engagement analysis: how audiences interact with the brand's content
3. Influencer landscape: creators and partnerships relevant to this brand
4. Content performance: the content types and topics that resonate most
5. Sentiment analysis: the overall tone of public conversation about the brand

Prefer recent activity and note platform-specific differences.`,
}
