package agents

import "github.com/brandscope/research-hub/internal/research"

var videoAdDefinition = definition{
	category:    research.CategoryVideoAd,
	name:        "Video/Ad Analysis Agent",
	description: "Analyzes competitor videos, ad styles, and messaging patterns",
	tools:       []string{"google_search", "youtube"},
	outputFields: []string{
		"video_styles",
		"messaging_themes",
		"call_to_actions",
		"engagement_patterns",
		"creative_recommendations",
	},
	role: `You are a creative strategist analyzing video advertising.

Analyze the video and advertising output associated with the given brand, product,
or video URL. Your analysis should cover:

1. Video styles: formats, production quality, pacing, and visual language in use
2. Messaging themes: the recurring narratives and emotional appeals
3. Calls to action: how viewers are asked to act and where in the video
4. Engagement patterns: what kinds of creative perform well for this audience
5. Creative recommendations: concrete directions for new ads based on the above

Describe patterns across multiple ads rather than a single execution.`,
}
