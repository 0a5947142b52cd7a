package agents

import (
	"fmt"

	"github.com/brandscope/research-hub/internal/llm"
	"github.com/brandscope/research-hub/internal/research"
)

// knownTools is the closed set of tool capability tags an agent may declare.
var knownTools = map[string]struct{}{
	"google_search": {},
	"rag":           {},
	"youtube":       {},
	"meta_ads":      {},
}

var definitions = []definition{
	competitorDefinition,
	marketDefinition,
	videoAdDefinition,
	socialMediaDefinition,
	audienceDefinition,
	trendDefinition,
}

// Registry builds the full read-only category-to-agent mapping. Tool tags are
// checked here, at construction time, so a misdeclared agent fails startup
// instead of a request.
func Registry(provider llm.Provider) (map[research.Category]research.Agent, error) {
	registry := make(map[research.Category]research.Agent, len(definitions))
	for _, def := range definitions {
		for _, tool := range def.tools {
			if _, ok := knownTools[tool]; !ok {
				return nil, fmt.Errorf("agent %q declares unknown tool %q", def.category, tool)
			}
		}
		if _, dup := registry[def.category]; dup {
			return nil, fmt.Errorf("duplicate agent for category %q", def.category)
		}
		registry[def.category] = newAgent(provider, def)
	}
	return registry, nil
}
