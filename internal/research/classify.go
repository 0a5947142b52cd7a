package research

import "strings"

// videoHosts are the URL substrings that mark a link as a video rather than a
// plain web page.
var videoHosts = []string{"youtube.com", "youtu.be", "vimeo.com", "tiktok.com"}

// topicKeywords mark aggregate-market language in free text.
var topicKeywords = []string{"trend", "market for", "industry"}

// DetectInputType assigns an InputType to a raw query. It is a pure string
// function; matching is case-insensitive and the first rule that applies wins:
// URL prefixes, then topic keywords, then short phrases as brand names.
func DetectInputType(query string) InputType {
	q := strings.ToLower(strings.TrimSpace(query))

	if strings.HasPrefix(q, "http://") || strings.HasPrefix(q, "https://") || strings.HasPrefix(q, "www.") {
		for _, host := range videoHosts {
			if strings.Contains(q, host) {
				return InputTypeVideoURL
			}
		}
		return InputTypeURL
	}

	for _, kw := range topicKeywords {
		if strings.Contains(q, kw) {
			return InputTypeTopic
		}
	}

	if len(strings.Fields(q)) <= 3 {
		return InputTypeBrandName
	}

	return InputTypeText
}
