package catalog

import "strings"

// MaxSuggestions caps the suggestion list shown under the search box.
const MaxSuggestions = 5

// Suggest derives autocomplete entries for the search box. With an empty
// query it returns the most recent distinct history keywords. With a
// non-empty query it unions history keywords and result tags containing the
// query case-insensitively, deduplicated in first-seen order. History must
// arrive newest-first; the function performs no storage or network access.
func Suggest(query string, history []string, currentResults []Product) []string {
	suggestions := make([]string, 0, MaxSuggestions)
	seen := make(map[string]struct{})

	add := func(candidate string) bool {
		if candidate == "" {
			return true
		}
		if _, dup := seen[candidate]; dup {
			return true
		}
		seen[candidate] = struct{}{}
		suggestions = append(suggestions, candidate)
		return len(suggestions) < MaxSuggestions
	}

	if query == "" {
		for _, keyword := range history {
			if !add(keyword) {
				break
			}
		}
		return suggestions
	}

	needle := strings.ToLower(query)

	for _, keyword := range history {
		if !strings.Contains(strings.ToLower(keyword), needle) {
			continue
		}
		if !add(keyword) {
			return suggestions
		}
	}

	for _, p := range currentResults {
		for _, tag := range p.Tags {
			if !strings.Contains(strings.ToLower(tag), needle) {
				continue
			}
			if !add(tag) {
				return suggestions
			}
		}
	}

	return suggestions
}
