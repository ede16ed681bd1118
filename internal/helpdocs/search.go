package helpdocs

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	titleWeight   = 10
	contentWeight = 5
	tagWeight     = 3

	excerptBefore   = 100
	excerptAfter    = 200
	fallbackExcerpt = 200
	ellipsis        = "..."
)

// Search ranks every article in sections against query. Results are ordered
// by descending score; equal scores keep corpus order. Windows and fallbacks
// are measured in runes.
func Search(sections []Section, query string) []SearchResult {
	results := []SearchResult{}
	if strings.TrimSpace(query) == "" {
		return results
	}
	term := lower(query)

	for si := range sections {
		section := &sections[si]
		for ai := range section.Articles {
			article := &section.Articles[ai]
			if r, ok := score(article, term); ok {
				r.Section = section
				r.SectionID = section.ID
				results = append(results, r)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results
}

func score(a *Article, term string) (SearchResult, bool) {
	r := SearchResult{Article: a}

	if strings.Contains(lower(a.Title), term) {
		r.RelevanceScore += titleWeight
		r.MatchedContent = a.Title
	}

	if excerpt, ok := contentExcerpt(a.Content, term); ok {
		r.RelevanceScore += contentWeight
		r.MatchedContent = excerpt
	}

	for _, tag := range a.Tags {
		if strings.Contains(lower(tag), term) {
			r.RelevanceScore += tagWeight
			break
		}
	}

	if r.RelevanceScore == 0 {
		return r, false
	}
	if r.MatchedContent == "" {
		r.MatchedContent = string(prefix([]rune(a.Content), fallbackExcerpt)) + ellipsis
	}
	return r, true
}

// contentExcerpt returns the text around the first occurrence of term in
// content, marking each side that was cut with an ellipsis.
func contentExcerpt(content, term string) (string, bool) {
	lc := lower(content)
	at := strings.Index(lc, term)
	if at < 0 {
		return "", false
	}

	runes := []rune(content)
	pos := utf8.RuneCountInString(lc[:at])
	start := max(0, pos-excerptBefore)
	end := min(len(runes), pos+excerptAfter)

	excerpt := strings.TrimSpace(string(runes[start:end]))
	if start > 0 {
		excerpt = ellipsis + excerpt
	}
	if end < len(runes) {
		excerpt += ellipsis
	}
	return excerpt, true
}

// lower maps rune by rune so positions in the result line up with the input.
func lower(s string) string {
	return strings.Map(unicode.ToLower, s)
}

func prefix(r []rune, n int) []rune {
	if len(r) <= n {
		return r
	}
	return r[:n]
}
