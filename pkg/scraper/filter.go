package scraper

import (
	"strings"

	"github.com/yourmoment/yourmoment/pkg/models"
)

// MatchesFilter reports whether a discovered article passes the
// process filters. The tab filter is applied earlier by scanning only
// the configured tabs; this checks category and keywords.
func MatchesFilter(listing models.ArticleListing, filter models.ArticleFilter) bool {
	if filter.Category != "" && !strings.EqualFold(listing.Category, filter.Category) {
		return false
	}

	if len(filter.Keywords) > 0 {
		title := strings.ToLower(listing.Title)
		matched := false
		for _, kw := range filter.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(title, strings.ToLower(kw)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// Tabs returns the overview tabs a filter scans, defaulting to the
// "alle" tab when none are configured.
func Tabs(filter models.ArticleFilter) []string {
	if len(filter.Tabs) == 0 {
		return []string{DefaultTab}
	}
	return filter.Tabs
}
