package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourmoment/yourmoment/pkg/models"
)

func TestMatchesFilter(t *testing.T) {
	listing := models.ArticleListing{
		ID:       "1",
		Title:    "Mein Ausflug in die Berge",
		Category: "Berichten",
	}

	tests := []struct {
		name   string
		filter models.ArticleFilter
		want   bool
	}{
		{"empty filter matches all", models.ArticleFilter{}, true},
		{"category match is case-insensitive", models.ArticleFilter{Category: "berichten"}, true},
		{"category mismatch", models.ArticleFilter{Category: "Erklären"}, false},
		{"keyword match is case-insensitive", models.ArticleFilter{Keywords: []string{"BERGE"}}, true},
		{"any keyword suffices", models.ArticleFilter{Keywords: []string{"Meer", "Ausflug"}}, true},
		{"no keyword matches", models.ArticleFilter{Keywords: []string{"Meer", "See"}}, false},
		{"empty keywords are skipped", models.ArticleFilter{Keywords: []string{"", "Berge"}}, true},
		{
			"category and keywords both required",
			models.ArticleFilter{Category: "Berichten", Keywords: []string{"See"}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesFilter(listing, tt.filter))
		})
	}
}

func TestTabs(t *testing.T) {
	assert.Equal(t, []string{"alle"}, Tabs(models.ArticleFilter{}))
	assert.Equal(t, []string{"home", "42"}, Tabs(models.ArticleFilter{Tabs: []string{"home", "42"}}))
}
