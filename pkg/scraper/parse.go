package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/yourmoment/yourmoment/pkg/models"
)

// DefaultTab is the overview tab scanned when a process configures none.
const DefaultTab = "alle"

// dateLayouts are the formats the platform renders timestamps in.
var dateLayouts = []string{
	"02.01.2006 15:04",
	"02.01.2006",
	"2.1.2006 15:04",
	"2.1.2006",
}

// parseListings extracts the article cards from one overview tab.
// The overview page renders every tab as a div with id "pills-<tab>".
func parseListings(doc *goquery.Document, baseURL, tab string) ([]models.ArticleListing, error) {
	if tab == "" {
		tab = DefaultTab
	}

	tabContent := doc.Find("div#pills-" + tab)
	if tabContent.Length() == 0 {
		return nil, fmt.Errorf("tab %q not found on overview page", tab)
	}

	var listings []models.ArticleListing
	tabContent.Find(".col-xl-4.mb-4").Each(func(_ int, card *goquery.Selection) {
		href, ok := card.Find("a").First().Attr("href")
		if !ok {
			return
		}
		id := articleIDFromHref(href)
		if id == "" {
			return
		}

		listing := models.ArticleListing{
			ID:       id,
			Title:    strings.TrimSpace(card.Find("div.article-title").First().Text()),
			Author:   strings.TrimSpace(card.Find("div.article-author").First().Text()),
			Category: strings.TrimSpace(card.Find("div.article-category").First().Text()),
			URL:      absoluteURL(baseURL, href),
		}
		if ts := parseDate(card.Find("div.article-date").First().Text()); ts != nil {
			listing.EditedAt = ts
		}

		listings = append(listings, listing)
	})

	return listings, nil
}

// parseArticle extracts the full content from an article detail page.
func parseArticle(doc *goquery.Document, articleID, articleURL string) (*models.ArticleDetail, error) {
	article := doc.Find("div.article").First()
	if article.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrArticleNotFound, articleID)
	}

	detail := &models.ArticleDetail{
		ArticleListing: models.ArticleListing{
			ID:  articleID,
			URL: articleURL,
		},
		ScrapedAt: time.Now().UTC(),
	}

	// The h1 renders "Titel von Autor".
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		if idx := strings.LastIndex(title, " von "); idx > 0 {
			detail.Title = strings.TrimSpace(title[:idx])
			detail.Author = strings.TrimSpace(title[idx+len(" von "):])
		} else {
			detail.Title = title
		}
	}

	if meta := doc.Find("h6.d-flex").First().Text(); strings.Contains(meta, "Letzte Aktualisierung:") {
		raw := strings.SplitN(meta, "Letzte Aktualisierung:", 2)[1]
		raw = strings.TrimSpace(strings.SplitN(raw, "\n", 2)[0])
		detail.EditedAt = parseDate(raw)
	}

	// Body paragraphs; the text-to-speech textarea is the fallback for
	// articles without highlight markup.
	var paragraphs []string
	doc.Find(".article .highlight-target p").Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) > 0 {
		detail.Content = strings.Join(paragraphs, "\n")
	} else {
		detail.Content = strings.TrimSpace(doc.Find("textarea#text-to-speech").First().Text())
	}

	// Keep the body markup minus the text-to-speech textarea.
	clone := article.Clone()
	clone.Find("textarea").Remove()
	if html, err := goquery.OuterHtml(clone); err == nil {
		detail.RawHTML = strings.TrimSpace(html)
	}

	return detail, nil
}

// articleIDFromHref pulls the numeric ID out of /article/<id>/ or
// /article/edit/<id>/ links.
func articleIDFromHref(href string) string {
	parts := strings.Split(strings.Trim(href, "/"), "/")
	if len(parts) == 0 || parts[0] != "article" {
		return ""
	}
	return parts[len(parts)-1]
}

func absoluteURL(baseURL, href string) string {
	if strings.HasPrefix(href, "/") {
		return baseURL + href
	}
	return href
}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts
		}
	}
	return nil
}
