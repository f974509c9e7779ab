package scraper

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overviewHTML = `
<html><body>
<form action="/accounts/logout/" method="post"></form>
<div class="tab-content">
  <div id="pills-alle">
    <div class="col-xl-4 mb-4">
      <a href="/article/123/"></a>
      <div class="card-header publiziert"></div>
      <div class="article-title">Mein Hund Rex</div>
      <div class="article-author">Lina</div>
      <div class="article-category">Berichten</div>
      <div class="article-date">14.02.2025 09:30</div>
    </div>
    <div class="col-xl-4 mb-4">
      <a href="/article/456/"></a>
      <div class="article-title">Der Schaltplan</div>
      <div class="article-author">Timo</div>
      <div class="article-date">not a date</div>
    </div>
    <div class="col-xl-4 mb-4">
      <!-- card without link is skipped -->
      <div class="article-title">Kaputt</div>
    </div>
  </div>
  <div id="pills-home">
    <div class="col-xl-4 mb-4">
      <a href="/article/edit/789/"></a>
      <div class="article-title">Entwurf</div>
    </div>
  </div>
</div>
</body></html>`

const articleHTML = `
<html><body>
<form action="/accounts/logout/" method="post"></form>
<h1>Mein Hund Rex von Lina</h1>
<h6 class="d-flex">Letzte Aktualisierung: 14.02.2025 09:30
</h6>
<div class="article">
  <div class="highlight-target">
    <p>Rex ist drei Jahre alt.</p>
    <p></p>
    <p>Er mag Stöcke.</p>
  </div>
  <textarea id="text-to-speech">Rex ist drei Jahre alt. Er mag Stöcke.</textarea>
</div>
<form action="/article/123/comment/" method="post">
  <input name="csrfmiddlewaretoken" value="tok123">
</form>
</body></html>`

func docFromString(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseListings(t *testing.T) {
	doc := docFromString(t, overviewHTML)

	listings, err := parseListings(doc, "https://mymoment.example", "alle")
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "123", listings[0].ID)
	assert.Equal(t, "Mein Hund Rex", listings[0].Title)
	assert.Equal(t, "Lina", listings[0].Author)
	assert.Equal(t, "Berichten", listings[0].Category)
	assert.Equal(t, "https://mymoment.example/article/123/", listings[0].URL)
	require.NotNil(t, listings[0].EditedAt)
	assert.Equal(t, time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC), *listings[0].EditedAt)

	assert.Equal(t, "456", listings[1].ID)
	assert.Nil(t, listings[1].EditedAt, "unparseable dates are dropped")
}

func TestParseListingsEditLinks(t *testing.T) {
	doc := docFromString(t, overviewHTML)

	listings, err := parseListings(doc, "https://mymoment.example", "home")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "789", listings[0].ID)
}

func TestParseListingsUnknownTab(t *testing.T) {
	doc := docFromString(t, overviewHTML)

	_, err := parseListings(doc, "https://mymoment.example", "klasse-9b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "klasse-9b")
}

func TestParseArticle(t *testing.T) {
	doc := docFromString(t, articleHTML)

	detail, err := parseArticle(doc, "123", "https://mymoment.example/article/123/")
	require.NoError(t, err)

	assert.Equal(t, "123", detail.ID)
	assert.Equal(t, "Mein Hund Rex", detail.Title)
	assert.Equal(t, "Lina", detail.Author)
	assert.Equal(t, "Rex ist drei Jahre alt.\nEr mag Stöcke.", detail.Content)
	require.NotNil(t, detail.EditedAt)
	assert.Equal(t, time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC), *detail.EditedAt)
	assert.False(t, detail.ScrapedAt.IsZero())

	// Raw HTML keeps the body but not the text-to-speech textarea.
	assert.Contains(t, detail.RawHTML, "highlight-target")
	assert.NotContains(t, detail.RawHTML, "textarea")
}

func TestParseArticleTextToSpeechFallback(t *testing.T) {
	html := `<html><body>
<h1>Ohne Absätze</h1>
<div class="article">
  <textarea id="text-to-speech">Der ganze Text.</textarea>
</div>
</body></html>`
	doc := docFromString(t, html)

	detail, err := parseArticle(doc, "9", "https://mymoment.example/article/9/")
	require.NoError(t, err)
	assert.Equal(t, "Ohne Absätze", detail.Title)
	assert.Empty(t, detail.Author)
	assert.Equal(t, "Der ganze Text.", detail.Content)
}

func TestParseArticleMissingBody(t *testing.T) {
	doc := docFromString(t, `<html><body><h1>Weg</h1></body></html>`)

	_, err := parseArticle(doc, "404", "https://mymoment.example/article/404/")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestCSRFTokenAndLoginDetection(t *testing.T) {
	doc := docFromString(t, articleHTML)

	token, ok := csrfToken(doc)
	require.True(t, ok)
	assert.Equal(t, "tok123", token)
	assert.True(t, isLoggedIn(doc))

	anon := docFromString(t, `<html><body><p>Bitte anmelden</p></body></html>`)
	_, ok = csrfToken(anon)
	assert.False(t, ok)
	assert.False(t, isLoggedIn(anon))
}

func TestArticleIDFromHref(t *testing.T) {
	assert.Equal(t, "123", articleIDFromHref("/article/123/"))
	assert.Equal(t, "789", articleIDFromHref("/article/edit/789/"))
	assert.Equal(t, "", articleIDFromHref("/accounts/login/"))
	assert.Equal(t, "", articleIDFromHref(""))
}
