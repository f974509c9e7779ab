package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/models"
)

// httpClient talks to the myMoment HTML frontend. A cookie jar keeps
// the Django session; every mutating request first fetches the page
// holding the CSRF token.
type httpClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
}

// New creates a Client for one credential session.
func New(cfg *config.ScraperConfig) (Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &httpClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http: &http.Client{
			Jar:     jar,
			Timeout: cfg.RequestTimeout,
		},
		logger: slog.Default().With("component", "scraper"),
	}, nil
}

// Factory creates a fresh Client per credential session.
type Factory func() (Client, error)

// NewFactory returns a Factory bound to the given configuration.
func NewFactory(cfg *config.ScraperConfig) Factory {
	return func() (Client, error) {
		return New(cfg)
	}
}

func (c *httpClient) Login(ctx context.Context, username, password string) error {
	loginURL := c.baseURL + "/accounts/login/"

	// Load the login page for the CSRF token.
	doc, err := c.getDocument(ctx, loginURL)
	if err != nil {
		return fmt.Errorf("failed to load login page: %w", err)
	}
	token, ok := csrfToken(doc)
	if !ok {
		return Transient(fmt.Errorf("login page has no CSRF token"))
	}

	form := url.Values{
		"csrfmiddlewaretoken": {token},
		"username":            {username},
		"password":            {password},
		"next":                {""},
	}
	doc, err = c.postForm(ctx, loginURL, loginURL, form)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}

	// A logout form only renders for authenticated sessions.
	if !isLoggedIn(doc) {
		return ErrLoginFailed
	}
	return nil
}

func (c *httpClient) ListArticles(ctx context.Context, tab string) ([]models.ArticleListing, error) {
	doc, err := c.getDocument(ctx, c.baseURL+"/articles/")
	if err != nil {
		return nil, fmt.Errorf("failed to load article overview: %w", err)
	}
	if !isLoggedIn(doc) {
		return nil, ErrNotLoggedIn
	}

	listings, err := parseListings(doc, c.baseURL, tab)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Listed articles", "tab", tab, "count", len(listings))
	return listings, nil
}

func (c *httpClient) FetchArticle(ctx context.Context, articleID string) (*models.ArticleDetail, error) {
	articleURL := fmt.Sprintf("%s/article/%s/", c.baseURL, articleID)

	doc, err := c.getDocument(ctx, articleURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load article %s: %w", articleID, err)
	}
	if !isLoggedIn(doc) {
		return nil, ErrNotLoggedIn
	}

	return parseArticle(doc, articleID, articleURL)
}

func (c *httpClient) PostComment(ctx context.Context, articleID, text string) error {
	articleURL := fmt.Sprintf("%s/article/%s/", c.baseURL, articleID)

	// The comment form on the detail page carries the CSRF token.
	doc, err := c.getDocument(ctx, articleURL)
	if err != nil {
		return fmt.Errorf("failed to load article %s: %w", articleID, err)
	}
	if !isLoggedIn(doc) {
		return ErrNotLoggedIn
	}
	token, ok := csrfToken(doc)
	if !ok {
		return fmt.Errorf("%w: article %s has no comment form", ErrArticleNotFound, articleID)
	}

	// status 20 = published; drafts would sit invisible in teacher review.
	form := url.Values{
		"csrfmiddlewaretoken": {token},
		"text":                {text},
		"status":              {"20"},
		"highlight":           {""},
	}
	commentURL := fmt.Sprintf("%s/article/%s/comment/", c.baseURL, articleID)
	if _, err := c.postForm(ctx, commentURL, articleURL, form); err != nil {
		return fmt.Errorf("failed to post comment on article %s: %w", articleID, err)
	}

	c.logger.Info("Posted comment", "article_id", articleID, "length", len(text))
	return nil
}

func (c *httpClient) Logout(ctx context.Context) error {
	doc, err := c.getDocument(ctx, c.baseURL+"/")
	if err != nil {
		return fmt.Errorf("failed to load home page: %w", err)
	}
	token, ok := csrfToken(doc)
	if !ok {
		// No CSRF token means no session to drop.
		return nil
	}

	form := url.Values{"csrfmiddlewaretoken": {token}}
	if _, err := c.postForm(ctx, c.baseURL+"/accounts/logout/", c.baseURL+"/", form); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// getDocument GETs the URL and parses the response body.
func (c *httpClient) getDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	return c.do(req)
}

// postForm POSTs url-encoded form data and parses the response body.
// Django requires a same-origin Referer on CSRF-protected posts.
func (c *httpClient) postForm(ctx context.Context, rawURL, referer string, form url.Values) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", referer)

	return c.do(req)
}

func (c *httpClient) do(req *http.Request) (*goquery.Document, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		// DNS failures, resets, timeouts: all worth retrying.
		return nil, Transient(err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode >= 500:
		return nil, Transient(fmt.Errorf("upstream returned %d for %s", resp.StatusCode, req.URL))
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, Transient(fmt.Errorf("upstream rate limited %s", req.URL))
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrArticleNotFound, req.URL)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("upstream returned %d for %s", resp.StatusCode, req.URL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response from %s: %w", req.URL, err)
	}
	return doc, nil
}

// csrfToken extracts the Django CSRF token from the first form that
// carries one.
func csrfToken(doc *goquery.Document) (string, bool) {
	return doc.Find(`input[name="csrfmiddlewaretoken"]`).First().Attr("value")
}

// isLoggedIn reports whether the page renders the logout form, which
// only appears for authenticated sessions.
func isLoggedIn(doc *goquery.Document) bool {
	return doc.Find(`form[action="/accounts/logout/"]`).Length() > 0
}
