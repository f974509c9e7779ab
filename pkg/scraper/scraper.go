// Package scraper implements the myMoment platform client. The
// platform has no API; everything goes through the HTML frontend with
// a session cookie, CSRF tokens, and goquery parsing.
package scraper

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourmoment/yourmoment/pkg/models"
)

var (
	// ErrNotLoggedIn indicates the session cookie is missing or expired.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrLoginFailed indicates the platform rejected the credentials.
	ErrLoginFailed = errors.New("login failed")

	// ErrArticleNotFound indicates the article does not exist or is no
	// longer visible to this login.
	ErrArticleNotFound = errors.New("article not found")
)

// TransientError marks a failure worth retrying: network trouble,
// upstream 5xx, timeouts. Anything else is treated as permanent.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient upstream error: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Transient wraps err as retryable.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// Client is a logged-in view of the myMoment platform for one
// credential. Implementations are not safe for concurrent use; the
// pipeline creates one client per credential per stage run.
type Client interface {
	// Login establishes a session for the given credentials.
	Login(ctx context.Context, username, password string) error

	// ListArticles returns the article cards visible on the given
	// overview tab ("alle", "home", or a classroom ID).
	ListArticles(ctx context.Context, tab string) ([]models.ArticleListing, error)

	// FetchArticle loads one article's full content.
	FetchArticle(ctx context.Context, articleID string) (*models.ArticleDetail, error)

	// PostComment publishes a comment under the article.
	PostComment(ctx context.Context, articleID, text string) error

	// Logout drops the session.
	Logout(ctx context.Context) error
}
