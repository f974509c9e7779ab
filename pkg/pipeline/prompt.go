// Package pipeline implements the monitoring pipeline: the periodic
// coordinator, the four stage runners (discovery, preparation,
// generation, posting), and the timeout enforcer. Stages coordinate
// only through work record status; each stage picks up whatever
// records sit in its input status and moves them forward.
package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// placeholders supported in user prompt templates. Unknown
// placeholders stay literal so typos surface in the generated text
// instead of failing the stage.
const (
	placeholderTitle    = "{article_title}"
	placeholderAuthor   = "{article_author}"
	placeholderContent  = "{article_content}"
	placeholderRawHTML  = "{article_raw_html}"
	placeholderExcerpt  = "{article_excerpt}"
	placeholderCategory = "{article_category}"
	placeholderDate     = "{current_date}"
	placeholderNickname = "{user_nickname}"
)

// excerptRunes bounds {article_excerpt}.
const excerptRunes = 200

// dateLayout matches the platform's display format.
const dateLayout = "02.01.2006"

// PromptArticle carries the fields a user prompt template can
// reference. Pointers are snapshot fields that may not be filled yet.
type PromptArticle struct {
	Title    string
	Author   string
	Category string
	Content  *string
	RawHTML  *string
}

// RenderUserPrompt fills the placeholders of a user prompt template
// from the article snapshot. Missing snapshot fields render as empty
// strings; nickname is the posting credential's username.
func RenderUserPrompt(template string, article PromptArticle, nickname string) string {
	return renderUserPrompt(template, article, nickname, time.Now())
}

func renderUserPrompt(template string, article PromptArticle, nickname string, now time.Time) string {
	content := deref(article.Content)
	replacer := strings.NewReplacer(
		placeholderTitle, article.Title,
		placeholderAuthor, article.Author,
		placeholderContent, content,
		placeholderRawHTML, deref(article.RawHTML),
		placeholderExcerpt, excerpt(content),
		placeholderCategory, article.Category,
		placeholderDate, now.Format(dateLayout),
		placeholderNickname, nickname,
	)
	return replacer.Replace(template)
}

// excerpt truncates content to excerptRunes runes on a rune boundary.
func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptRunes {
		return content
	}
	return string(runes[:excerptRunes]) + "…"
}

// CommentMarker derives the deterministic upstream comment reference.
// The platform does not return a comment ID after posting, so the
// marker stands in as a stable identifier for audit and idempotency.
func CommentMarker(processID, articleID, recordID string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", processID, articleID, recordID)))
	return hex.EncodeToString(sum[:])[:32]
}

// ComposeComment ensures generated text starts with the AI disclosure
// prefix, prepending it only when the model did not emit it itself.
func ComposeComment(prefix, text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, prefix) {
		return text
	}
	return prefix + text
}

// ValidateComment checks the disclosure invariant before posting. A
// comment without the prefix never leaves the system.
func ValidateComment(prefix, comment string) error {
	if !strings.HasPrefix(comment, prefix) {
		return fmt.Errorf("comment does not start with required prefix %q", prefix)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
