package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticle() PromptArticle {
	content := "Rex ist drei Jahre alt."
	rawHTML := `<div class="article"><p>Rex ist drei Jahre alt.</p></div>`
	return PromptArticle{
		Title:    "Mein Hund Rex",
		Author:   "Lina",
		Category: "Tiere",
		Content:  &content,
		RawHTML:  &rawHTML,
	}
}

func TestRenderUserPrompt(t *testing.T) {
	article := sampleArticle()
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			"article placeholders",
			"Titel: {article_title}\nAutor: {article_author}\nText: {article_content}",
			"Titel: Mein Hund Rex\nAutor: Lina\nText: Rex ist drei Jahre alt.",
		},
		{
			"raw html placeholder",
			"{article_raw_html}",
			`<div class="article"><p>Rex ist drei Jahre alt.</p></div>`,
		},
		{
			"excerpt and category",
			"{article_excerpt} ({article_category})",
			"Rex ist drei Jahre alt. (Tiere)",
		},
		{
			"date and nickname",
			"Am {current_date} von {user_nickname}",
			"Am 14.03.2026 von klasse4a",
		},
		{
			"repeated placeholder",
			"{article_title} / {article_title}",
			"Mein Hund Rex / Mein Hund Rex",
		},
		{
			"unknown placeholder stays literal",
			"Schreibe über {article_topic}.",
			"Schreibe über {article_topic}.",
		},
		{
			"no placeholders",
			"Kommentiere den Beitrag.",
			"Kommentiere den Beitrag.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderUserPrompt(tt.template, article, "klasse4a", now))
		})
	}
}

func TestRenderUserPromptMissingFields(t *testing.T) {
	article := PromptArticle{Title: "Nur Titel"}

	got := RenderUserPrompt("{article_title}|{article_content}|{article_raw_html}|{article_excerpt}", article, "")
	assert.Equal(t, "Nur Titel|||", got)
}

func TestExcerptTruncation(t *testing.T) {
	long := strings.Repeat("ä", excerptRunes+50)

	got := excerpt(long)
	assert.Equal(t, excerptRunes+1, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))

	short := "kurz"
	assert.Equal(t, short, excerpt(short))
}

func TestCommentMarker(t *testing.T) {
	a := CommentMarker("p1", "art1", "r1")
	b := CommentMarker("p1", "art1", "r1")
	c := CommentMarker("p1", "art1", "r2")

	assert.Len(t, a, 32)
	assert.Equal(t, a, b, "marker is deterministic")
	assert.NotEqual(t, a, c, "marker depends on the record")
	assert.Regexp(t, "^[0-9a-f]{32}$", a)
}

func TestComposeAndValidateComment(t *testing.T) {
	const prefix = "[Dieser Kommentar stammt von einem KI-ChatBot.] "

	comment := ComposeComment(prefix, "  Hoi! Mega cool.\n")
	assert.Equal(t, prefix+"Hoi! Mega cool.", comment)

	// A model that follows the system prompt already emits the prefix;
	// it must not be doubled.
	assert.Equal(t, prefix+"Hoi! Mega cool.",
		ComposeComment(prefix, prefix+"Hoi! Mega cool."))

	require.NoError(t, ValidateComment(prefix, comment))
	require.Error(t, ValidateComment(prefix, "Hoi! Mega cool."))
	require.Error(t, ValidateComment(prefix, ""))
}
