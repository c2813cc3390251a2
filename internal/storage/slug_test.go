package storage

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestSlugDeterministic(t *testing.T) {
	first := Slug("Rise of Automation Millionaires", "someauthor")
	second := Slug("Rise of Automation Millionaires", "someauthor")
	assert.Equal(t, first, second)
}

func TestSlugDiffersByAuthor(t *testing.T) {
	first := Slug("Same Title", "alice")
	second := Slug("Same Title", "bob")
	assert.Assert(t, first != second, "expected distinct slugs, got %q", first)
}

func TestSlugCharset(t *testing.T) {
	slug := Slug("Hello, World! (2024) — 100% great", "author")
	for _, r := range slug {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		assert.Assert(t, ok, "unexpected rune %q in slug %q", r, slug)
	}
	assert.Assert(t, strings.HasPrefix(slug, "hello-world-2024-100-great-"))
}

func TestSlugTruncatesLongTitles(t *testing.T) {
	slug := Slug(strings.Repeat("verylongword ", 20), "author")
	// 60 readable chars plus hyphen plus 8 hash chars
	assert.Assert(t, len(slug) <= 69, "slug too long: %d", len(slug))
}

func TestSlugEmptyTitleStillHashes(t *testing.T) {
	slug := Slug("", "author")
	assert.Equal(t, len(slug), 8)
}
