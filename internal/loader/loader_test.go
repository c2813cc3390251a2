package loader

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestLoadBookmarks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	err := os.WriteFile(path, []byte(`[
		{
			"id": "1001",
			"author": "someauthor",
			"text": "neat project",
			"date": "2024-05-01",
			"tweetUrl": "https://x.com/someauthor/status/1001",
			"links": [{"expanded": "https://github.com/owner/project", "content": {"title": "owner/project"}}],
			"tags": ["saved"],
			"quoteContext": {"author": "other", "text": "original post"}
		}
	]`), 0o644)
	assert.NilError(t, err)

	bookmarks, err := LoadBookmarks(path)
	assert.NilError(t, err)
	assert.Equal(t, len(bookmarks), 1)

	b := bookmarks[0]
	assert.Equal(t, b.ID, "1001")
	assert.Equal(t, b.PrimaryLink().Content.Title, "owner/project")
	assert.Equal(t, b.QuoteContext.Author, "other")
}

func TestLoadBookmarksMissingFile(t *testing.T) {
	_, err := LoadBookmarks(filepath.Join(t.TempDir(), "nope.json"))
	assert.Assert(t, err != nil)
}

func TestLoadBookmarksMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644))

	_, err := LoadBookmarks(path)
	assert.Assert(t, err != nil)
}
