package classifier

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gotest.tools/v3/assert"

	"github.com/xaenox/tweetfiler/internal/models"
)

func TestBuildPrompt(t *testing.T) {
	bookmark := models.Bookmark{
		Author: "someauthor",
		Text:   "check out this project",
		Links: []models.Link{
			{Expanded: "https://github.com/owner/project"},
			{Expanded: "https://example.com/docs"},
		},
		QuoteContext: &models.PostContext{Author: "other", Text: strings.Repeat("x", 300)},
	}

	prompt := BuildPrompt(bookmark)

	assert.Assert(t, strings.Contains(prompt, "@someauthor"))
	assert.Assert(t, strings.Contains(prompt, "check out this project"))
	assert.Assert(t, strings.Contains(prompt, "https://github.com/owner/project"))
	assert.Assert(t, strings.Contains(prompt, "https://example.com/docs"))
	// quoted context is capped at 120 characters
	assert.Assert(t, strings.Contains(prompt, "Quoting @other: "+strings.Repeat("x", 120)+"\n"))
	assert.Assert(t, !strings.Contains(prompt, strings.Repeat("x", 121)))
}

func TestClassifySkipsOversizedPrompts(t *testing.T) {
	clf := NewGPTClassifier("test-key", "gpt-4o-mini", 500, 0.3, 3000, 0, zap.NewNop())

	bookmark := models.Bookmark{
		Author: "someauthor",
		Text:   strings.Repeat("a", 4000),
	}

	_, err := clf.Classify(context.Background(), bookmark)
	assert.Assert(t, errors.Is(err, ErrPromptTooLong))
}
