package category

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/xaenox/tweetfiler/internal/models"
)

func testRegistry() *Registry {
	return NewRegistry(map[string]models.CategoryRule{
		"github": {
			Action: models.ActionFile,
			Folder: "knowledge/tools",
			Match:  []string{"github.com", "gitlab.com"},
		},
		"article": {
			Action: models.ActionFile,
			Folder: "knowledge/articles",
			Match:  []string{"medium.com", "substack.com"},
		},
		"youtube": {
			Action: models.ActionTranscribe,
			Folder: "knowledge/videos",
			Match:  []string{"youtube.com", "youtu.be"},
		},
		"podcast": {
			Action: models.ActionTranscribe,
			Folder: "knowledge/podcasts",
			Match:  []string{"open.spotify.com"},
		},
		"tweet": {
			Action: models.ActionCapture,
		},
	})
}

func TestRegistryResolveIsTotal(t *testing.T) {
	registry := testRegistry()

	assert.Equal(t, registry.Resolve("github").Key, "github")
	assert.Equal(t, registry.Resolve(" GitHub ").Key, "github")
	assert.Equal(t, registry.Resolve("nonsense").Key, "tweet")
	assert.Equal(t, registry.Resolve("").Key, "tweet")
}

func TestRegistrySynthesizesFallback(t *testing.T) {
	registry := NewRegistry(map[string]models.CategoryRule{
		"github": {Action: models.ActionFile, Folder: "knowledge/tools"},
	})

	fallback := registry.Resolve("nonsense")
	assert.Equal(t, fallback.Key, "tweet")
	assert.Equal(t, fallback.Action, models.ActionCapture)
	assert.Equal(t, fallback.Folder, "")
}

func TestResolverSynonymCoverage(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"repo", "github"},
		{"mcp", "github"},
		{"tutorial", "article"},
		{"comprehensive", "article"},
		{"deal", "article"},
		{"student", "article"},
	}

	resolver := NewResolver(testRegistry())
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			rule := resolver.Resolve(models.Bookmark{}, models.ReasoningResult{Category: tt.label})
			assert.Equal(t, rule.Key, tt.want)
			assert.Equal(t, rule.Action, models.ActionFile)
		})
	}
}

// The provider keeps inventing topical labels for long-form content;
// these documented strays must all land on the article rule.
func TestResolverHardCases(t *testing.T) {
	tests := []struct {
		name   string
		result models.ReasoningResult
	}{
		{"millionaire", models.ReasoningResult{Category: "Millionaire", Title: "Rise of Automation Millionaires"}},
		{"3d generation", models.ReasoningResult{Category: "3D Generation", Title: "3D Scene Generation"}},
		{"chat history", models.ReasoningResult{Category: "Chat History"}},
		{"vision", models.ReasoningResult{Category: "Vision"}},
		{"personal ai os", models.ReasoningResult{Category: "Personal AI OS"}},
		{"y combinator", models.ReasoningResult{Category: "Y Combinator", Title: "Student deals from the batch"}},
	}

	resolver := NewResolver(testRegistry())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := resolver.Resolve(models.Bookmark{}, tt.result)
			assert.Equal(t, rule.Key, "article")
		})
	}
}

func TestResolverKeywordScanPriority(t *testing.T) {
	resolver := NewResolver(testRegistry())

	// github indicators outrank video indicators in the combined text
	rule := resolver.Resolve(models.Bookmark{}, models.ReasoningResult{
		Category: "Unknown",
		Title:    "A library with a video walkthrough",
	})
	assert.Equal(t, rule.Key, "github")

	rule = resolver.Resolve(models.Bookmark{}, models.ReasoningResult{
		Category: "Unknown",
		Title:    "Video walkthrough of the city",
	})
	assert.Equal(t, rule.Key, "youtube")
}

func TestResolverTerminalDefault(t *testing.T) {
	resolver := NewResolver(testRegistry())

	rule := resolver.Resolve(
		models.Bookmark{Text: "just thinking about stuff"},
		models.ReasoningResult{Category: "Unknown", Title: "Random musings", Summary: "Just mulling it over"},
	)
	assert.Equal(t, rule.Key, "tweet")
	assert.Equal(t, rule.Action, models.ActionCapture)
	assert.Equal(t, rule.Folder, "")
}

func TestResolverURLMatchEscape(t *testing.T) {
	resolver := NewResolver(testRegistry())

	bookmark := models.Bookmark{
		Text:  "no useful words here",
		Links: []models.Link{{Expanded: "https://github.com/owner/project"}},
	}
	rule := resolver.Resolve(bookmark, models.ReasoningResult{Category: "zzz", Title: "hm", Summary: "hm"})
	assert.Equal(t, rule.Key, "github")
}

func TestResolverIsDeterministic(t *testing.T) {
	resolver := NewResolver(testRegistry())

	bookmark := models.Bookmark{
		Text:  "a fast terminal emulator",
		Links: []models.Link{{Expanded: "https://github.com/owner/project"}},
	}
	result := models.ReasoningResult{Category: "Tool", Title: "Fast terminal", Summary: "Terminal emulator"}

	first := resolver.Resolve(bookmark, result)
	for i := 0; i < 10; i++ {
		assert.Equal(t, resolver.Resolve(bookmark, result).Key, first.Key)
	}
}
