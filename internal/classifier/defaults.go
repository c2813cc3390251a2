package classifier

import (
	"context"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/xaenox/tweetfiler/internal/models"
)

const (
	defaultTitleWidth   = 50
	defaultSummaryWidth = 150
)

// Free-text labels emitted by the heuristics. These are the same labels
// the reasoning provider is instructed to use, so the category resolver
// treats both sources identically.
const (
	LabelGitHub  = "GitHub"
	LabelArticle = "Article"
	LabelVideo   = "Video"
	LabelPodcast = "Podcast"
	LabelTool    = "Tool"
	LabelGeneral = "General"
)

// Ordered domain groups. The first group containing a substring of the
// primary link's URL wins, and domain matches always beat text keywords.
var domainGroups = []struct {
	label   string
	domains []string
}{
	{LabelGitHub, []string{"github.com", "gitlab.com", "bitbucket.org"}},
	{LabelArticle, []string{"medium.com", "substack.com", "dev.to", "blog.", "news.ycombinator.com"}},
	{LabelVideo, []string{"youtube.com", "youtu.be", "vimeo.com", "loom.com"}},
	{LabelPodcast, []string{"open.spotify.com", "podcasts.apple.com", "overcast.fm", "pocketcasts.com"}},
}

// Ordered keyword groups scanned against the lowercased bookmark text
// when no domain matched.
var textGroups = []struct {
	label    string
	keywords []string
}{
	{LabelGitHub, []string{"github", "repo", "repository", "open source", "library", "framework", "sdk", "cli"}},
	{LabelVideo, []string{"video", "youtube", "watch", "stream"}},
	{LabelArticle, []string{"article", "blog", "essay", "newsletter", "thread", "guide"}},
	{LabelPodcast, []string{"podcast", "episode", "listen"}},
	{LabelTool, []string{"tool", "app", "product", "launch", "automation"}},
}

// DefaultClassifier produces reasoning results from local heuristics
// only. It never fails and performs no I/O, so it is always a safe
// fallback when the remote provider is unavailable.
type DefaultClassifier struct{}

func NewDefaultClassifier() *DefaultClassifier {
	return &DefaultClassifier{}
}

func (c *DefaultClassifier) Classify(_ context.Context, bookmark models.Bookmark) (models.ReasoningResult, error) {
	category := c.resolveCategory(bookmark)

	text := strings.Join(strings.Fields(bookmark.Text), " ")
	title := runewidth.Truncate(text, defaultTitleWidth, "...")

	// A known link title beats a truncated excerpt for link-backed
	// categories.
	if link := bookmark.PrimaryLink(); link != nil && link.Content != nil && category != LabelGeneral && category != LabelTool {
		if link.Content.Title != "" {
			title = link.Content.Title
		} else if link.Content.Name != "" {
			title = link.Content.Name
		}
	}

	return models.ReasoningResult{
		Title:    title,
		Summary:  runewidth.Truncate(text, defaultSummaryWidth, "..."),
		Tags:     bookmark.Tags,
		Category: category,
	}, nil
}

func (c *DefaultClassifier) resolveCategory(bookmark models.Bookmark) string {
	if link := bookmark.PrimaryLink(); link != nil {
		url := strings.ToLower(link.Expanded)
		for _, group := range domainGroups {
			for _, domain := range group.domains {
				if strings.Contains(url, domain) {
					return group.label
				}
			}
		}
	}

	text := strings.ToLower(bookmark.Text)
	for _, group := range textGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return group.label
			}
		}
	}

	return LabelGeneral
}
