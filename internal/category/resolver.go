package category

import (
	"strings"

	"github.com/xaenox/tweetfiler/internal/models"
)

// synonyms maps free-text category labels, as the reasoning provider
// tends to produce them, onto registry keys. Lookups are exact after
// lowercasing and trimming; the table is deliberately many-to-one.
var synonyms = map[string]string{
	// github-flavored labels: code, repos and developer tooling
	"github":         "github",
	"git":            "github",
	"repo":           "github",
	"repos":          "github",
	"repository":     "github",
	"repositories":   "github",
	"code":           "github",
	"open source":    "github",
	"opensource":     "github",
	"library":        "github",
	"framework":      "github",
	"sdk":            "github",
	"cli":            "github",
	"api":            "github",
	"package":        "github",
	"plugin":         "github",
	"extension":      "github",
	"mcp":            "github",
	"mcp server":     "github",
	"tool":           "github",
	"tools":          "github",
	"software":       "github",
	"app":            "github",
	"application":    "github",
	"automation":     "github",
	"agent":          "github",
	"agents":         "github",
	"developer tool": "github",

	// article-flavored labels, including the topical strays the provider
	// keeps inventing for long-form content
	"article":             "article",
	"articles":            "article",
	"blog":                "article",
	"blog post":           "article",
	"post":                "article",
	"tutorial":            "article",
	"tutorials":           "article",
	"guide":               "article",
	"comprehensive":       "article",
	"comprehensive guide": "article",
	"essay":               "article",
	"newsletter":          "article",
	"thread":              "article",
	"news":                "article",
	"research":            "article",
	"paper":               "article",
	"education":           "article",
	"deal":                "article",
	"deals":               "article",
	"student":             "article",
	"students":            "article",
	"credit":              "article",
	"credits":             "article",
	"benefits":            "article",
	"startup":             "article",
	"startups":            "article",
	"funding":             "article",
	"accelerator":         "article",
	"y combinator":        "article",
	"ycombinator":         "article",
	"combinator":          "article",
	"business":            "article",
	"finance":             "article",
	"millionaire":         "article",
	"millionaires":        "article",
	"3d":                  "article",
	"3d generation":       "article",
	"vision":              "article",
	"chat history":        "article",
	"personal ai os":      "article",

	// video
	"video":     "youtube",
	"videos":    "youtube",
	"youtube":   "youtube",
	"film":      "youtube",
	"movie":     "youtube",
	"stream":    "youtube",
	"streaming": "youtube",
	"webinar":   "youtube",
	"talk":      "youtube",

	// podcast
	"podcast":   "podcast",
	"podcasts":  "podcast",
	"episode":   "podcast",
	"audio":     "podcast",
	"interview": "podcast",
	"show":      "podcast",

	// plain captures
	"tweet":    "tweet",
	"general":  "tweet",
	"thought":  "tweet",
	"thoughts": "tweet",
	"meme":     "tweet",
	"humor":    "tweet",
	"quote":    "tweet",
}

// keywordGroups are scanned against the combined lowercased
// title+summary+text. Strictly ordered; the first group with any
// substring hit wins.
var keywordGroups = []struct {
	key      string
	keywords []string
}{
	{"github", []string{"github.com", "github", "repository", "repo ", "open source", "library", "mcp", "framework", "sdk", "pull request", "automation"}},
	{"youtube", []string{"youtube", "youtu.be", "video", "watch?v", "webinar"}},
	{"podcast", []string{"podcast", "episode", "spotify"}},
	{"article", []string{"article", "blog", "tutorial", "guide", "essay", "newsletter", "how to"}},
	{FallbackKey, []string{"tweet", "meme", "thought", "automation"}},
}

// articleTopics is the broad last-resort set: labels that usually mean
// the post is worth filing as an article even when nothing more specific
// matched.
var articleTopics = []string{"ai", "student", "deal", "credit", "startup", "funding", "accelerator", "combinator"}

// Resolver maps a noisy free-text category label plus the bookmark's own
// text and links onto exactly one registry rule. Resolution is layered:
// each layer is consulted only when the previous ones produced nothing
// more specific than the capture fallback, and within a layer the first
// matching rule wins. The whole thing is a pure function of its inputs.
type Resolver struct {
	registry *Registry
}

func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve never returns a zero rule; when every layer comes up empty the
// registry fallback is used.
func (r *Resolver) Resolve(bookmark models.Bookmark, result models.ReasoningResult) models.CategoryRule {
	combined := strings.ToLower(result.Title + " " + result.Summary + " " + bookmark.Text)

	// 1. Direct lookup of the provider's label in the synonym table.
	label := strings.ToLower(strings.TrimSpace(result.Category))
	key := synonyms[label]

	// 2. Keyword scan over the combined text.
	if key == "" {
		key = scanKeywordGroups(combined)
	}

	// 3. Word-exact probe of the synonym table.
	if key == "" || key == FallbackKey {
		if k := wordExactLookup(combined); k != "" && k != FallbackKey {
			key = k
		}
	}

	// 4. Broad topical fallback onto the article rule.
	if key == "" || key == FallbackKey {
		for _, topic := range articleTopics {
			if strings.Contains(combined, topic) {
				key = "article"
				break
			}
		}
	}

	// 5. Still only a capture: let the registry's URL patterns decide.
	if key == "" || key == FallbackKey {
		if rule, ok := r.registry.MatchLinks(bookmark.Links); ok {
			return rule
		}
	}

	// 6. Terminal default.
	if key == "" {
		return r.registry.Fallback()
	}
	return r.registry.Resolve(key)
}

func scanKeywordGroups(combined string) string {
	for _, group := range keywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(combined, keyword) {
				return group.key
			}
		}
	}
	return ""
}

func wordExactLookup(combined string) string {
	for _, token := range strings.Fields(combined) {
		token = strings.Trim(token, `.,;:!?"'()[]#*`)
		if key, ok := synonyms[token]; ok {
			return key
		}
	}
	return ""
}
