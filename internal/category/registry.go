package category

import (
	"sort"
	"strings"

	"github.com/xaenox/tweetfiler/internal/models"
)

// FallbackKey is the registry key of the terminal default: an
// uncategorized capture with no filing destination.
const FallbackKey = "tweet"

// Registry is the closed set of category rules. Resolve is total: every
// key yields a rule, unknown keys yield the fallback, so callers never
// have to nil-check.
type Registry struct {
	rules    map[string]models.CategoryRule
	ordered  []string
	fallback models.CategoryRule
}

func NewRegistry(rules map[string]models.CategoryRule) *Registry {
	copied := make(map[string]models.CategoryRule, len(rules))
	ordered := make([]string, 0, len(rules))
	for key, rule := range rules {
		key = strings.ToLower(strings.TrimSpace(key))
		rule.Key = key
		copied[key] = rule
		ordered = append(ordered, key)
	}
	// Registries come from an unordered config map; a stable scan order
	// keeps URL matching deterministic across runs.
	sort.Strings(ordered)

	fallback, ok := copied[FallbackKey]
	if !ok {
		fallback = models.CategoryRule{
			Key:    FallbackKey,
			Action: models.ActionCapture,
		}
	}

	return &Registry{rules: copied, ordered: ordered, fallback: fallback}
}

// Resolve returns the rule for key, or the fallback rule when the key is
// unknown or empty.
func (r *Registry) Resolve(key string) models.CategoryRule {
	if rule, ok := r.rules[strings.ToLower(strings.TrimSpace(key))]; ok {
		return rule
	}
	return r.fallback
}

// Fallback returns the terminal default rule.
func (r *Registry) Fallback() models.CategoryRule {
	return r.fallback
}

// MatchLinks scans the bookmark's links in order against every rule's
// match substrings and returns the first rule with a hit.
func (r *Registry) MatchLinks(links []models.Link) (models.CategoryRule, bool) {
	for _, link := range links {
		url := strings.ToLower(link.Expanded)
		if url == "" {
			continue
		}
		for _, key := range r.ordered {
			for _, substr := range r.rules[key].Match {
				if substr != "" && strings.Contains(url, strings.ToLower(substr)) {
					return r.rules[key], true
				}
			}
		}
	}
	return models.CategoryRule{}, false
}
