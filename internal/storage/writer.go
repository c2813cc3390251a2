package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xaenox/tweetfiler/internal/models"
)

// InvalidSlugError reports a file write attempted without a usable slug.
type InvalidSlugError struct {
	BookmarkID string
}

func (e *InvalidSlugError) Error() string {
	return fmt.Sprintf("invalid slug for bookmark %s", e.BookmarkID)
}

// InvalidPathError reports a computed note path that escapes the output
// directory or is otherwise malformed.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid note path %q", e.Path)
}

// FileWriter persists one markdown note per filed bookmark into the
// folder named by the matched category rule.
type FileWriter struct {
	baseDir string
	logger  *zap.Logger
}

func NewFileWriter(baseDir string, logger *zap.Logger) *FileWriter {
	return &FileWriter{baseDir: baseDir, logger: logger}
}

// WriteNote writes the note for a bookmark and returns its path. Rules
// with any action other than "file" produce no file and an empty path.
// Creating the destination folder is idempotent, so a retry after a
// partial failure simply rewrites the same note.
func (w *FileWriter) WriteNote(bookmark models.Bookmark, result models.ReasoningResult, rule models.CategoryRule, slug string) (string, error) {
	if rule.Action != models.ActionFile {
		return "", nil
	}
	if strings.TrimSpace(slug) == "" {
		return "", &InvalidSlugError{BookmarkID: bookmark.ID}
	}

	relative := filepath.Join(rule.Folder, slug+".md")
	if rule.Folder == "" || !filepath.IsLocal(relative) {
		return "", &InvalidPathError{Path: relative}
	}
	path := filepath.Join(w.baseDir, relative)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}

	content := renderNote(bookmark, result, rule)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}

	w.logger.Debug("Wrote note",
		zap.String("bookmark_id", bookmark.ID),
		zap.String("path", path))
	return path, nil
}

func renderNote(bookmark models.Bookmark, result models.ReasoningResult, rule models.CategoryRule) string {
	var sb strings.Builder

	primary := bookmark.PrimaryLink()

	source := bookmark.TweetURL
	if primary != nil {
		source = primary.Expanded
	}

	template := rule.Template
	if template == "" {
		template = rule.Key
	}

	fmt.Fprintf(&sb, "# %s\n\n", result.Title)
	fmt.Fprintf(&sb, "- **Type**: %s\n", template)
	fmt.Fprintf(&sb, "- **Added**: %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintf(&sb, "- **Source**: %s\n", source)
	if tags := mergeTags(result.Tags, bookmark.Tags); len(tags) > 0 {
		fmt.Fprintf(&sb, "- **Tags**: %s\n", strings.Join(tags, " "))
	}
	fmt.Fprintf(&sb, "- **Via**: @%s\n\n", bookmark.Author)

	fmt.Fprintf(&sb, "## Summary\n\n%s\n\n", result.Summary)

	sb.WriteString("## Key Features\n\n")
	if primary != nil && primary.Content != nil && primary.Content.Description != "" {
		sb.WriteString(primary.Content.Description)
	} else {
		sb.WriteString("_No description available._")
	}
	sb.WriteString("\n\n")

	sb.WriteString("## Links\n\n")
	fmt.Fprintf(&sb, "- [Original post](%s)\n", bookmark.TweetURL)
	if primary != nil {
		fmt.Fprintf(&sb, "- [%s](%s)\n", linkLabel(primary), primary.Expanded)
	}

	return sb.String()
}

// mergeTags joins reasoning tags with the bookmark's pre-existing tags,
// reasoning tags first, dropping exact duplicates.
func mergeTags(reasoning, existing []string) []string {
	seen := make(map[string]struct{}, len(reasoning)+len(existing))
	merged := make([]string, 0, len(reasoning)+len(existing))
	for _, tag := range append(append([]string{}, reasoning...), existing...) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[strings.ToLower(tag)]; ok {
			continue
		}
		seen[strings.ToLower(tag)] = struct{}{}
		merged = append(merged, "#"+strings.ReplaceAll(tag, " ", "_"))
	}
	return merged
}

func linkLabel(link *models.Link) string {
	if link.Content != nil {
		if link.Content.Title != "" {
			return link.Content.Title
		}
		if link.Content.Name != "" {
			return link.Content.Name
		}
	}
	return link.Expanded
}
