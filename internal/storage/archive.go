package storage

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xaenox/tweetfiler/internal/models"
)

// statusIDPattern matches the post permalinks embedded in archive
// entries. The captured digits are the bookmark ids used for dedup.
var statusIDPattern = regexp.MustCompile(`/status/(\d+)`)

// dateLayouts are tried in order when normalizing a bookmark's display
// date into an archive heading.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Archive maintains the single running markdown log of every processed
// bookmark, grouped into date sections newest-first. All mutation is
// whole-file read-modify-write; it must not be shared between
// concurrent writers.
type Archive struct {
	path   string
	logger *zap.Logger
}

func NewArchive(path string, logger *zap.Logger) *Archive {
	return &Archive{path: path, logger: logger}
}

// Path returns the archive file location.
func (a *Archive) Path() string {
	return a.path
}

// SeenIDs scans the archive for post permalinks and returns the set of
// bookmark ids already recorded. A missing archive yields an empty set.
func (a *Archive) SeenIDs() (map[string]struct{}, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]struct{}{}, nil
		}
		return nil, fmt.Errorf("read archive: %w", err)
	}

	ids := make(map[string]struct{})
	for _, match := range statusIDPattern.FindAllStringSubmatch(string(data), -1) {
		ids[match[1]] = struct{}{}
	}
	return ids, nil
}

// Append merge-inserts one entry under the heading for the bookmark's
// date. An existing date section gets the entry at its top; a new date
// section is prepended to the whole document, pushing prior content
// down. Existing content is never rewritten.
func (a *Archive) Append(bookmark models.Bookmark, result models.ReasoningResult, slug, filePath string) error {
	data, err := os.ReadFile(a.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read archive: %w", err)
	}
	content := string(data)

	heading := "# " + headingDate(bookmark.Date)
	entry := renderEntry(bookmark, result, slug, filePath)

	var updated string
	if idx := headingIndex(content, heading); idx >= 0 {
		lines := strings.Split(content, "\n")
		insert := idx + 1
		// keep the blank line that follows the heading
		if insert < len(lines) && strings.TrimSpace(lines[insert]) == "" {
			insert++
		}
		merged := make([]string, 0, len(lines)+strings.Count(entry, "\n")+2)
		merged = append(merged, lines[:insert]...)
		merged = append(merged, strings.Split(entry, "\n")...)
		merged = append(merged, lines[insert:]...)
		updated = strings.Join(merged, "\n")
	} else {
		section := heading + "\n\n" + entry + "\n"
		if strings.TrimSpace(content) == "" {
			updated = section
		} else {
			updated = section + "\n" + content
		}
	}

	if err := os.WriteFile(a.path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	a.logger.Debug("Archived bookmark",
		zap.String("bookmark_id", bookmark.ID),
		zap.String("date", heading))
	return nil
}

// headingIndex returns the line index of an exact date heading, or -1.
func headingIndex(content, heading string) int {
	for i, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == heading {
			return i
		}
	}
	return -1
}

func headingDate(display string) string {
	display = strings.TrimSpace(display)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, display); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if display == "" {
		return time.Now().Format("2006-01-02")
	}
	return display
}

func renderEntry(bookmark models.Bookmark, result models.ReasoningResult, slug, filePath string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## @%s: %s\n\n", bookmark.Author, result.Title)

	for _, line := range strings.Split(strings.TrimSpace(bookmark.Text), "\n") {
		fmt.Fprintf(&sb, "> %s\n", line)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "- [Tweet](%s)\n", bookmark.TweetURL)
	if link := bookmark.PrimaryLink(); link != nil {
		fmt.Fprintf(&sb, "- [Link](%s)\n", link.Expanded)
	}
	if tags := mergeTags(result.Tags, bookmark.Tags); len(tags) > 0 {
		wiki := make([]string, len(tags))
		for i, tag := range tags {
			wiki[i] = "[[" + strings.TrimPrefix(tag, "#") + "]]"
		}
		fmt.Fprintf(&sb, "- Tags: %s\n", strings.Join(wiki, ", "))
	}
	if filePath != "" {
		fmt.Fprintf(&sb, "- Filed: [[%s]] (%s)\n", slug, filePath)
	}
	fmt.Fprintf(&sb, "- What: %s\n", result.Summary)

	return sb.String()
}
