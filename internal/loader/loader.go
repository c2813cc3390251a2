package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xaenox/tweetfiler/internal/models"
)

// LoadBookmarks reads a bookmark export file: a JSON array of bookmark
// objects. An unreadable or malformed export is a startup failure, not a
// per-bookmark one.
func LoadBookmarks(path string) ([]models.Bookmark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bookmarks file: %w", err)
	}

	var bookmarks []models.Bookmark
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		return nil, fmt.Errorf("parse bookmarks file %s: %w", path, err)
	}

	return bookmarks, nil
}
