package classifier

import (
	"context"

	"github.com/xaenox/tweetfiler/internal/models"
)

// Classifier turns a bookmark into a structured analysis. Implementations
// may call out to a reasoning provider or work purely from local
// heuristics.
type Classifier interface {
	Classify(ctx context.Context, bookmark models.Bookmark) (models.ReasoningResult, error)
}
