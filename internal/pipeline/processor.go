package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xaenox/tweetfiler/internal/category"
	"github.com/xaenox/tweetfiler/internal/classifier"
	"github.com/xaenox/tweetfiler/internal/models"
	"github.com/xaenox/tweetfiler/internal/storage"
)

// Summary aggregates the outcome of one run.
type Summary struct {
	RunID     string
	Total     int
	Processed int
	Skipped   int
	Failed    int
	Results   []models.ProcessingResult
}

// Processor runs bookmarks through the filing pipeline one at a time, in
// input order. The archive performs non-atomic read-modify-write, so the
// processor must never be invoked concurrently.
type Processor struct {
	remote   classifier.Classifier
	defaults *classifier.DefaultClassifier
	resolver *category.Resolver
	writer   *storage.FileWriter
	archive  *storage.Archive
	logger   *zap.Logger
}

// New creates a processor. remote may be nil, in which case every
// bookmark is classified from local heuristics alone.
func New(remote classifier.Classifier, resolver *category.Resolver, writer *storage.FileWriter, archive *storage.Archive, logger *zap.Logger) *Processor {
	return &Processor{
		remote:   remote,
		defaults: classifier.NewDefaultClassifier(),
		resolver: resolver,
		writer:   writer,
		archive:  archive,
		logger:   logger,
	}
}

// Run processes the batch. Per-bookmark failures are logged and counted
// but never abort the run; only an unreadable archive at startup does.
func (p *Processor) Run(ctx context.Context, bookmarks []models.Bookmark) (*Summary, error) {
	seen, err := p.archive.SeenIDs()
	if err != nil {
		return nil, fmt.Errorf("seed duplicate set: %w", err)
	}

	summary := &Summary{
		RunID: uuid.New().String(),
		Total: len(bookmarks),
	}

	p.logger.Info("Starting run",
		zap.String("run_id", summary.RunID),
		zap.Int("bookmarks", len(bookmarks)),
		zap.Int("already_archived", len(seen)))

	for _, bookmark := range bookmarks {
		if _, dup := seen[bookmark.ID]; dup {
			summary.Skipped++
			p.logger.Info("Skipping duplicate bookmark",
				zap.String("bookmark_id", bookmark.ID))
			continue
		}

		result, err := p.processOne(ctx, bookmark)
		if err != nil {
			summary.Failed++
			p.logger.Error("Failed to process bookmark",
				zap.Error(err),
				zap.String("bookmark_id", bookmark.ID))
			continue
		}

		seen[bookmark.ID] = struct{}{}
		summary.Processed++
		summary.Results = append(summary.Results, result)

		p.logger.Info("Processed bookmark",
			zap.String("bookmark_id", bookmark.ID),
			zap.String("category", result.Category),
			zap.String("file_path", result.FilePath))
	}

	p.logger.Info("Run complete",
		zap.String("run_id", summary.RunID),
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Int("total", summary.Total))

	return summary, nil
}

func (p *Processor) processOne(ctx context.Context, bookmark models.Bookmark) (models.ProcessingResult, error) {
	analysis := p.classify(ctx, bookmark)
	rule := p.resolver.Resolve(bookmark, analysis)
	slug := storage.Slug(analysis.Title, bookmark.Author)

	filePath, err := p.writer.WriteNote(bookmark, analysis, rule, slug)
	if err != nil {
		var slugErr *storage.InvalidSlugError
		var pathErr *storage.InvalidPathError
		if !errors.As(err, &slugErr) && !errors.As(err, &pathErr) {
			return models.ProcessingResult{}, err
		}
		// Precondition failures lose the note but not the archive entry.
		p.logger.Warn("Skipping note file",
			zap.Error(err),
			zap.String("bookmark_id", bookmark.ID))
		filePath = ""
	}

	if err := p.archive.Append(bookmark, analysis, slug, filePath); err != nil {
		return models.ProcessingResult{}, err
	}

	return models.ProcessingResult{
		ID:       bookmark.ID,
		Title:    analysis.Title,
		Slug:     slug,
		Category: rule.Key,
		FilePath: filePath,
	}, nil
}

// classify consults the remote classifier when one is configured and
// falls back to local heuristics on any failure: oversized prompt,
// timeout, transport error or malformed output all degrade the same way.
func (p *Processor) classify(ctx context.Context, bookmark models.Bookmark) models.ReasoningResult {
	if p.remote != nil {
		result, err := p.remote.Classify(ctx, bookmark)
		if err == nil {
			return result
		}
		p.logger.Warn("Falling back to default metadata",
			zap.Error(err),
			zap.String("bookmark_id", bookmark.ID))
	}

	result, _ := p.defaults.Classify(ctx, bookmark)
	return result
}
