package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mmcdole/gofeed"

	"news-api/internal/domain"
	"news-api/internal/repository"
)

type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type FeedParser interface {
	Parse(raw string) (*gofeed.Feed, error)
}

// IngestService drives the pipeline for one source: fetch, parse, normalize,
// persist. Fetch and parse failures abort the run; store-level faults are
// counted per record and the run carries on.
type IngestService struct {
	fetcher    FeedFetcher
	parser     FeedParser
	normalizer *Normalizer
	newsRepo   repository.NewsRepository
}

func NewIngestService(
	fetcher FeedFetcher,
	parser FeedParser,
	normalizer *Normalizer,
	newsRepo repository.NewsRepository,
) *IngestService {
	return &IngestService{
		fetcher:    fetcher,
		parser:     parser,
		normalizer: normalizer,
		newsRepo:   newsRepo,
	}
}

func (s *IngestService) Ingest(ctx context.Context, sourceKey string) (*domain.IngestResult, error) {
	source, err := domain.ParseSource(sourceKey)
	if err != nil {
		return nil, err
	}

	log.Printf("Ingesting feed for source %q", source)

	raw, err := s.fetcher.Fetch(ctx, source.FeedURL())
	if err != nil {
		return nil, fmt.Errorf("ingestion failed for source %q: %w", source, err)
	}

	parsed, err := s.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("ingestion failed for source %q: %w", source, err)
	}

	batch := s.normalizer.Normalize(parsed, source)
	saved := s.saveBatch(ctx, batch)

	result := &domain.IngestResult{
		Source:     source,
		Processed:  len(batch),
		Saved:      saved.Saved,
		Duplicates: saved.Duplicates,
		Errors:     saved.Errors,
	}

	log.Printf("Source %q: %d processed, %d saved, %d duplicates, %d errors",
		source, result.Processed, result.Saved, result.Duplicates, result.Errors)

	return result, nil
}

// saveBatch inserts records one at a time, in batch order, so every outcome
// is attributable to an exact record. There is no batch atomicity: a failing
// insert never rolls back earlier ones.
func (s *IngestService) saveBatch(ctx context.Context, batch []domain.News) domain.SaveResult {
	var result domain.SaveResult

	for i := range batch {
		err := s.newsRepo.Insert(ctx, &batch[i])
		switch {
		case err == nil:
			result.Saved++
		case errors.Is(err, domain.ErrDuplicateEntry):
			result.Duplicates++
		default:
			result.Errors++
			log.Printf("Error saving news %q: %v", batch[i].Title, err)
		}
	}

	return result
}
