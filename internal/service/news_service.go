package service

import (
	"context"
	"errors"
	"fmt"

	"news-api/internal/domain"
	"news-api/internal/repository"
)

// NewsService serves stored records. All operations validate caller input
// before touching the store and are safe to run concurrently with ingestion.
type NewsService struct {
	newsRepo repository.NewsRepository
}

func NewNewsService(newsRepo repository.NewsRepository) *NewsService {
	return &NewsService{newsRepo: newsRepo}
}

func (s *NewsService) GetNews(ctx context.Context, pagination domain.Pagination) (*domain.PaginatedResult, error) {
	if err := pagination.Validate(); err != nil {
		return nil, err
	}

	result, err := s.newsRepo.FindAll(ctx, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to get news: %w", err)
	}
	return result, nil
}

// GetNewsByID returns domain.ErrNewsNotFound for a well-formed but absent id.
func (s *NewsService) GetNewsByID(ctx context.Context, id int) (*domain.News, error) {
	if id <= 0 {
		return nil, domain.ErrNewsNotFound
	}

	news, err := s.newsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNewsNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get news %d: %w", id, err)
	}
	return news, nil
}

func (s *NewsService) SearchNews(ctx context.Context, filters domain.Filters, pagination domain.Pagination) (*domain.PaginatedResult, error) {
	if err := pagination.Validate(); err != nil {
		return nil, err
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	result, err := s.newsRepo.FindWithFilters(ctx, filters, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to search news: %w", err)
	}
	return result, nil
}

// DeleteNews reports whether a record existed to delete; a missing id is not
// an error.
func (s *NewsService) DeleteNews(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	deleted, err := s.newsRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete news %d: %w", id, err)
	}
	return deleted, nil
}

func (s *NewsService) GetStats(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.newsRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}
