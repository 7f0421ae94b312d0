package service_test

import (
	"context"

	"news-api/internal/domain"
)

// fakeNewsRepo implements repository.NewsRepository with per-method hooks;
// nil hooks answer with zero values.
type fakeNewsRepo struct {
	insertFn          func(news *domain.News) error
	findAllFn         func(p domain.Pagination) (*domain.PaginatedResult, error)
	findByIDFn        func(id int) (*domain.News, error)
	findWithFiltersFn func(f domain.Filters, p domain.Pagination) (*domain.PaginatedResult, error)
	deleteFn          func(id int) (bool, error)
	statsFn           func() (*domain.Stats, error)

	inserted []domain.News
	calls    int
}

func (r *fakeNewsRepo) Insert(_ context.Context, news *domain.News) error {
	r.calls++
	r.inserted = append(r.inserted, *news)
	if r.insertFn != nil {
		return r.insertFn(news)
	}
	return nil
}

func (r *fakeNewsRepo) FindAll(_ context.Context, p domain.Pagination) (*domain.PaginatedResult, error) {
	r.calls++
	if r.findAllFn != nil {
		return r.findAllFn(p)
	}
	return &domain.PaginatedResult{Results: []domain.News{}, Page: p.Page, Limit: p.Limit}, nil
}

func (r *fakeNewsRepo) FindByID(_ context.Context, id int) (*domain.News, error) {
	r.calls++
	if r.findByIDFn != nil {
		return r.findByIDFn(id)
	}
	return nil, domain.ErrNewsNotFound
}

func (r *fakeNewsRepo) FindWithFilters(_ context.Context, f domain.Filters, p domain.Pagination) (*domain.PaginatedResult, error) {
	r.calls++
	if r.findWithFiltersFn != nil {
		return r.findWithFiltersFn(f, p)
	}
	return &domain.PaginatedResult{Results: []domain.News{}, Page: p.Page, Limit: p.Limit}, nil
}

func (r *fakeNewsRepo) DeleteByID(_ context.Context, id int) (bool, error) {
	r.calls++
	if r.deleteFn != nil {
		return r.deleteFn(id)
	}
	return false, nil
}

func (r *fakeNewsRepo) Stats(_ context.Context) (*domain.Stats, error) {
	r.calls++
	if r.statsFn != nil {
		return r.statsFn()
	}
	return &domain.Stats{BySource: []domain.SourceStat{}}, nil
}

type fakeFetcher struct {
	body  string
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.body, nil
}
