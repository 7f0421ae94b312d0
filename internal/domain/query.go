package domain

import "time"

// Pagination is 1-indexed; both fields must be positive.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Validate() error {
	if p.Page < 1 || p.Limit <= 0 {
		return ErrInvalidPagination
	}
	return nil
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Filters narrows a search; every set field is combined conjunctively.
// From and To are inclusive bounds on PubDate and may be set independently.
type Filters struct {
	Search   string
	Category string
	Source   Source
	From     time.Time
	To       time.Time
}

func (f Filters) Validate() error {
	if f.Source != "" && !f.Source.Valid() {
		return ErrInvalidFilter
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return ErrInvalidFilter
	}
	return nil
}

type PaginatedResult struct {
	Results    []News `json:"results"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}

// SaveResult accounts for every record of a persisted batch:
// Saved + Duplicates + Errors equals the batch size.
type SaveResult struct {
	Saved      int `json:"saved"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}

// IngestResult summarizes one ingestion run for a source.
type IngestResult struct {
	Source     Source `json:"source"`
	Processed  int    `json:"processed"`
	Saved      int    `json:"saved"`
	Duplicates int    `json:"duplicates"`
	Errors     int    `json:"errors"`
}

type SourceStat struct {
	Source Source    `json:"source"`
	Count  int       `json:"count"`
	Latest time.Time `json:"latest"`
}

type Stats struct {
	Total    int          `json:"total"`
	BySource []SourceStat `json:"bySource"`
}
