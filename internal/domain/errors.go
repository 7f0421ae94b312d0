package domain

import "errors"

var (
	ErrUnknownSource = errors.New("unknown feed source")
	ErrFeedFetch     = errors.New("feed fetch failed")
	ErrFeedParse     = errors.New("feed parse failed")

	ErrNewsNotFound   = errors.New("news not found")
	ErrDuplicateEntry = errors.New("duplicate entry")

	ErrInvalidPagination = errors.New("invalid pagination parameters")
	ErrInvalidFilter     = errors.New("invalid filter parameters")
)
