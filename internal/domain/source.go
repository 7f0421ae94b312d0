package domain

import "strings"

// Source identifies a configured feed. The feedURLs map below is the single
// source of truth for valid values; anything not in it is rejected before a
// network call is made.
type Source string

const (
	SourceChile      Source = "chile"
	SourceArgentina  Source = "argentina"
	SourceMexico     Source = "mexico"
	SourceTecnologia Source = "tecnologia"
)

var feedURLs = map[Source]string{
	SourceChile:      "https://feeds.elpais.com/mrss-s/pages/ep/site/elpais.com/section/chile/portada",
	SourceArgentina:  "https://feeds.elpais.com/mrss-s/pages/ep/site/elpais.com/section/argentina/portada",
	SourceMexico:     "https://feeds.elpais.com/mrss-s/pages/ep/site/elpais.com/section/mexico/portada",
	SourceTecnologia: "https://elpais.com/rss/tecnologia/portada.xml",
}

var sourceOrder = []Source{SourceChile, SourceArgentina, SourceMexico, SourceTecnologia}

// ParseSource normalizes and validates a caller-supplied source key.
func ParseSource(raw string) (Source, error) {
	src := Source(strings.ToLower(strings.TrimSpace(raw)))
	if !src.Valid() {
		return "", ErrUnknownSource
	}
	return src, nil
}

func (s Source) Valid() bool {
	_, ok := feedURLs[s]
	return ok
}

// FeedURL returns the feed endpoint for a valid source and "" otherwise.
func (s Source) FeedURL() string {
	return feedURLs[s]
}

// Sources lists the configured sources in a stable order.
func Sources() []Source {
	out := make([]Source, len(sourceOrder))
	copy(out, sourceOrder)
	return out
}
