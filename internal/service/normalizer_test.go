package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/stretchr/testify/require"

	"news-api/internal/domain"
	"news-api/internal/service"
	"news-api/pkg/datetime"
	"news-api/pkg/fingerprint"
	"news-api/pkg/keywords"
)

func newNormalizer() *service.Normalizer {
	return service.NewNormalizer(keywords.NewExtractor(), datetime.NewFormatter())
}

func TestNormalizeNilOrEmptyFeed(t *testing.T) {
	normalizer := newNormalizer()

	require.Empty(t, normalizer.Normalize(nil, domain.SourceChile))
	require.Empty(t, normalizer.Normalize(&gofeed.Feed{}, domain.SourceChile))
	require.Empty(t, normalizer.Normalize(&gofeed.Feed{Items: []*gofeed.Item{}}, domain.SourceChile))
}

func TestNormalizeSingleItem(t *testing.T) {
	normalizer := newNormalizer()
	feed := &gofeed.Feed{Items: []*gofeed.Item{{
		Title:       "Se registra un sismo en el norte",
		Link:        "https://elpais.com/chile/2024/nota.html",
		Description: "Un fuerte sismo sacudió la región esta mañana",
		Published:   "Mon, 15 Jan 2024 10:30:00 +0100",
		Categories:  []string{"Sismos"},
	}}}

	got := normalizer.Normalize(feed, domain.SourceChile)

	require.Len(t, got, 1)
	record := got[0]
	require.Equal(t, "Se registra un sismo en el norte", record.Title)
	require.Equal(t, "https://elpais.com/chile/2024/nota.html", record.Link)
	require.Equal(t, "Un fuerte sismo sacudió la región esta mañana", record.Description)
	require.Equal(t, domain.SourceChile, record.Source)
	require.Equal(t, []string{"Sismos"}, record.Categories)
	require.True(t, time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC).Equal(record.PubDate))
	require.WithinDuration(t, time.Now().UTC(), record.IngestionDate, time.Minute)
	require.Equal(t,
		fingerprint.New(record.Link, record.Title),
		record.UniqueID)
	require.NotEmpty(t, record.Keywords)
	require.Contains(t, record.Keywords, "sismo")
}

func TestNormalizeMissingFieldsDefaultToEmpty(t *testing.T) {
	normalizer := newNormalizer()
	feed := &gofeed.Feed{Items: []*gofeed.Item{{}}}

	got := normalizer.Normalize(feed, domain.SourceMexico)

	require.Len(t, got, 1)
	record := got[0]
	require.Empty(t, record.Title)
	require.Empty(t, record.Link)
	require.Empty(t, record.Description)
	require.Empty(t, record.Image)
	require.Empty(t, record.Categories)
	require.Empty(t, record.Keywords)
	// Empty link and title still fingerprint deterministically.
	require.Equal(t, fingerprint.New("", ""), record.UniqueID)
	require.False(t, record.PubDate.IsZero())
}

func TestNormalizeSkipsNilItems(t *testing.T) {
	normalizer := newNormalizer()
	feed := &gofeed.Feed{Items: []*gofeed.Item{
		nil,
		{Title: "Válida", Link: "https://example.com/valida"},
	}}

	got := normalizer.Normalize(feed, domain.SourceArgentina)

	require.Len(t, got, 1)
	require.Equal(t, "Válida", got[0].Title)
}

func TestNormalizeStripsHTMLFromDescription(t *testing.T) {
	normalizer := newNormalizer()
	feed := &gofeed.Feed{Items: []*gofeed.Item{{
		Title:       "Nota",
		Link:        "https://example.com/nota",
		Description: "<p>Hola <b>mundo</b></p>",
	}}}

	got := normalizer.Normalize(feed, domain.SourceTecnologia)

	require.Len(t, got, 1)
	require.Equal(t, "Hola mundo", got[0].Description)
}

func TestNormalizeTruncatesLongDescriptions(t *testing.T) {
	normalizer := newNormalizer()
	long := strings.TrimSpace(strings.Repeat("palabra ", 300))
	feed := &gofeed.Feed{Items: []*gofeed.Item{{
		Title:       "Nota",
		Link:        "https://example.com/larga",
		Description: long,
	}}}

	got := normalizer.Normalize(feed, domain.SourceChile)

	require.Len(t, got, 1)
	description := []rune(got[0].Description)
	require.Len(t, description, 1003)
	require.True(t, strings.HasSuffix(got[0].Description, "..."))
}

func TestNormalizeFallsBackToContent(t *testing.T) {
	normalizer := newNormalizer()
	feed := &gofeed.Feed{Items: []*gofeed.Item{{
		Title:   "Nota",
		Link:    "https://example.com/contenido",
		Content: "Contenido completo del artículo",
	}}}

	got := normalizer.Normalize(feed, domain.SourceChile)

	require.Len(t, got, 1)
	require.Equal(t, "Contenido completo del artículo", got[0].Description)
}

func TestNormalizeImageFromMediaContent(t *testing.T) {
	normalizer := newNormalizer()
	feed := &gofeed.Feed{Items: []*gofeed.Item{{
		Title: "Nota",
		Link:  "https://example.com/imagen",
		Extensions: ext.Extensions{
			"media": {
				"content": []ext.Extension{
					{Attrs: map[string]string{"url": "https://img.example.com/a.jpg"}},
				},
			},
		},
	}}}

	got := normalizer.Normalize(feed, domain.SourceChile)

	require.Len(t, got, 1)
	require.Equal(t, "https://img.example.com/a.jpg", got[0].Image)
}

func TestNormalizeImageFromEnclosure(t *testing.T) {
	normalizer := newNormalizer()
	feed := &gofeed.Feed{Items: []*gofeed.Item{{
		Title: "Nota",
		Link:  "https://example.com/adjunto",
		Enclosures: []*gofeed.Enclosure{
			{URL: "https://cdn.example.com/audio.mp3", Type: "audio/mpeg"},
			{URL: "https://cdn.example.com/foto.jpg", Type: "image/jpeg"},
		},
	}}}

	got := normalizer.Normalize(feed, domain.SourceChile)

	require.Len(t, got, 1)
	require.Equal(t, "https://cdn.example.com/foto.jpg", got[0].Image)
}

func TestNormalizeMultiValuedCategoriesStayAList(t *testing.T) {
	normalizer := newNormalizer()
	feed := &gofeed.Feed{Items: []*gofeed.Item{{
		Title:      "Nota",
		Link:       "https://example.com/categorias",
		Categories: []string{"Política", " Internacional ", ""},
	}}}

	got := normalizer.Normalize(feed, domain.SourceArgentina)

	require.Len(t, got, 1)
	require.Equal(t, []string{"Política", "Internacional"}, got[0].Categories)
	require.Equal(t, "Política, Internacional", got[0].CategoryLabel())
}
