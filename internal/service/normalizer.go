package service

import (
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"

	"news-api/internal/domain"
	"news-api/pkg/datetime"
	"news-api/pkg/fingerprint"
	"news-api/pkg/keywords"
)

const maxDescriptionRunes = 1000

// Normalizer maps parsed feed entries onto canonical news records. It never
// fails a whole batch: a feed without items yields an empty batch, and a
// malformed entry is skipped and logged while the rest go through.
type Normalizer struct {
	extractor     *keywords.Extractor
	dateFormatter *datetime.Formatter
}

func NewNormalizer(extractor *keywords.Extractor, dateFormatter *datetime.Formatter) *Normalizer {
	return &Normalizer{
		extractor:     extractor,
		dateFormatter: dateFormatter,
	}
}

func (n *Normalizer) Normalize(parsed *gofeed.Feed, source domain.Source) []domain.News {
	if parsed == nil || len(parsed.Items) == 0 {
		log.Printf("[WARN] no items found in %q feed", source)
		return []domain.News{}
	}

	return lo.FilterMap(parsed.Items, func(item *gofeed.Item, _ int) (domain.News, bool) {
		if item == nil {
			log.Printf("[WARN] skipping malformed entry in %q feed", source)
			return domain.News{}, false
		}
		return n.normalizeItem(item, source), true
	})
}

func (n *Normalizer) normalizeItem(item *gofeed.Item, source domain.Source) domain.News {
	// Keywords and the unique id are computed over the raw title and
	// description, before any HTML stripping or truncation, so the
	// fingerprint of an unchanged item never drifts.
	rawDescription := item.Description
	if rawDescription == "" {
		rawDescription = item.Content
	}

	description := stripHTMLTags(rawDescription)
	if runes := []rune(description); len(runes) > maxDescriptionRunes {
		description = string(runes[:maxDescriptionRunes]) + "..."
	}

	pubDate, _ := n.dateFormatter.ParsePubDate(item.Published)

	categories := make([]string, 0, len(item.Categories))
	for _, category := range item.Categories {
		if c := strings.TrimSpace(category); c != "" {
			categories = append(categories, c)
		}
	}

	return domain.News{
		Title:         item.Title,
		Link:          item.Link,
		Description:   description,
		PubDate:       n.dateFormatter.NormalizeToUTC(pubDate),
		Image:         imageURL(item),
		Categories:    categories,
		IngestionDate: time.Now().UTC(),
		Source:        source,
		Keywords:      n.extractor.Extract(item.Title, rawDescription),
		UniqueID:      fingerprint.New(item.Link, item.Title),
	}
}

// imageURL picks the best available image reference: the item image, then a
// media:content url, then an image enclosure.
func imageURL(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	for _, media := range item.Extensions["media"]["content"] {
		if url := media.Attrs["url"]; url != "" {
			return url
		}
	}

	for _, enclosure := range item.Enclosures {
		if enclosure != nil && strings.HasPrefix(enclosure.Type, "image/") {
			return enclosure.URL
		}
	}

	return ""
}

func stripHTMLTags(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	text := doc.Text()
	text = strings.Join(strings.Fields(text), " ")
	return strings.TrimSpace(text)
}
