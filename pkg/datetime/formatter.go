// Package datetime parses the publish dates found in syndication feeds.
// Feeds in the wild use a wide mix of layouts, so parsing tries each known
// format in turn.
package datetime

import (
	"log"
	"time"
)

type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

var feedDateFormats = []string{
	time.RFC1123Z,    // "Mon, 02 Jan 2006 15:04:05 -0700"
	time.RFC1123,     // "Mon, 02 Jan 2006 15:04:05 MST"
	time.RFC822Z,     // "02 Jan 06 15:04 -0700"
	time.RFC822,      // "02 Jan 06 15:04 MST"
	time.RFC3339,     // "2006-01-02T15:04:05Z07:00"
	time.RFC3339Nano, // "2006-01-02T15:04:05.999999999Z07:00"
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05.000-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02 15:04:05",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 -07:00",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 GMT",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -07:00",
	"2 Jan 2006 15:04:05",
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z",
	"Mon, 02 Jan 2006 15:04:05 GMT",
	"Mon, 02 Jan 2006 15:04:05 UTC",
	"02 Jan 2006 15:04:05 GMT",
	"02 Jan 2006 15:04:05 UTC",
	"2006/01/02 15:04:05",
	"02/01/2006 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// fallbackDate marks records whose publish date could not be parsed; it sorts
// them to the very end of publish-date-descending listings.
var fallbackDate = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

// ParsePubDate parses a feed publish date in UTC. An empty string means the
// feed omitted the date, in which case the current time is used.
func (f *Formatter) ParsePubDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Now().UTC(), nil
	}

	for _, format := range feedDateFormats {
		if parsed, err := time.Parse(format, dateStr); err == nil {
			return parsed.UTC(), nil
		}
	}

	log.Printf("[WARN] could not parse publish date %q, using fallback date", dateStr)
	return fallbackDate, nil
}

func (f *Formatter) NormalizeToUTC(t time.Time) time.Time {
	return t.UTC()
}
