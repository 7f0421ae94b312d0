package domain

import (
	"strings"
	"time"
)

// News is the canonical record every feed item is normalized into before it
// reaches the store.
type News struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Link          string    `json:"link"`
	Description   string    `json:"description"`
	PubDate       time.Time `json:"pubDate"`
	Image         string    `json:"image"`
	Categories    []string  `json:"categories"`
	IngestionDate time.Time `json:"ingestionDate"`
	Source        Source    `json:"source"`
	Keywords      []string  `json:"keywords"`
	UniqueID      string    `json:"uniqueId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CategoryLabel flattens the category list for presentation. Categories stay
// a list everywhere else.
func (n *News) CategoryLabel() string {
	return strings.Join(n.Categories, ", ")
}
