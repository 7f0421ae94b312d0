package feed

import (
	"fmt"

	"github.com/mmcdole/gofeed"

	"news-api/internal/domain"
)

// Parser converts raw feed markup into gofeed's structured form. It performs
// no schema validation beyond what the markup itself requires; a feed whose
// channel has no items simply parses to an empty item list.
type Parser struct {
	parser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{parser: gofeed.NewParser()}
}

// Parse fails with domain.ErrFeedParse on malformed markup, which is fatal
// for the source's run.
func (p *Parser) Parse(raw string) (*gofeed.Feed, error) {
	parsed, err := p.parser.ParseString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFeedParse, err)
	}
	return parsed, nil
}
