// Package keywords extracts the most frequent meaningful terms from
// Spanish-language news text.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

const defaultLimit = 5

// wordPattern accepts runs of 3+ letters, including Spanish diacritics.
var wordPattern = regexp.MustCompile(`[a-záéíóúñü]{3,}`)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"el", "la", "de", "que", "y", "a", "en", "un", "es", "se", "no",
		"te", "lo", "le", "da", "su", "por", "son", "con", "para", "al",
		"del", "los", "las", "una", "como", "pero", "sus", "ya", "o",
		"fue", "este", "ha", "si", "porque", "esta", "entre", "cuando",
		"muy", "sin", "sobre", "ser", "tiene", "también", "me", "hasta",
		"hay", "donde", "han", "quien", "están", "estado", "desde",
		"todo", "nos", "durante", "estados", "todos", "uno", "les", "ni",
		"contra", "otros", "fueron", "ese", "eso", "había", "ante",
		"ellos", "e", "esto", "mí", "antes", "algunos", "qué", "unos",
		"yo", "otro", "otras", "otra", "él", "tanto", "esa", "estos",
		"mucho", "quienes", "nada", "muchos", "cual", "poco", "ella",
		"estar", "haber", "estas", "estaba", "estamos", "algunas",
		"algo", "nosotros", "además", "ahí", "allí", "aquí", "así",
		"aunque", "cada", "casi", "cómo", "después", "dos", "luego",
		"mientras", "pues", "según", "siempre", "tal", "tales", "tan",
		"tienen", "toda", "todas", "tras", "vez",
	} {
		stopWords[w] = struct{}{}
	}
}

type Extractor struct {
	limit int
}

func NewExtractor() *Extractor {
	return &Extractor{limit: defaultLimit}
}

// Extract returns up to five terms from title and description, most frequent
// first. Ties keep first-occurrence order. Deterministic for identical input.
func (e *Extractor) Extract(title, description string) []string {
	text := strings.ToLower(title + " " + description)

	counts := make(map[string]int)
	var order []string
	for _, word := range wordPattern.FindAllString(text, -1) {
		if _, skip := stopWords[word]; skip {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > e.limit {
		order = order[:e.limit]
	}
	return order
}
