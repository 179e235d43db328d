package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares free text for comparison:
// trims, lowercases and compresses runs of whitespace into one space.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize returns a copy of the criteria with every text field normalized.
func (c SearchCriteria) Normalize() SearchCriteria {
	c.Keyword = NormalizeText(c.Keyword)
	c.Location = NormalizeText(c.Location)
	c.Category = NormalizeText(c.Category)
	c.Language = NormalizeText(c.Language)
	return c
}
