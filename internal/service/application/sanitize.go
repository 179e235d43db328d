package application

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// sanitizeCoverNote strips markup from a cover note, trims it and caps it at
// maxRunes characters. An empty result is returned as nil.
func sanitizeCoverNote(raw *string, maxRunes int) *string {
	if raw == nil {
		return nil
	}

	text := strings.TrimSpace(stripTags(*raw))
	if r := []rune(text); len(r) > maxRunes {
		text = strings.TrimSpace(string(r[:maxRunes]))
	}
	if text == "" {
		return nil
	}
	return &text
}

// stripTags returns the text content of s. Script and style bodies are
// dropped; entities are decoded.
func stripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var (
		b    strings.Builder
		skip int
	)
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way the text so far is the result.
			return b.String()
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			if isRawTextTag(z) {
				skip++
			}
		case html.EndTagToken:
			if isRawTextTag(z) && skip > 0 {
				skip--
			}
		}
	}
}

func isRawTextTag(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch atom.Lookup(name) {
	case atom.Script, atom.Style:
		return true
	}
	return false
}
