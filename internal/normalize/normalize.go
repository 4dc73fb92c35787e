// Package normalize reshapes stored character and comic records for display.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"marvelapi/internal/model"
)

var lineBreak = regexp.MustCompile(`(?i)<br>|\r`)

// ComicTitle splits the title at the first ':' or '(' into title and subtitle.
// A colon is dropped, a parenthesis is kept. Titles with neither are left alone,
// so applying it twice is the same as applying it once.
func ComicTitle(c *model.Comic) {
	idx := strings.IndexAny(c.Title, ":(")
	if idx < 0 {
		return
	}
	sub := c.Title[idx:]
	if sub[0] == ':' {
		sub = sub[1:]
	}
	c.Subtitle = strings.TrimSpace(sub)
	c.Title = c.Title[:idx]
}

// ComicListingTitle moves a parenthetical out of the title into the subtitle.
// Unlike ComicTitle it ignores colons; search listings only split on '('.
func ComicListingTitle(c *model.Comic) {
	idx := strings.IndexByte(c.Title, '(')
	if idx < 0 {
		return
	}
	c.Subtitle = c.Title[idx:]
	c.Title = c.Title[:idx]
}

// ComicDescription normalizes the comic description in place.
func ComicDescription(c *model.Comic) {
	c.Description = Description(c.Description)
}

// Comic applies every comic normalization.
func Comic(c *model.Comic) {
	ComicTitle(c)
	ComicDescription(c)
}

// CharacterName moves a parenthetical alias out of the name into the subtitle.
func CharacterName(c *model.Character) {
	idx := strings.IndexByte(c.Name, '(')
	if idx < 0 {
		return
	}
	c.Subtitle = c.Name[idx:]
	c.Name = c.Name[:idx]
}

// CharacterWiki splits the comma-joined debut and origin attributes.
// Parts are not trimmed.
func CharacterWiki(c *model.Character) {
	c.Wiki.Debut = splitComma(c.Wiki.Debut)
	c.Wiki.Origin = splitComma(c.Wiki.Origin)
}

// Character applies every character normalization.
func Character(c *model.Character) {
	CharacterName(c)
	CharacterWiki(c)
	c.Description = Description(c.Description)
}

// Description trims s, turns every <br> tag and carriage return into a newline,
// trims again and composes the result to NFC.
func Description(s string) string {
	if s == "" {
		return s
	}
	s = strings.TrimSpace(s)
	s = lineBreak.ReplaceAllString(s, "\n")
	return norm.NFC.String(strings.TrimSpace(s))
}

func splitComma(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}
