package furigana

import (
	"regexp"
	"strings"
)

const (
	separator = " "
	openRuby  = "["
	closeRuby = "]"
)

var (
	reRuby  = regexp.MustCompile(` (\S+?)\[([^\]]*)\]`)
	reStray = regexp.MustCompile(`\[[^\]]*\]`)
	reTag   = regexp.MustCompile(`<[^>]+>`)
)

// honorifics are the prefixes written inside the base of the kanji run they
// open: お年玉 renders as " お年玉[としだま]", not "お 年玉[としだま]".
var honorifics = map[string]bool{
	"お": true,
	"ご": true,
}

// format renders pieces as a card field value.
func format(pieces []Piece) string {
	var b strings.Builder
	prefix := ""
	for i, p := range pieces {
		if !p.Kanji {
			if i == 0 && len(pieces) > 1 && pieces[1].Kanji && honorifics[p.Text] {
				prefix = p.Text
				continue
			}
			b.WriteString(p.Text)
			continue
		}
		b.WriteString(separator)
		b.WriteString(prefix)
		b.WriteString(p.Text)
		b.WriteString(openRuby)
		b.WriteString(p.Reading)
		b.WriteString(closeRuby)
		prefix = ""
	}
	return b.String()
}

// Strip removes furigana markup, turning every " X[Y]" into "X".
// Strip(Align(word, reading)) == word unless the word's own kana contains
// bracket pairs.
func Strip(s string) string {
	return reRuby.ReplaceAllString(s, "$1")
}

// SpeechText cleans a card field for speech synthesis: HTML tags and
// furigana are removed, leftover bracket groups such as [sound:x.wav] are
// dropped and surrounding space is trimmed.
func SpeechText(s string) string {
	s = reTag.ReplaceAllString(s, "")
	s = Strip(s)
	s = reStray.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
