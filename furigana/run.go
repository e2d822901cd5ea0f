package furigana

import (
	"unicode/utf8"

	"ankifurigana/kanji"
)

// Run is a maximal substring of a word whose characters share one script
// class.
type Run struct {
	Text  string `json:"text"`
	Kanji bool   `json:"kanji"`
}

// Segment splits word into runs, left to right. Concatenating the Text of
// the returned runs gives back word exactly. An empty word yields nil.
func Segment(word string) []Run {
	var runs []Run
	start := 0
	for start < len(word) {
		r, size := utf8.DecodeRuneInString(word[start:])
		class := kanji.Classify(r)
		end := start + size
		for end < len(word) {
			next, n := utf8.DecodeRuneInString(word[end:])
			if kanji.Classify(next) != class {
				break
			}
			end += n
		}
		runs = append(runs, Run{Text: word[start:end], Kanji: class == kanji.Logographic})
		start = end
	}
	return runs
}
