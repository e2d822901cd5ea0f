package furigana

import (
	"ankifurigana/kana"
	"ankifurigana/kanji"
)

// Piece is one unit of aligned output: either literal kana text, or a kanji
// run with the reading attached to it.
type Piece struct {
	Text    string `json:"text"`
	Reading string `json:"reading,omitempty"`
	Kanji   bool   `json:"kanji"`
}

// Result is the outcome of aligning one word.
type Result struct {
	// Text is the annotated field value.
	Text string `json:"text"`
	// Pieces is nil when the word was returned unchanged.
	Pieces []Piece `json:"pieces,omitempty"`
	// Approximated is set when a kana anchor could not be found in the
	// remaining reading and a kanji run was given the whole tail instead.
	Approximated bool `json:"approximated"`
}

// Align returns word with furigana attached to each of its kanji runs.
func Align(word, reading string) string {
	return Annotate(word, reading).Text
}

// Annotate aligns reading against word and reports how the split was made.
// Words that need no annotation (empty input, pure kana, no kanji) come back
// unchanged with nil Pieces.
func Annotate(word, reading string) Result {
	if word == "" || reading == "" {
		return Result{Text: word}
	}
	if kana.Equal(word, reading) {
		return Result{Text: word}
	}
	if !kanji.Contains(word) {
		return Result{Text: word}
	}

	folded := []rune(kana.ToHiragana(reading))
	src := []rune(reading)
	runs := Segment(word)
	res := Result{Pieces: make([]Piece, 0, len(runs))}
	cursor := 0
	for i, run := range runs {
		if !run.Kanji {
			cursor += kana.Len(run.Text)
			if cursor > len(folded) {
				cursor = len(folded)
			}
			res.Pieces = append(res.Pieces, Piece{Text: run.Text})
			continue
		}

		end := len(folded)
		if anchor, ok := nextAnchor(runs[i+1:]); ok {
			if b := indexFrom(folded, []rune(kana.ToHiragana(anchor)), cursor); b >= 0 {
				end = b
			} else {
				res.Approximated = true
			}
		}
		res.Pieces = append(res.Pieces, Piece{Text: run.Text, Reading: string(src[cursor:end]), Kanji: true})
		cursor = end
	}
	res.Text = format(res.Pieces)
	return res
}

// nextAnchor returns the text of the first kana run in runs.
func nextAnchor(runs []Run) (string, bool) {
	for _, r := range runs {
		if !r.Kanji {
			return r.Text, true
		}
	}
	return "", false
}

// indexFrom is the rune index of the first occurrence of sub in s at or
// after from, or -1.
func indexFrom(s, sub []rune, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if string(s[i:i+len(sub)]) == string(sub) {
			return i
		}
	}
	return -1
}

// Reannotate aligns a card field that may already carry furigana. A field
// that is already annotated is returned as is with nil Pieces; the caller
// gets the plain word back from Strip.
func Reannotate(field, reading string) Result {
	if Strip(field) != field {
		return Result{Text: field}
	}
	return Annotate(field, reading)
}
