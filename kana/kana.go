// Package kana folds katakana onto hiragana for reading comparison.
package kana

import "unicode/utf8"

const (
	katakanaFirst = 0x30A1 // ァ
	katakanaLast  = 0x30F6 // ヶ
	// offset between a katakana code point and its hiragana counterpart
	hiraganaOffset = 0x60
)

// ToHiragana maps every katakana rune in U+30A1..U+30F6 onto hiragana by a
// fixed code point offset. All other runes pass through unchanged, so the
// result has the same rune count as s.
func ToHiragana(s string) string {
	if !hasKatakana(s) {
		return s
	}
	runes := []rune(s)
	for i, r := range runes {
		if r >= katakanaFirst && r <= katakanaLast {
			runes[i] = r - hiraganaOffset
		}
	}
	return string(runes)
}

// Equal reports whether a and b read the same once katakana is folded.
func Equal(a, b string) bool {
	return ToHiragana(a) == ToHiragana(b)
}

// Len is the rune length of s, the unit cursors are measured in.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

func hasKatakana(s string) bool {
	for _, r := range s {
		if r >= katakanaFirst && r <= katakanaLast {
			return true
		}
	}
	return false
}
