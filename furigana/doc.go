// Package furigana attaches readings to the kanji runs of a word in the
// bracketed ruby convention used by Anki card fields:
//
//	Align("食べる", "たべる") == " 食[た]べる"
//
// Each kanji run is written as a single space, the run text, and its reading
// in square brackets. Kana runs are copied through and act as anchors: the
// reading owed to a kanji run ends where the next kana run first appears in
// the remaining reading. The split is leftmost and greedy; no dictionary is
// consulted.
//
// All functions are pure and safe for concurrent use.
package furigana
