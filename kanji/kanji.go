package kanji

// Class is the script class of a single character.
type Class int

const (
	Other Class = iota
	Logographic
)

func (c Class) String() string {
	if c == Logographic {
		return "logographic"
	}
	return "other"
}

// ideograph blocks, inclusive
var ranges = [...][2]rune{
	{0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{0x3400, 0x4DBF},   // Extension A
	{0x20000, 0x2A6DF}, // Extension B
	{0xF900, 0xFAFF},   // Compatibility Ideographs
}

// Classify returns Logographic for runes inside the ideograph blocks and
// Other for everything else, including 々 and ヶ.
func Classify(r rune) Class {
	for _, rg := range ranges {
		if r >= rg[0] && r <= rg[1] {
			return Logographic
		}
	}
	return Other
}

func IsKanji(r rune) bool {
	return Classify(r) == Logographic
}

// Contains reports whether s has at least one kanji.
func Contains(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}
