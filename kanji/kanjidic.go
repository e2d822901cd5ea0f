package kanji

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"ankifurigana/kana"

	jmdict "github.com/yomidevs/jmdict-go"
)

// Kanjidic maps a kanji to its on and kun readings from kanjidic2.
type Kanjidic struct {
	readings map[rune][]string
}

// LoadKanjidic parses kanjidic2 XML and builds the kanji→readings map.
func LoadKanjidic(r io.Reader) (*Kanjidic, error) {
	dic, err := jmdict.LoadKanjidic(r)
	if err != nil {
		return nil, fmt.Errorf("parse kanjidic2: %w", err)
	}
	k := &Kanjidic{readings: make(map[rune][]string, len(dic.Characters))}
	for _, c := range dic.Characters {
		if utf8.RuneCountInString(c.Literal) != 1 || c.ReadingMeaning == nil {
			continue
		}
		var readings []string
		for _, rd := range c.ReadingMeaning.Readings {
			if rd.Type == "ja_on" || rd.Type == "ja_kun" {
				readings = append(readings, rd.Value)
			}
		}
		lit, _ := utf8.DecodeRuneInString(c.Literal)
		k.readings[lit] = readings
	}
	log.Printf("[KANJIDIC] loaded %d kanji entries", len(k.readings))
	return k, nil
}

// LoadKanjidicFile opens path and calls LoadKanjidic.
func LoadKanjidicFile(path string) (*Kanjidic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open kanjidic2: %w", err)
	}
	defer f.Close()
	return LoadKanjidic(f)
}

// Readings returns the raw kanjidic2 readings for r, e.g. "い.る" or "ニュウ".
func (k *Kanjidic) Readings(r rune) []string {
	if k == nil {
		return nil
	}
	return k.readings[r]
}

// Hints returns the normalized candidate readings for every kanji in s,
// keyed by the kanji itself. Okurigana after '.' and affix dashes are
// dropped and everything is folded to hiragana.
func (k *Kanjidic) Hints(s string) map[string][]string {
	hints := make(map[string][]string)
	for _, r := range s {
		if !IsKanji(r) {
			continue
		}
		if _, ok := hints[string(r)]; ok {
			continue
		}
		var out []string
		seen := make(map[string]bool)
		for _, rd := range k.Readings(r) {
			n := NormalizeReading(rd)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
		hints[string(r)] = out
	}
	return hints
}

// Count returns the number of kanji entries loaded
func (k *Kanjidic) Count() int {
	if k == nil {
		return 0
	}
	return len(k.readings)
}

// NormalizeReading turns a kanjidic2 reading into the stem that appears
// before the kanji's okurigana, in hiragana: "い.る" → "い", "-がわ" → "がわ".
func NormalizeReading(s string) string {
	if i := strings.IndexRune(s, '.'); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, "-")
	return kana.ToHiragana(s)
}
