package dictionary

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"ankifurigana/kana"
	"ankifurigana/model"

	jmdict "github.com/yomidevs/jmdict-go"
)

// Dictionary indexes JMdict entries by kanji expression and by reading.
type Dictionary struct {
	byKanji   map[string][]*jmdict.JmdictEntry
	byReading map[string][]*jmdict.JmdictEntry
	entries   int
}

// Load parses JMdict (or ENAMDICT) XML and builds the lookup maps.
func Load(r io.Reader) (*Dictionary, error) {
	jm, _, err := jmdict.LoadJmdict(r)
	if err != nil {
		return nil, fmt.Errorf("parse jmdict: %w", err)
	}
	d := &Dictionary{
		byKanji:   make(map[string][]*jmdict.JmdictEntry),
		byReading: make(map[string][]*jmdict.JmdictEntry),
		entries:   len(jm.Entries),
	}
	for i := range jm.Entries {
		entry := &jm.Entries[i]
		for _, k := range entry.Kanji {
			d.byKanji[k.Expression] = append(d.byKanji[k.Expression], entry)
		}
		for _, rd := range entry.Readings {
			key := kana.ToHiragana(rd.Reading)
			d.byReading[key] = append(d.byReading[key], entry)
		}
	}
	log.Printf("[DICT] loaded %d entries (%d kanji keys)", d.entries, len(d.byKanji))
	return d, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jmdict: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Len returns the number of entries loaded.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return d.entries
}

// Reading returns the first reading JMdict lists for word. For kanji
// spellings, readings marked re_nokanji or restricted to other spellings are
// skipped. Kana words match on their reading and come back as written.
func (d *Dictionary) Reading(word string) (string, bool) {
	if d == nil || word == "" {
		return "", false
	}
	for _, e := range d.byKanji[word] {
		if r, ok := readingFor(e, word); ok {
			return r, true
		}
	}
	if _, ok := d.byReading[kana.ToHiragana(word)]; ok {
		return word, true
	}
	return "", false
}

func readingFor(e *jmdict.JmdictEntry, word string) (string, bool) {
	for _, r := range e.Readings {
		if r.NoKanji != nil {
			continue
		}
		if len(r.Restrictions) > 0 && !contains(r.Restrictions, word) {
			continue
		}
		return r.Reading, true
	}
	return "", false
}

// Entry converts the first matching JMdict entry for word.
func (d *Dictionary) Entry(word string) (model.DictionaryEntry, bool) {
	if d == nil {
		return model.DictionaryEntry{}, false
	}
	entries := d.byKanji[word]
	if len(entries) == 0 {
		entries = d.byReading[kana.ToHiragana(word)]
	}
	if len(entries) == 0 {
		return model.DictionaryEntry{}, false
	}
	return convertJMdictEntry(entries[0]), true
}

// convertJMdictEntry converts a JMdict entry to DictionaryEntry.
func convertJMdictEntry(jm *jmdict.JmdictEntry) model.DictionaryEntry {
	out := model.DictionaryEntry{Source: "JMdict"}
	for _, k := range jm.Kanji {
		out.Kanji = append(out.Kanji, k.Expression)
		out.IsCommon = out.IsCommon || isCommon(k.Priorities)
	}
	for _, r := range jm.Readings {
		out.Readings = append(out.Readings, r.Reading)
		out.IsCommon = out.IsCommon || isCommon(r.Priorities)
	}
	for _, s := range jm.Sense {
		for _, g := range s.Glossary {
			out.Glosses = append(out.Glosses, g.Content)
		}
		out.POS = append(out.POS, s.PartsOfSpeech...)
	}
	return out
}

// news1, ichi1, spec1, gai1 mark the common-word subset.
func isCommon(priorities []string) bool {
	for _, p := range priorities {
		if strings.HasSuffix(p, "1") && !strings.HasPrefix(p, "nf") {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
