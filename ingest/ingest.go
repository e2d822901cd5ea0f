// Package ingest reads tab separated word lists:
//
//	# word	reading	pos	meaning
//	食べる	たべる	動II	吃
//
// Blank lines and lines starting with '#' are skipped. Only the word column
// is required; a missing reading is resolved later.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"ankifurigana/furigana"
	"ankifurigana/model"
)

var (
	// ErrSkip marks a blank or comment line.
	ErrSkip = errors.New("skip line")
	// ErrNoWord marks a line whose first column is empty.
	ErrNoWord = errors.New("missing word")
)

// ParseLine parses one word-list line into a card.
func ParseLine(line string) (model.Card, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return model.Card{}, ErrSkip
	}
	parts := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return model.Card{}, ErrNoWord
	}
	word := parts[0]
	// trimming drops the separator in front of a leading annotation
	if lead := " " + word; furigana.Strip(lead) != lead {
		word = lead
	}
	c := model.Card{Word: word}
	if len(parts) > 1 {
		c.Reading = parts[1]
	}
	if len(parts) > 2 {
		c.POS = parts[2]
	}
	if len(parts) > 3 {
		c.Meaning = strings.Join(parts[3:], " ")
	}
	return c, nil
}

// Read parses every line of r. Cards carry their 1-based line number and
// the given lesson tag.
func Read(r io.Reader, lesson string) ([]model.Card, error) {
	var cards []model.Card
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		c, err := ParseLine(sc.Text())
		if errors.Is(err, ErrSkip) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		c.Line = n
		c.Lesson = lesson
		cards = append(cards, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return cards, nil
}
