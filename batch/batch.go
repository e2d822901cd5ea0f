package batch

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"ankifurigana/dictionary"
	"ankifurigana/furigana"
	"ankifurigana/kanji"
	"ankifurigana/logger"
	"ankifurigana/lookup"
	"ankifurigana/model"

	"golang.org/x/sync/errgroup"
)

// Options configures a batch run. The zero value aligns with one worker,
// resolves nothing and writes no review log.
type Options struct {
	Workers  int
	Resolver *lookup.Resolver
	// Kanjidic adds per-kanji reading hints to review entries.
	Kanjidic *kanji.Kanjidic
	// Dictionary fills in a missing meaning and part of speech.
	Dictionary *dictionary.Dictionary
	LogDir     string
}

// ReviewEntry is one card whose alignment needs a human look.
type ReviewEntry struct {
	Line     int                 `json:"line,omitempty"`
	Word     string              `json:"word"`
	Reading  string              `json:"reading"`
	Furigana string              `json:"furigana"`
	Reason   string              `json:"reason"`
	Hints    map[string][]string `json:"hints,omitempty"`
}

// Report summarizes a batch run.
type Report struct {
	ID       string        `json:"id"`
	Cards    []model.Card  `json:"cards"`
	Review   []ReviewEntry `json:"review,omitempty"`
	Resolved int           `json:"resolved"`
	// LogPath is set when a review document was written.
	LogPath string `json:"log_path,omitempty"`
}

const (
	reasonApproximated = "approximated"
	reasonNoReading    = "no reading"
)

// Run fills Furigana for every card. Cards without a reading are resolved
// first through opts.Resolver. A word that already carries furigana keeps
// it, and its Word is replaced by the plain text. The output keeps input
// order.
func Run(ctx context.Context, cards []model.Card, opts Options) (Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	rep := Report{ID: generateID(), Cards: make([]model.Card, len(cards))}
	resolved := make([]bool, len(cards))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, c := range cards {
		i, c := i, c
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			word := furigana.Strip(c.Word)
			if c.Reading == "" && kanji.Contains(word) {
				if reading, source, ok := opts.Resolver.Lookup(egCtx, word); ok {
					c.Reading = reading
					c.ReadingSource = source
					resolved[i] = true
				}
			}
			if c.Meaning == "" || c.POS == "" {
				if e, ok := opts.Dictionary.Entry(word); ok {
					fillEntry(&c, e)
				}
			}
			res := furigana.Reannotate(c.Word, c.Reading)
			c.Word = word
			c.Furigana = res.Text
			c.Approximated = res.Approximated
			c.NeedsReading = c.Reading != "" && c.Furigana != c.Reading
			rep.Cards[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, fmt.Errorf("batch %s: %w", rep.ID, err)
	}

	for i, c := range rep.Cards {
		if resolved[i] {
			rep.Resolved++
		}
		reason := ""
		switch {
		case c.Approximated:
			reason = reasonApproximated
		case c.Reading == "" && kanji.Contains(c.Word):
			reason = reasonNoReading
		default:
			continue
		}
		rep.Review = append(rep.Review, ReviewEntry{
			Line:     c.Line,
			Word:     c.Word,
			Reading:  c.Reading,
			Furigana: c.Furigana,
			Reason:   reason,
			Hints:    hints(opts.Kanjidic, c.Word),
		})
	}
	log.Printf("[BATCH] %s: %d cards, %d resolved, %d to review", rep.ID, len(rep.Cards), rep.Resolved, len(rep.Review))

	if opts.LogDir != "" && len(rep.Review) > 0 {
		path, err := logger.LogJSON(opts.LogDir, rep.ID+"_review", rep.Review)
		if err != nil {
			return rep, fmt.Errorf("write review log: %w", err)
		}
		rep.LogPath = path
		log.Printf("[BATCH] review log written: %s", path)
	}
	return rep, nil
}

// maxGlosses caps the meaning taken from a dictionary entry.
const maxGlosses = 3

func fillEntry(c *model.Card, e model.DictionaryEntry) {
	if c.Meaning == "" && len(e.Glosses) > 0 {
		c.Meaning = strings.Join(e.Glosses[:min(len(e.Glosses), maxGlosses)], "; ")
	}
	if c.POS == "" && len(e.POS) > 0 {
		c.POS = e.POS[0]
	}
}

func hints(k *kanji.Kanjidic, word string) map[string][]string {
	if k.Count() == 0 {
		return nil
	}
	return k.Hints(word)
}

// generateID creates a short random hex id. Falls back to a timestamp string on error.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
