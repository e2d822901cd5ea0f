package lookup

import (
	"context"

	"ankifurigana/dictionary"
	"ankifurigana/tokenize"
)

// Source yields a reading for a word, or false if it has none.
type Source interface {
	Name() string
	Reading(ctx context.Context, word string) (string, bool)
}

// Resolver tries each source in order and returns the first reading found.
type Resolver struct {
	Sources []Source
}

// Lookup returns the reading for word and the name of the source that
// produced it.
func (r *Resolver) Lookup(ctx context.Context, word string) (reading, source string, ok bool) {
	if r == nil {
		return "", "", false
	}
	for _, s := range r.Sources {
		if ctx.Err() != nil {
			return "", "", false
		}
		if reading, ok := s.Reading(ctx, word); ok && reading != "" {
			return reading, s.Name(), true
		}
	}
	return "", "", false
}

// Dictionary adapts a JMdict index to a Source.
func Dictionary(d *dictionary.Dictionary) Source {
	return dictSource{d}
}

type dictSource struct {
	d *dictionary.Dictionary
}

func (s dictSource) Name() string { return "jmdict" }

func (s dictSource) Reading(_ context.Context, word string) (string, bool) {
	return s.d.Reading(word)
}

// Tokenizer adapts a kagome tokenizer to a Source.
func Tokenizer(t *tokenize.Tokenizer) Source {
	return tokSource{t}
}

type tokSource struct {
	t *tokenize.Tokenizer
}

func (s tokSource) Name() string { return "kagome-" + s.t.Name() }

func (s tokSource) Reading(ctx context.Context, word string) (string, bool) {
	return s.t.Reading(ctx, word)
}

// Static is a fixed word→reading table.
type Static map[string]string

func (s Static) Name() string { return "static" }

func (s Static) Reading(_ context.Context, word string) (string, bool) {
	r, ok := s[word]
	return r, ok
}
