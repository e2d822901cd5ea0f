package tokenize

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ankifurigana/furigana"
	"ankifurigana/kana"
	"ankifurigana/kanji"
	"ankifurigana/model"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/text/width"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token = model.Token

// Tokenizer wraps a kagome tokenizer and turns its katakana readings into
// hiragana furigana.
type Tokenizer struct {
	kg   *tokenizer.Tokenizer
	name string
}

// New creates a tokenizer over the named system dictionary, "ipa" or "uni".
func New(dictName string) (*Tokenizer, error) {
	var d *dict.Dict
	switch dictName {
	case "", "ipa":
		dictName = "ipa"
		d = ipa.Dict()
	case "uni":
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("unknown tokenizer dictionary %q", dictName)
	}
	// omit BOS/EOS so every token maps to surface text
	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init kagome (%s): %w", dictName, err)
	}
	log.Printf("[TOKENIZE] kagome ready with %s dictionary", dictName)
	return &Tokenizer{kg: kg, name: dictName}, nil
}

// Name is the dictionary the tokenizer was built with.
func (t *Tokenizer) Name() string {
	return t.name
}

// Normalize folds half-width katakana and full-width ASCII so kagome sees
// one form of each character.
func Normalize(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= 0xFF61 && r <= 0xFF9F:
			b.WriteString(width.Widen.String(string(r)))
		case r >= 0xFF01 && r <= 0xFF5E:
			b.WriteString(width.Narrow.String(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokenize uses kagome to produce tokens for the input text (normal mode).
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return convertKagomeTokens(t.kg.Tokenize(Normalize(text))), nil
}

// Reading returns the hiragana reading of word as kagome segments it. It
// fails if any kanji-bearing token has no reading in the dictionary.
func (t *Tokenizer) Reading(ctx context.Context, word string) (string, bool) {
	toks, err := t.Tokenize(ctx, word)
	if err != nil || len(toks) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, tk := range toks {
		if tk.Reading == "" {
			if kanji.Contains(tk.Text) {
				return "", false
			}
			b.WriteString(kana.ToHiragana(tk.Text))
			continue
		}
		b.WriteString(kana.ToHiragana(tk.Reading))
	}
	return b.String(), true
}

// AnnotateSentence writes furigana for every kanji-bearing token of text.
// Verb and auxiliary tokens are merged first so inflections anchor the
// verb stem.
func (t *Tokenizer) AnnotateSentence(ctx context.Context, text string) (string, error) {
	toks, err := t.Tokenize(ctx, text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, tk := range MergeVerbAuxiliaries(toks) {
		if tk.FuriganaText != "" {
			b.WriteString(tk.FuriganaText)
		} else {
			b.WriteString(tk.Text)
		}
	}
	return b.String(), nil
}

// hiraganaFurigana aligns surface against a kagome reading, which is always
// katakana, after folding the reading to hiragana for display.
func hiraganaFurigana(surface, reading string) string {
	if reading == "" || !kanji.Contains(surface) {
		return ""
	}
	return furigana.Align(surface, kana.ToHiragana(reading))
}

func convertKagomeTokens(ktoks []tokenizer.Token) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		pos := strings.Join(kt.POS(), ",")
		lemma, _ := kt.BaseForm()
		if lemma == "" || lemma == "*" {
			lemma = kt.Surface
		}
		reading, _ := kt.Reading()
		if reading == "*" {
			reading = ""
		}
		pron, _ := kt.Pronunciation()
		if pron == "*" {
			pron = ""
		}
		infType, _ := kt.InflectionalType()
		infForm, _ := kt.InflectionalForm()
		t := Token{
			Text:           kt.Surface,
			Lemma:          lemma,
			POS:            pos,
			Start:          kt.Start,
			End:            kt.End,
			Reading:        reading,
			Pronunciation:  pron,
			TokenID:        kt.ID,
			InflectionType: infType,
			InflectionForm: infForm,
			FuriganaText:   hiraganaFurigana(kt.Surface, reading),
		}
		if lemma == kt.Surface {
			t.FuriganaLemma = t.FuriganaText
		}
		out = append(out, t)
	}
	return out
}

// MergeVerbAuxiliaries scans tokens and merges verb+auxiliary sequences into a single token.
func MergeVerbAuxiliaries(tokens []Token) []Token {
	var out []Token
	i := 0
	for i < len(tokens) {
		tk := tokens[i]
		if strings.HasPrefix(tk.POS, "動詞") {
			// collect auxiliaries following the verb
			var auxs []Token
			j := i + 1
			for j < len(tokens) && isAuxiliary(tokens[j].POS) {
				auxs = append(auxs, tokens[j])
				j++
			}
			if len(auxs) > 0 {
				merged := tk
				conjugation := make([]string, 0, len(auxs))
				for _, aux := range auxs {
					merged.Text += aux.Text
					merged.Reading += aux.Reading
					merged.Pronunciation += aux.Pronunciation
					conjugation = append(conjugation, aux.Lemma)
				}
				merged.End = auxs[len(auxs)-1].End
				merged.Conjugation = conjugation
				merged.Auxiliaries = auxs
				merged.ConjugationLabel = getConjugationLabel(conjugation)
				merged.FuriganaText = hiraganaFurigana(merged.Text, merged.Reading)
				out = append(out, merged)
				i = j
				continue
			}
		}
		out = append(out, tk)
		i++
	}
	return out
}

func isAuxiliary(pos string) bool {
	return strings.HasPrefix(pos, "助動詞") ||
		strings.HasPrefix(pos, "動詞,非自立") ||
		strings.HasPrefix(pos, "動詞,接尾")
}

// getConjugationLabel maps auxiliary lemma sequences to a human-readable conjugation label.
func getConjugationLabel(auxs []string) string {
	switch strings.Join(auxs, "+") {
	case "ます":
		return "polite"
	case "た":
		return "past"
	case "ます+た":
		return "polite past"
	case "ない":
		return "negative"
	case "ます+ん":
		return "polite negative"
	}
	return ""
}
