package tokenize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type TokenizerTestEnviron struct {
	suite.Suite
	tok *Tokenizer
}

func TestTokenizerFunctions(t *testing.T) {
	suite.Run(t, new(TokenizerTestEnviron))
}

// run once, before test suite methods
func (env *TokenizerTestEnviron) SetupSuite() {
	tok, err := New("ipa")
	env.Require().NoError(err)
	env.tok = tok
}

// --- Tests -----------------------------------------------------------------

func (env *TokenizerTestEnviron) TestReading() {
	reading, ok := env.tok.Reading(context.Background(), "学生")
	env.True(ok)
	env.Equal("がくせい", reading)
}

func (env *TokenizerTestEnviron) TestTokenizeCarriesFurigana() {
	toks, err := env.tok.Tokenize(context.Background(), "私は学生です")
	env.Require().NoError(err)
	env.Require().NotEmpty(toks)
	env.Equal("私", toks[0].Text)
	env.Equal("ワタシ", toks[0].Reading)
	env.Equal(" 私[わたし]", toks[0].FuriganaText)
	env.Empty(toks[1].FuriganaText, "particle は needs no furigana")
}

func (env *TokenizerTestEnviron) TestMergedVerb() {
	toks, err := env.tok.Tokenize(context.Background(), "食べました")
	env.Require().NoError(err)
	merged := MergeVerbAuxiliaries(toks)
	env.Require().Len(merged, 1)
	env.Equal("食べました", merged[0].Text)
	env.Equal("polite past", merged[0].ConjugationLabel)
	env.Equal(" 食[た]べました", merged[0].FuriganaText)
}

func (env *TokenizerTestEnviron) TestAnnotateSentence() {
	out, err := env.tok.AnnotateSentence(context.Background(), "私は学生です")
	env.Require().NoError(err)
	env.Equal(" 私[わたし]は 学生[がくせい]です", out)
}

func (env *TokenizerTestEnviron) TestCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := env.tok.Tokenize(ctx, "学生")
	env.ErrorIs(err, context.Canceled)
}

func (env *TokenizerTestEnviron) TestEmptyText() {
	toks, err := env.tok.Tokenize(context.Background(), "")
	env.NoError(err)
	env.Nil(toks)
}

// --- Plain tests -----------------------------------------------------------

func TestUnknownDictionary(t *testing.T) {
	if _, err := New("neologd"); err == nil {
		t.Fatal("expected an error for an unknown dictionary")
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("ﾃﾚﾋ"); got != "テレヒ" {
		t.Errorf("Normalize(ﾃﾚﾋ) = %q", got)
	}
	if got := Normalize("ＡＢＣ１２３"); got != "ABC123" {
		t.Errorf("Normalize(ＡＢＣ１２３) = %q", got)
	}
	if got := Normalize("食べる"); got != "食べる" {
		t.Errorf("Normalize(食べる) = %q", got)
	}
}

func TestMergeVerbAuxiliaries(t *testing.T) {
	toks := []Token{
		{Text: "行き", Lemma: "行く", POS: "動詞,自立,*,*", Reading: "イキ", Start: 0, End: 2},
		{Text: "ませ", Lemma: "ます", POS: "助動詞,*,*,*", Reading: "マセ", Start: 2, End: 4},
		{Text: "ん", Lemma: "ん", POS: "助動詞,*,*,*", Reading: "ン", Start: 4, End: 5},
		{Text: "か", Lemma: "か", POS: "助詞,副助詞／並立助詞／終助詞,*,*", Reading: "カ", Start: 5, End: 6},
	}
	out := MergeVerbAuxiliaries(toks)
	if len(out) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(out), out)
	}
	m := out[0]
	if m.Text != "行きません" || m.Reading != "イキマセン" || m.End != 5 {
		t.Errorf("merged token = %+v", m)
	}
	if m.ConjugationLabel != "polite negative" {
		t.Errorf("ConjugationLabel = %q", m.ConjugationLabel)
	}
	if m.FuriganaText != " 行[い]きません" {
		t.Errorf("FuriganaText = %q", m.FuriganaText)
	}
	if len(m.Auxiliaries) != 2 {
		t.Errorf("Auxiliaries = %+v", m.Auxiliaries)
	}
	if out[1].Text != "か" {
		t.Errorf("trailing particle = %+v", out[1])
	}
}

func TestGetConjugationLabel(t *testing.T) {
	tests := map[string][]string{
		"polite":      {"ます"},
		"past":        {"た"},
		"polite past": {"ます", "た"},
		"":            {"て"},
	}
	for want, auxs := range tests {
		if got := getConjugationLabel(auxs); got != want {
			t.Errorf("getConjugationLabel(%v) = %q, want %q", auxs, got, want)
		}
	}
}
