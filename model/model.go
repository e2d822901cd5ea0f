package model

// Token represents a token / morpheme produced by the tokenizer.
type Token struct {
	Text             string   `json:"text"`
	Lemma            string   `json:"lemma,omitempty"`
	POS              string   `json:"pos,omitempty"`
	Start            int      `json:"start"`
	End              int      `json:"end"`
	Reading          string   `json:"reading,omitempty"`
	Pronunciation    string   `json:"pronunciation,omitempty"`
	TokenID          int      `json:"token_id,omitempty"`
	Conjugation      []string `json:"conjugation,omitempty"`
	Auxiliaries      []Token  `json:"auxiliaries,omitempty"`
	ConjugationLabel string   `json:"conjugation_label,omitempty"`
	InflectionType   string   `json:"inflection_type,omitempty"`
	InflectionForm   string   `json:"inflection_form,omitempty"`
	FuriganaText     string   `json:"furigana_text,omitempty"`
	FuriganaLemma    string   `json:"furigana_lemma,omitempty"`
}

type DictionaryEntry struct {
	Source   string   `json:"source,omitempty"`
	Kanji    []string `json:"kanji,omitempty"`
	Readings []string `json:"readings,omitempty"`
	Glosses  []string `json:"glosses,omitempty"`
	POS      []string `json:"pos,omitempty"`
	IsCommon bool     `json:"is_common,omitempty"`
}

// Card is one vocabulary line on its way to a card field.
type Card struct {
	Line    int    `json:"line,omitempty"`
	Word    string `json:"word"`
	Reading string `json:"reading,omitempty"`
	POS     string `json:"pos,omitempty"`
	Meaning string `json:"meaning,omitempty"`
	Lesson  string `json:"lesson,omitempty"`

	// ReadingSource names where Reading came from when the input had none.
	ReadingSource string `json:"reading_source,omitempty"`
	Furigana      string `json:"furigana,omitempty"`
	Approximated  bool   `json:"approximated,omitempty"`
	// NeedsReading is set when the card front differs from its reading, the
	// flag that switches on the kanji→kana card.
	NeedsReading bool `json:"needs_reading,omitempty"`
}
