package furigana

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" 食[た]べる", "食べる"},
		{" 食[た]べ 物[もの]", "食べ物"},
		{" お年玉[としだま]", "お年玉"},
		{"コンビニ", "コンビニ"},
		{" 山[]", "山"},
		{"明日 学校[がっこう]へ 行[い]きます", "明日学校へ行きます"},
	}
	for _, tt := range tests {
		if got := Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpeechText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<b> 食[た]べる</b>", "食べる"},
		{" 弄[もてあそ]びます[sound:tts_word_1.wav]", "弄びます"},
		{"  <div>コンビニ</div> ", "コンビニ"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SpeechText(tt.in); got != tt.want {
			t.Errorf("SpeechText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPrefix(t *testing.T) {
	pieces := []Piece{{Text: "ご"}, {Text: "飯", Reading: "はん", Kanji: true}, {Text: "を"}, {Text: "食", Reading: "た", Kanji: true}, {Text: "べる"}}
	if got, want := format(pieces), " ご飯[はん]を 食[た]べる"; got != want {
		t.Errorf("format = %q, want %q", got, want)
	}
	// only honorific prefixes move inside the annotation
	pieces = []Piece{{Text: "お "}, {Text: "茶", Reading: "ちゃ", Kanji: true}}
	if got, want := format(pieces), "お  茶[ちゃ]"; got != want {
		t.Errorf("format = %q, want %q", got, want)
	}
}

func TestLeadingKanaOutsideBase(t *testing.T) {
	tests := []struct {
		word, reading, want string
	}{
		{"ドイツ語", "どいつご", "ドイツ 語[ご]"},
		{"お年玉", "おとしだま", " お年玉[としだま]"},
		{"ご飯", "ごはん", " ご飯[はん]"},
		{"おや指", "おやゆび", "おや 指[ゆび]"},
		{"スペイン語", "スペインゴ", "スペイン 語[ゴ]"},
	}
	for _, tt := range tests {
		if got := Align(tt.word, tt.reading); got != tt.want {
			t.Errorf("Align(%q, %q) = %q, want %q", tt.word, tt.reading, got, tt.want)
		}
		if got := Strip(Align(tt.word, tt.reading)); got != tt.word {
			t.Errorf("Strip(Align(%q)) = %q", tt.word, got)
		}
	}
}
