package kanji

import (
	"reflect"
	"strings"
	"testing"
)

const kanjidicSample = `<?xml version="1.0" encoding="UTF-8"?>
<kanjidic2>
<header><file_version>4</file_version></header>
<character>
<literal>入</literal>
<reading_meaning>
<rmgroup>
<reading r_type="pinyin">ru4</reading>
<reading r_type="ja_on">ニュウ</reading>
<reading r_type="ja_kun">い.る</reading>
<reading r_type="ja_kun">はい.る</reading>
<meaning>enter</meaning>
</rmgroup>
</reading_meaning>
</character>
<character>
<literal>川</literal>
<reading_meaning>
<rmgroup>
<reading r_type="ja_on">セン</reading>
<reading r_type="ja_kun">かわ</reading>
<reading r_type="ja_kun">-がわ</reading>
</rmgroup>
</reading_meaning>
</character>
<character>
<literal>〆</literal>
</character>
</kanjidic2>`

func TestClassify(t *testing.T) {
	logographic := []rune{'食', '弄', '一', '鿿', '㐀', '䶿', 0x20000, 0x2A6DF, '豈', 0xFAFF}
	for _, r := range logographic {
		if Classify(r) != Logographic {
			t.Errorf("Classify(%U) = %v, want logographic", r, Classify(r))
		}
	}
	other := []rune{'た', 'ア', 'ー', '々', 'ヶ', '〆', 'a', '1', ' ', 0x2A6E0, 0x4DC0, 0xF8FF}
	for _, r := range other {
		if Classify(r) != Other {
			t.Errorf("Classify(%U) = %v, want other", r, Classify(r))
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains("お年玉") {
		t.Error("expected お年玉 to contain kanji")
	}
	if Contains("コンビニ") || Contains("") {
		t.Error("expected no kanji")
	}
}

func TestLoadKanjidic(t *testing.T) {
	k, err := LoadKanjidic(strings.NewReader(kanjidicSample))
	if err != nil {
		t.Fatalf("Failed to load kanjidic2: %v", err)
	}
	if k.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", k.Count())
	}
	want := []string{"ニュウ", "い.る", "はい.る"}
	if got := k.Readings('入'); !reflect.DeepEqual(got, want) {
		t.Errorf("Readings(入) = %v, want %v", got, want)
	}
	if got := k.Readings('山'); got != nil {
		t.Errorf("Readings(山) = %v, want nil", got)
	}
}

func TestHints(t *testing.T) {
	k, err := LoadKanjidic(strings.NewReader(kanjidicSample))
	if err != nil {
		t.Fatalf("Failed to load kanjidic2: %v", err)
	}
	hints := k.Hints("入見内川")
	if got, want := hints["入"], []string{"にゅう", "い", "はい"}; !reflect.DeepEqual(got, want) {
		t.Errorf("hints[入] = %v, want %v", got, want)
	}
	if got, want := hints["川"], []string{"せん", "かわ", "がわ"}; !reflect.DeepEqual(got, want) {
		t.Errorf("hints[川] = %v, want %v", got, want)
	}
	if got, ok := hints["見"]; !ok || len(got) != 0 {
		t.Errorf("hints[見] = %v, %v; want empty entry", got, ok)
	}
	t.Logf("hints for 入見内川: %v", hints)
}

func TestNilKanjidic(t *testing.T) {
	var k *Kanjidic
	if k.Count() != 0 || k.Readings('入') != nil {
		t.Error("nil Kanjidic should be empty")
	}
}
