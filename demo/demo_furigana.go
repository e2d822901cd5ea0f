package main

import (
	"fmt"
	"os"

	"ankifurigana/furigana"
	"ankifurigana/kana"
)

// Step-by-step walk through run segmentation and anchor matching for a few
// words. Pass word/reading pairs as arguments to try your own.
func main() {
	pairs := [][2]string{
		{"食べる", "たべる"},
		{"弄びます", "もてあそびます"},
		{"お年玉", "おとしだま"},
		{"持って行く", "もっていく"},
		{"時々", "ときどき"},
	}
	if args := os.Args[1:]; len(args) >= 2 {
		pairs = nil
		for i := 0; i+1 < len(args); i += 2 {
			pairs = append(pairs, [2]string{args[i], args[i+1]})
		}
	}

	for _, p := range pairs {
		word, reading := p[0], p[1]
		fmt.Printf("--- %s (%s) ---\n", word, reading)
		fmt.Printf("Reading (hiragana): %s\n", kana.ToHiragana(reading))
		for i, run := range furigana.Segment(word) {
			kind := "kana"
			if run.Kanji {
				kind = "kanji"
			}
			fmt.Printf("run[%d] %-5s %s\n", i, kind, run.Text)
		}
		res := furigana.Annotate(word, reading)
		for _, piece := range res.Pieces {
			if piece.Kanji {
				fmt.Printf("  %s -> %s\n", piece.Text, piece.Reading)
			}
		}
		fmt.Printf("Output: %q\n", res.Text)
		if res.Approximated {
			fmt.Println("⚠ anchor not found, last kanji run took the rest of the reading")
		}
	}
}
