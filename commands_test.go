package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestAlignWithReading(t *testing.T) {
	assert.Equal(t, " 食[た]べる\n", execute(t, "align", "食べる", "たべる"))
}

func TestAlignKeepsAnnotatedField(t *testing.T) {
	assert.Equal(t, " 食[た]べる\n", execute(t, "align", " 食[た]べる", "たべる"))
	assert.Equal(t, " お年玉[としだま]\n", execute(t, "align", " お年玉[としだま]", "おとしだま"))
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "お年玉\n", execute(t, "strip", " お年玉[としだま]"))
	assert.Equal(t, "食べる\n", execute(t, "strip", "--speech", "<b> 食[た]べる</b>[sound:a.wav]"))
}

func TestFileWithoutTokenizer(t *testing.T) {
	t.Setenv("FURIGANA_TOKENIZER_DICT", "none")
	dir := t.TempDir()
	t.Setenv("FURIGANA_LOG_DIR", filepath.Join(dir, "logs"))
	path := filepath.Join(dir, "words.tsv")
	require.NoError(t, os.WriteFile(path, []byte("# lesson 1\n食べる\tたべる\tverb\tto eat\nコンビニ\tコンビニ\n"), 0o644))

	out := execute(t, "file", path)
	assert.Equal(t, "食べる\tたべる\t 食[た]べる\nコンビニ\tコンビニ\tコンビニ\n", out)
}

func TestRootCommandsDoNotShareFlags(t *testing.T) {
	t.Setenv("FURIGANA_TOKENIZER_DICT", "none")
	dir := t.TempDir()
	t.Setenv("FURIGANA_LOG_DIR", filepath.Join(dir, "logs"))
	path := filepath.Join(dir, "words.tsv")
	require.NoError(t, os.WriteFile(path, []byte(" 山[やま]\tやま\n"), 0o644))

	first := newRootCmd()
	first.SetOut(&bytes.Buffer{})
	first.SetArgs([]string{"--jmdict", filepath.Join(dir, "missing.xml"), "file", path})
	assert.Error(t, first.Execute())

	assert.Equal(t, "山\tやま\t 山[やま]\n", execute(t, "file", path))
}

func TestAlignArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"align"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
