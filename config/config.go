package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Review documents for approximated alignments are written here.
	LogDir string

	// Optional dictionary files
	JMdictPath   string
	KanjidicPath string

	// kagome system dictionary: ipa, uni, or none
	TokenizerDict string

	// Batch alignment
	Workers int

	// HTTP request body limit
	MaxBodyBytes int64
}

func Load() Config {
	cfg := Config{
		Port: envOr("FURIGANA_PORT", "8095"),

		LogDir: envOr("FURIGANA_LOG_DIR", "logs"),

		JMdictPath:   os.Getenv("FURIGANA_JMDICT"),
		KanjidicPath: os.Getenv("FURIGANA_KANJIDIC"),

		TokenizerDict: envOr("FURIGANA_TOKENIZER_DICT", "ipa"),

		Workers: envInt("FURIGANA_WORKERS", 4),

		MaxBodyBytes: envInt64("FURIGANA_MAX_BODY_BYTES", 1<<20), // 1MB
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.TokenizerDict {
	case "ipa", "uni", "none":
	default:
		return fmt.Errorf("FURIGANA_TOKENIZER_DICT must be ipa, uni or none, got %q", c.TokenizerDict)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("FURIGANA_PORT must be numeric, got %q", c.Port)
	}
	for _, p := range []string{c.JMdictPath, c.KanjidicPath} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("dictionary file: %w", err)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
