package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"ankifurigana/batch"
	"ankifurigana/config"
	"ankifurigana/dictionary"
	"ankifurigana/furigana"
	"ankifurigana/ingest"
	"ankifurigana/kanji"
	"ankifurigana/logger"
	"ankifurigana/lookup"
	"ankifurigana/server"
	"ankifurigana/tokenize"

	"github.com/spf13/cobra"
)

type globalOptions struct {
	jmdictPath   string
	kanjidicPath string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "ankifurigana",
		Short:         "Attach furigana to Japanese vocabulary",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.jmdictPath, "jmdict", "", "JMdict XML path (overrides FURIGANA_JMDICT)")
	root.PersistentFlags().StringVar(&opts.kanjidicPath, "kanjidic", "", "kanjidic2 XML path (overrides FURIGANA_KANJIDIC)")

	root.AddCommand(newAlignCmd(opts), newFileCmd(opts), newSentenceCmd(opts), newStripCmd(), newServeCmd(opts))
	return root
}

// loadConfig applies the persistent flags on top of the environment.
func loadConfig(opts *globalOptions) (config.Config, error) {
	cfg := config.Load()
	if opts.jmdictPath != "" {
		cfg.JMdictPath = opts.jmdictPath
	}
	if opts.kanjidicPath != "" {
		cfg.KanjidicPath = opts.kanjidicPath
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newAlignCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "align WORD [READING]",
		Short: "Annotate one word; the reading is looked up when omitted",
		Long:  "Annotate one word. A word that already carries furigana is printed unchanged.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := args[0]
			if len(args) == 2 {
				fmt.Fprintln(cmd.OutOrStdout(), furigana.Reannotate(field, args[1]).Text)
				return nil
			}
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			src, err := loadSources(cfg)
			if err != nil {
				return err
			}
			word := furigana.Strip(field)
			r, source, ok := src.resolver.Lookup(cmd.Context(), word)
			if !ok {
				log.Printf("[MAIN] no reading found for %s", word)
			} else {
				log.Printf("[MAIN] reading %s from %s", r, source)
			}
			if e, ok := src.dict.Entry(word); ok && len(e.Glosses) > 0 {
				log.Printf("[MAIN] %s: %s", word, strings.Join(e.Glosses, "; "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), furigana.Reannotate(field, r).Text)
			return nil
		},
	}
}

func newFileCmd(opts *globalOptions) *cobra.Command {
	lesson := "補充"
	cmd := &cobra.Command{
		Use:   "file PATH",
		Short: "Annotate a tab separated word list (word, reading, pos, meaning)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			src, err := loadSources(cfg)
			if err != nil {
				return err
			}
			return runFile(cmd, cfg, args[0], lesson, src)
		},
	}
	cmd.Flags().StringVarP(&lesson, "lesson", "l", lesson, "lesson tag for the cards")
	return cmd
}

func newSentenceCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sentence TEXT",
		Short: "Annotate a sentence token by token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			src, err := loadSources(cfg)
			if err != nil {
				return err
			}
			if src.tok == nil {
				return errors.New("sentence annotation needs a tokenizer (FURIGANA_TOKENIZER_DICT=none)")
			}
			out, err := src.tok.AnnotateSentence(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("annotate sentence: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newStripCmd() *cobra.Command {
	speech := false
	cmd := &cobra.Command{
		Use:   "strip FIELD",
		Short: "Remove furigana from a card field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if speech {
				fmt.Fprintln(cmd.OutOrStdout(), furigana.SpeechText(args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), furigana.Strip(args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&speech, "speech", false, "also drop HTML tags and [sound:...] groups")
	return cmd
}

func newServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			src, err := loadSources(cfg)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg, src)
		},
	}
}

// sources holds whatever reading sources the configuration names. Any of
// the pointers may be nil.
type sources struct {
	tok      *tokenize.Tokenizer
	resolver *lookup.Resolver
	dict     *dictionary.Dictionary
	kanjidic *kanji.Kanjidic
}

// loadSources builds the reading sources named by cfg. Dictionary files are
// consulted before the tokenizer.
func loadSources(cfg config.Config) (sources, error) {
	src := sources{resolver: &lookup.Resolver{}}
	if cfg.JMdictPath != "" {
		d, err := dictionary.LoadFile(cfg.JMdictPath)
		if err != nil {
			return sources{}, fmt.Errorf("load JMdict: %w", err)
		}
		src.dict = d
		src.resolver.Sources = append(src.resolver.Sources, lookup.Dictionary(d))
	}
	if cfg.TokenizerDict != "none" {
		t, err := tokenize.New(cfg.TokenizerDict)
		if err != nil {
			return sources{}, fmt.Errorf("init tokenizer: %w", err)
		}
		src.tok = t
		src.resolver.Sources = append(src.resolver.Sources, lookup.Tokenizer(t))
	}
	if cfg.KanjidicPath != "" {
		k, err := kanji.LoadKanjidicFile(cfg.KanjidicPath)
		if err != nil {
			return sources{}, fmt.Errorf("load kanjidic2: %w", err)
		}
		src.kanjidic = k
	}
	log.Printf("[MAIN] sources: %d JMdict entries, %d kanjidic entries, tokenizer=%t",
		src.dict.Len(), src.kanjidic.Count(), src.tok != nil)
	return src, nil
}

func runFile(cmd *cobra.Command, cfg config.Config, path, lesson string, src sources) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	cards, err := ingest.Read(f, lesson)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	// initialize logs directory (clear existing .json files)
	if err := logger.InitLogs(cfg.LogDir); err != nil {
		return fmt.Errorf("failed to init logs: %w", err)
	}
	rep, err := batch.Run(cmd.Context(), cards, batch.Options{
		Workers:    cfg.Workers,
		Resolver:   src.resolver,
		Kanjidic:   src.kanjidic,
		Dictionary: src.dict,
		LogDir:     cfg.LogDir,
	})
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	defer w.Flush()
	for _, c := range rep.Cards {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Word, c.Reading, c.Furigana)
	}
	if len(rep.Review) > 0 {
		log.Printf("[MAIN] %d cards need review, see %s", len(rep.Review), rep.LogPath)
	}
	return nil
}

func runServer(ctx context.Context, cfg config.Config, src sources) error {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.NewServer(src.tok, src.resolver, src.dict, src.kanjidic, cfg),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Println("[MAIN] shutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("[MAIN] listening on :%s", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
