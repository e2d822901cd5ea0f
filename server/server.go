package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"ankifurigana/config"
	"ankifurigana/dictionary"
	"ankifurigana/kanji"
	"ankifurigana/lookup"
	"ankifurigana/tokenize"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API for furigana alignment.
type Server struct {
	router   chi.Router
	tok      *tokenize.Tokenizer
	resolver *lookup.Resolver
	dict     *dictionary.Dictionary
	kanjidic *kanji.Kanjidic
	cfg      config.Config
}

// NewServer creates and configures the HTTP server. Every source may be
// nil; the sentence endpoint, reading lookup, glosses and review hints are
// then unavailable.
func NewServer(tok *tokenize.Tokenizer, resolver *lookup.Resolver, dict *dictionary.Dictionary, kanjidic *kanji.Kanjidic, cfg config.Config) *Server {
	s := &Server{
		tok:      tok,
		resolver: resolver,
		dict:     dict,
		kanjidic: kanjidic,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Use(limitBody(s.cfg.MaxBodyBytes))

		r.Post("/api/furigana", s.handleFurigana)
		r.Post("/api/furigana/batch", s.handleBatch)
		r.Post("/api/strip", s.handleStrip)
		r.Post("/api/sentence", s.handleSentence)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":             "ok",
		"tokenizer":          s.tok != nil,
		"dictionary_entries": s.dict.Len(),
		"kanjidic_entries":   s.kanjidic.Count(),
	})
}

// RequestLogger logs incoming requests.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Printf("[HTTP] %s %s %d %dms id=%s", r.Method, r.URL.Path, ww.Status(),
			time.Since(start).Milliseconds(), middleware.GetReqID(r.Context()))
	})
}

func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if n > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// decodeJSON reads the request body into v, answering 413 when the body
// limit was hit and 400 for anything else.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		jsonError(w, fmt.Sprintf("request body exceeds max size (%d bytes)", tooLarge.Limit), http.StatusRequestEntityTooLarge)
		return false
	}
	if errors.Is(err, io.EOF) {
		jsonError(w, "request body is empty", http.StatusBadRequest)
		return false
	}
	jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
