package server

import (
	"net/http"

	"ankifurigana/batch"
	"ankifurigana/furigana"
	"ankifurigana/model"
)

type furiganaRequest struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
}

type furiganaResponse struct {
	Furigana      string           `json:"furigana"`
	Reading       string           `json:"reading,omitempty"`
	ReadingSource string           `json:"reading_source,omitempty"`
	Approximated  bool             `json:"approximated"`
	Pieces        []furigana.Piece `json:"pieces,omitempty"`
	Glosses       []string         `json:"glosses,omitempty"`
	POS           []string         `json:"pos,omitempty"`
}

func (s *Server) handleFurigana(w http.ResponseWriter, r *http.Request) {
	var req furiganaRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Word == "" {
		jsonError(w, "word is required", http.StatusBadRequest)
		return
	}

	// a word sent with furigana is looked up by its plain text
	word := furigana.Strip(req.Word)
	resp := furiganaResponse{Reading: req.Reading}
	if resp.Reading == "" {
		if reading, source, ok := s.resolver.Lookup(r.Context(), word); ok {
			resp.Reading = reading
			resp.ReadingSource = source
		}
	}
	if e, ok := s.dict.Entry(word); ok {
		resp.Glosses = e.Glosses
		resp.POS = e.POS
	}
	res := furigana.Reannotate(req.Word, resp.Reading)
	resp.Furigana = res.Text
	resp.Approximated = res.Approximated
	resp.Pieces = res.Pieces
	writeJSON(w, http.StatusOK, resp)
}

type batchRequest struct {
	Cards []model.Card `json:"cards"`
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Cards) == 0 {
		jsonError(w, "cards are required", http.StatusBadRequest)
		return
	}
	rep, err := batch.Run(r.Context(), req.Cards, batch.Options{
		Workers:    s.cfg.Workers,
		Resolver:   s.resolver,
		Kanjidic:   s.kanjidic,
		Dictionary: s.dict,
		LogDir:     s.cfg.LogDir,
	})
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

type textRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleStrip(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"text":   furigana.Strip(req.Text),
		"speech": furigana.SpeechText(req.Text),
	})
}

func (s *Server) handleSentence(w http.ResponseWriter, r *http.Request) {
	if s.tok == nil {
		jsonError(w, "tokenizer unavailable", http.StatusServiceUnavailable)
		return
	}
	var req textRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	out, err := s.tok.AnnotateSentence(r.Context(), req.Text)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"furigana": out})
}
