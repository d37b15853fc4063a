package handler

import (
	"net/http"
	"strings"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/logger"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
)

// Upstream handles the three proxy endpoints in front of the translation,
// image and spelling-suggestion services.
type Upstream struct {
	translator model.Translator
	images     model.ImageSearcher
	suggester  model.Suggester
	logger     *logger.Logger
}

// NewUpstream creates a new Upstream handler.
func NewUpstream(
	translator model.Translator,
	images model.ImageSearcher,
	suggester model.Suggester,
	logger *logger.Logger,
) *Upstream {
	return &Upstream{
		translator: translator,
		images:     images,
		suggester:  suggester,
		logger:     logger,
	}
}

type translateRequest struct {
	Word string `json:"word"`
}

type translateResponse struct {
	OriginalWord string `json:"originalWord"`
	Translation  string `json:"translation"`
}

// Translate answers POST /api/translate.
func (h *Upstream) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	word := strings.TrimSpace(req.Word)
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}

	translation, err := h.translator.Translate(r.Context(), word)
	if err != nil {
		h.logger.Error("upstream handler: translate failed", "word", word, "error", err.Error())
		writeError(w, http.StatusBadGateway, "translation failed")
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		OriginalWord: translation.Original,
		Translation:  translation.Translation,
	})
}

type imageRequest struct {
	Query string `json:"query"`
}

type imageResponse struct {
	ImageURL *string `json:"imageUrl"`
}

// Image answers POST /api/image. A null imageUrl is a valid outcome, not
// an error.
func (h *Upstream) Image(w http.ResponseWriter, r *http.Request) {
	var req imageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	imageURL, err := h.images.FindImage(r.Context(), query)
	if err != nil {
		h.logger.Error("upstream handler: image lookup failed", "query", query, "error", err.Error())
		writeError(w, http.StatusBadGateway, "image lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, imageResponse{ImageURL: imageURL})
}

type suggestionsRequest struct {
	Word string `json:"word"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Suggestions answers POST /api/suggestions.
func (h *Upstream) Suggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	suggestions, err := h.suggester.Suggest(r.Context(), req.Word)
	if err != nil {
		h.logger.Error("upstream handler: suggestions failed", "word", req.Word, "error", err.Error())
		writeError(w, http.StatusBadGateway, "suggestion lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}
