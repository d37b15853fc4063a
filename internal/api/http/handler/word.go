package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/logger"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
)

// WordService defines business operations for word management.
type WordService interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.Word, error)
	Get(ctx context.Context, id uuid.UUID) (model.Word, error)
	Create(ctx context.Context, params model.CreateWordParams) (model.Word, error)
	Update(ctx context.Context, id uuid.UUID, patch model.WordPatch) (model.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Word handles HTTP endpoints for the word collection.
type Word struct {
	service WordService
	logger  *logger.Logger
}

// NewWord creates a new Word handler.
func NewWord(service WordService, logger *logger.Logger) *Word {
	return &Word{
		service: service,
		logger:  logger,
	}
}

type wordDTO struct {
	ID          string    `json:"id"`
	Original    string    `json:"original"`
	Translation string    `json:"translation"`
	Category    *string   `json:"category"`
	Color       *string   `json:"color"`
	ImageURL    *string   `json:"imageUrl"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toDTO(word model.Word) wordDTO {
	dto := wordDTO{
		ID:          word.ID.String(),
		Original:    word.Original,
		Translation: word.Translation,
		ImageURL:    word.ImageURL,
		Notes:       word.Notes,
		CreatedAt:   word.CreatedAt,
	}
	if word.Category != model.CategoryNone {
		category := string(word.Category)
		dto.Category = &category
	}
	if word.Color != model.ColorNone {
		color := string(word.Color)
		dto.Color = &color
	}
	return dto
}

type listResponse struct {
	Words []wordDTO `json:"words"`
}

// List answers GET /api/words with optional search and category query
// parameters.
func (h *Word) List(w http.ResponseWriter, r *http.Request) {
	filter := model.ListFilter{
		SearchText: r.URL.Query().Get("search"),
		Category:   model.Category(r.URL.Query().Get("category")),
	}

	words, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("word handler: list failed", "error", err.Error())
		handleError(w, err)
		return
	}

	dtos := make([]wordDTO, 0, len(words))
	for _, word := range words {
		dtos = append(dtos, toDTO(word))
	}
	writeJSON(w, http.StatusOK, listResponse{Words: dtos})
}

type createRequest struct {
	Original    string  `json:"original"`
	Translation string  `json:"translation"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	Notes       *string `json:"notes"`
}

// Create answers POST /api/words.
func (h *Word) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.service.Create(r.Context(), model.CreateWordParams{
		Original:    req.Original,
		Translation: req.Translation,
		Category:    model.Category(req.Category),
		ImageURL:    req.ImageURL,
		Notes:       req.Notes,
	})
	if err != nil {
		h.logger.Error("word handler: create failed", "error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDTO(word))
}

type updateRequest struct {
	Category *string `json:"category"`
	ImageURL *string `json:"imageUrl"`
	Notes    *string `json:"notes"`
}

// Update answers PATCH /api/words/{id}. Absent fields keep their stored
// value; an empty string clears the field. Original text, translation and
// creation time are not patchable.
func (h *Word) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var req updateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := model.WordPatch{
		ImageURL: req.ImageURL,
		Notes:    req.Notes,
	}
	if req.Category != nil {
		category := model.Category(*req.Category)
		patch.Category = &category
	}

	word, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		h.logger.Error("word handler: update failed", "id", id, "error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDTO(word))
}

// Delete answers DELETE /api/words/{id}. Deleting an absent word still
// answers 204: the operation is idempotent for callers.
func (h *Word) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("word handler: delete failed", "id", id, "error", err.Error())
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
