package handler

import (
	"errors"
	"net/http"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
)

// handleError maps service failures to an HTTP status and a safe message.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "word not found")
	case errors.Is(err, model.ErrEmptyWord),
		errors.Is(err, model.ErrEmptyTranslation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
