// Package router wires the HTTP handlers and middleware into one mux.
package router

import (
	"net/http"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/api/http/handler"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/api/http/middleware"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/logger"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
)

// Router registers the application's HTTP routes.
type Router struct {
	wordService handler.WordService
	translator  model.Translator
	images      model.ImageSearcher
	suggester   model.Suggester
	logger      *logger.Logger
}

// New creates a new Router instance over the word service and the three
// upstream clients.
func New(
	wordService handler.WordService,
	translator model.Translator,
	images model.ImageSearcher,
	suggester model.Suggester,
	logger *logger.Logger,
) *Router {
	return &Router{
		wordService: wordService,
		translator:  translator,
		images:      images,
		suggester:   suggester,
		logger:      logger,
	}
}

// Register builds the mux with all routes and the logging middleware.
func (r *Router) Register() http.Handler {
	words := handler.NewWord(r.wordService, r.logger)
	upstream := handler.NewUpstream(r.translator, r.images, r.suggester, r.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/words", words.List)
	mux.HandleFunc("POST /api/words", words.Create)
	mux.HandleFunc("PATCH /api/words/{id}", words.Update)
	mux.HandleFunc("DELETE /api/words/{id}", words.Delete)

	mux.HandleFunc("POST /api/translate", upstream.Translate)
	mux.HandleFunc("POST /api/image", upstream.Image)
	mux.HandleFunc("POST /api/suggestions", upstream.Suggestions)

	logging := middleware.NewLogging(r.logger)
	return logging.Handle(mux)
}
