// Package server wires the gateway handlers into a chi router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/atinyakov/use0mk/internal/app/handler"
	"github.com/atinyakov/use0mk/internal/app/service"
	"github.com/atinyakov/use0mk/internal/middleware"
)

// Init builds the gateway router. Batch deletes are only accepted from
// trustedSubnet, all other routes are open. Browsers may call the gateway
// from the given origins.
func Init(logger *zap.Logger, trustedSubnet string, origins []string, s service.LinkServiceIface) *chi.Mux {
	postHandler := handler.NewPost(s, logger)
	getHandler := handler.NewGet(s, logger)
	deleteHandler := handler.NewDelete(s, logger)

	r := chi.NewRouter()
	if len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", middleware.RequestIDHeader},
			MaxAge:         300,
		}))
	}
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGzipRequest)
	r.Use(middleware.WithGzipResponse)

	r.Route("/api", func(r chi.Router) {
		r.Post("/shorten", postHandler.Shorten)
		r.Post("/preview", postHandler.Preview)
		r.Get("/preview/{name}", getHandler.PreviewByName)
		r.Post("/delete", postHandler.Delete)
		r.Post("/text", postHandler.Text)

		r.With(middleware.WithSubnet(trustedSubnet)).Delete("/links", deleteHandler.DeleteBatch)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
