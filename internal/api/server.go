// Package api serves the design engine over HTTP. Every invocation is
// independent: handlers recompute the full pipeline per request and hold
// no geometry between calls.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gearkit/cycloid"
	"github.com/gearkit/cycloid/advisory"
	"github.com/gearkit/cycloid/store"
)

// Server wires the engine, preset storage, and the advisory client into
// an HTTP API. Presets and Advisor are optional; their endpoints answer
// 503 when absent.
type Server struct {
	Designer *cycloid.Designer
	Presets  *store.DB
	Advisor  *advisory.Client
	Log      *slog.Logger
}

func (s *Server) log() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return cycloid.Logger()
}

func (s *Server) designer() *cycloid.Designer {
	if s.Designer != nil {
		return s.Designer
	}
	return cycloid.NewDesigner()
}

// Router builds the chi router with middleware and all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/profile", s.handleProfile)
		r.Post("/physics", s.handlePhysics)
		r.Post("/quality", s.handleQuality)
		r.Post("/path", s.handlePath)
		r.Post("/export.dxf", s.handleExportDXF)
		r.Post("/preview.png", s.handlePreview)
		r.Post("/advise", s.handleAdvise)
		r.Post("/ask", s.handleAsk)

		r.Get("/presets", s.handleListPresets)
		r.Put("/presets/{name}", s.handleSavePreset)
		r.Get("/presets/{name}", s.handleGetPreset)
		r.Delete("/presets/{name}", s.handleDeletePreset)
	})
	return r
}
