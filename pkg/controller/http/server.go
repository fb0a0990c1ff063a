package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/casaflow/casaflow/pkg/domain/model/config"
	"github.com/casaflow/casaflow/pkg/usecase"
	"github.com/casaflow/casaflow/pkg/utils/errutil"
	"github.com/casaflow/casaflow/pkg/utils/logging"
	"github.com/casaflow/casaflow/pkg/utils/safe"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
)

type Server struct {
	router     *chi.Mux
	uc         *usecase.UseCases
	processCfg *config.ProcessConfig
}

type Options func(*Server)

// WithProcessConfig exposes the configured action-category catalog at
// /api/process/categories
func WithProcessConfig(processCfg *config.ProcessConfig) Options {
	return func(s *Server) {
		s.processCfg = processCfg
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Post("/", s.createClient)
			r.Get("/", s.listClients)

			// Typed route parameters bind identifiers directly; no path
			// string splitting anywhere
			r.Route("/{clientID}", func(r chi.Router) {
				r.Get("/", s.getClient)
				r.Get("/overview", s.clientOverview)
				r.Get("/interactions", s.listInteractions)

				r.Route("/process/actions", func(r chi.Router) {
					r.Post("/", s.createAction)
					r.Get("/", s.listActions)
					r.Patch("/{actionID}", s.updateActionStatus)
				})
			})
		})

		r.Route("/stages/{stageID}/checklist", func(r chi.Router) {
			r.Post("/", s.addChecklistItem)
			r.Patch("/{itemID}", s.setChecklistCompleted)
			r.Delete("/{itemID}", s.deleteChecklistItem)
			r.Get("/", s.listChecklist)
		})

		r.Get("/process/categories", s.listCategories)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(r.Context(), w, data)
}
