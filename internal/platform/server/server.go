package server

import (
	"NK2Reader/internal/platform/config"
	"NK2Reader/internal/platform/server/handler/health"
	"NK2Reader/internal/platform/server/handler/nk2file"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"net/http"
)

type Server struct {
	httpAddr string
	engine   *chi.Mux
	files    *nk2file.Nk2FileHandler
	sugar    *zap.SugaredLogger
}

func NewServer(conf config.Config, files *nk2file.Nk2FileHandler, logger *zap.Logger) Server {
	url := fmt.Sprintf("%s:%d", conf.ServerHost, conf.ServerPort)
	srv := Server{
		engine:   chi.NewRouter(),
		httpAddr: url,
		files:    files,
		sugar:    logger.Sugar(),
	}
	srv.engine.Use(middleware.Logger)
	srv.engine.Use(middleware.Recoverer)
	srv.registerRoutes()
	return srv
}

func (s *Server) Run() error {
	s.sugar.Infow("HTTP server running", "address", s.httpAddr)
	return http.ListenAndServe(s.httpAddr, s.engine)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.Get("/health", health.CheckHandler)
	s.engine.Route("/files", func(r chi.Router) {
		r.Post("/decode", s.files.Decode)
		r.Post("/contacts", s.files.Contacts)
		r.Post("/dump", s.files.Dump)
	})
}
