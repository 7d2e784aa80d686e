// пакет app реализует HTTP сервер сборщика плейлистов Music Lab:
// одна страница с формой и небольшое JSON API над хранилищем плейлистов
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kTowkA/musiclab/internal/config"
	"github.com/kTowkA/musiclab/internal/storage"
	"golang.org/x/sync/errgroup"
)

const (
	plainTextContentType = "text/plain"
	jsonContentType      = "application/json"
	contentType          = "content-type"

	// shutdownTimeout время на плавную остановку сервера
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	db     storage.Storager
	logger *slog.Logger
	Config config.Config
}

func NewServer(cfg config.Config, log *slog.Logger) (*Server, error) {
	if log == nil {
		return nil, errors.New("создание сервера. не передан логер")
	}
	return &Server{
		Config: cfg,
		logger: log,
	}, nil
}

// router собирает роутер приложения со всеми обработчиками и промежуточными слоями
func (s *Server) router() chi.Router {
	mux := chi.NewRouter()

	mux.Use(withLog(s.logger))
	mux.Use(withGZIP)
	mux.Use(s.withSession)

	mux.Route("/", func(r chi.Router) {
		r.Get("/", s.page)
		r.Post("/", s.addLink)
		r.Get("/ping", s.ping)
		r.Route("/api/playlist", func(r chi.Router) {
			r.Get("/", s.playlistState)
			r.Post("/", s.apiAddLink)
			r.Post("/load", s.apiLoadPlaylist)
			r.Get("/share", s.shareLink)
			r.Delete("/{index}", s.removeLink)
		})
	})
	return mux
}

// Run запускает сервер с хранилищем db и работает до отмены контекста ctx
func (s *Server) Run(ctx context.Context, db storage.Storager) error {
	s.db = db

	srv := &http.Server{
		Addr:    s.Config.Address(),
		Handler: s.router(),
	}

	gr, grCtx := errgroup.WithContext(ctx)

	gr.Go(func() error {
		defer s.logger.Info("остановили сервер")
		<-grCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	gr.Go(func() error {
		s.logger.Info("запуск сервера", slog.String("адрес", s.Config.Address()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	return gr.Wait()
}
