package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

const handlerTimeout = 10 * time.Second

type gameManager interface {
	GetGame(ctx context.Context, sessionID string) (*entity.Game, error)
	MakeMove(ctx context.Context, sessionID string, cell int) (*entity.Game, tictactoe.MoveResult, error)
	Restart(ctx context.Context, sessionID string) (*entity.Game, error)
}

type requestObserver interface {
	Observe(route, method string, code int, elapsed time.Duration)
}

// Options - everything the router serves besides the game API.
type Options struct {
	Page     http.Handler
	Static   http.Handler
	Gatherer prometheus.Gatherer
	Observer requestObserver
}

// NewRouter - the browser page, the JSON game API, ping and metrics.
func NewRouter(logger *slog.Logger, games gameManager, opts Options) http.Handler {
	handlers := &gameHandlers{
		logger: logger.With("component", "rest"),
		games:  games,
	}

	router := chi.NewRouter()

	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(requestLogger(handlers.logger, opts.Observer))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(handlerTimeout))

	router.Get("/ping", pingHandler)

	if opts.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	if opts.Page != nil {
		router.With(withSession()).Get("/", opts.Page.ServeHTTP)
	}

	if opts.Static != nil {
		router.Handle("/static/*", opts.Static)
	}

	router.Route("/api/game", func(r chi.Router) {
		r.Use(withSession())

		r.Get("/", handlers.getGame)
		r.Post("/moves", handlers.makeMove)
		r.Post("/restart", handlers.restart)
	})

	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusNotFound, errorResponse{Error: "not found"})
	})

	return router
}

func requestLogger(logger *slog.Logger, observer requestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			started := time.Now()
			ww := chimw.NewWrapResponseWriter(writer, req.ProtoMajor)

			next.ServeHTTP(ww, req)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := ""
			if rctx := chi.RouteContext(req.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}

			elapsed := time.Since(started)

			if observer != nil {
				observer.Observe(route, req.Method, status, elapsed)
			}

			logger.Debug("request served",
				"request_id", chimw.GetReqID(req.Context()),
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", elapsed,
			)
		})
	}
}
