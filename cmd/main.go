package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"tetratoy/internal/adapters"
	"tetratoy/internal/bootstrap"
	puzzleDelivery "tetratoy/internal/delivery/puzzle"
	sessionDelivery "tetratoy/internal/delivery/session"
	ownMiddleware "tetratoy/internal/middleware"
	repo "tetratoy/internal/repository"
	puzzleuc "tetratoy/internal/usecase/puzzle"
	"tetratoy/web"
)

type mainDeliveryHandler struct {
	session *sessionDelivery.SessionHandler
	puzzle  *puzzleDelivery.PuzzleHandler
}

func main() {
	logger := NewLogger()
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	redisAdapter := adapters.NewAdapterRedis(cfg, logger)
	if err := redisAdapter.Init(ctx); err != nil {
		logger.Fatal("Не удалось инициализировать Redis", zap.Error(err))
	}
	defer redisAdapter.Close(ctx)

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(*cfg, logger, redisAdapter)
	handlers.Router(r, cfg.IsLocalCors)

	port := ":" + cfg.ServerPort
	logger.Infof("Server is running on port %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)

	r.Post("/api/session", h.session.Start)
	r.Delete("/api/session", h.session.End)
	r.Get("/api/state", h.puzzle.HandleState)
	r.Post("/api/place", h.puzzle.HandlePlace)
	r.Post("/api/rotation", h.puzzle.HandleRotation)
	r.Post("/api/undo", h.puzzle.HandleUndo)
	r.Post("/api/redo", h.puzzle.HandleRedo)
	r.Post("/api/reset", h.puzzle.HandleReset)
	r.Post("/api/gate", h.puzzle.HandleGate)
	r.Get("/ws", h.puzzle.HandleBoardWS)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(web.Index())
	})
}

func initializeDeliveryHandlers(cfg bootstrap.Config, log *zap.SugaredLogger, redisAdapter *adapters.AdapterRedis) *mainDeliveryHandler {
	puzzleUseCase := puzzleuc.NewPuzzleUseCase(cfg, repo.NewPuzzleRepository(cfg, log, redisAdapter.GetClient()))

	sessionDeliveryHandler := sessionDelivery.NewSessionHandler(cfg, log, puzzleUseCase)
	puzzleDeliveryHandler := puzzleDelivery.NewPuzzleHandler(cfg, log, puzzleUseCase, sessionDeliveryHandler)

	return &mainDeliveryHandler{
		session: sessionDeliveryHandler,
		puzzle:  puzzleDeliveryHandler,
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
	time.Sleep(1 * time.Second) // дать время закрыть соединения
	os.Exit(0)
}
