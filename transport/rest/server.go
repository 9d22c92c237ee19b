package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameManager interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	Click(ctx context.Context, id string, cell int) (*entity.Game, error)
	JumpTo(ctx context.Context, id string, move int) (*entity.Game, error)
	ToggleSortOrder(ctx context.Context, id string) (*entity.Game, error)
	EndGame(ctx context.Context, id string) error
}

type Server struct {
	logger      *slog.Logger
	gameManager gameManager
}

func New(logger *slog.Logger, gameManager gameManager) *Server {
	return &Server{
		logger:      logger.With("component", "rest"),
		gameManager: gameManager,
	}
}

// Handler returns the routes of the HTTP API.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", that.pingHandler)

	mux.HandleFunc("POST /api/games", that.createGame)
	mux.HandleFunc("GET /api/games/{id}", that.getGame)
	mux.HandleFunc("POST /api/games/{id}/click", that.click)
	mux.HandleFunc("POST /api/games/{id}/jump", that.jump)
	mux.HandleFunc("POST /api/games/{id}/sort", that.toggleSort)
	mux.HandleFunc("DELETE /api/games/{id}", that.endGame)

	return mux
}

// Start - starts the HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
