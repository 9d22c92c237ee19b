package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

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

type handler func(ctx context.Context, conn *websocket.Conn, gameID string, msg *Message) error

type Server struct {
	logger      *slog.Logger
	gameManager gameManager
	upgrader    websocket.Upgrader

	handlers map[string]handler
}

func New(logger *slog.Logger, gameManager gameManager) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameManager: gameManager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the board is served from any origin
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handler),
	}

	server.handlers[actionGameState] = server.handleState
	server.handlers[actionGameClick] = server.handleClick
	server.handlers[actionGameJump] = server.handleJump
	server.handlers[actionGameSort] = server.handleSort

	return server
}

// Handler returns the /ws route.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
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

// upgradeToWebSocket - upgrades the connection and runs one game session on it.
func (that *Server) upgradeToWebSocket(w http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	ctx := req.Context()

	// unblock the read loop when the server shuts down
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	game, err := that.gameManager.NewGame(ctx)
	if err != nil {
		log.Error("failed to create game", "error", err)
		_ = that.sendErrorResponse(conn, actionGameState, "failed to create game")
		return
	}

	log = log.With("gameID", game.ID)
	log.Info("WebSocket connection established")

	defer func() {
		if err = that.gameManager.EndGame(context.WithoutCancel(ctx), game.ID); err != nil {
			log.Error("failed to end game", "error", err)
		}
		log.Info("WebSocket connection closed")
	}()

	if err = that.sendGame(conn, actionGameState, game); err != nil {
		log.Error("failed to send game", "error", err)
		return
	}

	if err = that.handleMessages(ctx, conn, game.ID); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, gameID string) error {
	log := that.logger.With("method", "handleMessages", "gameID", gameID)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendErrorResponse(conn, "", "malformed message"); err != nil {
				return err
			}
			continue
		}

		handle, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = that.sendErrorResponse(conn, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handle(ctx, conn, gameID, &message); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action, errorMsg string) error {
	if err := that.sendMessage(conn, action, Payload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
