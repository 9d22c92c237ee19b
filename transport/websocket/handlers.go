package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

func (that *Server) handleState(ctx context.Context, conn *websocket.Conn, gameID string, msg *Message) error {
	game, err := that.gameManager.GetGame(ctx, gameID)

	return that.reply(conn, msg.Action, game, err)
}

func (that *Server) handleClick(ctx context.Context, conn *websocket.Conn, gameID string, msg *Message) error {
	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil || payloadReq.Cell == nil {
		return that.sendErrorResponse(conn, msg.Action, "cell is required")
	}

	game, err := that.gameManager.Click(ctx, gameID, *payloadReq.Cell)

	return that.reply(conn, msg.Action, game, err)
}

func (that *Server) handleJump(ctx context.Context, conn *websocket.Conn, gameID string, msg *Message) error {
	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil || payloadReq.Move == nil {
		return that.sendErrorResponse(conn, msg.Action, "move is required")
	}

	game, err := that.gameManager.JumpTo(ctx, gameID, *payloadReq.Move)

	return that.reply(conn, msg.Action, game, err)
}

func (that *Server) handleSort(ctx context.Context, conn *websocket.Conn, gameID string, msg *Message) error {
	game, err := that.gameManager.ToggleSortOrder(ctx, gameID)

	return that.reply(conn, msg.Action, game, err)
}

// reply sends the game, or the error a client can act on. Other errors are
// logged and reported without details.
func (that *Server) reply(conn *websocket.Conn, action string, game *entity.Game, err error) error {
	switch {
	case err == nil:
		return that.sendGame(conn, action, game)
	case errors.Is(err, apperror.ErrInvalidCell):
		return that.sendErrorResponse(conn, action, apperror.ErrInvalidCell.Error())
	case errors.Is(err, apperror.ErrMoveOutOfRange):
		return that.sendErrorResponse(conn, action, apperror.ErrMoveOutOfRange.Error())
	case errors.Is(err, apperror.ErrGameNotFound):
		return that.sendErrorResponse(conn, action, apperror.ErrGameNotFound.Error())
	default:
		that.logger.Error("failed to process message", "action", action, "error", err)
		return that.sendErrorResponse(conn, action, "internal error")
	}
}

func (that *Server) sendGame(conn *websocket.Conn, action string, game *entity.Game) error {
	view := tictactoe.Render(game)

	return that.sendMessage(conn, action, Payload{Game: &view})
}
