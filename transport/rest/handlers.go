package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type clickRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Move *int `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameManager.NewGame(r.Context())
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	that.writeGame(w, http.StatusCreated, game)
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameManager.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	that.writeGame(w, http.StatusOK, game)
}

func (that *Server) click(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	game, err := that.gameManager.Click(r.Context(), r.PathValue("id"), *req.Cell)
	if err != nil {
		that.writeError(w, "click", err)
		return
	}

	that.writeGame(w, http.StatusOK, game)
}

func (that *Server) jump(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Move == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "move is required"})
		return
	}

	game, err := that.gameManager.JumpTo(r.Context(), r.PathValue("id"), *req.Move)
	if err != nil {
		that.writeError(w, "jump", err)
		return
	}

	that.writeGame(w, http.StatusOK, game)
}

func (that *Server) toggleSort(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameManager.ToggleSortOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "toggleSort", err)
		return
	}

	that.writeGame(w, http.StatusOK, game)
}

func (that *Server) endGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gameManager.EndGame(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, "endGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) writeGame(w http.ResponseWriter, status int, game *entity.Game) {
	that.writeJSON(w, status, tictactoe.Render(game))
}

func (that *Server) writeError(w http.ResponseWriter, method string, err error) {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrGameNotFound.Error()})
	case errors.Is(err, apperror.ErrInvalidCell):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidCell.Error()})
	case errors.Is(err, apperror.ErrMoveOutOfRange):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrMoveOutOfRange.Error()})
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
