package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

// Game is the history of snapshots with the displayed position and the
// move list ordering.
type Game struct {
	ID          string  `json:"id"`
	History     []Board `json:"history"`
	CurrentMove int     `json:"current_move"`
	Ascending   bool    `json:"ascending"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		History:     []Board{{}},
		CurrentMove: 0,
		Ascending:   true,
	}
}

// CurrentSquares returns the snapshot at the pointer.
func (that *Game) CurrentSquares() Board {
	return that.History[that.CurrentMove]
}

// XIsNext is derived from the pointer: X moves on even positions.
func (that *Game) XIsNext() bool {
	return that.CurrentMove%2 == 0
}

func (that *Game) NextPlayer() string {
	if that.XIsNext() {
		return PlayerX
	}
	return PlayerO
}

// Play drops every snapshot after the pointer, appends next and moves the pointer to it.
func (that *Game) Play(next Board) {
	history := make([]Board, that.CurrentMove+1, that.CurrentMove+2)
	copy(history, that.History[:that.CurrentMove+1])

	that.History = append(history, next)
	that.CurrentMove = len(that.History) - 1
}

func (that *Game) JumpTo(move int) error {
	if move < 0 || move >= len(that.History) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrMoveOutOfRange, move, len(that.History))
	}

	that.CurrentMove = move

	return nil
}

// Validate checks that the pointer addresses an entry of a non-empty history.
func (that *Game) Validate() error {
	if that.CurrentMove < 0 || that.CurrentMove >= len(that.History) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrInvalidGame, that.CurrentMove, len(that.History))
	}

	return nil
}

func (that *Game) ToggleSortOrder() {
	that.Ascending = !that.Ascending
}
