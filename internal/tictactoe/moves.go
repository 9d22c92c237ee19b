package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	sortDescending = "Sort Descending"
	sortAscending  = "Sort Ascending"
)

// Move is one entry of the move list. Current entries are plain text, the
// rest are jump targets.
type Move struct {
	Move    int    `json:"move"`
	Label   string `json:"label"`
	Current bool   `json:"current"`
}

// Describe returns the jump label for history entry move.
func Describe(history []entity.Board, move int) string {
	if move == 0 {
		return "Go to game start"
	}

	cell := history[move].ChangedCell(history[move-1])
	row, col := cell/3+1, cell%3+1

	return fmt.Sprintf("Go to move #%d (%d, %d)", move, row, col)
}

// Moves lists the history entries in the game's sort order.
func Moves(game *entity.Game) []Move {
	moves := make([]Move, 0, len(game.History))

	for move := range game.History {
		entry := Move{Move: move}

		if move == game.CurrentMove {
			entry.Current = true
			entry.Label = fmt.Sprintf("You are at move #%d", move)
		} else {
			entry.Label = Describe(game.History, move)
		}

		moves = append(moves, entry)
	}

	if !game.Ascending {
		for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
			moves[i], moves[j] = moves[j], moves[i]
		}
	}

	return moves
}

// SortLabel is the caption of the sort toggle, naming the order it switches to.
func SortLabel(game *entity.Game) string {
	if game.Ascending {
		return sortDescending
	}
	return sortAscending
}
