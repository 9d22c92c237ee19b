package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// View is everything a renderer needs for one frame, derived from the game on every call.
type View struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	Result      string      `json:"result"`
	NextPlayer  string      `json:"next_player,omitempty"`
	Winner      *entity.Win `json:"winner,omitempty"`
	Rows        [][]Square  `json:"rows"`
	Moves       []Move      `json:"moves"`
	CurrentMove int         `json:"current_move"`
	Ascending   bool        `json:"ascending"`
	SortLabel   string      `json:"sort_label"`
}

func Render(game *entity.Game) View {
	squares := game.CurrentSquares()

	view := View{
		ID:          game.ID,
		Status:      Status(squares, game.XIsNext()),
		Result:      squares.Result(),
		Winner:      squares.Winner(),
		Rows:        Rows(squares),
		Moves:       Moves(game),
		CurrentMove: game.CurrentMove,
		Ascending:   game.Ascending,
		SortLabel:   SortLabel(game),
	}

	if view.Result == entity.ResultOngoing {
		view.NextPlayer = game.NextPlayer()
	}

	return view
}
