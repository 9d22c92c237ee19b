package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const (
	statusDraw       = "It's a draw!"
	statusWinner     = "Winner: "
	statusNextPlayer = "Next player: "
)

// Square is a single renderable cell. Winning marks the cells of the finished line.
type Square struct {
	Index   int    `json:"index"`
	Value   string `json:"value"`
	Winning bool   `json:"winning"`
}

// HandleClick returns the snapshot produced by clicking cell, or false when
// the click must be ignored: the game is already won or the cell is taken.
func HandleClick(squares entity.Board, xIsNext bool, cell int) (entity.Board, bool) {
	if !entity.IsValidCell(cell) {
		return squares, false
	}

	if squares.Winner() != nil || squares[cell] != entity.EmptyCell {
		return squares, false
	}

	return squares.With(cell, mark(xIsNext)), true
}

func Status(squares entity.Board, xIsNext bool) string {
	if win := squares.Winner(); win != nil {
		return statusWinner + win.Player
	}

	if squares.IsFull() {
		return statusDraw
	}

	return statusNextPlayer + mark(xIsNext)
}

// Squares lists the cells in index order.
func Squares(squares entity.Board) []Square {
	var line [3]int
	win := squares.Winner()
	if win != nil {
		line = win.Line
	}

	cells := make([]Square, 0, len(squares))
	for i, value := range squares {
		cells = append(cells, Square{
			Index:   i,
			Value:   value,
			Winning: win != nil && (line[0] == i || line[1] == i || line[2] == i),
		})
	}

	return cells
}

// Rows groups Squares into three rows of three.
func Rows(squares entity.Board) [][]Square {
	cells := Squares(squares)

	rows := make([][]Square, 0, 3)
	for row := 0; row < 3; row++ {
		rows = append(rows, cells[row*3:row*3+3])
	}

	return rows
}

func mark(xIsNext bool) string {
	if xIsNext {
		return entity.PlayerX
	}
	return entity.PlayerO
}
