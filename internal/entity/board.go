package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

const (
	ResultOngoing = "ongoing"
	ResultWinner  = "winner"
	ResultDraw    = "draw"
)

// WinCombos are checked in this order; the first full line wins.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is one snapshot of the 3x3 grid, index = row*3+col.
// It is a value type, so every move yields a new snapshot.
type Board [9]string

// Win describes a finished line.
type Win struct {
	Player string `json:"player"`
	Line   [3]int `json:"line"`
}

// Winner returns nil when no line is complete.
func (that Board) Winner() *Win {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return &Win{Player: a, Line: combo}
		}
	}

	return nil
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Result folds Winner and IsFull into ongoing, winner or draw.
func (that Board) Result() string {
	switch {
	case that.Winner() != nil:
		return ResultWinner
	case that.IsFull():
		return ResultDraw
	default:
		return ResultOngoing
	}
}

// With returns a copy of the board with cell set to mark.
func (that Board) With(cell int, mark string) Board {
	next := that
	next[cell] = mark

	return next
}

// ChangedCell returns the first index where the board differs from prev, or -1.
func (that Board) ChangedCell(prev Board) int {
	for i := range that {
		if that[i] != prev[i] {
			return i
		}
	}

	return -1
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < len(Board{})
}
