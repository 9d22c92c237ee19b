package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type focus int

const (
	focusBoard focus = iota
	focusMoves
)

type gameManager interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	Click(ctx context.Context, id string, cell int) (*entity.Game, error)
	JumpTo(ctx context.Context, id string, move int) (*entity.Game, error)
	ToggleSortOrder(ctx context.Context, id string) (*entity.Game, error)
	EndGame(ctx context.Context, id string) error
}

type Model struct {
	ctx     context.Context
	manager gameManager

	gameID string
	view   tictactoe.View

	focus      focus
	cursor     int // board cell under the cursor
	moveCursor int // index into view.Moves
	err        error
	quitting   bool
}

// NewModel starts a new game session for the terminal.
func NewModel(ctx context.Context, manager gameManager) (Model, error) {
	game, err := manager.NewGame(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("failed to create game: %w", err)
	}

	m := Model{
		ctx:     ctx,
		manager: manager,
		gameID:  game.ID,
		cursor:  4,
	}
	m.refresh(game)

	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()

	switch key {
	case "q", "ctrl+c":
		if err := m.manager.EndGame(m.ctx, m.gameID); err != nil {
			m.err = err
		}
		m.quitting = true
		return m, tea.Quit

	case "tab":
		if m.focus == focusBoard {
			m.focus = focusMoves
		} else {
			m.focus = focusBoard
		}
		return m, nil

	case "s":
		selected := m.view.Moves[m.moveCursor].Move
		m.apply(m.manager.ToggleSortOrder(m.ctx, m.gameID))
		m.selectMove(selected)
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.cursor = int(key[0] - '1')
		m.click()
		return m, nil
	}

	if m.focus == focusBoard {
		return m.updateBoard(key)
	}

	return m.updateMoves(key)
}

func (m Model) updateBoard(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.cursor >= 3 {
			m.cursor -= 3
		}
	case "down", "j":
		if m.cursor < 6 {
			m.cursor += 3
		}
	case "left", "h":
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%3 < 2 {
			m.cursor++
		}
	case "enter", " ":
		m.click()
	}

	return m, nil
}

func (m Model) updateMoves(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.moveCursor > 0 {
			m.moveCursor--
		}
	case "down", "j":
		if m.moveCursor < len(m.view.Moves)-1 {
			m.moveCursor++
		}
	case "enter", " ":
		move := m.view.Moves[m.moveCursor]
		if !move.Current {
			m.apply(m.manager.JumpTo(m.ctx, m.gameID, move.Move))
		}
	}

	return m, nil
}

func (m *Model) click() {
	m.apply(m.manager.Click(m.ctx, m.gameID, m.cursor))
}

func (m *Model) apply(game *entity.Game, err error) {
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.refresh(game)
}

func (m *Model) refresh(game *entity.Game) {
	m.view = tictactoe.Render(game)

	if m.moveCursor >= len(m.view.Moves) {
		m.moveCursor = len(m.view.Moves) - 1
	}
}

// selectMove points the move cursor at move in the current list order.
func (m *Model) selectMove(move int) {
	for i, entry := range m.view.Moves {
		if entry.Move == move {
			m.moveCursor = i
			return
		}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Tic-Tac-Toe") + "\n")
	b.WriteString(statusStyle.Render(m.view.Status) + "\n\n")

	board := m.renderBoard()
	info := panelStyle.Render(m.renderInfo())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, info) + "\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("  "+m.err.Error()) + "\n")
	}

	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderBoard() string {
	rows := make([]string, 0, len(m.view.Rows))

	for _, row := range m.view.Rows {
		cells := make([]string, 0, len(row))
		for _, square := range row {
			cells = append(cells, m.renderSquare(square))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderSquare(square tictactoe.Square) string {
	style := cellStyle
	switch {
	case square.Winning:
		style = winningCellStyle
	case m.focus == focusBoard && square.Index == m.cursor:
		style = cursorCellStyle
	}

	if square.Winning {
		return style.Render(square.Value)
	}

	value := square.Value
	switch {
	case value == entity.PlayerX:
		value = markX.Render(value)
	case value == entity.PlayerO:
		value = markO.Render(value)
	case m.focus == focusBoard && square.Index == m.cursor:
		value = "·"
	}

	return style.Render(value)
}

func (m Model) renderInfo() string {
	var b strings.Builder

	b.WriteString(sortStyle.Render("[s] "+m.view.SortLabel) + "\n\n")

	for i, move := range m.view.Moves {
		line := fmt.Sprintf("%2d. %s", i+1, move.Label)

		switch {
		case m.focus == focusMoves && i == m.moveCursor:
			line = selectedStyle.Render(line)
		case move.Current:
			line = currentMoveStyle.Render(line)
		default:
			line = jumpStyle.Render(line)
		}

		b.WriteString(line + "\n")
	}

	return b.String()
}

func (m Model) renderHelp() string {
	if m.focus == focusMoves {
		return helpStyle.Render("  ↑/↓: select  Enter: jump  Tab: board  s: sort  q: quit")
	}
	return helpStyle.Render("  arrows/1-9: cell  Enter: play  Tab: moves  s: sort  q: quit")
}

// Game returns the current rendering of the game.
func (m Model) Game() tictactoe.View {
	return m.view
}
