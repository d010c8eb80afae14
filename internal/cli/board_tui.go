package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/brunovale/prancheta/internal/board"
	"github.com/brunovale/prancheta/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// boardModel is a small interactive view over one node's Kanban board.
// Columns are selected with the arrow keys and dragged with shift-arrows;
// every mutation goes through the services and the board is re-fetched,
// so the screen always shows persisted state.
type boardModel struct {
	app    *App
	nodeID string

	board  *board.Board
	cursor int

	adding bool
	input  textinput.Model

	err  error
	quit bool
}

// follow names a status to keep selected after the reload, so the
// cursor tracks a dragged column once its new position is persisted.
type boardLoadedMsg struct {
	board  *board.Board
	follow string
}

type boardErrMsg struct{ err error }

func newBoardModel(app *App, nodeID string) boardModel {
	input := textinput.New()
	input.Placeholder = "new status name"
	input.CharLimit = 40
	input.Width = 30

	return boardModel{app: app, nodeID: nodeID, input: input}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadBoard()
}

func (m boardModel) loadBoard() tea.Cmd {
	return func() tea.Msg {
		b, err := m.app.Boards.Board(context.Background(), m.nodeID)
		if err != nil {
			return boardErrMsg{err}
		}
		return boardLoadedMsg{board: b}
	}
}

func (m boardModel) selectedStatusID() string {
	if m.board == nil || m.cursor >= len(m.board.Columns) {
		return ""
	}
	return m.board.Columns[m.cursor].Status.ID
}

// dragSelected moves the selected column onto its neighbor at offset.
func (m boardModel) dragSelected(offset int) tea.Cmd {
	target := m.cursor + offset
	if m.board == nil || target < 0 || target >= len(m.board.Columns) {
		return nil
	}
	dragged := m.board.Columns[m.cursor].Status.ID
	targetID := m.board.Columns[target].Status.ID
	projectID := m.board.Node.ProjectID

	return func() tea.Msg {
		if err := m.app.Statuses.Reorder(context.Background(), projectID, dragged, targetID); err != nil {
			return boardErrMsg{err}
		}
		b, err := m.app.Boards.Board(context.Background(), m.nodeID)
		if err != nil {
			return boardErrMsg{err}
		}
		return boardLoadedMsg{board: b, follow: dragged}
	}
}

func (m boardModel) ensureStatus(name string) tea.Cmd {
	projectID := m.board.Node.ProjectID
	return func() tea.Msg {
		if _, err := m.app.Statuses.Ensure(context.Background(), projectID, name, ""); err != nil {
			return boardErrMsg{err}
		}
		b, err := m.app.Boards.Board(context.Background(), m.nodeID)
		if err != nil {
			return boardErrMsg{err}
		}
		return boardLoadedMsg{board: b}
	}
}

func (m boardModel) deleteSelected() tea.Cmd {
	id := m.selectedStatusID()
	if id == "" {
		return nil
	}
	return func() tea.Msg {
		if err := m.app.Statuses.Delete(context.Background(), id); err != nil {
			return boardErrMsg{err}
		}
		b, err := m.app.Boards.Board(context.Background(), m.nodeID)
		if err != nil {
			return boardErrMsg{err}
		}
		return boardLoadedMsg{board: b}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		m.board = msg.board
		m.err = nil
		if msg.follow != "" {
			for i, col := range m.board.Columns {
				if col.Status.ID == msg.follow {
					m.cursor = i
					break
				}
			}
		}
		if m.cursor >= len(m.board.Columns) {
			m.cursor = len(m.board.Columns) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case boardErrMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			switch msg.String() {
			case "enter":
				name := strings.TrimSpace(m.input.Value())
				m.adding = false
				m.input.SetValue("")
				if name == "" {
					return m, nil
				}
				return m, m.ensureStatus(name)
			case "esc":
				m.adding = false
				m.input.SetValue("")
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.board != nil && m.cursor < len(m.board.Columns)-1 {
				m.cursor++
			}
		case "shift+left", "H":
			// Cursor follows the dragged column via boardLoadedMsg once
			// the reorder is persisted; a failed drag leaves it in place.
			return m, m.dragSelected(-1)
		case "shift+right", "L":
			return m, m.dragSelected(1)
		case "n":
			m.adding = true
			m.input.Focus()
			return m, textinput.Blink
		case "d":
			return m, m.deleteSelected()
		case "r":
			return m, m.loadBoard()
		}
	}

	return m, nil
}

func (m boardModel) View() string {
	if m.quit {
		return ""
	}
	if m.board == nil {
		if m.err != nil {
			return formatter.StyleRed.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
		}
		return formatter.Dim("loading board...") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.FormatBoard(m.board))
	b.WriteString("\n")

	if len(m.board.Columns) > 0 {
		selected := m.board.Columns[m.cursor].Status
		marker := lipgloss.NewStyle().Foreground(formatter.ColorHeader).Render("▸ ")
		b.WriteString("\n" + marker + formatter.StatusDot(selected))
	}

	if m.adding {
		b.WriteString("\n" + m.input.View())
	}
	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render(fmt.Sprintf("error: %v", m.err)))
	}

	b.WriteString("\n" + formatter.Dim("←/→ select · shift+←/→ move column · n new · d delete · r refresh · q quit"))
	return b.String()
}

func runBoardTUI(app *App, nodeID string) error {
	p := tea.NewProgram(newBoardModel(app, nodeID))
	_, err := p.Run()
	return err
}
