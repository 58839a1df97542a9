package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-web/internal/tictactoe"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	cellStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8"))

	cursorStyle  = cellStyle.BorderForeground(lipgloss.Color("11"))
	winningStyle = cellStyle.BorderForeground(lipgloss.Color("10")).Background(lipgloss.Color("22"))

	xStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	oStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("209")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("10"))
)

func (that Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tic-Tac-Toe"))
	b.WriteString("\n")
	b.WriteString(that.renderBoard())
	b.WriteString("\n\n")

	if that.showSummary {
		b.WriteString(summaryStyle.Render(summaryText(that.state)))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("press esc or r to play again"))
	} else {
		b.WriteString("Current player: ")
		b.WriteString(renderMark(that.state.CurrentTurn()))
	}

	if that.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(that.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(that.help.View(that.keys))
	b.WriteString("\n")

	return b.String()
}

func (that Model) renderBoard() string {
	board := that.state.Board()

	winning := map[int]bool{}
	if line, ok := that.state.WinningLine(); ok {
		for _, cell := range line {
			winning[cell] = true
		}
	}

	rows := make([]string, 0, boardSide)
	for row := range boardSide {
		cells := make([]string, 0, boardSide)

		for col := range boardSide {
			index := row*boardSide + col

			content := hintStyle.Render(strconv.Itoa(index + 1))
			if board[index] != tictactoe.Empty {
				content = renderMark(board[index])
			}

			style := cellStyle
			switch {
			case winning[index]:
				style = winningStyle
			case index == that.cursor && !that.state.IsFinished():
				style = cursorStyle
			}

			cells = append(cells, style.Render(content))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderMark(mark tictactoe.Mark) string {
	switch mark {
	case tictactoe.PlayerX:
		return xStyle.Render(string(mark))
	case tictactoe.PlayerO:
		return oStyle.Render(string(mark))
	default:
		return ""
	}
}

func summaryText(state *tictactoe.GameState) string {
	if state.Status() == tictactoe.StatusWon {
		return string(state.Winner()) + " Wins!"
	}
	return "It's a Draw!"
}
