package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slide2048/internal/engine"
)

const (
	tileWidth  = 7
	tileHeight = 3
)

// tileColors maps tile values to ANSI 256-color backgrounds.
// Values past the table reuse the last entry.
var tileColors = []struct {
	value int
	bg    lipgloss.Color
	fg    lipgloss.Color
}{
	{0, lipgloss.Color("237"), lipgloss.Color("240")},
	{2, lipgloss.Color("230"), lipgloss.Color("236")},
	{4, lipgloss.Color("223"), lipgloss.Color("236")},
	{8, lipgloss.Color("215"), lipgloss.Color("231")},
	{16, lipgloss.Color("209"), lipgloss.Color("231")},
	{32, lipgloss.Color("203"), lipgloss.Color("231")},
	{64, lipgloss.Color("196"), lipgloss.Color("231")},
	{128, lipgloss.Color("228"), lipgloss.Color("236")},
	{256, lipgloss.Color("227"), lipgloss.Color("236")},
	{512, lipgloss.Color("226"), lipgloss.Color("236")},
	{1024, lipgloss.Color("220"), lipgloss.Color("231")},
	{2048, lipgloss.Color("214"), lipgloss.Color("231")},
	{4096, lipgloss.Color("93"), lipgloss.Color("231")},
}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// tileStyle returns the style for a tile value.
func tileStyle(value int) lipgloss.Style {
	bg, fg := tileColors[len(tileColors)-1].bg, tileColors[len(tileColors)-1].fg
	for _, c := range tileColors {
		if c.value == value {
			bg, fg = c.bg, c.fg
			break
		}
	}
	return lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(bg).
		Foreground(fg).
		Bold(value >= 8)
}

// renderTile draws one cell. Empty cells show a dot.
func renderTile(value int) string {
	label := "·"
	if value != 0 {
		label = strconv.Itoa(value)
	}
	return tileStyle(value).Render(label)
}

// renderBoard draws the grid inside a rounded border.
func renderBoard(snap engine.Snapshot) string {
	rows := make([]string, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, renderTile(v))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderHUD draws the title, score and history indicators.
func renderHUD(snap engine.Snapshot) string {
	undo := dimStyle.Render("undo")
	if snap.CanUndo {
		undo = scoreStyle.Render("undo")
	}
	redo := dimStyle.Render("redo")
	if snap.CanRedo {
		redo = scoreStyle.Render("redo")
	}

	return fmt.Sprintf("%s  %s  %s  %s %s",
		titleStyle.Render("2048"),
		scoreStyle.Render(fmt.Sprintf("Score: %d", snap.Score)),
		dimStyle.Render(fmt.Sprintf("Max: %d", snap.MaxTile)),
		undo, redo,
	)
}

// renderView composes the whole game screen.
func renderView(snap engine.Snapshot, status error, helpView string) string {
	var sb strings.Builder
	sb.WriteString(renderHUD(snap))
	sb.WriteString("\n")
	sb.WriteString(renderBoard(snap))
	sb.WriteString("\n")

	if snap.Terminal {
		sb.WriteString(gameOverStyle.Render("Game over! Press r to restart, z to undo."))
		sb.WriteString("\n")
	}
	if status != nil {
		sb.WriteString(errorStyle.Render("Error: " + status.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(helpView)
	return sb.String()
}
