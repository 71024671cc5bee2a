package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/canvas"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/catalog"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/session"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("173"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("215"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	busyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
)

func (m Model) View() string {
	var body string
	switch m.mode {
	case modeAuth:
		body = m.viewAuth()
	case modeCatalog:
		body = m.viewCatalog()
	case modeSaveName:
		body = m.viewSaveName()
	case modeLoadList:
		body = m.viewLoadList()
	default:
		body = m.viewCanvas()
	}
	return body + "\n" + m.viewStatusBar()
}

func (m Model) viewAuth() string {
	var b strings.Builder

	title := "Log in"
	if m.registering {
		title = "Create an account"
	}
	b.WriteString(titleStyle.Render("A Loving Lunch — "+title) + "\n\n")

	type field struct {
		label  string
		value  string
		masked bool
	}
	var fields []field
	if m.registering {
		fields = append(fields, field{"username", m.username, false})
	}
	fields = append(fields,
		field{"email", m.email, false},
		field{"password", m.password, true},
	)

	for i, f := range fields {
		value := f.value
		if f.masked {
			value = strings.Repeat("•", len([]rune(f.value)))
		}
		line := fmt.Sprintf("%-10s %s", f.label+":", value)
		if i == m.authField {
			line = cursorStyle.Render("> " + line + "█")
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if m.authBusy {
		b.WriteString(busyStyle.Render("signing in...") + "\n")
	}
	b.WriteString(helpStyle.Render("enter submit · tab next field · ctrl+t switch login/register · ctrl+c quit"))

	return panelStyle.Render(b.String())
}

func (m Model) viewCanvas() string {
	cols := int(canvasWidth / cellW)
	rows := int(canvasHeight / cellH)
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	layout := m.surface.Layout()
	drawRect(grid, layout.Container)

	// Divider down the middle of the container interior.
	divCol := toCol(layout.Container.X + layout.Container.Width/2)
	for row := toRow(layout.Container.Y) + 1; row < toRow(layout.Container.Y+layout.Container.Height); row++ {
		setCell(grid, row, divCol, '│')
	}

	if comp := m.highlightedCompartment(); comp != "" {
		rect := layout.Left
		if comp == canvas.CompartmentRight {
			rect = layout.Right
		}
		fillRect(grid, rect, '░')
	}

	for _, p := range m.surface.Placements() {
		row, col := toRow(p.Position.Y), toCol(p.Position.X)
		icon := '•'
		if ing, ok := m.cat.Lookup(p.IngredientID); ok && len(ing.Icon) > 0 {
			icon = []rune(ing.Icon)[0]
		}
		if p.Selected {
			setCell(grid, row, col-1, '[')
			setCell(grid, row, col+1, ']')
		}
		setCell(grid, row, col, icon)
	}

	var b strings.Builder
	for _, line := range grid {
		b.WriteString(string(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewCatalog() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add an ingredient") + "\n\n")

	i := 0
	for _, cat := range catalog.Categories {
		b.WriteString(helpStyle.Render(strings.ToUpper(string(cat))) + "\n")
		for _, ing := range m.cat.ByCategory(cat) {
			line := fmt.Sprintf("%s %s", ing.Icon, ing.Name)
			if i == m.catIndex {
				line = cursorStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
			i++
		}
	}

	b.WriteString("\n" + helpStyle.Render("enter add · esc back"))
	return panelStyle.Render(b.String())
}

func (m Model) viewSaveName() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Save bento box") + "\n\n")
	b.WriteString(fmt.Sprintf("name: %s█\n", m.nameInput))
	if m.saveBusy {
		b.WriteString("\n" + busyStyle.Render("saving..."))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	b.WriteString("\n\n" + helpStyle.Render("enter save · esc cancel"))
	return panelStyle.Render(b.String())
}

func (m Model) viewLoadList() string {
	var b strings.Builder
	if m.listPublic {
		b.WriteString(titleStyle.Render("Public gallery") + "\n\n")
	} else {
		b.WriteString(titleStyle.Render("My bento boxes") + "\n\n")
	}

	switch {
	case m.listBusy:
		b.WriteString(busyStyle.Render("loading...") + "\n")
	case len(m.boxes) == 0:
		b.WriteString(helpStyle.Render("nothing here yet") + "\n")
	default:
		for i, box := range m.boxes {
			line := fmt.Sprintf("%-30s %2d ingredients  ♥ %d", truncate(box.Name, 30), len(box.Ingredients), box.Likes)
			if i == m.listIndex {
				line = cursorStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	help := "enter open · p toggle public · y copy id · esc back"
	if !m.listPublic {
		help = "enter open · d delete · p toggle public · y copy id · esc back"
	}
	b.WriteString("\n" + helpStyle.Render(help))
	return panelStyle.Render(b.String())
}

func (m Model) viewStatusBar() string {
	var parts []string

	if m.session.State() == session.Authenticated {
		parts = append(parts, m.session.User().Username)
	} else {
		parts = append(parts, m.session.State().String())
	}

	name := m.boxName
	if name == "" {
		name = "untitled"
	}
	parts = append(parts, name)
	parts = append(parts, fmt.Sprintf("%d placed", m.surface.Len()))

	if comp := m.highlightedCompartment(); comp != "" {
		parts = append(parts, "over "+string(comp)+" compartment")
	}

	line := statusStyle.Render(strings.Join(parts, " · "))
	if m.errMsg != "" && m.mode == modeCanvas {
		line += "  " + errorStyle.Render(m.errMsg)
	} else if m.status != "" {
		line += "  " + m.status
	}

	help := helpStyle.Render("arrows move · esc drop · tab select · a add · d delete · u undo · ctrl+r redo · ctrl+a all · s save · l load · y copy id · n new · q quit")
	return line + "\n" + help
}

func toCol(x float64) int { return int(x / cellW) }
func toRow(y float64) int { return int(y / cellH) }

func setCell(grid [][]rune, row, col int, r rune) {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return
	}
	grid[row][col] = r
}

func drawRect(grid [][]rune, rect canvas.Rect) {
	r0, c0 := toRow(rect.Y), toCol(rect.X)
	r1, c1 := toRow(rect.Y+rect.Height), toCol(rect.X+rect.Width)
	for c := c0 + 1; c < c1; c++ {
		setCell(grid, r0, c, '─')
		setCell(grid, r1, c, '─')
	}
	for r := r0 + 1; r < r1; r++ {
		setCell(grid, r, c0, '│')
		setCell(grid, r, c1, '│')
	}
	setCell(grid, r0, c0, '┌')
	setCell(grid, r0, c1, '┐')
	setCell(grid, r1, c0, '└')
	setCell(grid, r1, c1, '┘')
}

func fillRect(grid [][]rune, rect canvas.Rect, r rune) {
	for row := toRow(rect.Y); row <= toRow(rect.Y+rect.Height); row++ {
		for col := toCol(rect.X); col <= toCol(rect.X+rect.Width); col++ {
			setCell(grid, row, col, r)
		}
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
