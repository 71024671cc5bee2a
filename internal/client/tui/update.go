package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/gateway"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/session"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/errs"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resumeDoneMsg:
		if msg.err != nil {
			m.errMsg = friendlyError(msg.err)
		}
		if m.session.State() == session.Authenticated {
			m.mode = modeCanvas
			m.status = "welcome back, " + m.session.User().Username
		} else {
			m.mode = modeAuth
		}
		return m, nil

	case authDoneMsg:
		if m.mode != modeAuth || msg.gen != m.authGen {
			return m, nil
		}
		m.authBusy = false
		if msg.err != nil {
			m.errMsg = friendlyError(msg.err)
			return m, nil
		}
		m.mode = modeCanvas
		m.errMsg = ""
		m.password = ""
		m.status = "logged in as " + m.session.User().Username
		return m, nil

	case saveDoneMsg:
		if m.mode != modeSaveName || msg.gen != m.saveGen {
			return m, nil
		}
		m.saveBusy = false
		if msg.err != nil {
			m.errMsg = friendlyError(msg.err)
			return m, nil
		}
		m.mode = modeCanvas
		m.errMsg = ""
		m.boxID = msg.box.ID
		m.boxName = msg.box.Name
		m.status = fmt.Sprintf("saved %q", msg.box.Name)
		return m, nil

	case listDoneMsg:
		if m.mode != modeLoadList || msg.gen != m.listGen {
			return m, nil
		}
		m.listBusy = false
		if msg.err != nil {
			m.errMsg = friendlyError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.boxes = msg.boxes
		if m.listIndex >= len(m.boxes) {
			m.listIndex = 0
		}
		return m, nil

	case loadDoneMsg:
		if m.mode != modeLoadList || msg.gen != m.listGen {
			return m, nil
		}
		m.listBusy = false
		if msg.err != nil {
			m.errMsg = friendlyError(msg.err)
			return m, nil
		}
		return m.applyLoadedBox(msg.box), nil

	case deleteDoneMsg:
		if m.mode != modeLoadList || msg.gen != m.listGen {
			return m, nil
		}
		m.listBusy = false
		if msg.err != nil {
			m.errMsg = friendlyError(msg.err)
			return m, nil
		}
		for i, box := range m.boxes {
			if box.ID == msg.id {
				m.boxes = append(m.boxes[:i], m.boxes[i+1:]...)
				break
			}
		}
		if m.listIndex >= len(m.boxes) && m.listIndex > 0 {
			m.listIndex--
		}
		if m.boxID == msg.id {
			m.boxID = ""
		}
		m.status = "bento box deleted"
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAuth:
			return m.updateAuth(msg)
		case modeCanvas:
			return m.updateCanvas(msg)
		case modeCatalog:
			return m.updateCatalog(msg)
		case modeSaveName:
			return m.updateSaveName(msg)
		case modeLoadList:
			return m.updateLoadList(msg)
		}
	}
	return m, nil
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		if !m.authBusy {
			m.registering = !m.registering
			m.authField = 0
			m.errMsg = ""
		}
		return m, nil
	case "tab", "down":
		m.authField = (m.authField + 1) % m.authFieldCount()
		return m, nil
	case "shift+tab", "up":
		m.authField = (m.authField + m.authFieldCount() - 1) % m.authFieldCount()
		return m, nil
	case "enter":
		if m.authBusy {
			return m, nil
		}
		m.authBusy = true
		m.errMsg = ""
		m.authGen++
		if m.registering {
			return m, m.registerCmd(m.authGen)
		}
		return m, m.loginCmd(m.authGen)
	case "backspace":
		field := m.currentAuthField()
		if len(*field) > 0 {
			runes := []rune(*field)
			*field = string(runes[:len(runes)-1])
		}
		return m, nil
	default:
		if msg.Type == tea.KeyRunes && !m.authBusy {
			field := m.currentAuthField()
			*field += string(msg.Runes)
		}
		return m, nil
	}
}

func (m *Model) authFieldCount() int {
	if m.registering {
		return 3
	}
	return 2
}

func (m *Model) currentAuthField() *string {
	if m.registering {
		switch m.authField {
		case 0:
			return &m.username
		case 1:
			return &m.email
		default:
			return &m.password
		}
	}
	if m.authField == 0 {
		return &m.email
	}
	return &m.password
}

func (m Model) updateCanvas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "right", "up", "down":
		if p := m.selectedPlacement(); p != nil {
			pos := p.Position
			switch msg.String() {
			case "left":
				pos.X -= cellW
			case "right":
				pos.X += cellW
			case "up":
				pos.Y -= cellH
			case "down":
				pos.Y += cellH
			}
			m.surface.MovePlacement(p.ID, pos)
			m.dragging = true
		}
		return m, nil

	case "esc", " ":
		if m.dragging {
			m.surface.EndGesture()
			m.hist.Record(m.surface.Snapshot())
			m.dragging = false
		}
		m.errMsg = ""
		return m, nil

	case "tab":
		m.cycleSelection()
		return m, nil

	case "a":
		m.finishGesture()
		m.mode = modeCatalog
		return m, nil

	case "d", "delete", "backspace":
		removed := false
		for _, p := range m.surface.Placements() {
			if p.Selected {
				m.surface.RemovePlacement(p.ID)
				removed = true
			}
		}
		if removed {
			m.dragging = false
			m.hist.Record(m.surface.Snapshot())
		}
		return m, nil

	case "u":
		m.finishGesture()
		if snap, ok := m.hist.Undo(); ok {
			m.surface.Restore(snap)
		}
		return m, nil

	case "ctrl+r":
		m.finishGesture()
		if snap, ok := m.hist.Redo(); ok {
			m.surface.Restore(snap)
		}
		return m, nil

	case "ctrl+a":
		m.surface.SelectAll()
		return m, nil

	case "n":
		m.finishGesture()
		m.surface.Clear()
		m.hist.Record(m.surface.Snapshot())
		m.boxID = ""
		m.boxName = ""
		m.boxDesc = ""
		m.public = false
		m.status = "new bento box"
		return m, nil

	case "s":
		m.finishGesture()
		m.nameInput = m.boxName
		m.mode = modeSaveName
		return m, nil

	case "l":
		m.finishGesture()
		m.mode = modeLoadList
		m.listPublic = false
		m.listIndex = 0
		m.listBusy = true
		m.listGen++
		return m, m.listCmd(m.listGen, false)

	case "y":
		if m.boxID != "" {
			if err := clipboard.WriteAll(m.boxID); err != nil {
				m.errMsg = "clipboard unavailable"
			} else {
				m.status = "bento box id copied"
			}
		}
		return m, nil

	case "ctrl+l":
		m.session.Logout()
		m.mode = modeAuth
		m.authField = 0
		m.password = ""
		m.status = ""
		m.errMsg = ""
		return m, nil
	}
	return m, nil
}

// finishGesture commits a drag in progress before switching context, so a
// mode change never loses a pending history entry.
func (m *Model) finishGesture() {
	if m.dragging {
		m.surface.EndGesture()
		m.hist.Record(m.surface.Snapshot())
		m.dragging = false
	}
}

func (m *Model) cycleSelection() {
	placements := m.surface.Placements()
	if len(placements) == 0 {
		return
	}
	next := 0
	for i, p := range placements {
		if p.Selected {
			next = (i + 1) % len(placements)
			break
		}
	}
	m.surface.Select(placements[next].ID)
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "a", "q":
		m.mode = modeCanvas
		return m, nil
	case "up", "k":
		if m.catIndex > 0 {
			m.catIndex--
		}
		return m, nil
	case "down", "j":
		if m.catIndex < m.cat.Len()-1 {
			m.catIndex++
		}
		return m, nil
	case "enter":
		ing := m.cat.All()[m.catIndex]
		if _, err := m.surface.AddPlacement(ing.ID, models.Point{X: canvasWidth / 2, Y: canvasHeight / 2}); err != nil {
			m.errMsg = friendlyError(err)
			return m, nil
		}
		m.hist.Record(m.surface.Snapshot())
		m.mode = modeCanvas
		m.status = "added " + ing.Name
		return m, nil
	}
	return m, nil
}

func (m Model) updateSaveName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeCanvas
		m.errMsg = ""
		return m, nil
	case "enter":
		if m.saveBusy {
			return m, nil
		}
		m.saveBusy = true
		m.errMsg = ""
		m.saveGen++
		return m, m.saveCmd(m.saveGen)
	case "backspace":
		if len(m.nameInput) > 0 {
			runes := []rune(m.nameInput)
			m.nameInput = string(runes[:len(runes)-1])
		}
		return m, nil
	default:
		if msg.Type == tea.KeyRunes && !m.saveBusy {
			m.nameInput += string(msg.Runes)
		}
		return m, nil
	}
}

func (m Model) updateLoadList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.mode = modeCanvas
		m.errMsg = ""
		return m, nil
	case "up", "k":
		if m.listIndex > 0 {
			m.listIndex--
		}
		return m, nil
	case "down", "j":
		if m.listIndex < len(m.boxes)-1 {
			m.listIndex++
		}
		return m, nil
	case "p":
		if m.listBusy {
			return m, nil
		}
		m.listPublic = !m.listPublic
		m.listIndex = 0
		m.listBusy = true
		m.listGen++
		return m, m.listCmd(m.listGen, m.listPublic)
	case "enter":
		if m.listBusy || len(m.boxes) == 0 {
			return m, nil
		}
		m.listBusy = true
		m.listGen++
		return m, m.loadCmd(m.listGen, m.boxes[m.listIndex].ID)
	case "d":
		if m.listBusy || m.listPublic || len(m.boxes) == 0 {
			return m, nil
		}
		m.listBusy = true
		m.listGen++
		return m, m.deleteCmd(m.listGen, m.boxes[m.listIndex].ID)
	case "y":
		if len(m.boxes) > 0 {
			if err := clipboard.WriteAll(m.boxes[m.listIndex].ID); err != nil {
				m.errMsg = "clipboard unavailable"
			} else {
				m.status = "bento box id copied"
			}
		}
		return m, nil
	}
	return m, nil
}

// applyLoadedBox replaces the canvas with a fetched record.
func (m Model) applyLoadedBox(box *models.BentoBox) Model {
	snap, skipped := gateway.Deserialize(m.cat, box.Ingredients)
	m.surface.Restore(snap)
	m.hist.Record(m.surface.Snapshot())
	m.dragging = false
	m.boxID = box.ID
	m.boxName = box.Name
	m.boxDesc = box.Description
	m.public = box.IsPublic
	m.mode = modeCanvas
	if skipped > 0 {
		m.status = fmt.Sprintf("loaded %q (%d unknown ingredients skipped)", box.Name, skipped)
	} else {
		m.status = fmt.Sprintf("loaded %q", box.Name)
	}
	return m
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, errs.ErrNetwork):
		return "cannot reach the server"
	case errors.Is(err, errs.ErrUnauthorized):
		return "invalid credentials"
	case errors.Is(err, errs.ErrForbidden):
		return "access denied"
	case errors.Is(err, errs.ErrNotFound):
		return "not found"
	default:
		return err.Error()
	}
}
