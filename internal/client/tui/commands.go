package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/gateway"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/thumbnail"
)

type resumeDoneMsg struct {
	err error
}

type authDoneMsg struct {
	gen int
	err error
}

type saveDoneMsg struct {
	gen int
	box *models.BentoBox
	err error
}

type listDoneMsg struct {
	gen   int
	boxes []models.BentoBox
	err   error
}

type loadDoneMsg struct {
	gen int
	box *models.BentoBox
	err error
}

type deleteDoneMsg struct {
	gen int
	id  string
	err error
}

func (m Model) resumeCmd() tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		return resumeDoneMsg{err: sess.Resume(context.Background())}
	}
}

func (m Model) loginCmd(gen int) tea.Cmd {
	sess, email, password := m.session, m.email, m.password
	return func() tea.Msg {
		return authDoneMsg{gen: gen, err: sess.Login(context.Background(), email, password)}
	}
}

func (m Model) registerCmd(gen int) tea.Cmd {
	sess, username, email, password := m.session, m.username, m.email, m.password
	return func() tea.Msg {
		return authDoneMsg{gen: gen, err: sess.Register(context.Background(), username, email, password)}
	}
}

// saveCmd snapshots the surface on the update loop, then renders the
// thumbnail and talks to the backend off it.
func (m Model) saveCmd(gen int) tea.Cmd {
	var (
		api    = m.api
		cat    = m.cat
		snap   = m.surface.Snapshot()
		layout = m.surface.Layout()
		name   = m.nameInput
		desc   = m.boxDesc
		public = m.public
		id     = m.boxID
	)
	return func() tea.Msg {
		thumb, err := thumbnail.DataURL(snap, layout, cat, int(canvasWidth), int(canvasHeight))
		if err != nil {
			return saveDoneMsg{gen: gen, err: err}
		}
		in, err := gateway.Serialize(name, desc, snap, thumb, public)
		if err != nil {
			return saveDoneMsg{gen: gen, err: err}
		}
		box, err := api.Save(context.Background(), id, in)
		return saveDoneMsg{gen: gen, box: box, err: err}
	}
}

func (m Model) listCmd(gen int, public bool) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		var (
			boxes []models.BentoBox
			err   error
		)
		if public {
			boxes, err = api.ListPublic(context.Background())
		} else {
			boxes, err = api.ListMine(context.Background())
		}
		return listDoneMsg{gen: gen, boxes: boxes, err: err}
	}
}

func (m Model) loadCmd(gen int, id string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		box, err := api.GetBox(context.Background(), id)
		return loadDoneMsg{gen: gen, box: box, err: err}
	}
}

func (m Model) deleteCmd(gen int, id string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		return deleteDoneMsg{gen: gen, id: id, err: api.DeleteBox(context.Background(), id)}
	}
}
