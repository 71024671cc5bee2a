// Package tui is the terminal editor: a catalog panel, the two-compartment
// canvas, undo/redo, and save/load against the backend.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/canvas"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/catalog"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/gateway"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/session"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/history"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

type mode int

const (
	modeAuth mode = iota
	modeCanvas
	modeCatalog
	modeSaveName
	modeLoadList
)

// Canvas dimensions match the editor the records were designed for: an
// 800x600 space with the container at (100,100) sized 600x400.
const (
	canvasWidth  = 800.0
	canvasHeight = 600.0
	containerX   = 100.0
	containerY   = 100.0
	containerW   = 600.0
	containerH   = 400.0

	// One terminal cell covers 10x20 canvas units, so arrow keys move a
	// placement exactly one cell.
	cellW = 10.0
	cellH = 20.0
)

type Model struct {
	cat     *catalog.Catalog
	surface *canvas.Surface
	hist    *history.Stack
	api     *gateway.Client
	session *session.Manager

	mode   mode
	width  int
	height int

	dragging bool

	// auth panel
	registering bool
	authField   int
	username    string
	email       string
	password    string
	authBusy    bool
	authGen     int

	// catalog panel
	catIndex int

	// save prompt
	nameInput string
	saveBusy  bool
	saveGen   int

	// load list
	boxes      []models.BentoBox
	listPublic bool
	listIndex  int
	listBusy   bool
	listGen    int

	// record currently open on the canvas, empty id means unsaved
	boxID   string
	boxName string
	boxDesc string
	public  bool

	status string
	errMsg string
}

func New(cat *catalog.Catalog, api *gateway.Client, sess *session.Manager) Model {
	layout := canvas.NewLayout(containerX, containerY, containerW, containerH)
	surface := canvas.NewSurface(cat, layout)
	hist := history.New()
	hist.Record(surface.Snapshot())

	return Model{
		cat:     cat,
		surface: surface,
		hist:    hist,
		api:     api,
		session: sess,
		mode:    modeAuth,
	}
}

func (m Model) Init() tea.Cmd {
	return m.resumeCmd()
}

// selectedPlacement returns the first selected placement in z-order, or nil.
func (m Model) selectedPlacement() *canvas.Placement {
	for _, p := range m.surface.Placements() {
		if p.Selected {
			return p
		}
	}
	return nil
}

// highlightedCompartment is the compartment any placement is currently over
// mid-drag, or "" when none.
func (m Model) highlightedCompartment() canvas.CompartmentID {
	for _, p := range m.surface.Placements() {
		if p.Highlight != "" {
			return p.Highlight
		}
	}
	return ""
}
