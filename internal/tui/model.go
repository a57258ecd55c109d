package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"rectmap/internal/enclosure"
	"rectmap/internal/geom"
)

// Options configures the viewer.
type Options struct {
	Search       enclosure.Options
	SidebarWidth int
	Log          *logrus.Logger
}

type Model struct {
	width  int
	height int

	showSidebar  bool
	helpVisible  bool
	sidebarWidth int

	zoom    float64
	offsetX int
	offsetY int

	status string
	log    *logrus.Logger

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	source string
	loop   []geom.Point
	bbox   geom.BBox
	opts   enclosure.Options
	report *enclosure.Report

	// index into report.Ranked drawn as the enclosed layer; -1 is the best one
	selected int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showLoop     bool
	showEnclosed bool
	showFree     bool
	showGrid     bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasPos bool
	hoverRow    int64
	hoverCol    int64

	// ranked candidates table
	showAttrs bool
	tbl       table.Model
}

func New(opts Options) Model {
	log := opts.Log
	if log == nil {
		log = logrus.New()
		log.Out = io.Discard
	}
	sw := opts.SidebarWidth
	if sw <= 0 {
		sw = 28
	}
	m := Model{
		showSidebar:  false,
		helpVisible:  true,
		sidebarWidth: sw,
		zoom:         1.0,
		status:       "rectmap ready",
		log:          log,
		opts:         opts.Search,
		selected:     -1,
		showLoop:     true,
		showEnclosed: true,
		showFree:     false,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Loops"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste \"col,row\" lines or a WKT POLYGON. Press Enter to analyze; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// candidates table setup (rows filled per loop)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a loop file at launch.
func NewWithPath(path string, opts Options) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

// NewWithLoop starts the viewer on an already decoded loop.
func NewWithLoop(loop []geom.Point, source string, opts Options) Model {
	m := New(opts)
	m.setLoop(loop, source)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setLoop replaces the current data and analyzes it.
func (m *Model) setLoop(loop []geom.Point, source string) {
	m.source = source
	m.loop = loop
	m.bbox = geom.Bounds(loop)
	m.report = nil
	m.selected = -1
	m.inspectPopup = ""
	// reset viewport for immediate visibility
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0

	entry := m.log.WithFields(logrus.Fields{"source": source, "vertices": len(loop)})
	rep, err := enclosure.Analyze(loop, m.opts)
	if err != nil {
		entry.WithError(err).Warn("analysis failed")
		m.status = "analysis error: " + err.Error()
		return
	}
	m.report = rep
	entry.WithFields(logrus.Fields{
		"grid":     fmt.Sprintf("%dx%d", rep.Grid.Rows().Len(), rep.Grid.Cols().Len()),
		"area":     rep.Free.Area,
		"enclosed": rep.Enclosed.Area,
	}).Info("loop analyzed")
	m.status = fmt.Sprintf("%s  vertices=%d  area=%d  enclosed=%d",
		m.sourceName(), len(loop), rep.Free.Area, rep.Enclosed.Area)
	if m.showAttrs {
		m.refreshAttrs()
	}
}

func (m Model) sourceName() string {
	if m.source == "" {
		return "<pasted>"
	}
	return filepath.Base(m.source)
}

// current is the candidate drawn as the enclosed layer.
func (m Model) current() (enclosure.Candidate, bool) {
	if m.report == nil {
		return enclosure.Candidate{}, false
	}
	if m.selected >= 0 && m.selected < len(m.report.Ranked) {
		return m.report.Ranked[m.selected], true
	}
	return m.report.Enclosed, true
}
