package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"rectmap/internal/geom"
)

var wktPrefixes = []string{"POLYGON", "LINESTRING", "MULTIPOINT"}

// parsePasted accepts WKT or "col,row" lines; ';' also separates points.
func parsePasted(s string) ([]geom.Point, error) {
	up := strings.ToUpper(s)
	for _, p := range wktPrefixes {
		if strings.HasPrefix(up, p) {
			return geom.ParseWKT(s)
		}
	}
	return geom.ParseLoopString(strings.ReplaceAll(s, ";", "\n"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(m.sidebarWidth-2, m.layout().contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showAttrs {
			switch msg.String() {
			case "esc", "a":
				m.showAttrs = false
				return m, nil
			case "enter":
				m.selected = m.tbl.Cursor()
				m.showAttrs = false
				if c, ok := m.current(); ok {
					m.status = fmt.Sprintf("candidate #%d  %v-%v  area=%s", m.selected+1, c.A, c.B, groupDigits(c.Area))
				}
				return m, nil
			case "up", "down", "k", "j", "pgup", "pgdown", "home", "end":
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showLoop = !m.showLoop
			m.status = fmt.Sprintf("loop: %v", m.showLoop)
		case "2":
			m.showEnclosed = !m.showEnclosed
			m.status = fmt.Sprintf("enclosed: %v", m.showEnclosed)
		case "3":
			m.showFree = !m.showFree
			m.status = fmt.Sprintf("largest: %v", m.showFree)
		case "l":
			// toggle all layers
			all := m.showLoop && m.showEnclosed && m.showFree
			m.showLoop = !all
			m.showEnclosed = !all
			m.showFree = !all
			m.status = fmt.Sprintf("layers: loop=%v enclosed=%v largest=%v", m.showLoop, m.showEnclosed, m.showFree)
		case "g":
			m.showGrid = !m.showGrid
			m.status = fmt.Sprintf("grid: %v", m.showGrid)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(m.sidebarWidth-2, m.layout().contentH-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = true
			m.refreshAttrs()
			return m, nil
		case "i":
			ly := m.layout()
			m.inspectPopup = m.inspect(ly.mapW, ly.mapH)
			m.status = "inspect popup"
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.status = "view mode"
		m.ta.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		loop, err := parsePasted(text)
		if err != nil {
			m.status = "paste error: " + err.Error()
			return m, nil
		}
		m.pasteMode = false
		m.ta.Blur()
		m.setLoop(loop, "")
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// hover tracks the mouse over the map area and snaps the marker to the
// nearest loop vertex.
func (m *Model) hover(x, y int) {
	ly := m.layout()
	if x < ly.mapX || x >= ly.mapX+ly.mapW || y < ly.mapY || y >= ly.mapY+ly.mapH {
		m.hovering = false
		m.hoverHasPos = false
		return
	}
	m.hovering = true
	m.hoverCellX = x - ly.mapX
	m.hoverCellY = y - ly.mapY
	m.hoverRow, m.hoverCol, m.hoverHasPos = m.cellToPoint(m.hoverCellX, m.hoverCellY, ly.mapW, ly.mapH)

	hx, hy := m.hoverCellX*2, m.hoverCellY*4
	m.hoverMicX, m.hoverMicY = hx, hy
	if _, vx, vy, ok := m.nearestVertex(hx, hy, ly.mapW, ly.mapH); ok {
		m.hoverMicX, m.hoverMicY = vx, vy
	}
}
