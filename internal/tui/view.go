package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 1
	footerHeight = 2
)

type layout struct {
	sidebarW, contentW, contentH int
	mapX, mapY, mapW, mapH       int
}

// layout computes the screen regions; View and mouse handling must agree on it.
func (m Model) layout() layout {
	var ly layout
	if m.showSidebar {
		ly.sidebarW = m.sidebarWidth
	}
	ly.contentH = max(4, m.height-headerHeight-footerHeight)
	ly.contentW = max(10, m.width)
	ly.mapW = max(10, ly.contentW-ly.sidebarW-1)
	ly.mapH = ly.contentH
	ly.mapX = ly.sidebarW
	if m.showSidebar {
		ly.mapX++
	}
	ly.mapY = headerHeight
	return ly
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	ly := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(m.sidebarWidth-2, ly.contentH-2)
	}

	// Header
	header := titleStyle.Render(" rectmap ─ rectilinear loop explorer ")
	header = lipgloss.NewStyle().Width(ly.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(ly.sidebarW).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showAttrs:
		// candidates table centered in the map area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(ly.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(ly.mapH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(ly.mapW, ly.mapH, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(ly.mapW)
		m.ta.SetHeight(min(ly.mapH, 12))
		mapView = lipgloss.NewStyle().Width(ly.mapW).Height(ly.mapH).Render(m.ta.View())
	case m.showGrid:
		mapView = m.renderGrid(ly.mapW, ly.mapH)
	default:
		// plain canvas: no border, no background highlight
		mapView = lipgloss.NewStyle().Width(ly.mapW).Height(ly.mapH).Render(m.renderCanvas(ly.mapW, ly.mapH))
	}

	// inspect popup box (center-left overlay)
	popup := ""
	if m.inspectPopup != "" && !m.showAttrs {
		maxPopupW := max(20, min(56, ly.contentW/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(ly.contentW, ly.contentH, lipgloss.Left, lipgloss.Center, box)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasPos {
		coords = dimStyle.Render(fmt.Sprintf("  row=%d col=%d  ", m.hoverRow, m.hoverCol))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, ly.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(ly.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(ly.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab sidebar",
		"Enter open",
		"p paste",
		"1/2/3 layers",
		"g grid",
		"a candidates",
		"i inspect",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
