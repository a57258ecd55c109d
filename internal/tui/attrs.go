package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the candidates table from the current report.
func (m *Model) refreshAttrs() {
	if m.report == nil || len(m.report.Ranked) == 0 {
		// Do not touch table internals here to avoid re-render during SetColumns
		m.showAttrs = false
		m.status = "no candidates for current loop"
		return
	}
	tcols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "corner A", Width: 18},
		{Title: "corner B", Width: 18},
		{Title: "area", Width: 16},
	}
	trows := make([]table.Row, 0, len(m.report.Ranked))
	for i, c := range m.report.Ranked {
		trows = append(trows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d: %v", c.I, c.A),
			fmt.Sprintf("%d: %v", c.J, c.B),
			groupDigits(c.Area),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	if m.selected >= 0 && m.selected < len(trows) {
		m.tbl.SetCursor(m.selected)
	} else {
		m.tbl.SetCursor(0)
	}
}
