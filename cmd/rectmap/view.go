package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rectmap/internal/enclosure"
	"rectmap/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Explore a loop and its rectangles in the terminal",
	Long: `view opens the terminal viewer. With a file argument the loop is loaded
at launch; otherwise loop files in the current directory can be picked from
the sidebar (Tab) or pasted (p).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// the alt screen owns the terminal
		if cfg.Logging.Path == "" {
			log.SetOutput(io.Discard)
		}
		opts := tui.Options{
			Search:       enclosure.Options{Workers: cfg.Search.Workers, Top: cfg.Search.Top},
			SidebarWidth: cfg.View.SidebarWidth,
			Log:          log,
		}
		var m tea.Model
		if len(args) > 0 {
			m = tui.NewWithPath(args[0], opts)
		} else {
			m = tui.New(opts)
		}
		_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
