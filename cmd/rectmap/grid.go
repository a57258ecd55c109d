package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rectmap/internal/enclosure"
)

var gridCmd = &cobra.Command{
	Use:   "grid [file]",
	Short: "Print the compressed cell classification of the loop",
	Long: `grid prints one character per compressed cell:
  #  boundary
  +  interior
  .  outside
followed by the count of each tag.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loop, _, err := readLoop(cmd, args)
		if err != nil {
			return err
		}
		g, err := enclosure.NewGrid(loop)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, line := range g.Dump() {
			fmt.Fprintln(out, line)
		}
		counts := g.Counts()
		fmt.Fprintf(out, "rows=%d cols=%d boundary=%d interior=%d outside=%d\n",
			g.Rows().Len(), g.Cols().Len(),
			counts[enclosure.Boundary], counts[enclosure.Interior], counts[enclosure.Outside])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gridCmd)
}
