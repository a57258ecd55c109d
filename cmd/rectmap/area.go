package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rectmap/internal/enclosure"
)

var top int

var areaCmd = &cobra.Command{
	Use:   "area [file]",
	Short: "Print the largest rectangle area over all vertex pairs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loop, source, err := readLoop(cmd, args)
		if err != nil {
			return err
		}
		if err := enclosure.CheckLoop(loop); err != nil {
			return err
		}
		start := time.Now()
		c, err := enclosure.Search{Workers: cfg.Search.Workers}.Largest(loop)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"source":   source,
			"vertices": len(loop),
			"pair":     fmt.Sprintf("%d,%d", c.I, c.J),
			"elapsed":  time.Since(start),
		}).Debug("largest rectangle")
		fmt.Fprintln(cmd.OutOrStdout(), c.Area)
		return nil
	},
}

var enclosedCmd = &cobra.Command{
	Use:   "enclosed [file]",
	Short: "Print the largest rectangle area that stays inside the loop",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loop, source, err := readLoop(cmd, args)
		if err != nil {
			return err
		}
		start := time.Now()
		g, err := enclosure.NewGrid(loop)
		if err != nil {
			return err
		}
		s := enclosure.Search{Workers: cfg.Search.Workers}
		c, err := s.Largest(loop, g.Encloses)
		if err != nil {
			return err
		}
		counts := g.Counts()
		log.WithFields(logrus.Fields{
			"source":   source,
			"vertices": len(loop),
			"grid":     fmt.Sprintf("%dx%d", g.Rows().Len(), g.Cols().Len()),
			"boundary": counts[enclosure.Boundary],
			"interior": counts[enclosure.Interior],
			"outside":  counts[enclosure.Outside],
			"elapsed":  time.Since(start),
		}).Debug("largest enclosed rectangle")

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, c.Area)
		if top <= 0 {
			return nil
		}
		ranked, err := s.Rank(loop, top, g.Encloses)
		if err != nil {
			return err
		}
		for i, r := range ranked {
			fmt.Fprintf(out, "%d. %d:%v %d:%v %d\n", i+1, r.I, r.A, r.J, r.B, r.Area)
		}
		return nil
	},
}

func init() {
	enclosedCmd.Flags().IntVar(&top, "top", 0, "also list the N best enclosed candidates")
	rootCmd.AddCommand(areaCmd, enclosedCmd)
}
