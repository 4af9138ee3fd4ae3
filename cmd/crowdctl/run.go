package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run dashboard cycles and print the table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := buildService(v, nil)
			if err != nil {
				return err
			}

			cycles := v.GetInt("cycles")
			interval := v.GetDuration("interval")
			out := cmd.OutOrStdout()

			for i := range cycles {
				if i > 0 && interval > 0 {
					select {
					case <-cmd.Context().Done():
						return cmd.Context().Err()
					case <-time.After(interval):
					}
				}

				snapshot, err := svc.RunCycle(cmd.Context())
				if err != nil {
					return err
				}
				if err := printSnapshot(out, snapshot); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("cycles", 1, "number of cycles to run")
	cmd.Flags().Duration("interval", 0, "wait between cycles")
	cobra.CheckErr(v.BindPFlags(cmd.Flags()))

	return cmd
}

func printSnapshot(w io.Writer, s *domain.Snapshot) error {
	fmt.Fprintf(w, "Cycle %s  %s  [%s]\n", s.CycleID, s.GeneratedAt.Format(time.RFC3339), s.Status)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ZONE\tCOUNT\tLEVEL\tTREND\tRECOMMENDATION")
	for _, row := range s.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", row.Zone, row.Count, row.LevelDisplay, row.Trend.Display(), row.Recommendation)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Total people: %d  Zones in alert: %d\n", s.TotalPeople, s.ZonesInAlert)
	fmt.Fprintln(w, s.Action)

	for _, msg := range s.Notifications {
		fmt.Fprintln(w, "  "+msg)
	}
	for _, warning := range s.Warnings {
		fmt.Fprintf(w, "  warning %s %s: %s\n", warning.Code, warning.Zone, warning.Message)
	}
	fmt.Fprintln(w)
	return nil
}
