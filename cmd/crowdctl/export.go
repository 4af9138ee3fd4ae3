package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/refresh"
)

func newExportCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run cycles back to back and write snapshots as JSON lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := buildService(v, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path := v.GetString("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			return exportCycles(cmd, svc, v.GetInt("export-cycles"), out)
		},
	}

	cmd.Flags().Int("export-cycles", 100, "number of cycles to export")
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	cobra.CheckErr(v.BindPFlags(cmd.Flags()))

	return cmd
}

func exportCycles(cmd *cobra.Command, svc refresh.Cycler, cycles int, out io.Writer) error {
	bar := progressbar.NewOptions(cycles,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("exporting cycles"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	enc := json.NewEncoder(out)
	for range cycles {
		snapshot, err := svc.RunCycle(cmd.Context())
		if err != nil {
			return err
		}
		if err := enc.Encode(snapshot); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		_ = bar.Add(1)
	}

	return bar.Finish()
}
