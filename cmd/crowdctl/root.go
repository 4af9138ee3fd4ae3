package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/config"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/observability/logging"
)

const envPrefix = "CROWD"

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "crowdctl",
		Short:         "Headless campus crowd dashboard",
		Long:          `crowdctl runs dashboard cycles without the HTTP server and prints or exports the results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initViper(v, cfgFile); err != nil {
				return err
			}
			slog.SetDefault(logging.New(logging.Config{
				Service: logging.ServiceInfo{Name: "crowdctl"},
				Level:   logging.ParseLevel(v.GetString("log-level")),
				Output:  cmd.ErrOrStderr(),
			}))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml)")
	flags.String("zones-file", "", "zone registry yaml file (default: built-in campus zones)")
	flags.Int("threshold-high", config.DefaultHighThreshold, "count above which a zone is High")
	flags.Int("threshold-medium", config.DefaultMediumThreshold, "count above which a zone is Medium")
	flags.Int("reading-min", 40, "minimum simulated reading")
	flags.Int("reading-max", 350, "maximum simulated reading")
	flags.Int64("seed", 0, "reading seed (0 seeds from the clock)")
	flags.Int("feed-size", 6, "notifications shown per cycle")
	flags.Bool("notifications", true, "record notifications")
	flags.String("log-level", "warn", "log level")

	if err := v.BindPFlags(flags); err != nil {
		cobra.CheckErr(err)
	}

	root.AddCommand(newRunCmd(v), newExportCmd(v))
	return root
}

func initViper(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}

	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", cfgFile, err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	return nil
}
