package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yurifrl/computesales/pkg/config"
	"github.com/yurifrl/computesales/pkg/report"
	"github.com/yurifrl/computesales/pkg/service"
)

func newRootCmd(out io.Writer) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "computesales [flags] <price_catalogue> <sales_record>",
		Short: "Compute total sales from a price catalogue and a sales record",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				_ = cmd.Usage()
				return fmt.Errorf("expected 2 arguments, got %d", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration (config file + env + flag overrides)
			cfg, err := config.Build(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := log.NewWithOptions(out, log.Options{
				ReportTimestamp: true,
				Prefix:          "computesales",
				Level:           cfg.Level(),
			})

			processor := service.NewProcessor(cfg, logger, out)
			_, err = processor.Run(args[0], args[1])
			return err
		},
	}

	// Diagnostics, usage and results all go to the same stream.
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is ./computesales.yaml)")
	cmd.Flags().StringP("output", "o", report.DefaultFile, "Results file, overwritten on every run")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().Bool("debug", false, "Enable debug logging")

	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
