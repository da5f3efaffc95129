package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:   "ductsizer",
		Short: "Duct static pressure calculation engine",
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a ductsizer.yaml config file")

	rootCmd.AddCommand(solveCmd(&cfgPath))
	rootCmd.AddCommand(validateCmd(&cfgPath))
	rootCmd.AddCommand(reportCmd(&cfgPath))
	rootCmd.AddCommand(historyCmd(&cfgPath))
	rootCmd.AddCommand(serveCmd(&cfgPath))
	rootCmd.AddCommand(fittingsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveCmd(cfgPath *string) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "solve [project-path]",
		Short: "Evaluate static pressure for every system and emit JSON results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			return runSolve(cfg, projectDir(cfg, args), save)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "save results to the run history database")
	return cmd
}

func validateCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a duct project without solving it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			return runValidate(projectDir(cfg, args))
		},
	}
}

func reportCmd(cfgPath *string) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "report [project-path]",
		Short: "Solve the project and render a report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			return runReport(cfg, projectDir(cfg, args), format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "report format: text, pdf, or xlsx (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for pdf/xlsx reports")
	return cmd
}

func historyCmd(cfgPath *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List saved runs, or show one run in full",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}

			runID := ""
			if len(args) > 0 {
				runID = args[0]
			}
			return runHistory(cfg, runID, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to list")
	return cmd
}

func serveCmd(cfgPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with live re-solve on project edits",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			return runServe(projectDir(cfg, args), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

func fittingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fittings",
		Short: "List the standard fitting loss library",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runFittings()
		},
	}
}
