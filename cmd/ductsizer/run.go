package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/internal/config"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/internal/server"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/internal/store"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/calc"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/library"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/report"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/validation"
)

// loadConfig loads tool configuration and applies its logging settings.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	initLogging(cfg.Log)
	return cfg, nil
}

func initLogging(lc config.LogConfig) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(lc.Format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	}
}

// projectDir picks the project directory from the args or the config default.
func projectDir(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.ProjectDir
}

// loadAndValidate loads the project and runs schema validation.
func loadAndValidate(projectPath string) (*project.Project, *validation.Report, error) {
	proj, err := project.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	schemaReport := validation.ValidateSchema(proj)
	return proj, schemaReport, nil
}

// solveSystems evaluates every system concurrently, preserving project order.
func solveSystems(proj *project.Project) ([]calc.Result, error) {
	ev := calc.NewEvaluator(library.Standard(), nil)
	results := make([]calc.Result, len(proj.Systems))

	var g errgroup.Group
	for i, sys := range proj.Systems {
		i, sys := i, sys
		g.Go(func() error {
			results[i] = ev.EvaluateSystem(sys)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func runValidate(projectPath string) error {
	proj, fullReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	fullReport.Merge(validation.ValidateDesign(proj))
	printValidationReport(fullReport)

	if !fullReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runSolve(cfg *config.Config, projectPath string, save bool) error {
	proj, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("project has validation errors")
	}

	schemaReport.Merge(validation.ValidateDesign(proj))

	results, err := solveSystems(proj)
	if err != nil {
		return err
	}

	if save {
		if err := saveResults(cfg, proj.Name, results); err != nil {
			return err
		}
	}

	output := map[string]any{
		"project":    proj.Name,
		"validation": schemaReport,
		"results":    results,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func saveResults(cfg *config.Config, projectName string, results []calc.Result) error {
	st, err := store.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer st.Close()

	for _, res := range results {
		id, err := st.SaveResult(projectName, res)
		if err != nil {
			return fmt.Errorf("saving run for %s: %w", res.SystemID, err)
		}
		log.WithFields(log.Fields{
			"run_id": id,
			"system": res.SystemID,
		}).Info("saved run")
	}
	return nil
}

func runReport(cfg *config.Config, projectPath, format, output string) error {
	proj, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("project has validation errors; fix before reporting")
	}

	results, err := solveSystems(proj)
	if err != nil {
		return err
	}

	if format == "" {
		format = cfg.Report.Format
	}
	format = strings.ToLower(format)

	switch format {
	case "text":
		fmt.Printf("Duct static pressure: %s\n\n", proj.Name)
		for _, res := range results {
			printSystemResult(res)
			fmt.Println()
		}
		return nil

	case "pdf", "xlsx":
		path := output
		if path == "" {
			path = filepath.Join(cfg.Report.OutputDir, "ductwork_report."+format)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()

		if format == "pdf" {
			err = report.WritePDF(f, proj.Name, results)
		} else {
			err = report.WriteXLSX(f, proj.Name, results)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Report written to %s\n", path)
		return nil

	default:
		return fmt.Errorf("unknown report format: %s (must be text, pdf, or xlsx)", format)
	}
}

func runHistory(cfg *config.Config, runID string, limit int) error {
	st, err := store.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if runID != "" {
		sr, err := st.GetRun(runID)
		if err != nil {
			return err
		}

		fmt.Printf("Run %s (%s) saved %s\n\n",
			sr.ID, sr.ProjectName, sr.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		printSystemResult(sr.Result)
		return nil
	}

	runs, err := st.ListRuns(limit)
	if err != nil {
		return err
	}
	printRunsTable(runs)
	return nil
}

func runServe(projectPath, addr string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(projectPath, addr)
	return srv.Start(ctx)
}

func runFittings() error {
	printFittingsTable(library.Standard().Fittings())
	return nil
}
