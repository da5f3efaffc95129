package main

import (
	"fmt"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/internal/store"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/calc"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printSystemResult(res calc.Result) {
	fmt.Printf("%s (%s, %s)\n", res.SystemName, res.SystemID, res.SystemType)
	fmt.Printf("Design airflow %.0f CFM, air density %.4f lb/ft3 at %.0f ft / %.0f F\n\n",
		res.TotalCfm, res.Air.DensityLbFt3, res.Air.AltitudeFt, res.Air.TemperatureF)

	fmt.Printf("%-16s %8s %10s %8s %10s %8s %10s %10s %10s\n",
		"Section", "CFM", "Size", "V(fpm)", "Re", "f", "Straight", "Fittings", "Total")
	fmt.Printf("%-16s %8s %10s %8s %10s %8s %10s %10s %10s\n",
		"----------------", "--------", "----------", "--------", "----------",
		"--------", "----------", "----------", "----------")

	for _, sr := range res.Sections {
		fmt.Printf("%-16s %8.0f %10s %8.0f %10.0f %8.4f %10.4f %10.4f %10.4f\n",
			sr.SectionID, sr.AirflowCfm, sectionSize(sr), sr.VelocityFpm,
			sr.ReynoldsNumber, sr.FrictionFactor,
			sr.StraightLossInWc, sr.FittingsLossInWc, sr.TotalLossInWc)
	}

	fmt.Println()
	fmt.Printf("  Straight runs:  %10.4f in.WC\n", res.StraightLossInWc)
	fmt.Printf("  Fittings:       %10.4f in.WC\n", res.FittingsLossInWc)
	fmt.Printf("  Subtotal:       %10.4f in.WC\n", res.SubtotalInWc)
	fmt.Printf("  Safety (%.0f%%):  %10.4f in.WC\n", res.SafetyFactor*100, res.SafetyLossInWc)
	fmt.Printf("  TOTAL:          %10.4f in.WC (%.1f Pa)\n", res.TotalLossInWc, res.TotalLossPa)
	fmt.Printf("  Max velocity:   %10.0f fpm\n", res.MaxVelocityFpm)

	if len(res.Warnings) > 0 {
		fmt.Printf("\nWARNINGS (%d):\n", len(res.Warnings))
		for _, w := range res.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}

func sectionSize(sr calc.SectionResult) string {
	switch {
	case sr.EffectiveDiameterIn > 0:
		return fmt.Sprintf("%g dia", sr.EffectiveDiameterIn)
	case sr.EffectiveWidthIn > 0:
		return fmt.Sprintf("%gx%g", sr.EffectiveWidthIn, sr.EffectiveHeightIn)
	default:
		return "-"
	}
}

func printRunsTable(runs []store.Run) {
	if len(runs) == 0 {
		fmt.Println("No saved runs.")
		return
	}

	fmt.Printf("%-36s %-22s %-14s %8s %10s %9s  %s\n",
		"Run", "Project", "System", "CFM", "in.WC", "Warnings", "Saved")
	for _, r := range runs {
		fmt.Printf("%-36s %-22s %-14s %8.0f %10.4f %9d  %s\n",
			r.ID, r.ProjectName, r.SystemID, r.TotalCfm, r.TotalLossInWc,
			r.WarningCount, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

func printFittingsTable(fittings []calc.FittingSpec) {
	fmt.Printf("%-22s %-14s %8s  %s\n", "Fitting", "Method", "Value", "Description")
	fmt.Printf("%-22s %-14s %8s  %s\n",
		"----------------------", "--------------", "--------", "-----------")

	for _, f := range fittings {
		value := fmt.Sprintf("%.2f", f.CCoefficient)
		if f.Method == calc.LossFixedDrop {
			value = fmt.Sprintf("%.2f", f.FixedDropInWc)
		}
		fmt.Printf("%-22s %-14s %8s  %s\n", f.ID, f.Method, value, f.Description)
	}
}
