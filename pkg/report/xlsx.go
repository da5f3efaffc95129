package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/calc"
)

var summaryColumns = []string{
	"System", "Name", "Type", "Airflow (CFM)", "Subtotal (in.WC)",
	"Safety (in.WC)", "Total (in.WC)", "Total (Pa)", "Max velocity (fpm)", "Warnings",
}

// WriteXLSX renders the calculation results as a workbook: a summary sheet
// plus one duct schedule sheet per system.
func WriteXLSX(w io.Writer, projectName string, results []calc.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return fmt.Errorf("naming summary sheet: %w", err)
	}

	writeRow(f, summary, 1, []any{fmt.Sprintf("Duct static pressure: %s", projectName)})
	writeRow(f, summary, 3, toRow(summaryColumns))
	for i, res := range results {
		writeRow(f, summary, 4+i, []any{
			res.SystemID,
			res.SystemName,
			string(res.SystemType),
			res.TotalCfm,
			res.SubtotalInWc,
			res.SafetyLossInWc,
			res.TotalLossInWc,
			res.TotalLossPa,
			res.MaxVelocityFpm,
			len(res.Warnings),
		})
	}

	for _, res := range results {
		if err := writeSystemSheet(f, res); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSystemSheet(f *excelize.File, res calc.Result) error {
	sheet := sheetName(res.SystemID)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("adding sheet %s: %w", sheet, err)
	}

	writeRow(f, sheet, 1, toRow(sectionColumns))
	row := 2
	for _, sr := range res.Sections {
		writeRow(f, sheet, row, sectionRow(sr))
		row++
	}

	row++
	writeRow(f, sheet, row, []any{"Subtotal", "", "", "", "", "", res.StraightLossInWc, res.FittingsLossInWc, res.SubtotalInWc})
	row++
	writeRow(f, sheet, row, []any{fmt.Sprintf("Safety factor %.0f%%", res.SafetyFactor*100), "", "", "", "", "", "", "", res.SafetyLossInWc})
	row++
	writeRow(f, sheet, row, []any{"Total", "", "", "", "", "", "", "", res.TotalLossInWc})

	for i, warn := range res.Warnings {
		writeRow(f, sheet, row+2+i, []any{warn})
	}
	return nil
}

// writeRow fills one worksheet row left to right starting at column A.
func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		f.SetCellValue(sheet, cell, v)
	}
}

func toRow(cols []string) []any {
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}

// sheetName makes a system id safe for use as a worksheet name.
func sheetName(id string) string {
	r := strings.NewReplacer(":", "-", "\\", "-", "/", "-", "?", "-", "*", "-", "[", "(", "]", ")")
	name := r.Replace(id)
	if name == "" {
		name = "system"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
