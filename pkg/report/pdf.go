package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/calc"
)

// Column widths in mm for the landscape A4 duct schedule.
var pdfColWidths = []float64{42, 26, 26, 30, 28, 24, 32, 32, 32}

// WritePDF renders the calculation results as a PDF document.
func WritePDF(w io.Writer, projectName string, results []calc.Result) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Duct Static Pressure Report")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", projectName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	for _, res := range results {
		writeSystemPDF(pdf, res)
	}

	return pdf.Output(w)
}

func writeSystemPDF(pdf *gofpdf.Fpdf, res calc.Result) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("%s (%s, %s)", res.SystemName, res.SystemID, res.SystemType))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Design airflow %.0f CFM, air density %.4f lb/ft3 at %.0f ft / %.0f F",
		res.TotalCfm, res.Air.DensityLbFt3, res.Air.AltitudeFt, res.Air.TemperatureF))
	pdf.Ln(7)

	// Duct schedule table.
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range sectionColumns {
		pdf.CellFormat(pdfColWidths[i], 6, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, sr := range res.Sections {
		cells := []string{
			sr.SectionID,
			fmt.Sprintf("%.0f", sr.AirflowCfm),
			sizeLabel(sr),
			fmt.Sprintf("%.0f", sr.VelocityFpm),
			fmt.Sprintf("%.0f", sr.ReynoldsNumber),
			fmt.Sprintf("%.4f", sr.FrictionFactor),
			fmt.Sprintf("%.4f", sr.StraightLossInWc),
			fmt.Sprintf("%.4f", sr.FittingsLossInWc),
			fmt.Sprintf("%.4f", sr.TotalLossInWc),
		}
		for i, cell := range cells {
			align := "R"
			if i == 0 || i == 2 {
				align = "L"
			}
			pdf.CellFormat(pdfColWidths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Subtotal %.4f in.WC  +  safety %.0f%% (%.4f in.WC)",
		res.SubtotalInWc, res.SafetyFactor*100, res.SafetyLossInWc))
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total system loss %.4f in.WC (%.1f Pa), max velocity %.0f fpm",
		res.TotalLossInWc, res.TotalLossPa, res.MaxVelocityFpm))
	pdf.Ln(7)

	if len(res.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 5, fmt.Sprintf("Warnings (%d)", len(res.Warnings)))
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "", 9)
		for _, warn := range res.Warnings {
			pdf.MultiCell(0, 4.5, "- "+warn, "", "L", false)
		}
	}
	pdf.Ln(6)
}
