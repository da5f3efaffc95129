package report

import (
	"fmt"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/calc"
)

// sectionColumns is the duct schedule header shared by the PDF and XLSX
// writers.
var sectionColumns = []string{
	"Section", "Airflow (CFM)", "Size (in)", "Velocity (fpm)",
	"Reynolds", "Friction f", "Straight (in.WC)", "Fittings (in.WC)", "Total (in.WC)",
}

// sizeLabel renders the effective cross-section of a section result.
func sizeLabel(sr calc.SectionResult) string {
	switch {
	case sr.EffectiveDiameterIn > 0:
		return fmt.Sprintf("%g dia", sr.EffectiveDiameterIn)
	case sr.EffectiveWidthIn > 0:
		return fmt.Sprintf("%gx%g", sr.EffectiveWidthIn, sr.EffectiveHeightIn)
	default:
		return "-"
	}
}

// sectionRow renders one duct schedule row in the column order of
// sectionColumns.
func sectionRow(sr calc.SectionResult) []any {
	return []any{
		sr.SectionID,
		sr.AirflowCfm,
		sizeLabel(sr),
		sr.VelocityFpm,
		sr.ReynoldsNumber,
		sr.FrictionFactor,
		sr.StraightLossInWc,
		sr.FittingsLossInWc,
		sr.TotalLossInWc,
	}
}
