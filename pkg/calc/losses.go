package calc

import (
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/units"
)

// straightLossInWc computes the Darcy-Weisbach loss f * (L/Dh) * Pv over the
// section length.
func straightLossInWc(f, lengthFt, hydraulicDiameterIn, velocityPressureInWc float64) float64 {
	dFt := units.InchesToFeet(hydraulicDiameterIn)
	if dFt <= 0 {
		return 0
	}
	return f * (lengthFt / dFt) * velocityPressureInWc
}

// fittingsLossInWc sums the loss contribution of every fitting on a section.
// Override values on the fitting instance win over the library defaults.
// Unknown fitting ids and non-positive quantities contribute nothing.
func (e *Evaluator) fittingsLossInWc(fittings []project.Fitting, velocityPressureInWc float64) float64 {
	total := 0.0
	for _, f := range fittings {
		fs, ok := e.catalog.Fitting(f.Type)
		if !ok || f.Quantity <= 0 {
			continue
		}
		qty := float64(f.Quantity)

		switch fs.Method {
		case LossFixedDrop:
			drop := fs.FixedDropInWc
			if f.FixedDropInWc != nil {
				drop = *f.FixedDropInWc
			}
			total += drop * qty
		case LossCCoefficient:
			c := fs.CCoefficient
			if f.CCoefficient != nil {
				c = *f.CCoefficient
			}
			total += c * velocityPressureInWc * qty
		}
	}
	return total
}
