package calc

import (
	"math"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/units"
)

// geometry is the resolved cross-section of one duct section, after the liner
// correction. Dimensions are inches; area is square feet.
type geometry struct {
	widthIn             float64
	heightIn            float64
	diameterIn          float64
	hydraulicDiameterIn float64
	areaFt2             float64
}

// resolveGeometry subtracts twice the liner thickness from each internal
// dimension, floors the result at 1 inch, and computes hydraulic diameter and
// flow area. Oval ducts use the rectangular formulas on their bounding
// dimensions.
func resolveGeometry(sec project.Section, linerThicknessIn float64) geometry {
	reduction := 2 * linerThicknessIn

	var g geometry
	switch sec.Shape {
	case project.ShapeRound:
		d := floorDimension(sec.DiameterIn - reduction)
		g.diameterIn = d
		g.hydraulicDiameterIn = d
		g.areaFt2 = math.Pi * (d / 2) * (d / 2) / units.SquareInchesPerSquareFoot
	default:
		w := floorDimension(sec.WidthIn - reduction)
		h := floorDimension(sec.HeightIn - reduction)
		g.widthIn = w
		g.heightIn = h
		g.hydraulicDiameterIn = 2 * w * h / (w + h)
		g.areaFt2 = w * h / units.SquareInchesPerSquareFoot
	}
	return g
}

func floorDimension(d float64) float64 {
	if d < MinEffectiveDimensionIn {
		return MinEffectiveDimensionIn
	}
	return d
}
