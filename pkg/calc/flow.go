package calc

import (
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/air"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/units"
)

// velocityFpm returns the mean duct velocity in feet per minute.
func velocityFpm(cfm, areaFt2 float64) float64 {
	if areaFt2 <= 0 {
		return 0
	}
	return cfm / areaFt2
}

// reynoldsNumber computes Re = rho * V * Dh / mu with velocity in ft/s and
// hydraulic diameter in feet.
func reynoldsNumber(props air.Properties, velocityFpm, hydraulicDiameterIn float64) float64 {
	if props.ViscosityLbFtS <= 0 {
		return 0
	}
	vFps := units.FpmToFps(velocityFpm)
	dFt := units.InchesToFeet(hydraulicDiameterIn)
	return props.DensityLbFt3 * vFps * dFt / props.ViscosityLbFtS
}

// velocityPressureInWc computes the dynamic pressure rho * V^2 / (2g) and
// converts it from lbf/ft^2 to inches of water column.
func velocityPressureInWc(props air.Properties, velocityFpm float64) float64 {
	vFps := units.FpmToFps(velocityFpm)
	psf := props.DensityLbFt3 * vFps * vFps / (2 * GravityFtPerS2)
	return units.PsfToInchWC(psf)
}
