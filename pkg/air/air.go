package air

import "math"

// Standard-air reference values at sea level and 70°F.
const (
	StandardDensityLbFt3    = 0.075   // lb/ft³
	StandardViscosityLbFtS  = 1.23e-5 // lb/(ft·s)
	StandardSpecificHeatBtu = 0.240   // Btu/(lb·°F)

	// rankineOffset converts °F to °R.
	rankineOffset = 459.67

	// standardTempR is the reference temperature (70°F) in °R.
	standardTempR = 70.0 + rankineOffset

	// Standard-atmosphere pressure-ratio model coefficients.
	lapseCoefficient = 6.8754e-6 // per foot of altitude
	lapseExponent    = 5.2559

	// sutherlandR is Sutherland's constant for air in °R.
	sutherlandR = 198.72
)

// Properties holds the derived air properties for one evaluation.
type Properties struct {
	AltitudeFt      float64 `json:"altitude_ft" yaml:"altitude_ft"`
	TemperatureF    float64 `json:"temperature_f" yaml:"temperature_f"`
	DensityLbFt3    float64 `json:"density_lb_ft3" yaml:"density_lb_ft3"`
	ViscosityLbFtS  float64 `json:"viscosity_lb_ft_s" yaml:"viscosity_lb_ft_s"`
	SpecificHeatBtu float64 `json:"specific_heat_btu_lb_f" yaml:"specific_heat_btu_lb_f"`
}

// PropertiesAt computes air properties for the given altitude (ft above sea
// level) and dry-bulb temperature (°F). At sea level and 70°F it returns the
// standard values exactly.
func PropertiesAt(altitudeFt, temperatureF float64) Properties {
	tempR := temperatureF + rankineOffset
	if tempR < 1 {
		tempR = 1
	}

	return Properties{
		AltitudeFt:      altitudeFt,
		TemperatureF:    temperatureF,
		DensityLbFt3:    StandardDensityLbFt3 * pressureRatio(altitudeFt) * (standardTempR / tempR),
		ViscosityLbFtS:  viscosityAt(tempR),
		SpecificHeatBtu: StandardSpecificHeatBtu,
	}
}

// pressureRatio is the standard-atmosphere ratio of ambient pressure to
// sea-level pressure at the given altitude.
func pressureRatio(altitudeFt float64) float64 {
	base := 1.0 - lapseCoefficient*altitudeFt
	if base <= 0 {
		return 0
	}
	return math.Pow(base, lapseExponent)
}

// viscosityAt applies Sutherland's law, anchored so that 70°F yields the
// standard viscosity. Altitude does not affect dynamic viscosity.
func viscosityAt(tempR float64) float64 {
	ratio := tempR / standardTempR
	return StandardViscosityLbFtS * math.Pow(ratio, 1.5) *
		(standardTempR + sutherlandR) / (tempR + sutherlandR)
}
