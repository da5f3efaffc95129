package calc

import "math"

// frictionFactor returns the Darcy friction factor for the given Reynolds
// number, absolute roughness (ft), and hydraulic diameter (ft). Laminar flow
// uses f = 64/Re; turbulent flow uses the Swamee-Jain explicit approximation
// to Colebrook-White:
//
//	f = 0.25 / [log10((eps/D)/3.7 + 5.74/Re^0.9)]^2
func frictionFactor(re, roughnessFt, hydraulicDiameterFt float64) float64 {
	if re <= 0 || hydraulicDiameterFt <= 0 {
		return 0
	}
	if re < LaminarReLimit {
		return 64 / re
	}
	relative := roughnessFt / hydraulicDiameterFt
	logTerm := math.Log10(relative/3.7 + 5.74/math.Pow(re, 0.9))
	return 0.25 / (logTerm * logTerm)
}
