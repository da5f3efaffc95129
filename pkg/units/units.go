package units

// Conversion constants.
const (
	InchesPerFoot             = 12.0
	SquareInchesPerSquareFoot = 144.0
	SecondsPerMinute          = 60.0

	// PsfPerInchWC converts lbf/ft² to inches of water column.
	PsfPerInchWC = 5.2

	// PascalsPerInchWC is the SI equivalent of one inch of water column.
	PascalsPerInchWC = 248.84
)

// InchesToFeet converts a length in inches to feet.
func InchesToFeet(in float64) float64 {
	return in / InchesPerFoot
}

// FeetToInches converts a length in feet to inches.
func FeetToInches(ft float64) float64 {
	return ft * InchesPerFoot
}

// FpmToFps converts a velocity from feet per minute to feet per second.
func FpmToFps(v float64) float64 {
	return v / SecondsPerMinute
}

// PsfToInchWC converts a pressure from lbf/ft² to inches of water column.
func PsfToInchWC(p float64) float64 {
	return p / PsfPerInchWC
}

// InchWCToPa converts a pressure from inches of water column to pascals.
func InchWCToPa(p float64) float64 {
	return p * PascalsPerInchWC
}

// PaToInchWC converts a pressure from pascals to inches of water column.
func PaToInchWC(p float64) float64 {
	return p / PascalsPerInchWC
}
