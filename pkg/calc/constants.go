package calc

// Physical and policy constants for the pressure-drop engine.
const (
	GravityFtPerS2 = 32.174 // standard gravity

	// LaminarReLimit is the hard flow-regime boundary. Below it the Darcy
	// friction factor is 64/Re; at or above it Swamee-Jain applies. There is
	// no blending region; reference outputs depend on the exact cutoff.
	LaminarReLimit = 2300.0

	// Flex duct compresses and sags in the field, so its effective roughness
	// is the fully-extended base value times a typical installation factor.
	FlexBaseRoughnessFt     = 0.003
	FlexRoughnessCorrection = 1.9

	// FlexRecommendedMaxLengthFt is the advisory ceiling for a single flex
	// runout; longer runs are flagged, not rejected.
	FlexRecommendedMaxLengthFt = 14.0

	// MinEffectiveDimensionIn floors liner-corrected dimensions so geometry
	// never goes to zero or negative.
	MinEffectiveDimensionIn = 1.0
)
