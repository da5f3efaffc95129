package library

import (
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/calc"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
)

// DefaultMaterial is the roughness fallback for unrecognized material ids.
const DefaultMaterial = "galvanized_steel"

// MaterialRoughness maps duct material ids to absolute roughness in feet.
// Values follow the ASHRAE duct roughness categories.
var MaterialRoughness = map[string]float64{
	"galvanized_steel":     0.0003,
	"aluminum":             0.00015,
	"stainless_steel":      0.00015,
	"pvc":                  0.0001,
	"fiberglass_ductboard": 0.0005,
	"flexible":             0.003,
}

// linerDef describes an acoustic liner option. A lined duct flows against the
// liner surface, so the liner roughness replaces the material roughness.
type linerDef struct {
	thicknessIn float64
	roughnessFt float64
}

var linerDefs = map[string]linerDef{
	"liner_half_in": {0.5, 0.003},
	"liner_1in":     {1.0, 0.003},
	"liner_2in":     {2.0, 0.003},
}

var fittingDefs = map[string]calc.FittingSpec{
	"elbow_90_smooth":    {Method: calc.LossCCoefficient, CCoefficient: 0.22, Description: "90 deg radius elbow, r/w = 1.5"},
	"elbow_90_mitered":   {Method: calc.LossCCoefficient, CCoefficient: 1.2, Description: "90 deg mitered elbow, no vanes"},
	"elbow_90_vaned":     {Method: calc.LossCCoefficient, CCoefficient: 0.33, Description: "90 deg mitered elbow with turning vanes"},
	"elbow_45":           {Method: calc.LossCCoefficient, CCoefficient: 0.13, Description: "45 deg elbow"},
	"tee_branch":         {Method: calc.LossCCoefficient, CCoefficient: 1.0, Description: "tee, flow to branch"},
	"tee_through":        {Method: calc.LossCCoefficient, CCoefficient: 0.3, Description: "tee, straight-through flow"},
	"wye_45":             {Method: calc.LossCCoefficient, CCoefficient: 0.32, Description: "45 deg wye, branch flow"},
	"transition_gradual": {Method: calc.LossCCoefficient, CCoefficient: 0.05, Description: "gradual transition"},
	"transition_abrupt":  {Method: calc.LossCCoefficient, CCoefficient: 0.5, Description: "abrupt transition"},
	"damper_butterfly":   {Method: calc.LossCCoefficient, CCoefficient: 0.19, Description: "butterfly damper, fully open"},
	"damper_balancing":   {Method: calc.LossCCoefficient, CCoefficient: 0.52, Description: "opposed-blade balancing damper, open"},
	"fire_damper":        {Method: calc.LossFixedDrop, FixedDropInWc: 0.08, Description: "curtain fire damper"},
	"supply_diffuser":    {Method: calc.LossFixedDrop, FixedDropInWc: 0.1, Description: "ceiling supply diffuser"},
	"return_grille":      {Method: calc.LossFixedDrop, FixedDropInWc: 0.08, Description: "return air grille"},
	"exhaust_grille":     {Method: calc.LossFixedDrop, FixedDropInWc: 0.08, Description: "exhaust grille"},
	"filter_merv8":       {Method: calc.LossFixedDrop, FixedDropInWc: 0.25, Description: "MERV 8 pleated filter, clean"},
	"filter_merv13":      {Method: calc.LossFixedDrop, FixedDropInWc: 0.4, Description: "MERV 13 pleated filter, clean"},
	"coil_hot_water":     {Method: calc.LossFixedDrop, FixedDropInWc: 0.2, Description: "hot water coil, 2 row"},
	"coil_chilled_water": {Method: calc.LossFixedDrop, FixedDropInWc: 0.55, Description: "chilled water coil, 6 row, wet"},
}

var velocityLimits = map[project.SystemType]calc.VelocityLimit{
	project.SystemSupply:     {MaxFpm: 2500, RecommendedFpm: 1500, Noise: "possible diffuser and duct noise in occupied areas"},
	project.SystemReturn:     {MaxFpm: 2000, RecommendedFpm: 1200, Noise: "possible grille noise in occupied areas"},
	project.SystemExhaust:    {MaxFpm: 3000, RecommendedFpm: 1800, Noise: "possible duct rumble in shafts"},
	project.SystemOutsideAir: {MaxFpm: 1500, RecommendedFpm: 1000, Noise: "possible louver noise and rain carryover"},
}
