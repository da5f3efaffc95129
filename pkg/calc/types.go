package calc

import (
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/air"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
)

// LossMethod selects how a fitting's pressure loss is computed.
type LossMethod string

const (
	// LossCCoefficient multiplies a dimensionless coefficient by the section
	// velocity pressure.
	LossCCoefficient LossMethod = "c_coefficient"
	// LossFixedDrop applies a manufacturer-rated pressure drop directly.
	LossFixedDrop LossMethod = "fixed_dp"
)

// FittingSpec is one entry in the fitting loss library. Exactly one of
// CCoefficient or FixedDropInWc is meaningful, governed by Method.
type FittingSpec struct {
	ID            string     `json:"id"`
	Description   string     `json:"description"`
	Method        LossMethod `json:"method"`
	CCoefficient  float64    `json:"c_coefficient,omitempty"`
	FixedDropInWc float64    `json:"fixed_drop_in_wc,omitempty"`
}

// VelocityLimit bounds air velocity for one system type. Noise describes the
// consequence of running above the recommended velocity.
type VelocityLimit struct {
	MaxFpm         float64 `json:"max_fpm"`
	RecommendedFpm float64 `json:"recommended_fpm"`
	Noise          string  `json:"noise"`
}

// Catalog supplies the reference data the engine depends on: duct roughness,
// liner geometry, the fitting loss library, and velocity limits. VelocityLimit
// implementations fall back to the supply limits for unrecognized types so the
// engine never lacks a limit to check against.
type Catalog interface {
	RoughnessFor(material, liner string) float64
	LinerThicknessIn(liner string) float64
	Fitting(id string) (FittingSpec, bool)
	VelocityLimit(t project.SystemType) VelocityLimit
}

// AirProvider derives air properties from site altitude and temperature.
type AirProvider func(altitudeFt, temperatureF float64) air.Properties

// SectionResult is the per-section calculation output. Equipment sections with
// a fixed drop report zero velocity, Reynolds number, and friction factor.
type SectionResult struct {
	SectionID           string  `json:"section_id"`
	Name                string  `json:"name"`
	SortOrder           int     `json:"sort_order"`
	AirflowCfm          float64 `json:"airflow_cfm"`
	EffectiveWidthIn    float64 `json:"effective_width_in,omitempty"`
	EffectiveHeightIn   float64 `json:"effective_height_in,omitempty"`
	EffectiveDiameterIn float64 `json:"effective_diameter_in,omitempty"`
	HydraulicDiameterIn float64 `json:"hydraulic_diameter_in"`
	AreaFt2             float64 `json:"area_ft2"`

	VelocityFpm          float64 `json:"velocity_fpm"`
	VelocityPressureInWc float64 `json:"velocity_pressure_in_wc"`
	ReynoldsNumber       float64 `json:"reynolds_number"`
	FrictionFactor       float64 `json:"friction_factor"`

	StraightLossInWc float64  `json:"straight_loss_in_wc"`
	FittingsLossInWc float64  `json:"fittings_loss_in_wc"`
	TotalLossInWc    float64  `json:"total_loss_in_wc"`
	Warnings         []string `json:"warnings,omitempty"`
}

// Result is the system-level calculation output.
type Result struct {
	SystemID   string             `json:"system_id"`
	SystemName string             `json:"system_name"`
	SystemType project.SystemType `json:"system_type"`
	Air        air.Properties     `json:"air"`

	Sections []SectionResult `json:"sections"`

	StraightLossInWc float64 `json:"straight_loss_in_wc"`
	FittingsLossInWc float64 `json:"fittings_loss_in_wc"`
	SubtotalInWc     float64 `json:"subtotal_in_wc"`
	SafetyFactor     float64 `json:"safety_factor"`
	SafetyLossInWc   float64 `json:"safety_loss_in_wc"`
	TotalLossInWc    float64 `json:"total_loss_in_wc"`
	TotalLossPa      float64 `json:"total_loss_pa"`

	MaxVelocityFpm float64  `json:"max_velocity_fpm"`
	TotalCfm       float64  `json:"total_cfm"`
	Warnings       []string `json:"warnings"`
}
