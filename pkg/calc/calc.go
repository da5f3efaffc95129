package calc

import (
	"fmt"
	"sort"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/air"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/units"
)

// Evaluator runs the pressure-drop pipeline against an injected reference
// catalog. It is stateless and safe for concurrent use.
type Evaluator struct {
	catalog Catalog
	air     AirProvider
}

// NewEvaluator returns an evaluator backed by the given catalog. A nil
// AirProvider defaults to air.PropertiesAt.
func NewEvaluator(catalog Catalog, airFn AirProvider) *Evaluator {
	if airFn == nil {
		airFn = air.PropertiesAt
	}
	return &Evaluator{catalog: catalog, air: airFn}
}

// EvaluateSection computes the pressure loss of one duct section. It never
// fails: degenerate geometry is floored, unknown fittings are skipped, and
// advisory conditions become warning strings on the result.
func (e *Evaluator) EvaluateSection(sec project.Section, props air.Properties, sysType project.SystemType) SectionResult {
	res := SectionResult{
		SectionID:  sec.ID,
		Name:       sec.Name,
		SortOrder:  sec.SortOrder,
		AirflowCfm: sec.AirflowCfm,
	}

	// In-line equipment with a rated drop bypasses the flow pipeline.
	if sec.HasFixedDrop() {
		res.FittingsLossInWc = sec.FixedDropInWc
		res.TotalLossInWc = sec.FixedDropInWc
		return res
	}

	g := resolveGeometry(sec, e.catalog.LinerThicknessIn(sec.Liner))
	res.EffectiveWidthIn = g.widthIn
	res.EffectiveHeightIn = g.heightIn
	res.EffectiveDiameterIn = g.diameterIn
	res.HydraulicDiameterIn = g.hydraulicDiameterIn
	res.AreaFt2 = g.areaFt2

	if sec.AirflowCfm <= 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("section %s has no airflow", sec.ID))
		// Zero velocity pressure zeroes C-coefficient losses; rated drops
		// still count.
		res.FittingsLossInWc = e.fittingsLossInWc(sec.Fittings, 0)
		res.TotalLossInWc = res.FittingsLossInWc
		return res
	}

	res.VelocityFpm = velocityFpm(sec.AirflowCfm, g.areaFt2)

	limit := e.catalog.VelocityLimit(sysType)
	switch {
	case limit.MaxFpm > 0 && res.VelocityFpm > limit.MaxFpm:
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"section %s: velocity %.0f fpm exceeds maximum %.0f fpm for %s ducts",
			sec.ID, res.VelocityFpm, limit.MaxFpm, sysType))
	case limit.RecommendedFpm > 0 && res.VelocityFpm > limit.RecommendedFpm:
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"section %s: velocity %.0f fpm exceeds recommended %.0f fpm (%s)",
			sec.ID, res.VelocityFpm, limit.RecommendedFpm, limit.Noise))
	}

	res.VelocityPressureInWc = velocityPressureInWc(props, res.VelocityFpm)
	res.ReynoldsNumber = reynoldsNumber(props, res.VelocityFpm, g.hydraulicDiameterIn)

	roughnessFt := e.catalog.RoughnessFor(sec.Material, sec.Liner)
	if sec.Type == project.SectionFlex {
		roughnessFt = FlexBaseRoughnessFt * FlexRoughnessCorrection
		if sec.LengthFt > FlexRecommendedMaxLengthFt {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"section %s: flex length %.0f ft exceeds recommended maximum %.0f ft",
				sec.ID, sec.LengthFt, FlexRecommendedMaxLengthFt))
		}
	}

	res.FrictionFactor = frictionFactor(res.ReynoldsNumber, roughnessFt, units.InchesToFeet(g.hydraulicDiameterIn))
	res.StraightLossInWc = straightLossInWc(res.FrictionFactor, sec.LengthFt, g.hydraulicDiameterIn, res.VelocityPressureInWc)
	res.FittingsLossInWc = e.fittingsLossInWc(sec.Fittings, res.VelocityPressureInWc)
	res.TotalLossInWc = res.StraightLossInWc + res.FittingsLossInWc

	return res
}

// EvaluateSystem resolves air properties once, evaluates every section in
// series-flow order, and aggregates losses, maxima, and warnings.
func (e *Evaluator) EvaluateSystem(sys project.System) Result {
	props := e.air(sys.AltitudeFt, sys.TemperatureF)

	ordered := make([]project.Section, len(sys.Sections))
	copy(ordered, sys.Sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortOrder < ordered[j].SortOrder
	})

	res := Result{
		SystemID:     sys.ID,
		SystemName:   sys.Name,
		SystemType:   sys.Type,
		Air:          props,
		Sections:     make([]SectionResult, 0, len(ordered)),
		SafetyFactor: sys.SafetyFactor,
		TotalCfm:     sys.TotalCfm,
		Warnings:     []string{},
	}

	for _, sec := range ordered {
		sr := e.EvaluateSection(sec, props, sys.Type)
		res.Sections = append(res.Sections, sr)
		res.StraightLossInWc += sr.StraightLossInWc
		res.FittingsLossInWc += sr.FittingsLossInWc
		if sr.VelocityFpm > res.MaxVelocityFpm {
			res.MaxVelocityFpm = sr.VelocityFpm
		}
		res.Warnings = append(res.Warnings, sr.Warnings...)
	}

	res.SubtotalInWc = res.StraightLossInWc + res.FittingsLossInWc
	res.SafetyLossInWc = res.SubtotalInWc * sys.SafetyFactor
	res.TotalLossInWc = res.SubtotalInWc + res.SafetyLossInWc
	res.TotalLossPa = units.InchWCToPa(res.TotalLossInWc)

	if sys.MaxVelocityFpm > 0 && res.MaxVelocityFpm > sys.MaxVelocityFpm {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"system %s: maximum velocity %.0f fpm exceeds the %.0f fpm design limit",
			sys.ID, res.MaxVelocityFpm, sys.MaxVelocityFpm))
	}

	return res
}
