package validation

import (
	"fmt"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/library"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
)

const (
	// Conventional safety-factor band for duct static pressure sizing.
	safetyFactorMin = 0.15
	safetyFactorMax = 0.50

	temperatureMinF = -40.0
	temperatureMaxF = 250.0
	altitudeMinFt   = -1000.0
	altitudeMaxFt   = 15000.0
)

// ValidateDesign performs engineering-sanity validation on a parsed project.
// Everything here degrades gracefully in the engine, so findings are warnings
// and notes, never errors.
func ValidateDesign(p *project.Project) *Report {
	r := NewReport()

	for i := range p.Systems {
		validateSystemDesign(&p.Systems[i], i, r)
	}

	return r
}

func validateSystemDesign(sys *project.System, idx int, r *Report) {
	path := fmt.Sprintf("systems[%d]", idx)

	if !sys.Type.Valid() {
		r.AddWarning(Result{
			Level:       LevelDesign,
			Message:     fmt.Sprintf("%s (%s): unrecognized system type %q, supply velocity limits will apply", path, sys.ID, sys.Type),
			Path:        path + ".type",
			ActualValue: string(sys.Type),
			Expected:    "supply, return, exhaust, or outside_air",
		})
	}

	if sys.SafetyFactor >= 0 && sys.SafetyFactor < 1 &&
		(sys.SafetyFactor < safetyFactorMin || sys.SafetyFactor > safetyFactorMax) {
		r.AddWarning(Result{
			Level:       LevelDesign,
			Message:     fmt.Sprintf("%s (%s): safety_factor %.2f is outside the conventional %.2f-%.2f band", path, sys.ID, sys.SafetyFactor, safetyFactorMin, safetyFactorMax),
			Path:        path + ".safety_factor",
			ActualValue: sys.SafetyFactor,
			Expected:    fmt.Sprintf("%.2f-%.2f", safetyFactorMin, safetyFactorMax),
		})
	}

	if sys.TemperatureF < temperatureMinF || sys.TemperatureF > temperatureMaxF {
		r.AddWarning(Result{
			Level:       LevelDesign,
			Message:     fmt.Sprintf("%s (%s): temperature_f %.0f is outside the %.0f to %.0f band", path, sys.ID, sys.TemperatureF, temperatureMinF, temperatureMaxF),
			Path:        path + ".temperature_f",
			ActualValue: sys.TemperatureF,
		})
	}
	if sys.AltitudeFt < altitudeMinFt || sys.AltitudeFt > altitudeMaxFt {
		r.AddWarning(Result{
			Level:       LevelDesign,
			Message:     fmt.Sprintf("%s (%s): altitude_ft %.0f is outside the %.0f to %.0f band", path, sys.ID, sys.AltitudeFt, altitudeMinFt, altitudeMaxFt),
			Path:        path + ".altitude_ft",
			ActualValue: sys.AltitudeFt,
		})
	}

	seen := make(map[int]string, len(sys.Sections))
	for j := range sys.Sections {
		sec := &sys.Sections[j]
		if prev, dup := seen[sec.SortOrder]; dup {
			r.AddWarning(Result{
				Level:       LevelDesign,
				Message:     fmt.Sprintf("%s (%s): sections %s and %s share sort_order %d, series order is ambiguous", path, sys.ID, prev, sec.ID, sec.SortOrder),
				Path:        fmt.Sprintf("%s.sections[%d].sort_order", path, j),
				ActualValue: sec.SortOrder,
			})
		} else {
			seen[sec.SortOrder] = sec.ID
		}

		validateSectionDesign(sec, sys, path, j, r)
	}
}

func validateSectionDesign(sec *project.Section, sys *project.System, sysPath string, idx int, r *Report) {
	path := fmt.Sprintf("%s.sections[%d]", sysPath, idx)

	if sec.HasFixedDrop() {
		r.AddInfo(Result{
			Level:       LevelDesign,
			Message:     fmt.Sprintf("%s (%s): rated equipment drop %.2f in.WC bypasses the flow calculation", path, sec.ID, sec.FixedDropInWc),
			Path:        path + ".fixed_drop_in_wc",
			ActualValue: sec.FixedDropInWc,
		})
		return
	}

	if !sec.Type.Valid() {
		r.AddWarning(Result{
			Level:       LevelDesign,
			Message:     fmt.Sprintf("%s (%s): unrecognized section type %q, treated as straight", path, sec.ID, sec.Type),
			Path:        path + ".type",
			ActualValue: string(sec.Type),
			Expected:    "straight, flex, or equipment",
		})
	}
	if !sec.Shape.Valid() {
		r.AddWarning(Result{
			Level:       LevelDesign,
			Message:     fmt.Sprintf("%s (%s): unrecognized shape %q, treated as rectangular", path, sec.ID, sec.Shape),
			Path:        path + ".shape",
			ActualValue: string(sec.Shape),
			Expected:    "rectangular, round, or oval",
		})
	}

	if sec.AirflowCfm <= 0 {
		r.AddWarning(Result{
			Level:       LevelDesign,
			Message:     fmt.Sprintf("%s (%s): section has no airflow, losses will be fitting rated drops only", path, sec.ID),
			Path:        path + ".airflow_cfm",
			ActualValue: sec.AirflowCfm,
			Expected:    "> 0",
		})
	} else if sys.TotalCfm > 0 && sec.AirflowCfm > sys.TotalCfm {
		r.AddWarning(Result{
			Level:       LevelDesign,
			Message:     fmt.Sprintf("%s (%s): airflow_cfm %.0f exceeds the system total %.0f", path, sec.ID, sec.AirflowCfm, sys.TotalCfm),
			Path:        path + ".airflow_cfm",
			ActualValue: sec.AirflowCfm,
			Expected:    fmt.Sprintf("<= %.0f", sys.TotalCfm),
		})
	}

	if sec.Material != "" && !library.KnownMaterial(sec.Material) && sec.Type != project.SectionFlex {
		r.AddWarning(Result{
			Level:       LevelDesign,
			Message:     fmt.Sprintf("%s (%s): material %q is not in the roughness table, galvanized steel assumed", path, sec.ID, sec.Material),
			Path:        path + ".material",
			ActualValue: sec.Material,
		})
	}
	if !library.KnownLiner(sec.Liner) {
		r.AddWarning(Result{
			Level:       LevelDesign,
			Message:     fmt.Sprintf("%s (%s): liner %q is not recognized, treated as unlined", path, sec.ID, sec.Liner),
			Path:        path + ".liner",
			ActualValue: sec.Liner,
		})
	}

	for k, f := range sec.Fittings {
		if f.Type != "" && !library.KnownFitting(f.Type) {
			r.AddWarning(Result{
				Level:       LevelDesign,
				Message:     fmt.Sprintf("%s (%s): fitting type %q is not in the loss library and will contribute no loss", path, sec.ID, f.Type),
				Path:        fmt.Sprintf("%s.fittings[%d].type", path, k),
				ActualValue: f.Type,
			})
		}
		if f.Quantity <= 0 {
			r.AddWarning(Result{
				Level:       LevelDesign,
				Message:     fmt.Sprintf("%s (%s): fitting %q quantity %d contributes nothing", path, sec.ID, f.Type, f.Quantity),
				Path:        fmt.Sprintf("%s.fittings[%d].quantity", path, k),
				ActualValue: f.Quantity,
				Expected:    ">= 1",
			})
		}
	}
}
