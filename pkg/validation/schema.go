package validation

import (
	"fmt"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
)

// Validate runs both validation stages and merges their findings.
func Validate(p *project.Project) *Report {
	r := NewReport()
	r.Merge(ValidateSchema(p))
	r.Merge(ValidateDesign(p))
	return r
}

// ValidateSchema performs structural validation on a parsed project. It checks
// that the document is computable before any evaluation runs; engineering
// sanity lives in ValidateDesign.
func ValidateSchema(p *project.Project) *Report {
	r := NewReport()

	if len(p.Systems) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "project must define at least one system",
			Path:     "systems",
			Expected: "at least 1 system",
		})
		return r
	}

	for i := range p.Systems {
		validateSystemSchema(&p.Systems[i], i, r)
	}

	return r
}

func validateSystemSchema(sys *project.System, idx int, r *Report) {
	path := fmt.Sprintf("systems[%d]", idx)

	if sys.ID == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("%s: missing system id", path),
			Path:     path + ".id",
			Expected: "non-empty id",
		})
	}

	if sys.TotalCfm <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s (%s): total_cfm must be greater than 0", path, sys.ID),
			Path:        path + ".total_cfm",
			ActualValue: sys.TotalCfm,
			Expected:    "> 0",
		})
	}

	if sys.SafetyFactor < 0 || sys.SafetyFactor >= 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s (%s): safety_factor %.2f must be a fraction below 1", path, sys.ID, sys.SafetyFactor),
			Path:        path + ".safety_factor",
			ActualValue: sys.SafetyFactor,
			Expected:    "0 <= factor < 1",
		})
	}

	if sys.MaxVelocityFpm < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s (%s): max_velocity_fpm must not be negative", path, sys.ID),
			Path:        path + ".max_velocity_fpm",
			ActualValue: sys.MaxVelocityFpm,
			Expected:    ">= 0",
		})
	}

	if len(sys.Sections) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("%s (%s): system has no sections", path, sys.ID),
			Path:     path + ".sections",
			Expected: "at least 1 section",
		})
		return
	}

	for j := range sys.Sections {
		validateSectionSchema(&sys.Sections[j], path, j, r)
	}
}

func validateSectionSchema(sec *project.Section, sysPath string, idx int, r *Report) {
	path := fmt.Sprintf("%s.sections[%d]", sysPath, idx)

	if sec.ID == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("%s: missing section id", path),
			Path:     path + ".id",
			Expected: "non-empty id",
		})
	}

	if sec.LengthFt < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s (%s): length_ft must not be negative", path, sec.ID),
			Path:        path + ".length_ft",
			ActualValue: sec.LengthFt,
			Expected:    ">= 0",
		})
	}

	if sec.FixedDropInWc < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s (%s): fixed_drop_in_wc must not be negative", path, sec.ID),
			Path:        path + ".fixed_drop_in_wc",
			ActualValue: sec.FixedDropInWc,
			Expected:    ">= 0",
		})
	}

	// Equipment with a rated drop bypasses the flow pipeline, so its
	// geometry does not need to be computable.
	if sec.HasFixedDrop() {
		return
	}

	switch sec.Shape {
	case project.ShapeRound:
		if sec.DiameterIn <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): round section needs diameter_in", path, sec.ID),
				Path:        path + ".diameter_in",
				ActualValue: sec.DiameterIn,
				Expected:    "> 0",
			})
		}
	case project.ShapeRectangular, project.ShapeOval:
		if sec.WidthIn <= 0 || sec.HeightIn <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): %s section needs width_in and height_in", path, sec.ID, sec.Shape),
				Path:        path,
				ActualValue: fmt.Sprintf("%gx%g", sec.WidthIn, sec.HeightIn),
				Expected:    "both > 0",
			})
		}
	}

	for k, f := range sec.Fittings {
		if f.Type == "" {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("%s (%s): fitting[%d] has no type", path, sec.ID, k),
				Path:     fmt.Sprintf("%s.fittings[%d].type", path, k),
				Expected: "non-empty fitting type",
			})
		}
		if f.CCoefficient != nil && *f.CCoefficient < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): fitting[%d] c_coefficient override must not be negative", path, sec.ID, k),
				Path:        fmt.Sprintf("%s.fittings[%d].c_coefficient", path, k),
				ActualValue: *f.CCoefficient,
				Expected:    ">= 0",
			})
		}
		if f.FixedDropInWc != nil && *f.FixedDropInWc < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): fitting[%d] fixed_drop_in_wc override must not be negative", path, sec.ID, k),
				Path:        fmt.Sprintf("%s.fittings[%d].fixed_drop_in_wc", path, k),
				ActualValue: *f.FixedDropInWc,
				Expected:    ">= 0",
			})
		}
	}
}
