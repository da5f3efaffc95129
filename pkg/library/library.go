package library

import (
	"sort"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/calc"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
)

// Library answers the reference lookups the calculation engine depends on.
type Library struct{}

// Standard returns the built-in reference library.
func Standard() *Library {
	return &Library{}
}

// RoughnessFor returns the absolute roughness in feet for a material and liner
// pair. A recognized liner wins over the material because the air flows
// against the liner surface. Unknown materials fall back to galvanized steel.
func (l *Library) RoughnessFor(material, liner string) float64 {
	if ld, ok := linerDefs[liner]; ok {
		return ld.roughnessFt
	}
	if r, ok := MaterialRoughness[material]; ok {
		return r
	}
	return MaterialRoughness[DefaultMaterial]
}

// LinerThicknessIn returns the liner thickness in inches, or 0 for "none" and
// unrecognized liner ids.
func (l *Library) LinerThicknessIn(liner string) float64 {
	return linerDefs[liner].thicknessIn
}

// Fitting returns the loss definition for a fitting type id.
func (l *Library) Fitting(id string) (calc.FittingSpec, bool) {
	fs, ok := fittingDefs[id]
	if ok {
		fs.ID = id
	}
	return fs, ok
}

// VelocityLimit returns the velocity limits for a system type, falling back to
// the supply limits for unrecognized types.
func (l *Library) VelocityLimit(t project.SystemType) calc.VelocityLimit {
	if vl, ok := velocityLimits[t]; ok {
		return vl
	}
	return velocityLimits[project.SystemSupply]
}

// Fittings returns every fitting definition, sorted by id.
func (l *Library) Fittings() []calc.FittingSpec {
	out := make([]calc.FittingSpec, 0, len(fittingDefs))
	for id, fs := range fittingDefs {
		fs.ID = id
		out = append(out, fs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// KnownMaterial reports whether the material id is in the roughness table.
func KnownMaterial(material string) bool {
	_, ok := MaterialRoughness[material]
	return ok
}

// KnownLiner reports whether the liner id is recognized. "none" and the empty
// string mean unlined and count as known.
func KnownLiner(liner string) bool {
	if liner == "" || liner == "none" {
		return true
	}
	_, ok := linerDefs[liner]
	return ok
}

// KnownFitting reports whether the fitting type id is in the loss library.
func KnownFitting(id string) bool {
	_, ok := fittingDefs[id]
	return ok
}
