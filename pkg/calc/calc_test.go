package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/air"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/units"
)

// testCatalog has fixed values so assertions do not depend on the standard
// library package.
type testCatalog struct{}

func (testCatalog) RoughnessFor(material, liner string) float64 {
	if liner == "lined" {
		return 0.003
	}
	switch material {
	case "smooth":
		return 0.0001
	case "steel":
		return 0.0003
	}
	return 0.0003
}

func (testCatalog) LinerThicknessIn(liner string) float64 {
	if liner == "lined" {
		return 1.0
	}
	return 0
}

func (testCatalog) Fitting(id string) (FittingSpec, bool) {
	switch id {
	case "elbow":
		return FittingSpec{ID: id, Method: LossCCoefficient, CCoefficient: 0.5}, true
	case "diffuser":
		return FittingSpec{ID: id, Method: LossFixedDrop, FixedDropInWc: 0.1}, true
	}
	return FittingSpec{}, false
}

func (testCatalog) VelocityLimit(t project.SystemType) VelocityLimit {
	if t == project.SystemReturn {
		return VelocityLimit{MaxFpm: 1600, RecommendedFpm: 800, Noise: "grille noise"}
	}
	return VelocityLimit{MaxFpm: 2000, RecommendedFpm: 1000, Noise: "duct noise"}
}

func newTestEvaluator() *Evaluator {
	return NewEvaluator(testCatalog{}, func(altitudeFt, temperatureF float64) air.Properties {
		return standardAir()
	})
}

func standardAir() air.Properties {
	return air.Properties{
		TemperatureF:    70,
		DensityLbFt3:    0.075,
		ViscosityLbFtS:  1.23e-5,
		SpecificHeatBtu: 0.24,
	}
}

// defaultSection is a 24x12 in rectangular trunk: area 2.0 ft², so 2000 CFM
// gives exactly 1000 fpm.
func defaultSection() project.Section {
	return project.Section{
		ID:         "trunk",
		SortOrder:  1,
		Type:       project.SectionStraight,
		Shape:      project.ShapeRectangular,
		WidthIn:    24,
		HeightIn:   12,
		LengthFt:   50,
		Material:   "steel",
		AirflowCfm: 2000,
	}
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func hasWarningContaining(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func TestEvaluateSectionSimpleRun(t *testing.T) {
	e := newTestEvaluator()
	res := e.EvaluateSection(defaultSection(), standardAir(), project.SystemSupply)

	if !approxEqual(res.AreaFt2, 2.0, 1e-9) {
		t.Errorf("area = %v ft², want 2.0", res.AreaFt2)
	}
	if !approxEqual(res.VelocityFpm, 1000, 1e-9) {
		t.Errorf("velocity = %v fpm, want 1000", res.VelocityFpm)
	}
	if !approxEqual(res.HydraulicDiameterIn, 16, 1e-9) {
		t.Errorf("hydraulic diameter = %v in, want 16", res.HydraulicDiameterIn)
	}
	if res.ReynoldsNumber < 130_000 || res.ReynoldsNumber > 140_000 {
		t.Errorf("Re = %v, want ~135,500", res.ReynoldsNumber)
	}
	if res.ReynoldsNumber < LaminarReLimit {
		t.Errorf("Re = %v should be turbulent", res.ReynoldsNumber)
	}
	if res.FrictionFactor < 0.015 || res.FrictionFactor > 0.025 {
		t.Errorf("friction factor = %v, want ~0.018", res.FrictionFactor)
	}
	if !approxEqual(res.VelocityPressureInWc, 0.0623, 1e-3) {
		t.Errorf("velocity pressure = %v in.WC, want ~0.0623", res.VelocityPressureInWc)
	}
	if res.StraightLossInWc <= 0 {
		t.Errorf("straight loss = %v, want > 0", res.StraightLossInWc)
	}

	// No fittings: total is the straight loss alone.
	if res.FittingsLossInWc != 0 {
		t.Errorf("fittings loss = %v, want 0", res.FittingsLossInWc)
	}
	if !approxEqual(res.TotalLossInWc, res.StraightLossInWc, 1e-12) {
		t.Errorf("total = %v, want straight loss %v", res.TotalLossInWc, res.StraightLossInWc)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", res.Warnings)
	}
}

func TestEvaluateSectionWithFittings(t *testing.T) {
	e := newTestEvaluator()
	sec := defaultSection()
	sec.Fittings = []project.Fitting{
		{Type: "elbow", Quantity: 2},
		{Type: "diffuser", Quantity: 1},
	}
	res := e.EvaluateSection(sec, standardAir(), project.SystemSupply)

	want := 2*0.5*res.VelocityPressureInWc + 0.1
	if !approxEqual(res.FittingsLossInWc, want, 1e-12) {
		t.Errorf("fittings loss = %v, want %v", res.FittingsLossInWc, want)
	}
	if !approxEqual(res.TotalLossInWc, res.StraightLossInWc+res.FittingsLossInWc, 1e-12) {
		t.Errorf("total = %v, want straight + fittings", res.TotalLossInWc)
	}
}

func TestEquipmentShortCircuit(t *testing.T) {
	e := newTestEvaluator()
	sec := project.Section{
		ID:            "coil",
		Type:          project.SectionEquipment,
		FixedDropInWc: 0.35,
		// Junk flow fields must be ignored entirely.
		Shape:      project.ShapeRectangular,
		WidthIn:    99,
		HeightIn:   99,
		LengthFt:   500,
		AirflowCfm: 99999,
		Fittings:   []project.Fitting{{Type: "elbow", Quantity: 4}},
	}
	res := e.EvaluateSection(sec, standardAir(), project.SystemSupply)

	if res.TotalLossInWc != 0.35 {
		t.Errorf("total = %v, want exactly 0.35", res.TotalLossInWc)
	}
	if res.VelocityFpm != 0 || res.ReynoldsNumber != 0 || res.FrictionFactor != 0 {
		t.Errorf("flow fields = v%v Re%v f%v, want all zero",
			res.VelocityFpm, res.ReynoldsNumber, res.FrictionFactor)
	}
	if res.StraightLossInWc != 0 {
		t.Errorf("straight loss = %v, want 0", res.StraightLossInWc)
	}
	if res.FittingsLossInWc != 0.35 {
		t.Errorf("fittings loss = %v, want 0.35", res.FittingsLossInWc)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", res.Warnings)
	}
}

func TestEquipmentWithoutDropComputesNormally(t *testing.T) {
	e := newTestEvaluator()
	sec := defaultSection()
	sec.Type = project.SectionEquipment
	sec.FixedDropInWc = 0

	res := e.EvaluateSection(sec, standardAir(), project.SystemSupply)
	if res.VelocityFpm == 0 {
		t.Error("equipment section without a rated drop should run the flow pipeline")
	}
}

func TestZeroAirflowSection(t *testing.T) {
	e := newTestEvaluator()
	sec := defaultSection()
	sec.AirflowCfm = 0
	sec.Fittings = []project.Fitting{
		{Type: "elbow", Quantity: 2},
		{Type: "diffuser", Quantity: 1},
	}
	res := e.EvaluateSection(sec, standardAir(), project.SystemSupply)

	if !hasWarningContaining(res.Warnings, "has no airflow") {
		t.Errorf("warnings = %v, want a no-airflow warning", res.Warnings)
	}
	if res.VelocityFpm != 0 || res.ReynoldsNumber != 0 {
		t.Errorf("flow fields = v%v Re%v, want zero", res.VelocityFpm, res.ReynoldsNumber)
	}
	// Rated drops still count; C-coefficient losses vanish with Pv = 0.
	if !approxEqual(res.FittingsLossInWc, 0.1, 1e-12) {
		t.Errorf("fittings loss = %v, want 0.1", res.FittingsLossInWc)
	}
	if !approxEqual(res.TotalLossInWc, 0.1, 1e-12) {
		t.Errorf("total = %v, want 0.1", res.TotalLossInWc)
	}
}

func TestVelocityExceedsMaximum(t *testing.T) {
	e := newTestEvaluator()
	sec := defaultSection()
	sec.WidthIn, sec.HeightIn = 12, 12 // area 1.0 ft²
	sec.AirflowCfm = 2500             // 2500 fpm > max 2000

	res := e.EvaluateSection(sec, standardAir(), project.SystemSupply)
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", res.Warnings)
	}
	if !strings.Contains(res.Warnings[0], "exceeds maximum") {
		t.Errorf("warning = %q, want it to mention exceeds maximum", res.Warnings[0])
	}
	if strings.Contains(res.Warnings[0], "exceeds recommended") {
		t.Errorf("warning = %q, max and recommended must be mutually exclusive", res.Warnings[0])
	}
}

func TestVelocityExceedsRecommended(t *testing.T) {
	e := newTestEvaluator()
	sec := defaultSection()
	sec.WidthIn, sec.HeightIn = 12, 12
	sec.AirflowCfm = 1500 // between recommended 1000 and max 2000

	res := e.EvaluateSection(sec, standardAir(), project.SystemSupply)
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", res.Warnings)
	}
	if !strings.Contains(res.Warnings[0], "exceeds recommended") {
		t.Errorf("warning = %q, want it to mention exceeds recommended", res.Warnings[0])
	}
	if !strings.Contains(res.Warnings[0], "duct noise") {
		t.Errorf("warning = %q, want the noise annotation", res.Warnings[0])
	}
}

func TestUnknownSystemTypeUsesSupplyLimits(t *testing.T) {
	e := newTestEvaluator()
	sec := defaultSection()
	sec.WidthIn, sec.HeightIn = 12, 12
	sec.AirflowCfm = 1500

	res := e.EvaluateSection(sec, standardAir(), project.SystemType("mystery"))
	if !hasWarningContaining(res.Warnings, "exceeds recommended") {
		t.Errorf("warnings = %v, want the supply recommended warning", res.Warnings)
	}
}

func TestFlexRoughnessAndLengthWarning(t *testing.T) {
	e := newTestEvaluator()
	sec := project.Section{
		ID:         "runout",
		Type:       project.SectionFlex,
		Shape:      project.ShapeRound,
		DiameterIn: 8,
		LengthFt:   20,
		Material:   "steel",
		AirflowCfm: 300,
	}
	res := e.EvaluateSection(sec, standardAir(), project.SystemSupply)

	if !hasWarningContaining(res.Warnings, "exceeds recommended maximum") {
		t.Errorf("warnings = %v, want a flex length warning", res.Warnings)
	}

	// Friction must use the corrected flex roughness, not the material's.
	eps := FlexBaseRoughnessFt * FlexRoughnessCorrection
	dFt := res.HydraulicDiameterIn / 12
	logTerm := math.Log10(eps/dFt/3.7 + 5.74/math.Pow(res.ReynoldsNumber, 0.9))
	want := 0.25 / (logTerm * logTerm)
	if !approxEqual(res.FrictionFactor, want, 1e-12) {
		t.Errorf("friction factor = %v, want corrected-roughness value %v", res.FrictionFactor, want)
	}

	sec.LengthFt = 6
	res = e.EvaluateSection(sec, standardAir(), project.SystemSupply)
	if hasWarningContaining(res.Warnings, "exceeds recommended maximum") {
		t.Errorf("warnings = %v, short flex run should not warn", res.Warnings)
	}
}

func defaultSystem() project.System {
	branch := project.Section{
		ID:         "branch",
		SortOrder:  2,
		Type:       project.SectionStraight,
		Shape:      project.ShapeRectangular,
		WidthIn:    12,
		HeightIn:   12,
		LengthFt:   25,
		Material:   "steel",
		AirflowCfm: 1500, // 1500 fpm, above the recommended 1000
	}
	filter := project.Section{
		ID:            "filter",
		SortOrder:     3,
		Type:          project.SectionEquipment,
		FixedDropInWc: 0.45,
	}
	return project.System{
		ID:           "ahu1",
		Name:         "AHU-1",
		Type:         project.SystemSupply,
		TotalCfm:     2000,
		AltitudeFt:   0,
		TemperatureF: 70,
		SafetyFactor: 0.25,
		// Deliberately out of order; the evaluator must sort by sort_order.
		Sections: []project.Section{filter, branch, defaultSection()},
	}
}

func TestEvaluateSystemAggregation(t *testing.T) {
	e := newTestEvaluator()
	res := e.EvaluateSystem(defaultSystem())

	if len(res.Sections) != 3 {
		t.Fatalf("len(sections) = %d, want 3", len(res.Sections))
	}
	order := []string{"trunk", "branch", "filter"}
	for i, id := range order {
		if res.Sections[i].SectionID != id {
			t.Errorf("sections[%d] = %q, want %q", i, res.Sections[i].SectionID, id)
		}
	}

	var straight, fittings float64
	for _, sr := range res.Sections {
		straight += sr.StraightLossInWc
		fittings += sr.FittingsLossInWc
	}
	if !approxEqual(res.StraightLossInWc, straight, 1e-12) {
		t.Errorf("straight sum = %v, want %v", res.StraightLossInWc, straight)
	}
	if !approxEqual(res.FittingsLossInWc, fittings, 1e-12) {
		t.Errorf("fittings sum = %v, want %v", res.FittingsLossInWc, fittings)
	}

	// The filter's rated drop lands in the fittings bucket.
	if res.FittingsLossInWc < 0.45 {
		t.Errorf("fittings sum = %v, want >= the 0.45 filter drop", res.FittingsLossInWc)
	}

	if !approxEqual(res.SubtotalInWc, straight+fittings, 1e-12) {
		t.Errorf("subtotal = %v, want %v", res.SubtotalInWc, straight+fittings)
	}
	if !approxEqual(res.SafetyLossInWc, res.SubtotalInWc*0.25, 1e-12) {
		t.Errorf("safety loss = %v, want subtotal x 0.25", res.SafetyLossInWc)
	}
	if !approxEqual(res.TotalLossInWc, res.SubtotalInWc*1.25, 1e-12) {
		t.Errorf("total = %v, want subtotal x 1.25", res.TotalLossInWc)
	}
	if !approxEqual(res.TotalLossPa, units.InchWCToPa(res.TotalLossInWc), 1e-12) {
		t.Errorf("total Pa = %v, want converted total", res.TotalLossPa)
	}

	if !approxEqual(res.MaxVelocityFpm, 1500, 1e-9) {
		t.Errorf("max velocity = %v, want 1500", res.MaxVelocityFpm)
	}
	if res.TotalCfm != 2000 {
		t.Errorf("total cfm = %v, want 2000", res.TotalCfm)
	}

	// One warning, from the branch velocity, carried in section order.
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "branch") {
		t.Errorf("warnings = %v, want the branch velocity warning only", res.Warnings)
	}
}

func TestEvaluateSystemStableSortForTies(t *testing.T) {
	e := newTestEvaluator()
	a := defaultSection()
	a.ID = "a"
	a.SortOrder = 1
	b := defaultSection()
	b.ID = "b"
	b.SortOrder = 1

	res := e.EvaluateSystem(project.System{
		ID:       "tie",
		Type:     project.SystemSupply,
		Sections: []project.Section{a, b},
	})
	if res.Sections[0].SectionID != "a" || res.Sections[1].SectionID != "b" {
		t.Errorf("tie order = %q,%q, want a,b (input order)",
			res.Sections[0].SectionID, res.Sections[1].SectionID)
	}
}

func TestEvaluateSystemEmpty(t *testing.T) {
	e := newTestEvaluator()
	res := e.EvaluateSystem(project.System{ID: "empty", Type: project.SystemSupply})

	if res.TotalLossInWc != 0 || res.SubtotalInWc != 0 {
		t.Errorf("losses = %v/%v, want 0", res.SubtotalInWc, res.TotalLossInWc)
	}
	if res.MaxVelocityFpm != 0 {
		t.Errorf("max velocity = %v, want 0", res.MaxVelocityFpm)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", res.Warnings)
	}
}

func TestSystemMaxVelocityWarning(t *testing.T) {
	e := newTestEvaluator()
	sys := defaultSystem()
	sys.MaxVelocityFpm = 1200 // branch runs 1500

	res := e.EvaluateSystem(sys)
	last := res.Warnings[len(res.Warnings)-1]
	if !strings.Contains(last, "design limit") {
		t.Errorf("last warning = %q, want the system design-limit warning", last)
	}

	sys.MaxVelocityFpm = 0
	res = e.EvaluateSystem(sys)
	if hasWarningContaining(res.Warnings, "design limit") {
		t.Errorf("warnings = %v, no constraint should mean no system warning", res.Warnings)
	}
}

func TestNewEvaluatorDefaultAir(t *testing.T) {
	e := NewEvaluator(testCatalog{}, nil)
	res := e.EvaluateSystem(project.System{
		ID:           "std",
		Type:         project.SystemSupply,
		AltitudeFt:   0,
		TemperatureF: 70,
	})
	if res.Air.DensityLbFt3 != air.StandardDensityLbFt3 {
		t.Errorf("density = %v, want the standard %v", res.Air.DensityLbFt3, air.StandardDensityLbFt3)
	}
	if res.Air.ViscosityLbFtS != air.StandardViscosityLbFtS {
		t.Errorf("viscosity = %v, want the standard %v", res.Air.ViscosityLbFtS, air.StandardViscosityLbFtS)
	}
}
