package project

// SystemType classifies an air-handling system and selects its velocity limits.
type SystemType string

const (
	SystemSupply     SystemType = "supply"
	SystemReturn     SystemType = "return"
	SystemExhaust    SystemType = "exhaust"
	SystemOutsideAir SystemType = "outside_air"
)

// Valid reports whether t is a recognized system type.
func (t SystemType) Valid() bool {
	switch t {
	case SystemSupply, SystemReturn, SystemExhaust, SystemOutsideAir:
		return true
	}
	return false
}

// Shape is the cross-section geometry of a duct section.
type Shape string

const (
	ShapeRectangular Shape = "rectangular"
	ShapeRound       Shape = "round"
	ShapeOval        Shape = "oval"
)

// Valid reports whether s is a recognized duct shape.
func (s Shape) Valid() bool {
	switch s {
	case ShapeRectangular, ShapeRound, ShapeOval:
		return true
	}
	return false
}

// SectionType distinguishes plain straight runs, flexible duct, and in-line
// equipment with a manufacturer-rated pressure drop.
type SectionType string

const (
	SectionStraight  SectionType = "straight"
	SectionFlex      SectionType = "flex"
	SectionEquipment SectionType = "equipment"
)

// Valid reports whether t is a recognized section type.
func (t SectionType) Valid() bool {
	switch t {
	case SectionStraight, SectionFlex, SectionEquipment:
		return true
	}
	return false
}

// Project is the top-level definition of an air-distribution project.
type Project struct {
	ProjectVersion string   `yaml:"project_version" json:"project_version"`
	Name           string   `yaml:"name" json:"name"`
	Systems        []System `yaml:"systems" json:"systems"`
}

// SystemByID returns the system with the given id, or nil if not found.
func (p *Project) SystemByID(id string) *System {
	for i := range p.Systems {
		if p.Systems[i].ID == id {
			return &p.Systems[i]
		}
	}
	return nil
}

// System is one air-handling system: a fan moving a design airflow through an
// ordered series of duct sections.
type System struct {
	ID             string      `yaml:"id" json:"id"`
	Name           string      `yaml:"name" json:"name"`
	Type           SystemType  `yaml:"type" json:"type"`
	TotalCfm       float64     `yaml:"total_cfm" json:"total_cfm"`
	AltitudeFt     float64     `yaml:"altitude_ft" json:"altitude_ft"`
	TemperatureF   float64     `yaml:"temperature_f" json:"temperature_f"`
	SafetyFactor   float64     `yaml:"safety_factor" json:"safety_factor"`
	MaxVelocityFpm float64     `yaml:"max_velocity_fpm,omitempty" json:"max_velocity_fpm,omitempty"`
	Sections       []Section   `yaml:"sections" json:"sections"`
}

// SectionByID returns the section with the given id, or nil if not found.
func (s *System) SectionByID(id string) *Section {
	for i := range s.Sections {
		if s.Sections[i].ID == id {
			return &s.Sections[i]
		}
	}
	return nil
}

// Section is one segment of the series flow path. Exactly one of DiameterIn or
// WidthIn/HeightIn is meaningful, governed by Shape. SortOrder defines the
// series-flow position.
type Section struct {
	ID            string      `yaml:"id" json:"id"`
	Name          string      `yaml:"name" json:"name"`
	SortOrder     int         `yaml:"sort_order" json:"sort_order"`
	Type          SectionType `yaml:"type" json:"type"`
	Shape         Shape       `yaml:"shape" json:"shape"`
	WidthIn       float64     `yaml:"width_in,omitempty" json:"width_in,omitempty"`
	HeightIn      float64     `yaml:"height_in,omitempty" json:"height_in,omitempty"`
	DiameterIn    float64     `yaml:"diameter_in,omitempty" json:"diameter_in,omitempty"`
	LengthFt      float64     `yaml:"length_ft" json:"length_ft"`
	Material      string      `yaml:"material" json:"material"`
	Liner         string      `yaml:"liner,omitempty" json:"liner,omitempty"`
	AirflowCfm    float64     `yaml:"airflow_cfm" json:"airflow_cfm"`
	FixedDropInWc float64     `yaml:"fixed_drop_in_wc,omitempty" json:"fixed_drop_in_wc,omitempty"`
	Fittings      []Fitting   `yaml:"fittings,omitempty" json:"fittings,omitempty"`
}

// HasFixedDrop reports whether the section is in-line equipment carrying a
// rated pressure drop, which bypasses the fluid-flow pipeline entirely.
func (s *Section) HasFixedDrop() bool {
	return s.Type == SectionEquipment && s.FixedDropInWc > 0
}

// Fitting is one fitting instance on a section. The optional override values
// take precedence over the referenced fitting type's library defaults.
type Fitting struct {
	Type          string   `yaml:"type" json:"type"`
	Quantity      int      `yaml:"quantity" json:"quantity"`
	CCoefficient  *float64 `yaml:"c_coefficient,omitempty" json:"c_coefficient,omitempty"`
	FixedDropInWc *float64 `yaml:"fixed_drop_in_wc,omitempty" json:"fixed_drop_in_wc,omitempty"`
}
