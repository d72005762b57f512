// Package engine defines the data model for a rule system: the stats,
// resources, progression, and creation form that a world module declares.
// Schemas are data, not code; everything downstream (creation sessions,
// stat mapping, sheet normalization) is driven by these definitions.
package engine

import (
	"github.com/sagaforge/saga-api/internal/errors"
)

// FieldType enumerates the supported creation form field types
type FieldType string

// Form field types
const (
	FieldText        FieldType = "text"
	FieldNumber      FieldType = "number"
	FieldSelect      FieldType = "select"
	FieldMultiselect FieldType = "multiselect"
	FieldTextarea    FieldType = "textarea"
	FieldSlider      FieldType = "slider"
	FieldCheckbox    FieldType = "checkbox"
	FieldImage       FieldType = "image"
)

// ProgressionType enumerates how characters advance in a world
type ProgressionType string

// Progression types
const (
	ProgressionLevel ProgressionType = "level"
	ProgressionRank  ProgressionType = "rank"
)

// StatDefinition declares one stat of a rule system
type StatDefinition struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`
	Min          int    `json:"min" yaml:"min"`
	Max          int    `json:"max" yaml:"max"`
	Default      int    `json:"default" yaml:"default"`
}

// ModifierEligible reports whether the stat uses the bounded convention
// that the affine modifier formula was designed for. Wide-range stats
// (0-100 style) never show modifiers.
func (s StatDefinition) ModifierEligible() bool {
	return s.Max <= 30
}

// ResourceDefinition declares one depletable pool (hp, mana, action points)
type ResourceDefinition struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Color     string `json:"color" yaml:"color"`
	Icon      string `json:"icon,omitempty" yaml:"icon,omitempty"`
	ShowInHUD bool   `json:"showInHUD" yaml:"showInHUD"`
}

// FieldValidation bounds a numeric form field
type FieldValidation struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// FormFieldDefinition declares one field of the character creation form
type FormFieldDefinition struct {
	ID            string           `json:"id" yaml:"id"`
	Type          FieldType        `json:"type" yaml:"type"`
	Label         string           `json:"label" yaml:"label"`
	Required      bool             `json:"required" yaml:"required"`
	Options       []string         `json:"options,omitempty" yaml:"options,omitempty"`
	DefaultValue  any              `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Validation    *FieldValidation `json:"validation,omitempty" yaml:"validation,omitempty"`
	AIGeneratable bool             `json:"aiGeneratable,omitempty" yaml:"aiGeneratable,omitempty"`
}

// Zero returns the initial value for the field: the declared default when
// present, otherwise the type-specific zero. This is the single place the
// per-type default convention lives.
func (f FormFieldDefinition) Zero() any {
	if f.DefaultValue != nil {
		return f.DefaultValue
	}

	switch f.Type {
	case FieldCheckbox:
		return false
	case FieldMultiselect:
		return []string{}
	case FieldSlider, FieldNumber:
		if f.Validation != nil {
			return f.Validation.Min
		}
		return 0
	default:
		// text, textarea, select, image
		return ""
	}
}

// Rank is one step of a rank-based progression ladder
type Rank struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Order int    `json:"order" yaml:"order"`
}

// Progression declares how characters in this world advance
type Progression struct {
	Type     ProgressionType `json:"type" yaml:"type"`
	MaxLevel int             `json:"maxLevel,omitempty" yaml:"maxLevel,omitempty"`
	Ranks    []Rank          `json:"ranks,omitempty" yaml:"ranks,omitempty"`
}

// Schema describes one rule system end to end
type Schema struct {
	ID              string                `json:"id" yaml:"id"`
	Name            string                `json:"name" yaml:"name"`
	Stats           []StatDefinition      `json:"stats" yaml:"stats"`
	StatPointBudget *int                  `json:"statPointBudget,omitempty" yaml:"statPointBudget,omitempty"`
	Resources       []ResourceDefinition  `json:"resources" yaml:"resources"`
	CreationFields  []FormFieldDefinition `json:"creationFields" yaml:"creationFields"`
	Progression     Progression           `json:"progression" yaml:"progression"`
}

// Stat looks up a stat definition by id
func (s *Schema) Stat(id string) (StatDefinition, bool) {
	for _, stat := range s.Stats {
		if stat.ID == id {
			return stat, true
		}
	}
	return StatDefinition{}, false
}

// Resource looks up a resource definition by id
func (s *Schema) Resource(id string) (ResourceDefinition, bool) {
	for _, res := range s.Resources {
		if res.ID == id {
			return res, true
		}
	}
	return ResourceDefinition{}, false
}

// Field looks up a creation form field by id
func (s *Schema) Field(id string) (FormFieldDefinition, bool) {
	for _, f := range s.CreationFields {
		if f.ID == id {
			return f, true
		}
	}
	return FormFieldDefinition{}, false
}

// PrimaryResource returns the first declared resource, the hp-equivalent
// by convention. ok is false for a schema with no resources.
func (s *Schema) PrimaryResource() (ResourceDefinition, bool) {
	if len(s.Resources) == 0 {
		return ResourceDefinition{}, false
	}
	return s.Resources[0], true
}

// RankByOrder returns the rank label for a given ladder position
func (s *Schema) RankByOrder(order int) (Rank, bool) {
	for _, r := range s.Progression.Ranks {
		if r.Order == order {
			return r, true
		}
	}
	return Rank{}, false
}

// Validate checks the schema's internal consistency. A schema that fails
// validation is rejected at registration time, before any session can
// reference it.
func (s *Schema) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", s.ID, vb)
	errors.ValidateRequired("name", s.Name, vb)

	if len(s.Stats) == 0 {
		vb.Field("stats", "at least one stat is required")
	}

	seenStats := make(map[string]bool, len(s.Stats))
	for _, stat := range s.Stats {
		if stat.ID == "" {
			vb.Field("stats", "stat id cannot be empty")
			continue
		}
		if seenStats[stat.ID] {
			vb.Fieldf("stats", "duplicate stat id %q", stat.ID)
		}
		seenStats[stat.ID] = true

		if stat.Min > stat.Max {
			vb.Fieldf("stats", "stat %q min exceeds max", stat.ID)
		}
		if stat.Default < stat.Min || stat.Default > stat.Max {
			vb.Fieldf("stats", "stat %q default outside [min,max]", stat.ID)
		}
	}

	if s.StatPointBudget != nil && *s.StatPointBudget < 0 {
		vb.Field("statPointBudget", "cannot be negative")
	}

	seenResources := make(map[string]bool, len(s.Resources))
	for _, res := range s.Resources {
		if res.ID == "" {
			vb.Field("resources", "resource id cannot be empty")
			continue
		}
		if seenResources[res.ID] {
			vb.Fieldf("resources", "duplicate resource id %q", res.ID)
		}
		seenResources[res.ID] = true
	}

	seenFields := make(map[string]bool, len(s.CreationFields))
	for _, f := range s.CreationFields {
		if f.ID == "" {
			vb.Field("creationFields", "field id cannot be empty")
			continue
		}
		if seenFields[f.ID] {
			vb.Fieldf("creationFields", "duplicate field id %q", f.ID)
		}
		seenFields[f.ID] = true

		switch f.Type {
		case FieldText, FieldNumber, FieldSelect, FieldMultiselect,
			FieldTextarea, FieldSlider, FieldCheckbox, FieldImage:
		default:
			vb.Fieldf("creationFields", "field %q has unknown type %q", f.ID, f.Type)
		}

		if (f.Type == FieldSelect || f.Type == FieldMultiselect) && len(f.Options) == 0 {
			vb.Fieldf("creationFields", "field %q requires options", f.ID)
		}
		if f.Type == FieldSlider && f.Validation == nil {
			vb.Fieldf("creationFields", "slider field %q requires validation bounds", f.ID)
		}
		if f.Validation != nil && f.Validation.Min > f.Validation.Max {
			vb.Fieldf("creationFields", "field %q validation min exceeds max", f.ID)
		}
	}

	switch s.Progression.Type {
	case ProgressionLevel:
		if s.Progression.MaxLevel <= 0 {
			vb.Field("progression", "level progression requires a positive maxLevel")
		}
	case ProgressionRank:
		if len(s.Progression.Ranks) == 0 {
			vb.Field("progression", "rank progression requires a rank ladder")
		}
		seenOrders := make(map[int]bool, len(s.Progression.Ranks))
		for _, r := range s.Progression.Ranks {
			if seenOrders[r.Order] {
				vb.Fieldf("progression", "duplicate rank order %d", r.Order)
			}
			seenOrders[r.Order] = true
		}
	default:
		vb.Fieldf("progression", "unknown progression type %q", s.Progression.Type)
	}

	return vb.Build()
}

// IntPtr is a convenience for declaring optional budgets in schema literals
func IntPtr(v int) *int {
	return &v
}
