package engines

import (
	"github.com/sagaforge/saga-api/internal/entities/engine"
)

// EngineOutworlder is the essence-rank world
const EngineOutworlder = "outworlder"

// Outworlder returns the essence-rank rule system: wide-range stats that
// grow with rank rather than a creation budget, and a rank ladder instead
// of levels. Essence and confluence data ride along as character extras.
func Outworlder() *engine.Schema {
	return &engine.Schema{
		ID:   EngineOutworlder,
		Name: "Outworlder",
		Stats: []engine.StatDefinition{
			{ID: "power", Name: "Power", Abbreviation: "POW", Min: 0, Max: 100, Default: 10},
			{ID: "speed", Name: "Speed", Abbreviation: "SPD", Min: 0, Max: 100, Default: 10},
			{ID: "spirit", Name: "Spirit", Abbreviation: "SPT", Min: 0, Max: 100, Default: 10},
			{ID: "recovery", Name: "Recovery", Abbreviation: "RCV", Min: 0, Max: 100, Default: 10},
		},
		Resources: []engine.ResourceDefinition{
			{ID: "hp", Name: "Health", Color: "#e74c3c", Icon: "heart", ShowInHUD: true},
			{ID: "mana", Name: "Mana", Color: "#9b59b6", Icon: "sparkle", ShowInHUD: true},
			{ID: "stamina", Name: "Stamina", Color: "#f39c12", ShowInHUD: true},
		},
		CreationFields: []engine.FormFieldDefinition{
			{
				ID: "origin", Type: engine.FieldSelect, Label: "Origin", Required: true,
				Options: []string{"Earth", "Pallimustus", "Unknown"},
			},
			{
				ID: "essences", Type: engine.FieldMultiselect, Label: "Essences",
				Options: []string{"Dark", "Blood", "Sin", "Might", "Swift", "Renewal"},
			},
			{ID: "outworlder", Type: engine.FieldCheckbox, Label: "Outworlder"},
			{ID: "backstory", Type: engine.FieldTextarea, Label: "Backstory", AIGeneratable: true},
		},
		Progression: engine.Progression{
			Type: engine.ProgressionRank,
			Ranks: []engine.Rank{
				{ID: "normal", Name: "Normal", Order: 0},
				{ID: "iron", Name: "Iron", Order: 1},
				{ID: "bronze", Name: "Bronze", Order: 2},
				{ID: "silver", Name: "Silver", Order: 3},
				{ID: "gold", Name: "Gold", Order: 4},
				{ID: "diamond", Name: "Diamond", Order: 5},
			},
		},
	}
}
