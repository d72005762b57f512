package engines

import (
	"github.com/sagaforge/saga-api/internal/entities/engine"
)

// EngineTactical is the tactical-unit world
const EngineTactical = "tactical"

// Tactical returns the tactical-unit rule system: squad-based play with
// action points and a deep level ladder.
func Tactical() *engine.Schema {
	return &engine.Schema{
		ID:   EngineTactical,
		Name: "Tactical Command",
		Stats: []engine.StatDefinition{
			{ID: "strength", Name: "Strength", Abbreviation: "STR", Min: 1, Max: 30, Default: 10},
			{ID: "agility", Name: "Agility", Abbreviation: "AGI", Min: 1, Max: 30, Default: 10},
			{ID: "endurance", Name: "Endurance", Abbreviation: "END", Min: 1, Max: 30, Default: 10},
			{ID: "tactics", Name: "Tactics", Abbreviation: "TAC", Min: 1, Max: 30, Default: 10},
		},
		StatPointBudget: engine.IntPtr(20),
		Resources: []engine.ResourceDefinition{
			{ID: "hp", Name: "Health", Color: "#e74c3c", Icon: "heart", ShowInHUD: true},
			{ID: "ap", Name: "Action Points", Color: "#f1c40f", Icon: "bolt", ShowInHUD: true},
		},
		CreationFields: []engine.FormFieldDefinition{
			{ID: "callsign", Type: engine.FieldText, Label: "Callsign", Required: true},
			{
				ID: "role", Type: engine.FieldSelect, Label: "Role", Required: true,
				Options: []string{"Assault", "Sniper", "Medic", "Engineer", "Commander"},
			},
			{
				ID: "squadSize", Type: engine.FieldSlider, Label: "Squad Size",
				Validation: &engine.FieldValidation{Min: 1, Max: 6},
			},
			{ID: "veteran", Type: engine.FieldCheckbox, Label: "Veteran"},
		},
		Progression: engine.Progression{Type: engine.ProgressionLevel, MaxLevel: 50},
	}
}
