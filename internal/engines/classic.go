package engines

import (
	"github.com/sagaforge/saga-api/internal/entities/engine"
)

// EngineClassic is the D&D-style fantasy world
const EngineClassic = "classic"

// Classic returns the classic fantasy rule system: six bounded stats with
// a point-buy budget and level progression.
func Classic() *engine.Schema {
	return &engine.Schema{
		ID:   EngineClassic,
		Name: "Classic Fantasy",
		Stats: []engine.StatDefinition{
			{ID: "strength", Name: "Strength", Abbreviation: "STR", Min: 8, Max: 18, Default: 10},
			{ID: "dexterity", Name: "Dexterity", Abbreviation: "DEX", Min: 8, Max: 18, Default: 10},
			{ID: "constitution", Name: "Constitution", Abbreviation: "CON", Min: 8, Max: 18, Default: 10},
			{ID: "intelligence", Name: "Intelligence", Abbreviation: "INT", Min: 8, Max: 18, Default: 10},
			{ID: "wisdom", Name: "Wisdom", Abbreviation: "WIS", Min: 8, Max: 18, Default: 10},
			{ID: "charisma", Name: "Charisma", Abbreviation: "CHA", Min: 8, Max: 18, Default: 10},
		},
		StatPointBudget: engine.IntPtr(15),
		Resources: []engine.ResourceDefinition{
			{ID: "hp", Name: "Health", Color: "#e74c3c", Icon: "heart", ShowInHUD: true},
			{ID: "mana", Name: "Mana", Color: "#3498db", Icon: "droplet", ShowInHUD: true},
			{ID: "stamina", Name: "Stamina", Color: "#2ecc71", ShowInHUD: false},
		},
		CreationFields: []engine.FormFieldDefinition{
			{
				ID: "class", Type: engine.FieldSelect, Label: "Class", Required: true,
				Options: []string{"Warrior", "Ranger", "Mage", "Cleric", "Rogue"},
			},
			{
				ID: "alignment", Type: engine.FieldSelect, Label: "Alignment",
				Options:      []string{"Lawful", "Neutral", "Chaotic"},
				DefaultValue: "Neutral",
			},
			{ID: "portrait", Type: engine.FieldImage, Label: "Portrait"},
			{ID: "backstory", Type: engine.FieldTextarea, Label: "Backstory", AIGeneratable: true},
		},
		Progression: engine.Progression{Type: engine.ProgressionLevel, MaxLevel: 20},
	}
}
