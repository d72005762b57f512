package statmap

// Mapping is one resolved stat name: the engine's native field id plus the
// label the display layer should show.
type Mapping struct {
	FieldID     string
	DisplayName string
}

// Per-engine translation tables. Keys cover the engine's native ids, the
// generic uppercase codes the AI layer emits, and the legacy D&D-style
// names older campaign data still uses. Adding an engine means adding a
// table here; the lookup logic never changes.
var tables = map[string]map[string]Mapping{
	"classic": {
		"strength":     {FieldID: "strength", DisplayName: "Strength"},
		"dexterity":    {FieldID: "dexterity", DisplayName: "Dexterity"},
		"constitution": {FieldID: "constitution", DisplayName: "Constitution"},
		"intelligence": {FieldID: "intelligence", DisplayName: "Intelligence"},
		"wisdom":       {FieldID: "wisdom", DisplayName: "Wisdom"},
		"charisma":     {FieldID: "charisma", DisplayName: "Charisma"},
		"STR":          {FieldID: "strength", DisplayName: "Strength"},
		"DEX":          {FieldID: "dexterity", DisplayName: "Dexterity"},
		"CON":          {FieldID: "constitution", DisplayName: "Constitution"},
		"INT":          {FieldID: "intelligence", DisplayName: "Intelligence"},
		"WIS":          {FieldID: "wisdom", DisplayName: "Wisdom"},
		"CHA":          {FieldID: "charisma", DisplayName: "Charisma"},
	},
	"outworlder": {
		"power":    {FieldID: "power", DisplayName: "Power"},
		"speed":    {FieldID: "speed", DisplayName: "Speed"},
		"spirit":   {FieldID: "spirit", DisplayName: "Spirit"},
		"recovery": {FieldID: "recovery", DisplayName: "Recovery"},
		"POW":      {FieldID: "power", DisplayName: "Power"},
		"SPD":      {FieldID: "speed", DisplayName: "Speed"},
		"SPT":      {FieldID: "spirit", DisplayName: "Spirit"},
		"RCV":      {FieldID: "recovery", DisplayName: "Recovery"},
		// legacy D&D-style names mapped onto the essence attributes
		"STR": {FieldID: "power", DisplayName: "Power"},
		"DEX": {FieldID: "speed", DisplayName: "Speed"},
		"AGI": {FieldID: "speed", DisplayName: "Speed"},
		"WIS": {FieldID: "spirit", DisplayName: "Spirit"},
		"INT": {FieldID: "spirit", DisplayName: "Spirit"},
		"CON": {FieldID: "recovery", DisplayName: "Recovery"},
		// no charisma analogue exists; recovery is the documented fallback
		"CHA": {FieldID: "recovery", DisplayName: "Recovery"},
	},
	"tactical": {
		"strength":  {FieldID: "strength", DisplayName: "Strength"},
		"agility":   {FieldID: "agility", DisplayName: "Agility"},
		"endurance": {FieldID: "endurance", DisplayName: "Endurance"},
		"tactics":   {FieldID: "tactics", DisplayName: "Tactics"},
		"STR":       {FieldID: "strength", DisplayName: "Strength"},
		"AGI":       {FieldID: "agility", DisplayName: "Agility"},
		"DEX":       {FieldID: "agility", DisplayName: "Agility"},
		"END":       {FieldID: "endurance", DisplayName: "Endurance"},
		"CON":       {FieldID: "endurance", DisplayName: "Endurance"},
		"TAC":       {FieldID: "tactics", DisplayName: "Tactics"},
		"INT":       {FieldID: "tactics", DisplayName: "Tactics"},
	},
}
