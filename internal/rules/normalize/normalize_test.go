package normalize_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagaforge/saga-api/internal/engines"
	"github.com/sagaforge/saga-api/internal/entities/character"
	"github.com/sagaforge/saga-api/internal/rules/normalize"
)

// jsonDoc builds a document the way it arrives in production: through a
// JSON round-trip, so numbers are float64.
func jsonDoc(t *testing.T, raw string) character.Document {
	t.Helper()
	var doc character.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestNormalizeClassicCharacter(t *testing.T) {
	doc := jsonDoc(t, `{
		"name": "Azrael",
		"level": 3,
		"class": "Warrior",
		"stats": {"strength": 15, "dexterity": 8},
		"resources": {
			"hp": {"current": 34, "max": 40},
			"mana": {"current": 5, "max": 10}
		},
		"inventory": [
			{"name": "Longsword", "quantity": 1, "equipped": true},
			{"name": "Torch", "quantity": 3}
		],
		"abilities": [
			{"name": "Cleave", "type": "attack", "currentCooldown": 2}
		]
	}`)

	sheet := normalize.Normalize(doc, engines.Classic())

	assert.Equal(t, "Azrael", sheet.Name)
	assert.Equal(t, 3, sheet.Level)
	assert.Equal(t, "Warrior", sheet.Class)
	assert.Empty(t, sheet.Rank)

	// stamina has no data: omitted, not zeroed
	require.Len(t, sheet.Resources, 2)
	assert.Equal(t, "hp", sheet.Resources[0].ID)
	assert.Equal(t, 34, sheet.Resources[0].Current)
	assert.InDelta(t, 85.0, sheet.Resources[0].Percent, 0.001)
	assert.Equal(t, "mana", sheet.Resources[1].ID)

	// schema declaration order, absent stats at their defaults
	require.Len(t, sheet.Stats, 6)
	assert.Equal(t, "strength", sheet.Stats[0].ID)
	assert.Equal(t, 15, sheet.Stats[0].Value)
	require.NotNil(t, sheet.Stats[0].Modifier)
	assert.Equal(t, 2, *sheet.Stats[0].Modifier)
	assert.Equal(t, "dexterity", sheet.Stats[1].ID)
	assert.Equal(t, -1, *sheet.Stats[1].Modifier)
	assert.Equal(t, 10, sheet.Stats[2].Value, "missing stat uses schema default")

	require.Len(t, sheet.Inventory, 2)
	assert.True(t, sheet.Inventory[0].Equipped)
	assert.Equal(t, 3, sheet.Inventory[1].Quantity)

	require.Len(t, sheet.Abilities, 1)
	assert.Equal(t, "Cleave", sheet.Abilities[0].Name)
	assert.Equal(t, 2, sheet.Abilities[0].CurrentCooldown)
}

func TestNormalizeOmitsMissingResource(t *testing.T) {
	// schema declares mana but the document has none: the sheet must omit
	// it rather than emit a NaN percent
	doc := jsonDoc(t, `{"name": "Nym", "resources": {"hp": {"current": 10, "max": 20}}}`)

	sheet := normalize.Normalize(doc, engines.Classic())

	require.Len(t, sheet.Resources, 1)
	assert.Equal(t, "hp", sheet.Resources[0].ID)
}

func TestNormalizeNestedResourceShadowsStrayTopLevelKey(t *testing.T) {
	// the nested pool wins, and the stray top-level object with the same
	// name must be treated as consumed, not surfaced as an extra
	doc := jsonDoc(t, `{
		"name": "Nym",
		"resources": {"hp": {"current": 10, "max": 20}},
		"hp": {"current": 99, "max": 99}
	}`)

	sheet := normalize.Normalize(doc, engines.Classic())

	require.Len(t, sheet.Resources, 1)
	assert.Equal(t, 10, sheet.Resources[0].Current)
	assert.NotContains(t, sheet.Extras, "hp")
}

func TestNormalizeLegacyAliases(t *testing.T) {
	// old documents store hp under "health" at the top level
	doc := jsonDoc(t, `{"name": "Old Save", "health": {"current": 12, "max": 30}}`)

	sheet := normalize.Normalize(doc, engines.Classic())

	require.Len(t, sheet.Resources, 1)
	assert.Equal(t, "hp", sheet.Resources[0].ID)
	assert.Equal(t, 12, sheet.Resources[0].Current)

	// the consumed alias must not leak into extras
	assert.NotContains(t, sheet.Extras, "health")
}

func TestNormalizePercentClamping(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		percent float64
	}{
		{"overfull clamps to 100", `{"hp": {"current": 50, "max": 10}}`, 100},
		{"negative current treated as empty", `{"hp": {"current": -5, "max": 10}}`, 0},
		{"zero max is zero percent", `{"hp": {"current": 5, "max": 0}}`, 0},
		{"bare number is a full pool", `{"hp": 25}`, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sheet := normalize.Normalize(jsonDoc(t, tc.raw), engines.Classic())
			require.Len(t, sheet.Resources, 1)
			assert.InDelta(t, tc.percent, sheet.Resources[0].Percent, 0.001)
			assert.GreaterOrEqual(t, sheet.Resources[0].Current, 0)
		})
	}
}

func TestNormalizeWideRangeStatsHaveNoModifier(t *testing.T) {
	doc := jsonDoc(t, `{"name": "Jason", "rank": "Bronze", "stats": {"power": 47}}`)

	sheet := normalize.Normalize(doc, engines.Outworlder())

	assert.Equal(t, "Bronze", sheet.Rank)
	require.Len(t, sheet.Stats, 4)
	assert.Equal(t, 47, sheet.Stats[0].Value)
	assert.Nil(t, sheet.Stats[0].Modifier, "0-100 stats never show modifiers")
}

func TestNormalizeMalformedDocument(t *testing.T) {
	// every fixed field carries the wrong type; the sheet must still come
	// out with defaults instead of crashing or leaking objects
	doc := jsonDoc(t, `{
		"name": {"first": "A"},
		"level": "three",
		"class": 7,
		"stats": "not a map",
		"resources": [1, 2],
		"inventory": [{"quantity": 2}, "sword", {"name": "Rope", "quantity": "many"}],
		"abilities": [42, {"type": "attack"}]
	}`)

	sheet := normalize.Normalize(doc, engines.Classic())

	assert.Equal(t, "Unknown", sheet.Name)
	assert.Equal(t, 0, sheet.Level)
	assert.Equal(t, "7", sheet.Class, "numbers stringify rather than vanish")

	require.Len(t, sheet.Stats, 6)
	for _, sv := range sheet.Stats {
		assert.Equal(t, 10, sv.Value)
	}

	assert.Empty(t, sheet.Resources)

	// only the item with a usable name survives; its bad quantity defaults
	require.Len(t, sheet.Inventory, 1)
	assert.Equal(t, "Rope", sheet.Inventory[0].Name)
	assert.Equal(t, 1, sheet.Inventory[0].Quantity)

	assert.Empty(t, sheet.Abilities)
}

func TestNormalizeNilDocument(t *testing.T) {
	sheet := normalize.Normalize(nil, engines.Classic())
	assert.Equal(t, "Unknown", sheet.Name)
	assert.Empty(t, sheet.Resources)
}

func TestNormalizeExtras(t *testing.T) {
	doc := jsonDoc(t, `{
		"name": "Jason",
		"essences": [
			{"name": "Dark", "rank": "Iron"},
			{"name": "Blood", "rank": "Iron"}
		],
		"confluence": {"name": "Doom", "awakened": false},
		"fateEngine": {"current": 3, "max": 7},
		"origin": "Earth",
		"tags": ["a", "b"]
	}`)

	sheet := normalize.Normalize(doc, engines.Outworlder())

	require.NotNil(t, sheet.Extras)
	assert.Contains(t, sheet.Extras, "essences")
	assert.Contains(t, sheet.Extras, "confluence")
	assert.Contains(t, sheet.Extras, "fateEngine")
	assert.NotContains(t, sheet.Extras, "origin", "bare primitives are not extras")
	assert.NotContains(t, sheet.Extras, "tags", "lists of primitives are not extras")
	assert.NotContains(t, sheet.Extras, "name")

	essences, ok := sheet.Extras["essences"].([]any)
	require.True(t, ok, "extras pass through verbatim")
	assert.Len(t, essences, 2)
}

func TestNormalizeIdempotent(t *testing.T) {
	doc := jsonDoc(t, `{
		"name": "Azrael",
		"level": 3,
		"stats": {"strength": 15},
		"resources": {"hp": {"current": 34, "max": 40}},
		"inventory": [{"name": "Longsword", "equipped": true}],
		"essences": [{"name": "Dark"}]
	}`)
	schema := engines.Classic()

	first := normalize.Normalize(doc, schema)
	second := normalize.Normalize(doc, schema)

	assert.Equal(t, first, second)
}
