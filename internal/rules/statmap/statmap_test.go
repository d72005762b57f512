package statmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagaforge/saga-api/internal/engines"
	"github.com/sagaforge/saga-api/internal/rules/statmap"
)

func TestMap(t *testing.T) {
	testCases := []struct {
		name      string
		engineID  string
		requested string
		fieldID   string
		display   string
	}{
		{"classic exact code", "classic", "STR", "strength", "Strength"},
		{"classic native id", "classic", "wisdom", "wisdom", "Wisdom"},
		{"classic mixed case retries uppercase", "classic", "Dex", "dexterity", "Dexterity"},
		{"tactical STR maps to strength", "tactical", "STR", "strength", "Strength"},
		{"tactical legacy DEX maps to agility", "tactical", "DEX", "agility", "Agility"},
		{"outworlder legacy STR maps to power", "outworlder", "STR", "power", "Power"},
		{"outworlder CHA falls back to recovery", "outworlder", "CHA", "recovery", "Recovery"},
		{"unknown name is identity", "classic", "luck", "luck", "luck"},
		{"unknown engine is identity", "voidborn", "STR", "STR", "STR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := statmap.Map(tc.engineID, tc.requested)
			assert.Equal(t, tc.fieldID, m.FieldID)
			assert.Equal(t, tc.display, m.DisplayName)
		})
	}
}

// Every table entry must resolve to a field the engine schema actually
// declares as a stat or resource; a typo here would silently misroute AI
// state updates.
func TestTablesResolveToSchemaFields(t *testing.T) {
	catalog := engines.New()

	for _, schema := range catalog.List() {
		for _, stat := range schema.Stats {
			m := statmap.Map(schema.ID, stat.ID)
			_, isStat := schema.Stat(m.FieldID)
			_, isResource := schema.Resource(m.FieldID)
			assert.True(t, isStat || isResource,
				"engine %s: %s resolves to unknown field %s", schema.ID, stat.ID, m.FieldID)
		}
	}
}

func TestValue(t *testing.T) {
	t.Run("resolves mapped name", func(t *testing.T) {
		got := statmap.Value("tactical", "STR", map[string]int{"strength": 14})
		assert.Equal(t, 14, got)
	})

	t.Run("documented outworlder CHA fallback", func(t *testing.T) {
		got := statmap.Value("outworlder", "CHA", map[string]int{"recovery": 12})
		assert.Equal(t, 12, got)
	})

	t.Run("missing stat yields neutral default", func(t *testing.T) {
		got := statmap.Value("classic", "WIS", map[string]int{"strength": 14})
		assert.Equal(t, statmap.NeutralDefault, got)
	})

	t.Run("nil stats map yields neutral default", func(t *testing.T) {
		got := statmap.Value("classic", "STR", nil)
		assert.Equal(t, 10, got)
	})
}

func TestModifier(t *testing.T) {
	testCases := []struct {
		value    int
		expected int
	}{
		{10, 0},
		{12, 1},
		{8, -1},
		{20, 5},
		{7, -2},
		{11, 0},
		{9, -1},
		{3, -4},
		{1, -5},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, statmap.Modifier(tc.value), "Modifier(%d)", tc.value)
	}
}
