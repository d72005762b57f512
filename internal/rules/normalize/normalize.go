// Package normalize projects any world's character document into the
// unified sheet view model. The display layer renders sheets without
// per-world branching; world-specific widgets opt in through the extras
// map by key presence.
//
// Normalize never fails. A partially-formed or AI-corrupted document
// yields a partial sheet, because rendering something always beats
// crashing the client.
package normalize

import (
	"github.com/sagaforge/saga-api/internal/entities/character"
	"github.com/sagaforge/saga-api/internal/entities/engine"
	"github.com/sagaforge/saga-api/internal/rules/statmap"
)

// legacyAliases maps a schema resource id to the older document keys that
// may still hold its value. Consulted only at this boundary; the rest of
// the system sees native ids.
var legacyAliases = map[string][]string{
	"hp":     {"health"},
	"mana":   {"mp"},
	"spirit": {"stamina"},
	"ap":     {"actionPoints"},
}

// reservedKeys are document fields consumed by the fixed part of the
// sheet; they never appear in extras.
var reservedKeys = map[string]bool{
	"id": true, "engineId": true, "playerId": true, "campaignId": true,
	"name": true, "level": true, "rank": true, "class": true,
	"stats": true, "resources": true, "inventory": true, "abilities": true,
	"createdAt": true, "updatedAt": true,
}

// Normalize builds the unified sheet for a character document under its
// engine schema. Field ordering follows the schema's declared order so
// display is stable across runs.
func Normalize(doc character.Document, schema *engine.Schema) *character.Sheet {
	if doc == nil {
		doc = character.Document{}
	}

	sheet := &character.Sheet{
		Name:      coerceString(doc["name"], "Unknown"),
		Rank:      coerceString(doc["rank"], ""),
		Level:     coerceInt(doc["level"], 0),
		Class:     coerceString(doc["class"], ""),
		Resources: []character.ResourceView{},
		Stats:     []character.StatView{},
		Inventory: []character.ItemView{},
		Abilities: []character.AbilityView{},
	}

	consumed := make(map[string]bool)
	sheet.Resources = normalizeResources(doc, schema, consumed)
	sheet.Stats = normalizeStats(doc, schema)
	sheet.Inventory = normalizeInventory(doc)
	sheet.Abilities = normalizeAbilities(doc)
	sheet.Extras = collectExtras(doc, consumed)

	return sheet
}

// normalizeResources resolves each declared resource in order: the nested
// resources map, then a top-level field, then legacy aliases. Entries
// with no resolvable data are omitted entirely rather than rendered as a
// zero or NaN bar.
func normalizeResources(doc character.Document, schema *engine.Schema, consumed map[string]bool) []character.ResourceView {
	views := make([]character.ResourceView, 0, len(schema.Resources))

	nested, _ := asMap(doc["resources"])

	for _, res := range schema.Resources {
		pool, ok := resolvePool(nested[res.ID])
		if !ok {
			pool, ok = resolvePool(doc[res.ID])
		}
		if !ok {
			for _, alias := range legacyAliases[res.ID] {
				pool, ok = resolvePool(doc[alias])
				if ok {
					consumed[alias] = true
					break
				}
			}
		}
		if !ok {
			continue
		}
		// a stray top-level key with the resource's name must not leak
		// into extras, whichever source the pool came from
		consumed[res.ID] = true

		percent := 0.0
		if pool.Max > 0 {
			percent = float64(pool.Current) / float64(pool.Max) * 100
		}
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}

		views = append(views, character.ResourceView{
			ID:      res.ID,
			Name:    res.Name,
			Current: pool.Current,
			Max:     pool.Max,
			Percent: percent,
			Color:   res.Color,
			Icon:    res.Icon,
		})
	}

	return views
}

// resolvePool accepts either a {current,max} object or a bare number,
// which is treated as a full pool of that size.
func resolvePool(v any) (character.Pool, bool) {
	if m, ok := asMap(v); ok {
		current, okCur := coerceNumber(m["current"])
		maxVal, okMax := coerceNumber(m["max"])
		if !okCur && !okMax {
			return character.Pool{}, false
		}
		if !okMax {
			maxVal = current
		}
		if !okCur {
			current = maxVal
		}
		if current < 0 {
			current = 0
		}
		return character.Pool{Current: current, Max: maxVal}, true
	}

	if n, ok := coerceNumber(v); ok {
		if n < 0 {
			n = 0
		}
		return character.Pool{Current: n, Max: n}, true
	}

	return character.Pool{}, false
}

func normalizeStats(doc character.Document, schema *engine.Schema) []character.StatView {
	views := make([]character.StatView, 0, len(schema.Stats))

	stats, _ := asMap(doc["stats"])

	for _, stat := range schema.Stats {
		value := stat.Default
		if v, ok := coerceNumber(stats[stat.ID]); ok {
			value = v
		}

		view := character.StatView{
			ID:           stat.ID,
			Name:         stat.Name,
			Abbreviation: stat.Abbreviation,
			Value:        value,
		}
		if stat.ModifierEligible() {
			mod := statmap.Modifier(value)
			view.Modifier = &mod
		}
		views = append(views, view)
	}

	return views
}

func normalizeInventory(doc character.Document) []character.ItemView {
	items, _ := asSlice(doc["inventory"])
	views := make([]character.ItemView, 0, len(items))

	for _, raw := range items {
		m, ok := asMap(raw)
		if !ok {
			continue
		}
		name := coerceString(m["name"], "")
		if name == "" {
			continue
		}
		quantity := coerceInt(m["quantity"], 1)
		if quantity < 1 {
			quantity = 1
		}
		views = append(views, character.ItemView{
			Name:     name,
			Quantity: quantity,
			Equipped: coerceBool(m["equipped"], false),
		})
	}

	return views
}

func normalizeAbilities(doc character.Document) []character.AbilityView {
	abilities, _ := asSlice(doc["abilities"])
	views := make([]character.AbilityView, 0, len(abilities))

	for _, raw := range abilities {
		m, ok := asMap(raw)
		if !ok {
			continue
		}
		name := coerceString(m["name"], "")
		if name == "" {
			continue
		}
		views = append(views, character.AbilityView{
			Name:            name,
			Rank:            coerceString(m["rank"], ""),
			Type:            coerceString(m["type"], ""),
			CurrentCooldown: coerceInt(m["currentCooldown"], 0),
		})
	}

	return views
}

// collectExtras passes through world-specific structures the fixed sheet
// does not consume: any object or list value with a recognizable shape,
// keyed by its original field name. The view layer discovers widgets by
// key presence, not by world tag.
func collectExtras(doc character.Document, consumed map[string]bool) map[string]any {
	extras := make(map[string]any)

	for key, value := range doc {
		if reservedKeys[key] || consumed[key] {
			continue
		}
		if hasRecognizableShape(value) {
			extras[key] = value
		}
	}

	if len(extras) == 0 {
		return nil
	}
	return extras
}

// hasRecognizableShape admits {current,max}-style objects, non-empty maps,
// and lists of named objects. Bare primitives are creation form answers
// and stay out of the sheet.
func hasRecognizableShape(v any) bool {
	if m, ok := asMap(v); ok {
		return len(m) > 0
	}
	if s, ok := asSlice(v); ok {
		if len(s) == 0 {
			return false
		}
		m, ok := asMap(s[0])
		if !ok {
			return false
		}
		_, hasName := m["name"]
		return hasName
	}
	return false
}
