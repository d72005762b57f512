// Package statmap translates stat names supplied by rule-agnostic callers
// (the AI layer, legacy campaign data) into an engine's native field ids.
// Every lookup succeeds: unrecognized names fall back to identity so that
// gameplay continues, at the cost of a diagnostic warning.
package statmap

import (
	"math"
	"strings"

	"github.com/rs/zerolog/log"
)

// NeutralDefault is the stat value assumed when a character is missing a
// requested stat entirely. It is the midpoint of the legacy bounded
// convention that the modifier formula is built around.
const NeutralDefault = 10

// Map resolves a requested stat name for an engine. Lookup order: exact
// table match, uppercase retry, identity fallback. The fallback is a
// recoverable condition, not an error.
func Map(engineID, requested string) Mapping {
	if table, ok := tables[engineID]; ok {
		if m, ok := table[requested]; ok {
			return m
		}
		if m, ok := table[strings.ToUpper(requested)]; ok {
			return m
		}
	}

	log.Warn().
		Str("engine", engineID).
		Str("stat", requested).
		Msg("unknown stat name, using identity mapping")

	return Mapping{FieldID: requested, DisplayName: requested}
}

// Value resolves a stat name against a character's stats map. A stat the
// character does not have yields NeutralDefault. Never fails.
func Value(engineID, requested string, stats map[string]int) int {
	m := Map(engineID, requested)

	v, ok := stats[m.FieldID]
	if !ok {
		log.Warn().
			Str("engine", engineID).
			Str("stat", requested).
			Str("field", m.FieldID).
			Msg("stat missing from character, using neutral default")
		return NeutralDefault
	}
	return v
}

// Modifier computes the affine stat modifier floor((v-10)/2). The formula
// is applied uniformly across engines regardless of a stat's natural
// range; changing it would alter observable gameplay numbers.
func Modifier(v int) int {
	return int(math.Floor(float64(v-NeutralDefault) / 2))
}
