// Package creation implements the character creation session: a single
// mutable workspace seeded from an engine schema, enforcing the schema's
// stat point budget until the character is finalized.
package creation

import (
	"github.com/sagaforge/saga-api/internal/entities/character"
	"github.com/sagaforge/saga-api/internal/entities/engine"
	"github.com/sagaforge/saga-api/internal/errors"
)

// resourceBaseline seeds every resource pool at creation. World-specific
// derivations (hp from a constitution-like stat, etc.) belong to the
// game-logic layer after creation, not here.
const resourceBaseline = 100

// Session holds the in-progress state of one character creation. It is
// single-writer: one active creation per player, no sharing across
// goroutines.
type Session struct {
	schema   *engine.Schema
	stats    map[string]int
	formData map[string]any
}

// New creates a session seeded with the schema's stat defaults and
// per-field-type form defaults.
func New(schema *engine.Schema) *Session {
	s := &Session{schema: schema}
	s.Reset(schema)
	return s
}

// Restore rebuilds a session from persisted stats and form data, dropping
// any entries the schema no longer declares.
func Restore(schema *engine.Schema, stats map[string]int, formData map[string]any) *Session {
	s := New(schema)
	for id, v := range stats {
		if stat, ok := schema.Stat(id); ok {
			s.stats[id] = clamp(v, stat.Min, stat.Max)
		}
	}
	for id, v := range formData {
		if _, ok := schema.Field(id); ok {
			s.formData[id] = v
		}
	}
	return s
}

// Reset re-seeds the session from a schema. Prior state is fully
// replaced, never merged; re-invoking with the same schema is idempotent.
func (s *Session) Reset(schema *engine.Schema) {
	s.schema = schema
	s.stats = make(map[string]int, len(schema.Stats))
	for _, stat := range schema.Stats {
		s.stats[stat.ID] = stat.Default
	}
	s.formData = make(map[string]any, len(schema.CreationFields))
	for _, f := range schema.CreationFields {
		s.formData[f.ID] = f.Zero()
	}
}

// Schema returns the schema this session was seeded from
func (s *Session) Schema() *engine.Schema {
	return s.schema
}

// Stats returns a copy of the current stat values
func (s *Session) Stats() map[string]int {
	out := make(map[string]int, len(s.stats))
	for k, v := range s.stats {
		out[k] = v
	}
	return out
}

// FormData returns a copy of the current form values
func (s *Session) FormData() map[string]any {
	out := make(map[string]any, len(s.formData))
	for k, v := range s.formData {
		out[k] = v
	}
	return out
}

// Stat returns the current value of one stat
func (s *Session) Stat(id string) (int, bool) {
	v, ok := s.stats[id]
	return v, ok
}

// AdjustStat applies a delta to a stat, clamped to the stat's declared
// range. When the schema carries a point budget, an adjustment whose
// resulting spend exceeds the budget is rejected and state is unchanged.
// Unknown stat ids are a no-op. Returns whether the adjustment applied.
func (s *Session) AdjustStat(statID string, delta int) bool {
	stat, ok := s.schema.Stat(statID)
	if !ok {
		return false
	}

	candidate := clamp(s.stats[statID]+delta, stat.Min, stat.Max)
	if candidate == s.stats[statID] {
		return false
	}

	if s.schema.StatPointBudget != nil {
		if s.spentWith(statID, candidate) > *s.schema.StatPointBudget {
			return false
		}
	}

	s.stats[statID] = candidate
	return true
}

// SetField records a form value. Unknown field ids are a no-op. Slider
// and number values are clamped to the field's validation bounds.
func (s *Session) SetField(fieldID string, value any) bool {
	f, ok := s.schema.Field(fieldID)
	if !ok {
		return false
	}

	if f.Validation != nil {
		if n, ok := asInt(value); ok {
			value = clamp(n, f.Validation.Min, f.Validation.Max)
		}
	}

	s.formData[fieldID] = value
	return true
}

// SpentPoints is the points-above-default accounting: only values raised
// above their default cost points, and lowering a stat below its default
// never earns points back beyond the budget ceiling.
func (s *Session) SpentPoints() int {
	return s.spentWith("", 0)
}

// RemainingPoints returns budget minus spent, or nil when the schema has
// no budget configured.
func (s *Session) RemainingPoints() *int {
	if s.schema.StatPointBudget == nil {
		return nil
	}
	remaining := *s.schema.StatPointBudget - s.SpentPoints()
	return &remaining
}

// spentWith computes total spend substituting candidate for the stat
// being adjusted. The same computation backs AdjustStat and
// RemainingPoints so the two can never disagree.
func (s *Session) spentWith(statID string, candidate int) int {
	spent := 0
	for _, stat := range s.schema.Stats {
		v := s.stats[stat.ID]
		if stat.ID == statID {
			v = candidate
		}
		if over := v - stat.Default; over > 0 {
			spent += over
		}
	}
	return spent
}

// MissingRequiredFields lists required form fields that are still empty,
// in schema declaration order.
func (s *Session) MissingRequiredFields() []string {
	var missing []string
	for _, f := range s.schema.CreationFields {
		if !f.Required {
			continue
		}
		if isEmptyValue(s.formData[f.ID]) {
			missing = append(missing, f.ID)
		}
	}
	return missing
}

// Finalize assembles the completed character. Required fields must be
// filled; the resulting error identifies every missing field id so the
// creation UI can highlight them. Finalize never persists.
func (s *Session) Finalize(name string) (*character.Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	for _, id := range s.MissingRequiredFields() {
		vb.RequiredField(id)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := &character.Character{
		EngineID:  s.schema.ID,
		Name:      name,
		Stats:     s.Stats(),
		Resources: make(map[string]character.Pool, len(s.schema.Resources)),
		Fields:    s.FormData(),
	}

	for _, res := range s.schema.Resources {
		c.Resources[res.ID] = character.Pool{Current: resourceBaseline, Max: resourceBaseline}
	}

	switch s.schema.Progression.Type {
	case engine.ProgressionRank:
		if r, ok := s.schema.RankByOrder(0); ok {
			c.Rank = r.Name
		}
	default:
		c.Level = 1
	}

	if class, ok := s.formData["class"].(string); ok {
		c.Class = class
	}

	return c, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	default:
		return false
	}
}
