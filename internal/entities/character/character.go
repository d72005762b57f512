// Package character defines the character entities shared across worlds.
//
// Two shapes matter here. Character is the typed object a creation session
// produces. Document is the loose JSON shape the game-logic/AI layer mutates
// during play; it may drift from the typed shape, which is why the sheet
// normalizer consumes Documents, not Characters.
package character

import "encoding/json"

// Pool is a current/max pair for a depletable resource
type Pool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// InventoryItem is one carried item
type InventoryItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Equipped bool   `json:"equipped,omitempty"`
}

// Ability is one learned ability or skill
type Ability struct {
	Name            string `json:"name"`
	Rank            string `json:"rank,omitempty"`
	Type            string `json:"type,omitempty"`
	CurrentCooldown int    `json:"currentCooldown,omitempty"`
}

// Character is a finalized character. Stats and Resources are keyed by the
// owning engine schema's native ids. Fields carries the creation form
// answers merged in as top-level document fields.
type Character struct {
	ID         string          `json:"id"`
	EngineID   string          `json:"engineId"`
	PlayerID   string          `json:"playerId"`
	CampaignID string          `json:"campaignId,omitempty"`
	Name       string          `json:"name"`
	Level      int             `json:"level,omitempty"`
	Rank       string          `json:"rank,omitempty"`
	Class      string          `json:"class,omitempty"`
	Stats      map[string]int  `json:"stats"`
	Resources  map[string]Pool `json:"resources"`
	Inventory  []InventoryItem `json:"inventory,omitempty"`
	Abilities  []Ability       `json:"abilities,omitempty"`
	Fields     map[string]any  `json:"-"`
	CreatedAt  int64           `json:"createdAt"`
	UpdatedAt  int64           `json:"updatedAt"`
}

// Document is the loose character shape as stored and as handed to the AI
// layer. Values are whatever json.Unmarshal produces.
type Document = map[string]any

// MarshalJSON flattens Fields into the top level so form answers live
// beside the fixed fields, matching the document shape.
func (c *Character) MarshalJSON() ([]byte, error) {
	type alias Character
	base, err := json.Marshal((*alias)(c))
	if err != nil {
		return nil, err
	}

	if len(c.Fields) == 0 {
		return base, nil
	}

	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range c.Fields {
		// fixed fields win over form answers on key collision
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// ToDocument converts the typed character into its loose document form via
// a JSON round-trip, the same shape the repository stores.
func (c *Character) ToDocument() (Document, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
