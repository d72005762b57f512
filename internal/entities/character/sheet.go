package character

// Sheet is the world-agnostic projection of a character that the display
// layer renders. The normalizer guarantees its numeric fields are sane no
// matter how malformed the source document was.
type Sheet struct {
	Name      string         `json:"name"`
	Rank      string         `json:"rank,omitempty"`
	Level     int            `json:"level"`
	Class     string         `json:"class,omitempty"`
	Resources []ResourceView `json:"resources"`
	Stats     []StatView     `json:"stats"`
	Inventory []ItemView     `json:"inventory"`
	Abilities []AbilityView  `json:"abilities"`
	Extras    map[string]any `json:"extras,omitempty"`
}

// ResourceView is one resource bar. Percent is always within [0,100].
type ResourceView struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Current int     `json:"current"`
	Max     int     `json:"max"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color,omitempty"`
	Icon    string  `json:"icon,omitempty"`
}

// StatView is one stat line. Modifier is nil for stats whose range does
// not follow the bounded convention.
type StatView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Value        int    `json:"value"`
	Modifier     *int   `json:"modifier,omitempty"`
}

// ItemView is one inventory line
type ItemView struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Equipped bool   `json:"equipped"`
}

// AbilityView is one ability line
type AbilityView struct {
	Name            string `json:"name"`
	Rank            string `json:"rank,omitempty"`
	Type            string `json:"type,omitempty"`
	CurrentCooldown int    `json:"currentCooldown,omitempty"`
}
