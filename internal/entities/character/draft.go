package character

// Draft is the persisted snapshot of an in-progress creation session.
// The rules live in the creation package; this is the data that survives
// between requests. Timestamps are unix seconds.
type Draft struct {
	ID         string         `json:"id"`
	PlayerID   string         `json:"playerId"`
	CampaignID string         `json:"campaignId,omitempty"`
	EngineID   string         `json:"engineId"`
	Stats      map[string]int `json:"stats"`
	FormData   map[string]any `json:"formData"`
	CreatedAt  int64          `json:"createdAt"`
	UpdatedAt  int64          `json:"updatedAt"`
	ExpiresAt  int64          `json:"expiresAt,omitempty"`
}
