// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/sagaforge/saga-api/internal/services/character Service

import (
	"context"

	"github.com/sagaforge/saga-api/internal/entities/character"
)

// Service defines the interface for character operations
type Service interface {
	// Creation lifecycle
	StartCreation(ctx context.Context, input *StartCreationInput) (*StartCreationOutput, error)
	GetCreation(ctx context.Context, input *GetCreationInput) (*GetCreationOutput, error)
	AdjustStat(ctx context.Context, input *AdjustStatInput) (*AdjustStatOutput, error)
	SetField(ctx context.Context, input *SetFieldInput) (*SetFieldOutput, error)
	RollStats(ctx context.Context, input *RollStatsInput) (*RollStatsOutput, error)
	FinalizeCreation(ctx context.Context, input *FinalizeCreationInput) (*FinalizeCreationOutput, error)

	// Completed character operations
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Gameplay updates
	ApplyStatUpdates(ctx context.Context, input *ApplyStatUpdatesInput) (*ApplyStatUpdatesOutput, error)

	// Sharing
	ShareCharacter(ctx context.Context, input *ShareCharacterInput) (*ShareCharacterOutput, error)
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)
}

// Creation is the view of an in-progress character creation returned by
// every creation operation: the persisted draft plus the derived budget
// and completeness state.
type Creation struct {
	ID              string
	EngineID        string
	PlayerID        string
	CampaignID      string
	Stats           map[string]int
	FormData        map[string]any
	SpentPoints     int
	RemainingPoints *int // nil when the engine has no point budget
	MissingFields   []string
}

// Creation lifecycle types

// StartCreationInput defines the request for starting a creation
type StartCreationInput struct {
	EngineID   string
	PlayerID   string
	CampaignID string // Optional
}

// StartCreationOutput defines the response for starting a creation
type StartCreationOutput struct {
	Creation *Creation
}

// GetCreationInput defines the request for getting a creation
type GetCreationInput struct {
	CreationID string
}

// GetCreationOutput defines the response for getting a creation
type GetCreationOutput struct {
	Creation *Creation
}

// AdjustStatInput defines the request for setting a stat during creation
type AdjustStatInput struct {
	CreationID string
	StatID     string
	Delta      int
}

// AdjustStatOutput defines the response for setting a stat during creation
type AdjustStatOutput struct {
	Creation *Creation
	Applied  bool
}

// SetFieldInput defines the request for setting a form field during creation
type SetFieldInput struct {
	CreationID string
	FieldID    string
	Value      any
}

// SetFieldOutput defines the response for setting a form field during creation
type SetFieldOutput struct {
	Creation *Creation
	Applied  bool
}

// RollStatsInput defines the request for rolling a full stat line
type RollStatsInput struct {
	CreationID string
}

// RollStatsOutput defines the response for rolling a full stat line
type RollStatsOutput struct {
	Creation *Creation
}

// FinalizeCreationInput defines the request for finalizing a creation
type FinalizeCreationInput struct {
	CreationID string
	Name       string
}

// FinalizeCreationOutput defines the response for finalizing a creation
type FinalizeCreationOutput struct {
	Character *character.Character
}

// Completed character types

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *character.Character
	Document  character.Document
}

// GetSheetInput defines the request for rendering a character sheet
type GetSheetInput struct {
	CharacterID string
}

// GetSheetOutput defines the response for rendering a character sheet
type GetSheetOutput struct {
	Sheet *character.Sheet
}

// ListCharactersInput defines the request for listing characters.
// Exactly one of PlayerID or CampaignID must be set.
type ListCharactersInput struct {
	PlayerID   string
	CampaignID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*character.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// Gameplay update types

// StatUpdate is a single named stat change coming from gameplay. The name
// may be a display name or an abbreviation rather than a field ID.
type StatUpdate struct {
	Name  string
	Value int
}

// ApplyStatUpdatesInput defines the request for applying gameplay stat updates
type ApplyStatUpdatesInput struct {
	CharacterID string
	Updates     []StatUpdate
}

// ApplyStatUpdatesOutput defines the response for applying gameplay stat updates
type ApplyStatUpdatesOutput struct {
	Document character.Document
}

// Sharing types

// ShareCharacterInput defines the request for exporting a share code
type ShareCharacterInput struct {
	CharacterID string
}

// ShareCharacterOutput defines the response for exporting a share code
type ShareCharacterOutput struct {
	Code string
}

// ImportCharacterInput defines the request for importing a shared character
type ImportCharacterInput struct {
	Code     string
	PlayerID string
}

// ImportCharacterOutput defines the response for importing a shared character
type ImportCharacterOutput struct {
	Character *character.Character
}
