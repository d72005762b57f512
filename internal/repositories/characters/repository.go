// Package characters provides the interface for character persistence
package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=charactersmock github.com/sagaforge/saga-api/internal/repositories/characters Repository

import (
	"context"

	"github.com/sagaforge/saga-api/internal/entities/character"
)

// Repository defines the interface for character persistence.
//
// Characters are stored as JSON documents. Get returns both the typed
// character and the raw document because the gameplay/AI layer mutates
// documents, while creation and listing work with the typed shape.
type Repository interface {
	// Create creates a new character
	// Returns errors.AlreadyExists if a character with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// UpdateDocument replaces a character's stored document
	// Returns errors.NotFound if the character doesn't exist
	UpdateDocument(ctx context.Context, input UpdateDocumentInput) (*UpdateDocumentOutput, error)

	// Delete deletes a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all characters owned by a player
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)

	// ListByCampaignID retrieves all characters in a campaign
	ListByCampaignID(ctx context.Context, input ListByCampaignIDInput) (*ListByCampaignIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *character.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *character.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *character.Character
	Document  character.Document
}

// UpdateDocumentInput defines the input for replacing a character document
type UpdateDocumentInput struct {
	ID       string
	Document character.Document
}

// UpdateDocumentOutput defines the output for replacing a character document
type UpdateDocumentOutput struct {
	Document character.Document
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing a player's characters
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's characters
type ListByPlayerIDOutput struct {
	Characters []*character.Character
}

// ListByCampaignIDInput defines the input for listing campaign characters
type ListByCampaignIDInput struct {
	CampaignID string
}

// ListByCampaignIDOutput defines the output for listing campaign characters
type ListByCampaignIDOutput struct {
	Characters []*character.Character
}
