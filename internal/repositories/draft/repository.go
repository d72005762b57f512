// Package draft defines the interface for creation draft persistence
package draft

//go:generate mockgen -destination=mock/mock_repository.go -package=draftmock github.com/sagaforge/saga-api/internal/repositories/draft Repository

import (
	"context"

	"github.com/sagaforge/saga-api/internal/entities/character"
)

// Repository defines the interface for creation draft persistence.
// Implements a single-draft-per-player pattern: starting a new creation
// replaces whatever the player had in progress.
type Repository interface {
	// Create creates or replaces a player's creation draft
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a creation draft by ID
	// Returns errors.NotFound if the draft doesn't exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByPlayerID retrieves the player's single draft
	// Returns errors.NotFound if the player has no draft
	GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error)

	// Update updates an existing creation draft
	// Returns errors.NotFound if the draft doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a creation draft by ID
	// Returns errors.NotFound if the draft doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a draft
type CreateInput struct {
	Draft *character.Draft
}

// CreateOutput defines the output for creating a draft
type CreateOutput struct{}

// GetInput defines the input for getting a draft
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a draft
type GetOutput struct {
	Draft *character.Draft
}

// GetByPlayerIDInput defines the input for getting a player's draft
type GetByPlayerIDInput struct {
	PlayerID string
}

// GetByPlayerIDOutput defines the output for getting a player's draft
type GetByPlayerIDOutput struct {
	Draft *character.Draft
}

// UpdateInput defines the input for updating a draft
type UpdateInput struct {
	Draft *character.Draft
}

// UpdateOutput defines the output for updating a draft
type UpdateOutput struct{}

// DeleteInput defines the input for deleting a draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a draft
type DeleteOutput struct{}
