// Package character implements the character orchestrator
package character

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/sagaforge/saga-api/internal/engines"
	entities "github.com/sagaforge/saga-api/internal/entities/character"
	"github.com/sagaforge/saga-api/internal/errors"
	"github.com/sagaforge/saga-api/internal/pkg/clock"
	"github.com/sagaforge/saga-api/internal/pkg/idgen"
	charrepo "github.com/sagaforge/saga-api/internal/repositories/characters"
	draftrepo "github.com/sagaforge/saga-api/internal/repositories/draft"
	"github.com/sagaforge/saga-api/internal/rules/creation"
	"github.com/sagaforge/saga-api/internal/rules/normalize"
	"github.com/sagaforge/saga-api/internal/rules/sharecode"
	"github.com/sagaforge/saga-api/internal/rules/statmap"
	charsvc "github.com/sagaforge/saga-api/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo charrepo.Repository
	DraftRepo     draftrepo.Repository
	Catalog       *engines.Catalog

	// Optional; defaulted by New
	CharacterIDGenerator idgen.Generator
	DraftIDGenerator     idgen.Generator
	Clock                clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo charrepo.Repository
	draftRepo     draftrepo.Repository
	catalog       *engines.Catalog
	charIDGen     idgen.Generator
	draftIDGen    idgen.Generator
	clock         clock.Clock
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	charIDGen := cfg.CharacterIDGenerator
	if charIDGen == nil {
		charIDGen = idgen.NewUUID("char")
	}
	draftIDGen := cfg.DraftIDGenerator
	if draftIDGen == nil {
		draftIDGen = idgen.NewUUID("creation")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		draftRepo:     cfg.DraftRepo,
		catalog:       cfg.Catalog,
		charIDGen:     charIDGen,
		draftIDGen:    draftIDGen,
		clock:         c,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ charsvc.Service = (*Orchestrator)(nil)

// Creation lifecycle methods

// StartCreation opens a new creation session against an engine and
// persists it as the player's single active draft.
func (o *Orchestrator) StartCreation(
	ctx context.Context,
	input *charsvc.StartCreationInput,
) (*charsvc.StartCreationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("engineID", input.EngineID, vb)
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	schema, err := o.catalog.Get(input.EngineID)
	if err != nil {
		return nil, err
	}

	sess := creation.New(schema)
	now := o.clock.Now().Unix()
	draft := &entities.Draft{
		ID:         o.draftIDGen.Generate(),
		PlayerID:   input.PlayerID,
		CampaignID: input.CampaignID,
		EngineID:   schema.ID,
		Stats:      sess.Stats(),
		FormData:   sess.FormData(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := o.draftRepo.Create(ctx, draftrepo.CreateInput{Draft: draft}); err != nil {
		return nil, err
	}

	return &charsvc.StartCreationOutput{Creation: creationView(draft, sess)}, nil
}

// GetCreation returns the current state of a creation session
func (o *Orchestrator) GetCreation(
	ctx context.Context,
	input *charsvc.GetCreationInput,
) (*charsvc.GetCreationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CreationID == "" {
		return nil, errors.InvalidArgument("creationID is required")
	}

	draft, sess, err := o.restore(ctx, input.CreationID)
	if err != nil {
		return nil, err
	}

	return &charsvc.GetCreationOutput{Creation: creationView(draft, sess)}, nil
}

// AdjustStat applies a delta to one stat, subject to range and budget
func (o *Orchestrator) AdjustStat(
	ctx context.Context,
	input *charsvc.AdjustStatInput,
) (*charsvc.AdjustStatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("creationID", input.CreationID, vb)
	errors.ValidateRequired("statID", input.StatID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, sess, err := o.restore(ctx, input.CreationID)
	if err != nil {
		return nil, err
	}

	applied := sess.AdjustStat(input.StatID, input.Delta)
	if applied {
		if err := o.saveDraft(ctx, draft, sess); err != nil {
			return nil, err
		}
	}

	return &charsvc.AdjustStatOutput{
		Creation: creationView(draft, sess),
		Applied:  applied,
	}, nil
}

// SetField records a creation form answer
func (o *Orchestrator) SetField(
	ctx context.Context,
	input *charsvc.SetFieldInput,
) (*charsvc.SetFieldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("creationID", input.CreationID, vb)
	errors.ValidateRequired("fieldID", input.FieldID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, sess, err := o.restore(ctx, input.CreationID)
	if err != nil {
		return nil, err
	}

	applied := sess.SetField(input.FieldID, input.Value)
	if applied {
		if err := o.saveDraft(ctx, draft, sess); err != nil {
			return nil, err
		}
	}

	return &charsvc.SetFieldOutput{
		Creation: creationView(draft, sess),
		Applied:  applied,
	}, nil
}

// RollStats replaces the full stat line with rolled values
func (o *Orchestrator) RollStats(
	ctx context.Context,
	input *charsvc.RollStatsInput,
) (*charsvc.RollStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CreationID == "" {
		return nil, errors.InvalidArgument("creationID is required")
	}

	draft, sess, err := o.restore(ctx, input.CreationID)
	if err != nil {
		return nil, err
	}

	if _, err := sess.RollStats(); err != nil {
		return nil, err
	}
	if err := o.saveDraft(ctx, draft, sess); err != nil {
		return nil, err
	}

	return &charsvc.RollStatsOutput{Creation: creationView(draft, sess)}, nil
}

// FinalizeCreation turns a completed draft into a persisted character
func (o *Orchestrator) FinalizeCreation(
	ctx context.Context,
	input *charsvc.FinalizeCreationInput,
) (*charsvc.FinalizeCreationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CreationID == "" {
		return nil, errors.InvalidArgument("creationID is required")
	}

	draft, sess, err := o.restore(ctx, input.CreationID)
	if err != nil {
		return nil, err
	}

	char, err := sess.Finalize(input.Name)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	char.ID = o.charIDGen.Generate()
	char.PlayerID = draft.PlayerID
	char.CampaignID = draft.CampaignID
	char.CreatedAt = now
	char.UpdatedAt = now

	if _, err := o.characterRepo.Create(ctx, charrepo.CreateInput{Character: char}); err != nil {
		return nil, err
	}

	// The draft is spent; losing the delete only leaves it to expire.
	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{ID: draft.ID}); err != nil {
		log.Warn().
			Err(err).
			Str("creation_id", draft.ID).
			Msg("failed to delete finalized draft")
	}

	return &charsvc.FinalizeCreationOutput{Character: char}, nil
}

// Completed character methods

// GetCharacter returns a character in both typed and document form
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *charsvc.GetCharacterInput,
) (*charsvc.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("characterID is required")
	}

	output, err := o.characterRepo.Get(ctx, charrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	return &charsvc.GetCharacterOutput{
		Character: output.Character,
		Document:  output.Document,
	}, nil
}

// GetSheet renders a character's stored document into the unified sheet view
func (o *Orchestrator) GetSheet(
	ctx context.Context,
	input *charsvc.GetSheetInput,
) (*charsvc.GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("characterID is required")
	}

	output, err := o.characterRepo.Get(ctx, charrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	schema, err := o.catalog.Get(output.Character.EngineID)
	if err != nil {
		return nil, err
	}

	return &charsvc.GetSheetOutput{Sheet: normalize.Normalize(output.Document, schema)}, nil
}

// ListCharacters lists characters by player or by campaign
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *charsvc.ListCharactersInput,
) (*charsvc.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch {
	case input.PlayerID != "" && input.CampaignID != "":
		return nil, errors.InvalidArgument("provide either playerID or campaignID, not both")
	case input.PlayerID != "":
		output, err := o.characterRepo.ListByPlayerID(ctx, charrepo.ListByPlayerIDInput{
			PlayerID: input.PlayerID,
		})
		if err != nil {
			return nil, err
		}
		return &charsvc.ListCharactersOutput{Characters: output.Characters}, nil
	case input.CampaignID != "":
		output, err := o.characterRepo.ListByCampaignID(ctx, charrepo.ListByCampaignIDInput{
			CampaignID: input.CampaignID,
		})
		if err != nil {
			return nil, err
		}
		return &charsvc.ListCharactersOutput{Characters: output.Characters}, nil
	default:
		return nil, errors.InvalidArgument("playerID or campaignID is required")
	}
}

// DeleteCharacter deletes a character
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *charsvc.DeleteCharacterInput,
) (*charsvc.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("characterID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, charrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, err
	}

	return &charsvc.DeleteCharacterOutput{}, nil
}

// Gameplay update methods

// ApplyStatUpdates applies named stat changes coming from gameplay onto
// the stored document. Names are resolved through the engine's stat
// mapping, so display names and abbreviations both land on the right
// field; known stats are clamped to their declared range.
func (o *Orchestrator) ApplyStatUpdates(
	ctx context.Context,
	input *charsvc.ApplyStatUpdatesInput,
) (*charsvc.ApplyStatUpdatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("characterID is required")
	}
	if len(input.Updates) == 0 {
		return nil, errors.InvalidArgument("at least one update is required")
	}

	output, err := o.characterRepo.Get(ctx, charrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	schema, err := o.catalog.Get(output.Character.EngineID)
	if err != nil {
		return nil, err
	}

	doc := output.Document
	stats, _ := doc["stats"].(map[string]any)
	if stats == nil {
		stats = make(map[string]any)
	}

	for _, u := range input.Updates {
		m := statmap.Map(schema.ID, u.Name)
		value := u.Value
		if stat, ok := schema.Stat(m.FieldID); ok {
			if value < stat.Min {
				value = stat.Min
			}
			if value > stat.Max {
				value = stat.Max
			}
		}
		stats[m.FieldID] = value
	}

	doc["stats"] = stats
	doc["updatedAt"] = o.clock.Now().Unix()

	updated, err := o.characterRepo.UpdateDocument(ctx, charrepo.UpdateDocumentInput{
		ID:       input.CharacterID,
		Document: doc,
	})
	if err != nil {
		return nil, err
	}

	return &charsvc.ApplyStatUpdatesOutput{Document: updated.Document}, nil
}

// Sharing methods

// ShareCharacter exports a character's full document as a share code
func (o *Orchestrator) ShareCharacter(
	ctx context.Context,
	input *charsvc.ShareCharacterInput,
) (*charsvc.ShareCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("characterID is required")
	}

	output, err := o.characterRepo.Get(ctx, charrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	code, err := sharecode.Generate(output.Document, sharecode.KindCharacter)
	if err != nil {
		return nil, err
	}

	return &charsvc.ShareCharacterOutput{Code: code.Code}, nil
}

// ImportCharacter decodes a share code and persists its character as a
// fresh one owned by the importing player.
func (o *Orchestrator) ImportCharacter(
	ctx context.Context,
	input *charsvc.ImportCharacterInput,
) (*charsvc.ImportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("code", input.Code, vb)
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	parsed, err := sharecode.Parse(input.Code)
	if err != nil {
		return nil, err
	}
	if parsed.Data.Kind != sharecode.KindCharacter {
		return nil, errors.InvalidArgumentf("share code holds a %q, not a character", parsed.Data.Kind)
	}

	doc, ok := parsed.Data.Data.(map[string]any)
	if !ok {
		return nil, errors.InvalidArgument("share code payload is not a character document")
	}

	char, err := characterFromDocument(doc)
	if err != nil {
		return nil, err
	}
	if char.EngineID == "" {
		return nil, errors.InvalidArgument("shared character is missing its engine id")
	}
	if char.Name == "" {
		return nil, errors.InvalidArgument("shared character is missing its name")
	}

	// Imports land as new characters: fresh id, importing player as
	// owner, no campaign until the player joins one.
	now := o.clock.Now().Unix()
	char.ID = o.charIDGen.Generate()
	char.PlayerID = input.PlayerID
	char.CampaignID = ""
	char.CreatedAt = now
	char.UpdatedAt = now

	if _, err := o.characterRepo.Create(ctx, charrepo.CreateInput{Character: char}); err != nil {
		return nil, err
	}

	return &charsvc.ImportCharacterOutput{Character: char}, nil
}

// internal helpers

func (o *Orchestrator) restore(ctx context.Context, creationID string) (*entities.Draft, *creation.Session, error) {
	output, err := o.draftRepo.Get(ctx, draftrepo.GetInput{ID: creationID})
	if err != nil {
		return nil, nil, err
	}
	draft := output.Draft

	schema, err := o.catalog.Get(draft.EngineID)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition,
			"creation references an unknown engine")
	}

	return draft, creation.Restore(schema, draft.Stats, draft.FormData), nil
}

func (o *Orchestrator) saveDraft(ctx context.Context, draft *entities.Draft, sess *creation.Session) error {
	draft.Stats = sess.Stats()
	draft.FormData = sess.FormData()
	draft.UpdatedAt = o.clock.Now().Unix()
	_, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	return err
}

func creationView(draft *entities.Draft, sess *creation.Session) *charsvc.Creation {
	return &charsvc.Creation{
		ID:              draft.ID,
		EngineID:        draft.EngineID,
		PlayerID:        draft.PlayerID,
		CampaignID:      draft.CampaignID,
		Stats:           sess.Stats(),
		FormData:        sess.FormData(),
		SpentPoints:     sess.SpentPoints(),
		RemainingPoints: sess.RemainingPoints(),
		MissingFields:   sess.MissingRequiredFields(),
	}
}

// characterFromDocument rebuilds a typed character from a loose document,
// keeping unknown keys as form fields so nothing is lost on re-marshal.
func characterFromDocument(doc entities.Document) (*entities.Character, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode character document")
	}

	var char entities.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument,
			"character document is malformed")
	}

	for k, v := range doc {
		if typedDocumentKeys[k] {
			continue
		}
		if char.Fields == nil {
			char.Fields = make(map[string]any)
		}
		char.Fields[k] = v
	}

	return &char, nil
}

var typedDocumentKeys = map[string]bool{
	"id":         true,
	"engineId":   true,
	"playerId":   true,
	"campaignId": true,
	"name":       true,
	"level":      true,
	"rank":       true,
	"class":      true,
	"stats":      true,
	"resources":  true,
	"inventory":  true,
	"abilities":  true,
	"createdAt":  true,
	"updatedAt":  true,
}
