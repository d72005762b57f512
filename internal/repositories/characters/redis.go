package characters

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/sagaforge/saga-api/internal/entities/character"
	"github.com/sagaforge/saga-api/internal/errors"
	"github.com/sagaforge/saga-api/internal/pkg/clock"
	redisclient "github.com/sagaforge/saga-api/internal/redis"
)

const (
	characterKeyPrefix  = "character:"
	playerIndexPrefix   = "character:player:"
	campaignIndexPrefix = "campaign:"
	campaignIndexSuffix = ":characters"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
	errCampaignIDEmpty  = "campaign ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func campaignIndexKey(campaignID string) string {
	return campaignIndexPrefix + campaignID + campaignIndexSuffix
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Character.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, key, data, 0) // No TTL for characters

	if input.Character.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Character.PlayerID, input.Character.ID)
	}
	if input.Character.CampaignID != "" {
		pipe.SAdd(ctx, campaignIndexKey(input.Character.CampaignID), input.Character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var char character.Character
	if err := json.Unmarshal([]byte(result), &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}

	// The raw document keeps fields the typed shape doesn't model, so
	// gameplay updates never drop unknown keys.
	var doc character.Document
	if err := json.Unmarshal([]byte(result), &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character document")
	}

	return &GetOutput{Character: &char, Document: doc}, nil
}

func (r *redisRepository) UpdateDocument(
	ctx context.Context,
	input UpdateDocumentInput,
) (*UpdateDocumentOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Document == nil {
		return nil, errors.InvalidArgument("document cannot be nil")
	}

	key := characterKeyPrefix + input.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	// The document's id always wins over whatever the caller stored in it.
	input.Document["id"] = input.ID

	data, err := json.Marshal(input.Document)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character document")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update character document")
	}

	return &UpdateDocumentOutput{Document: input.Document}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// Get character to find indexes
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	char := getOutput.Character

	pipe := r.client.TxPipeline()

	pipe.Del(ctx, characterKeyPrefix+input.ID)

	if char.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+char.PlayerID, input.ID)
	}
	if char.CampaignID != "" {
		pipe.SRem(ctx, campaignIndexKey(char.CampaignID), input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	chars, err := r.listByIndex(ctx, playerIndexPrefix+input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &ListByPlayerIDOutput{Characters: chars}, nil
}

func (r *redisRepository) ListByCampaignID(
	ctx context.Context,
	input ListByCampaignIDInput,
) (*ListByCampaignIDOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	chars, err := r.listByIndex(ctx, campaignIndexKey(input.CampaignID))
	if err != nil {
		return nil, err
	}

	return &ListByCampaignIDOutput{Characters: chars}, nil
}

// listByIndex is a helper function to list characters by any index
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*character.Character, error) {
	characterIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index %s", indexKey)
	}

	characters := make([]*character.Character, 0, len(characterIDs))
	for _, id := range characterIDs {
		output, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry, drop it and move on.
				log.Warn().
					Str("index_key", indexKey).
					Str("character_id", id).
					Msg("removing stale character index entry")
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, err
		}
		characters = append(characters, output.Character)
	}

	return characters, nil
}
