package characters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sagaforge/saga-api/internal/entities/character"
	"github.com/sagaforge/saga-api/internal/errors"
	"github.com/sagaforge/saga-api/internal/pkg/clock"
	"github.com/sagaforge/saga-api/internal/repositories/characters"
	"github.com/sagaforge/saga-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    characters.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, _, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := characters.NewRedis(&characters.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) testCharacter(id string) *character.Character {
	return &character.Character{
		ID:         id,
		EngineID:   "classic",
		PlayerID:   "player-1",
		CampaignID: "campaign-1",
		Name:       "Kaelen",
		Level:      1,
		Stats: map[string]int{
			"strength": 14,
			"wisdom":   12,
		},
		Resources: map[string]character.Pool{
			"hp": {Current: 100, Max: 100},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	char := s.testCharacter("char-1")

	created, err := s.repo.Create(s.ctx, characters.CreateInput{Character: char})
	s.Require().NoError(err)
	s.Equal("char-1", created.Character.ID)

	got, err := s.repo.Get(s.ctx, characters.GetInput{ID: "char-1"})
	s.Require().NoError(err)
	s.Equal("Kaelen", got.Character.Name)
	s.Equal(14, got.Character.Stats["strength"])
	s.Equal(character.Pool{Current: 100, Max: 100}, got.Character.Resources["hp"])

	// Raw document carries the same data as loosely typed JSON
	s.Equal("Kaelen", got.Document["name"])
	stats, ok := got.Document["stats"].(map[string]any)
	s.Require().True(ok)
	s.Equal(float64(14), stats["strength"])
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	testCases := []struct {
		name  string
		input characters.CreateInput
	}{
		{
			name:  "nil character",
			input: characters.CreateInput{},
		},
		{
			name:  "empty ID",
			input: characters.CreateInput{Character: &character.Character{}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	char := s.testCharacter("char-1")

	_, err := s.repo.Create(s.ctx, characters.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, characters.CreateInput{Character: char})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, characters.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateDocument() {
	char := s.testCharacter("char-1")
	_, err := s.repo.Create(s.ctx, characters.CreateInput{Character: char})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, characters.GetInput{ID: "char-1"})
	s.Require().NoError(err)

	doc := got.Document
	stats := doc["stats"].(map[string]any)
	stats["strength"] = 16
	doc["mood"] = "grim"

	_, err = s.repo.UpdateDocument(s.ctx, characters.UpdateDocumentInput{
		ID:       "char-1",
		Document: doc,
	})
	s.Require().NoError(err)

	updated, err := s.repo.Get(s.ctx, characters.GetInput{ID: "char-1"})
	s.Require().NoError(err)
	s.Equal(16, updated.Character.Stats["strength"])
	s.Equal("grim", updated.Document["mood"])
}

func (s *RedisRepositoryTestSuite) TestUpdateDocumentNotFound() {
	_, err := s.repo.UpdateDocument(s.ctx, characters.UpdateDocumentInput{
		ID:       "missing",
		Document: character.Document{"name": "ghost"},
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	char := s.testCharacter("char-1")
	_, err := s.repo.Create(s.ctx, characters.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, characters.DeleteInput{ID: "char-1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, characters.GetInput{ID: "char-1"})
	s.True(errors.IsNotFound(err))

	// Indexes are cleaned up too
	byPlayer, err := s.repo.ListByPlayerID(s.ctx, characters.ListByPlayerIDInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Empty(byPlayer.Characters)

	byCampaign, err := s.repo.ListByCampaignID(s.ctx, characters.ListByCampaignIDInput{CampaignID: "campaign-1"})
	s.Require().NoError(err)
	s.Empty(byCampaign.Characters)
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, characters.DeleteInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	first := s.testCharacter("char-1")
	second := s.testCharacter("char-2")
	second.Name = "Mira"
	second.CampaignID = "campaign-2"
	other := s.testCharacter("char-3")
	other.PlayerID = "player-2"

	for _, c := range []*character.Character{first, second, other} {
		_, err := s.repo.Create(s.ctx, characters.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListByPlayerID(s.ctx, characters.ListByPlayerIDInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Len(output.Characters, 2)

	ids := make(map[string]bool)
	for _, c := range output.Characters {
		ids[c.ID] = true
	}
	s.True(ids["char-1"])
	s.True(ids["char-2"])
}

func (s *RedisRepositoryTestSuite) TestListByCampaignID() {
	first := s.testCharacter("char-1")
	second := s.testCharacter("char-2")
	second.CampaignID = "campaign-2"

	for _, c := range []*character.Character{first, second} {
		_, err := s.repo.Create(s.ctx, characters.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListByCampaignID(s.ctx, characters.ListByCampaignIDInput{CampaignID: "campaign-2"})
	s.Require().NoError(err)
	s.Require().Len(output.Characters, 1)
	s.Equal("char-2", output.Characters[0].ID)
}

func (s *RedisRepositoryTestSuite) TestListEmptyIndex() {
	output, err := s.repo.ListByPlayerID(s.ctx, characters.ListByPlayerIDInput{PlayerID: "nobody"})
	s.Require().NoError(err)
	s.Empty(output.Characters)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func TestNewRedisValidation(t *testing.T) {
	_, err := characters.NewRedis(nil)
	require.Error(t, err)

	_, err = characters.NewRedis(&characters.RedisConfig{})
	require.Error(t, err)
}
