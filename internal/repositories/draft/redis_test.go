package draft_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/sagaforge/saga-api/internal/entities/character"
	"github.com/sagaforge/saga-api/internal/errors"
	redisclient "github.com/sagaforge/saga-api/internal/redis"
	"github.com/sagaforge/saga-api/internal/repositories/draft"
	"github.com/sagaforge/saga-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	repo      draft.Repository
	cleanup   func()
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.miniRedis, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.repo = draft.NewRedisRepository(s.client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testDraft() *character.Draft {
	now := time.Now().Unix()
	return &character.Draft{
		ID:       "draft_123",
		PlayerID: "player_456",
		EngineID: "classic",
		Stats: map[string]int{
			"strength": 15, "dexterity": 10, "constitution": 10,
			"intelligence": 10, "wisdom": 10, "charisma": 10,
		},
		FormData:  map[string]any{"class": "Warrior"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: s.testDraft()})
	s.Require().NoError(err)

	s.True(s.miniRedis.Exists("creation:draft_123"))
	s.True(s.miniRedis.Exists("creation:player:player_456"))

	out, err := s.repo.Get(s.ctx, draft.GetInput{ID: "draft_123"})
	s.Require().NoError(err)
	s.Equal("classic", out.Draft.EngineID)
	s.Equal(15, out.Draft.Stats["strength"])
	s.Equal("Warrior", out.Draft.FormData["class"])
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	testCases := []struct {
		name  string
		draft *character.Draft
	}{
		{"nil draft", nil},
		{"missing id", &character.Draft{PlayerID: "p"}},
		{"missing player id", &character.Draft{ID: "d"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: tc.draft})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestCreateReplacesExistingDraft() {
	first := s.testDraft()
	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: first})
	s.Require().NoError(err)

	second := s.testDraft()
	second.ID = "draft_999"
	second.EngineID = "tactical"
	_, err = s.repo.Create(s.ctx, draft.CreateInput{Draft: second})
	s.Require().NoError(err)

	// the old draft is gone and the mapping points at the new one
	s.False(s.miniRedis.Exists("creation:draft_123"))

	out, err := s.repo.GetByPlayerID(s.ctx, draft.GetByPlayerIDInput{PlayerID: "player_456"})
	s.Require().NoError(err)
	s.Equal("draft_999", out.Draft.ID)
	s.Equal("tactical", out.Draft.EngineID)
}

func (s *RedisRepositoryTestSuite) TestCreateExpiredDraft() {
	d := s.testDraft()
	d.ExpiresAt = time.Now().Add(-time.Hour).Unix()

	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: d})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDraftExpiresWithTTL() {
	d := s.testDraft()
	d.ExpiresAt = time.Now().Add(time.Minute).Unix()

	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: d})
	s.Require().NoError(err)

	s.miniRedis.FastForward(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, draft.GetInput{ID: "draft_123"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, draft.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetByPlayerIDNotFound() {
	_, err := s.repo.GetByPlayerID(s.ctx, draft.GetByPlayerIDInput{PlayerID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	d := s.testDraft()
	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: d})
	s.Require().NoError(err)

	d.Stats["strength"] = 18
	d.FormData["class"] = "Mage"
	_, err = s.repo.Update(s.ctx, draft.UpdateInput{Draft: d})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, draft.GetInput{ID: d.ID})
	s.Require().NoError(err)
	s.Equal(18, out.Draft.Stats["strength"])
	s.Equal("Mage", out.Draft.FormData["class"])
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, draft.UpdateInput{Draft: s.testDraft()})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, draft.CreateInput{Draft: s.testDraft()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, draft.DeleteInput{ID: "draft_123"})
	s.Require().NoError(err)

	s.False(s.miniRedis.Exists("creation:draft_123"))
	s.False(s.miniRedis.Exists("creation:player:player_456"))

	_, err = s.repo.Get(s.ctx, draft.GetInput{ID: "draft_123"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, draft.DeleteInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
