package creation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sagaforge/saga-api/internal/engines"
	"github.com/sagaforge/saga-api/internal/entities/engine"
	"github.com/sagaforge/saga-api/internal/errors"
	"github.com/sagaforge/saga-api/internal/rules/creation"
)

type SessionTestSuite struct {
	suite.Suite
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

// budgetSchema mirrors the classic shape: six stats defaulted to 10 with
// a 15 point budget.
func budgetSchema() *engine.Schema {
	return engines.Classic()
}

func (s *SessionTestSuite) TestInitializeDefaults() {
	sess := creation.New(budgetSchema())

	stats := sess.Stats()
	s.Len(stats, 6)
	for id, v := range stats {
		s.Equal(10, v, "stat %s", id)
	}

	form := sess.FormData()
	s.Equal("", form["class"])
	s.Equal("Neutral", form["alignment"], "declared default wins")
	s.Equal("", form["portrait"])
	s.Equal("", form["backstory"])
}

func (s *SessionTestSuite) TestInitializeTypeDefaults() {
	sess := creation.New(engines.Tactical())

	form := sess.FormData()
	s.Equal("", form["callsign"])
	s.Equal("", form["role"])
	s.Equal(1, form["squadSize"], "slider defaults to validation min")
	s.Equal(false, form["veteran"])

	sessOut := creation.New(engines.Outworlder())
	s.Equal([]string{}, sessOut.FormData()["essences"], "multiselect defaults to empty list")
}

func (s *SessionTestSuite) TestResetReplacesState() {
	sess := creation.New(budgetSchema())
	s.True(sess.AdjustStat("strength", 5))
	s.True(sess.SetField("class", "Warrior"))

	sess.Reset(budgetSchema())

	v, _ := sess.Stat("strength")
	s.Equal(10, v)
	s.Equal("", sess.FormData()["class"])
}

// wideSchema leaves headroom above the budget so an oversized raise is
// stopped by the budget check, not by range clamping.
func wideSchema() *engine.Schema {
	return &engine.Schema{
		ID:   "trial",
		Name: "Trial",
		Stats: []engine.StatDefinition{
			{ID: "might", Name: "Might", Abbreviation: "MGT", Min: 0, Max: 30, Default: 10},
			{ID: "focus", Name: "Focus", Abbreviation: "FCS", Min: 0, Max: 30, Default: 10},
		},
		StatPointBudget: engine.IntPtr(15),
		Resources:       []engine.ResourceDefinition{{ID: "hp", Name: "Health"}},
		Progression:     engine.Progression{Type: engine.ProgressionLevel, MaxLevel: 10},
	}
}

// Scenario: budget 15, stats at 10. Raising one stat to 15 costs 5; a
// second raise of 11 exceeds the 10 remaining and is rejected whole.
func (s *SessionTestSuite) TestBudgetAccounting() {
	sess := creation.New(wideSchema())

	remaining := sess.RemainingPoints()
	s.Require().NotNil(remaining)
	s.Equal(15, *remaining)

	s.True(sess.AdjustStat("might", 5))
	v, _ := sess.Stat("might")
	s.Equal(15, v)
	s.Equal(5, sess.SpentPoints())
	s.Equal(10, *sess.RemainingPoints())

	// 10 + 11 would cost 11 points with only 10 left
	s.False(sess.AdjustStat("focus", 11))
	v, _ = sess.Stat("focus")
	s.Equal(10, v, "rejected adjustment must leave state unchanged")
	s.Equal(10, *sess.RemainingPoints())

	// spending the exact remainder is allowed
	s.True(sess.AdjustStat("focus", 10))
	v, _ = sess.Stat("focus")
	s.Equal(20, v)
	s.Equal(0, *sess.RemainingPoints())
}

// Clamping runs before the budget check: a raise that would overspend at
// face value can still land once the range cuts it down.
func (s *SessionTestSuite) TestBudgetChargesClampedValue() {
	sess := creation.New(budgetSchema())

	s.True(sess.AdjustStat("strength", 5))
	s.Equal(10, *sess.RemainingPoints())

	// 10 + 11 clamps to the max of 18, costing 8, which still fits
	s.True(sess.AdjustStat("dexterity", 11))
	v, _ := sess.Stat("dexterity")
	s.Equal(18, v)
	s.Equal(2, *sess.RemainingPoints())
}

func (s *SessionTestSuite) TestLoweringBelowDefaultGrantsNoBonusPoints() {
	sess := creation.New(budgetSchema())

	// drop charisma to its minimum; spend stays zero, not negative
	s.True(sess.AdjustStat("charisma", -2))
	s.Equal(0, sess.SpentPoints())
	s.Equal(15, *sess.RemainingPoints())

	// the full budget is still the ceiling
	s.True(sess.AdjustStat("strength", 8))
	s.True(sess.AdjustStat("dexterity", 7))
	s.Equal(15, sess.SpentPoints())
	s.False(sess.AdjustStat("wisdom", 1), "budget ceiling holds despite lowered stat")
}

func (s *SessionTestSuite) TestReducingRaisedStatFreesPoints() {
	sess := creation.New(budgetSchema())

	s.True(sess.AdjustStat("strength", 8))
	s.Equal(7, *sess.RemainingPoints())

	s.True(sess.AdjustStat("strength", -3))
	s.Equal(10, *sess.RemainingPoints())
}

func (s *SessionTestSuite) TestClampToDeclaredRange() {
	sess := creation.New(engines.Outworlder()) // no budget, 0-100 range

	s.True(sess.AdjustStat("power", 500))
	v, _ := sess.Stat("power")
	s.Equal(100, v)

	s.True(sess.AdjustStat("power", -500))
	v, _ = sess.Stat("power")
	s.Equal(0, v)

	// already at min; no-op
	s.False(sess.AdjustStat("power", -1))
}

func (s *SessionTestSuite) TestBudgetInvariantUnderAdjustmentSequences() {
	sess := creation.New(budgetSchema())

	moves := []struct {
		stat  string
		delta int
	}{
		{"strength", 5}, {"dexterity", 20}, {"charisma", -4}, {"wisdom", 7},
		{"strength", -2}, {"intelligence", 9}, {"constitution", 1},
		{"dexterity", -20}, {"wisdom", 3}, {"charisma", 30},
	}

	for _, mv := range moves {
		sess.AdjustStat(mv.stat, mv.delta)

		spent := sess.SpentPoints()
		s.LessOrEqual(spent, 15, "budget invariant violated after %+v", mv)
		s.Equal(15-spent, *sess.RemainingPoints())

		for id, v := range sess.Stats() {
			stat, ok := sess.Schema().Stat(id)
			s.Require().True(ok)
			s.GreaterOrEqual(v, stat.Min)
			s.LessOrEqual(v, stat.Max)
		}
	}
}

func (s *SessionTestSuite) TestAdjustUnknownStatIsNoOp() {
	sess := creation.New(budgetSchema())
	s.False(sess.AdjustStat("luck", 5))
	s.Equal(0, sess.SpentPoints())
}

func (s *SessionTestSuite) TestNoBudgetReturnsNil() {
	sess := creation.New(engines.Outworlder())
	s.Nil(sess.RemainingPoints())
}

func (s *SessionTestSuite) TestSetField() {
	sess := creation.New(engines.Tactical())

	s.True(sess.SetField("callsign", "Reaper"))
	s.Equal("Reaper", sess.FormData()["callsign"])

	s.True(sess.SetField("squadSize", 99))
	s.Equal(6, sess.FormData()["squadSize"], "slider values clamp to validation bounds")

	s.False(sess.SetField("nonsense", "x"))
}

func (s *SessionTestSuite) TestFinalize() {
	sess := creation.New(budgetSchema())
	sess.AdjustStat("strength", 5)
	sess.SetField("class", "Warrior")
	sess.SetField("backstory", "Raised by wolves.")

	c, err := sess.Finalize("Azrael")
	s.Require().NoError(err)

	s.Equal("Azrael", c.Name)
	s.Equal("classic", c.EngineID)
	s.Equal(1, c.Level)
	s.Empty(c.Rank)
	s.Equal("Warrior", c.Class)
	s.Equal(15, c.Stats["strength"])
	s.Equal(10, c.Stats["wisdom"])

	for _, id := range []string{"hp", "mana", "stamina"} {
		pool, ok := c.Resources[id]
		s.Require().True(ok, "resource %s seeded", id)
		s.Equal(100, pool.Current)
		s.Equal(100, pool.Max)
	}

	s.Equal("Raised by wolves.", c.Fields["backstory"])
}

func (s *SessionTestSuite) TestFinalizeRankProgression() {
	sess := creation.New(engines.Outworlder())
	sess.SetField("origin", "Earth")

	c, err := sess.Finalize("Jason")
	s.Require().NoError(err)

	s.Equal("Normal", c.Rank, "rank worlds start at the ladder's first rank")
	s.Equal(0, c.Level)
}

func (s *SessionTestSuite) TestFinalizeMissingRequiredFields() {
	sess := creation.New(engines.Tactical()) // callsign and role required

	_, err := sess.Finalize("Ghost")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	fields, ok := meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "callsign")
	s.Contains(fields, "role")
}

func (s *SessionTestSuite) TestFinalizeMissingName() {
	sess := creation.New(engines.Outworlder())
	sess.SetField("origin", "Earth")

	_, err := sess.Finalize("  ")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionTestSuite) TestRestore() {
	sess := creation.Restore(budgetSchema(),
		map[string]int{"strength": 15, "luck": 99, "dexterity": 200},
		map[string]any{"class": "Mage", "bogus": true},
	)

	v, _ := sess.Stat("strength")
	s.Equal(15, v)
	v, _ = sess.Stat("dexterity")
	s.Equal(18, v, "restored values clamp to the schema range")
	_, ok := sess.Stat("luck")
	s.False(ok, "unknown persisted stats are dropped")

	s.Equal("Mage", sess.FormData()["class"])
	s.NotContains(sess.FormData(), "bogus")
}

func (s *SessionTestSuite) TestRollStats() {
	s.Run("bounded engine rolls within range", func() {
		sess := creation.New(engines.Tactical())

		stats, err := sess.RollStats()
		s.Require().NoError(err)
		s.Len(stats, 4)
		for id, v := range stats {
			stat, ok := sess.Schema().Stat(id)
			s.Require().True(ok)
			s.GreaterOrEqual(v, stat.Min, "stat %s", id)
			s.LessOrEqual(v, stat.Max, "stat %s", id)
		}
	})

	s.Run("wide-range engine refuses to roll", func() {
		sess := creation.New(engines.Outworlder())

		_, err := sess.RollStats()
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})
}
