package creation

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/sagaforge/saga-api/internal/errors"
)

const (
	rollDiceCount = 4
	rollDieSize   = 6
)

// RollStats replaces every stat with a 4d6-drop-lowest roll, clamped to
// the stat's declared range. Rolled stats are the alternative to point
// allocation and are only offered for engines whose stats all follow the
// bounded convention; rolling a 0-100 essence attribute would be
// meaningless.
func (s *Session) RollStats() (map[string]int, error) {
	for _, stat := range s.schema.Stats {
		if !stat.ModifierEligible() {
			return nil, errors.FailedPreconditionf(
				"engine %q does not support rolled stats", s.schema.ID)
		}
	}

	for _, stat := range s.schema.Stats {
		total, err := rollDropLowest(rollDiceCount, rollDieSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll stats")
		}
		s.stats[stat.ID] = clamp(total, stat.Min, stat.Max)
	}

	return s.Stats(), nil
}

func rollDropLowest(count, size int) (int, error) {
	values := make([]int, count)
	for i := range values {
		roll, err := dice.NewRoll(1, size)
		if err != nil {
			return 0, err
		}
		values[i] = roll.GetValue()
	}

	sort.Ints(values)
	total := 0
	for _, v := range values[1:] {
		total += v
	}
	return total, nil
}
