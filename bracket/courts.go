package bracket

import (
	"errors"

	"github.com/rallyhq/matchpoint/bracket/seeds"
)

var ErrNoCurrentRound = errors.New("no round left to schedule")

// Scheduled is one display item of the current round with its assigned
// court. Byes only ever show up in round 1.
type Scheduled struct {
	Court int
	Match *Match
}

// ScheduleRound shuffles the current round's display order and deals
// courts round-robin over it. The shuffle is a separate permutation from
// the one that seeded the entrants, so court placement never mirrors the
// bracket structure. Assignments are recomputed on every call and are
// not persisted into the matches.
func (t *Tournament) ScheduleRound() ([]Scheduled, error) {
	current := t.CurrentRound()
	if current == nil {
		return nil, ErrNoCurrentRound
	}

	courts := t.Courts
	if courts < 1 {
		courts = 1
	}

	ids := make([]MatchID, len(current))
	copy(ids, current)
	seeds.Shuffle(ids)

	out := make([]Scheduled, 0, len(ids))
	for pos, id := range ids {
		out = append(out, Scheduled{
			Court: pos%courts + 1,
			Match: t.Matches[id],
		})
	}
	return out, nil
}
