package bracket

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteRound means not every true match in the current round
	// has a winner yet. Callers treat this as the normal waiting state,
	// not a failure.
	ErrIncompleteRound = errors.New("round is not complete")

	ErrFinished = errors.New("tournament is already finished")

	// ErrUnknownMatch and ErrInvalidWinner reject winner input the input
	// collector should have filtered out.
	ErrUnknownMatch  = errors.New("match is not playable in the current round")
	ErrInvalidWinner = errors.New("winner is not an occupant of the match")

	// ErrFeedMissing and ErrFeedUnresolved indicate a broken bracket
	// graph, never a user mistake.
	ErrFeedMissing    = errors.New("feed match is missing from the bracket")
	ErrFeedUnresolved = errors.New("feed match has no winner yet")
)

// AdvanceRound stamps the supplied winners into the current round, then
// either resolves the next round's slots from their feeds or, when the
// final was just played, crowns the champion. Bye matches already carry
// their winner and must not appear in winners.
//
// The transition is atomic: on any error the tournament is unchanged.
func (t *Tournament) AdvanceRound(winners map[MatchID]Entrant) error {
	if t.Finished {
		return ErrFinished
	}

	current := t.CurrentRound()
	playable := make(map[MatchID]*Match, len(current))
	for _, id := range current {
		if m := t.Matches[id]; m != nil && !m.Bye {
			playable[id] = m
		}
	}

	for id, w := range winners {
		m, ok := playable[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownMatch, id)
		}
		if !m.HasOccupant(w) {
			return fmt.Errorf("%w: %q in match %s", ErrInvalidWinner, w, id)
		}
	}

	var pending []MatchID
	for _, id := range current {
		if _, ok := playable[id]; !ok {
			continue
		}
		if _, ok := winners[id]; !ok {
			pending = append(pending, id)
		}
	}
	if len(pending) > 0 {
		return fmt.Errorf("%w: waiting on %v", ErrIncompleteRound, pending)
	}

	if t.Current < t.Rounds {
		// dry-run the feed lookups so a structural failure leaves the
		// current round's winners unstamped
		for _, id := range t.RoundIDs[t.Current] {
			m := t.Matches[id]
			if m == nil {
				continue
			}
			for _, feedID := range m.Feeds {
				feed, ok := t.Matches[feedID]
				if !ok {
					return fmt.Errorf("%w: %s feeding %s", ErrFeedMissing, feedID, id)
				}
				if feed.Winner == "" {
					if _, picked := winners[feedID]; !picked {
						return fmt.Errorf("%w: %s feeding %s", ErrFeedUnresolved, feedID, id)
					}
				}
			}
		}
	}

	for id, w := range winners {
		playable[id].Winner = w
	}

	if t.Current == t.Rounds {
		t.Finished = true
		t.Champion = Undetermined
		if id, ok := t.FinalID(); ok {
			if final := t.Matches[id]; final != nil && final.Winner != "" {
				t.Champion = final.Winner
			}
		}
		return nil
	}

	for _, id := range t.RoundIDs[t.Current] {
		m := t.Matches[id]
		if m == nil {
			continue
		}
		for slot, feedID := range m.Feeds {
			m.Slots[slot] = Slot{Kind: SlotKnown, Entrant: t.Matches[feedID].Winner}
		}
	}

	t.Current++
	return nil
}

// PendingMatches lists the current round's matches that still need a
// winner before the round can advance.
func (t *Tournament) PendingMatches(picks map[MatchID]Entrant) []MatchID {
	var pending []MatchID
	for _, id := range t.CurrentRound() {
		m := t.Matches[id]
		if m == nil || m.Bye {
			continue
		}
		if _, ok := picks[id]; !ok {
			pending = append(pending, id)
		}
	}
	return pending
}
