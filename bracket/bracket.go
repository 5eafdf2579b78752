package bracket

import (
	"fmt"

	"github.com/rallyhq/matchpoint/bracket/seeds"
)

// Entrant is a competing team, identified by its label.
type Entrant string

// Undetermined is reported as champion when the final match or its winner
// cannot be resolved from the bracket.
const Undetermined Entrant = "Undetermined"

// MatchID encodes a match's round and position, e.g. "R2M3".
type MatchID string

func NewMatchID(round, pos int) MatchID {
	return MatchID(fmt.Sprintf("R%dM%d", round, pos))
}

type SlotKind int

const (
	SlotPending SlotKind = iota
	SlotKnown
	SlotBye
)

// Slot is one of a match's two inputs. Entrant is only meaningful when
// Kind is SlotKnown.
type Slot struct {
	Kind    SlotKind
	Entrant Entrant
}

type Match struct {
	ID     MatchID
	Round  int
	Slots  [2]Slot
	Winner Entrant
	// Feeds are the two previous-round matches whose winners fill the
	// slots, in slot order. Empty for round 1.
	Feeds [2]MatchID
	Bye   bool
}

// HasOccupant reports whether e currently sits in one of the match's slots.
func (m *Match) HasOccupant(e Entrant) bool {
	for _, s := range m.Slots {
		if s.Kind == SlotKnown && s.Entrant == e {
			return true
		}
	}
	return false
}

// Tournament owns the whole match graph for one run. It is plain data so
// it can round-trip through the session store as JSON.
type Tournament struct {
	Entrants []Entrant
	Size     int
	Rounds   int
	Courts   int
	Matches  map[MatchID]*Match
	// RoundIDs holds each round's match ids in construction order,
	// index 0 being round 1. Display order is decided separately when a
	// round is scheduled onto courts.
	RoundIDs [][]MatchID
	Current  int
	Finished bool
	Champion Entrant
}

// Generate builds the complete bracket for n entrants up front: round-1
// matches and byes from a shuffled entrant list, and placeholder matches
// for every later round wired to the two earlier matches that feed them.
//
// The first size-n entrants of the shuffled order receive the byes, the
// rest pair up consecutively. Byes come first in round 1's construction
// order and a bye's winner is stamped at creation, so no round after the
// first ever contains a bye.
//
// Range policy (teams, courts) is the caller's job, Generate only assumes
// n >= 1.
func Generate(n, courts int) *Tournament {
	size := Size(n)
	rounds := Rounds(size)

	entrants := make([]Entrant, n)
	for i := range entrants {
		entrants[i] = Entrant(fmt.Sprintf("Team %d", i+1))
	}
	seeds.Shuffle(entrants)

	t := &Tournament{
		Entrants: entrants,
		Size:     size,
		Rounds:   rounds,
		Courts:   courts,
		Matches:  make(map[MatchID]*Match),
		Current:  1,
	}

	if rounds == 0 {
		// one seat, nothing to play
		t.Finished = true
		t.Champion = Undetermined
		if n == 1 {
			t.Champion = entrants[0]
		}
		return t
	}

	byes := size - n
	first := make([]MatchID, 0, size/2)

	for i := 0; i < byes; i++ {
		id := NewMatchID(1, len(first)+1)
		t.Matches[id] = &Match{
			ID:     id,
			Round:  1,
			Slots:  [2]Slot{{Kind: SlotKnown, Entrant: entrants[i]}, {Kind: SlotBye}},
			Winner: entrants[i],
			Bye:    true,
		}
		first = append(first, id)
	}

	for i := byes; i < n; i += 2 {
		id := NewMatchID(1, len(first)+1)
		t.Matches[id] = &Match{
			ID:    id,
			Round: 1,
			Slots: [2]Slot{
				{Kind: SlotKnown, Entrant: entrants[i]},
				{Kind: SlotKnown, Entrant: entrants[i+1]},
			},
		}
		first = append(first, id)
	}
	t.RoundIDs = append(t.RoundIDs, first)

	prev := first
	for r := 2; r <= rounds; r++ {
		next := make([]MatchID, 0, len(prev)/2)
		for i := 0; i < len(prev); i += 2 {
			id := NewMatchID(r, len(next)+1)
			t.Matches[id] = &Match{
				ID:    id,
				Round: r,
				Feeds: [2]MatchID{prev[i], prev[i+1]},
			}
			next = append(next, id)
		}
		t.RoundIDs = append(t.RoundIDs, next)
		prev = next
	}

	return t
}

// CurrentRound returns the current round's match ids in construction
// order, or nil once the tournament is finished.
func (t *Tournament) CurrentRound() []MatchID {
	if t.Finished || t.Current < 1 || t.Current > len(t.RoundIDs) {
		return nil
	}
	return t.RoundIDs[t.Current-1]
}

// FinalID returns the id of the designated final match.
func (t *Tournament) FinalID() (MatchID, bool) {
	if t.Rounds == 0 || len(t.RoundIDs) < t.Rounds {
		return "", false
	}
	last := t.RoundIDs[t.Rounds-1]
	if len(last) != 1 {
		return "", false
	}
	return last[0], true
}
