package tournament

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rallyhq/matchpoint/bracket"
	"github.com/rallyhq/matchpoint/models"
)

// Session slots owned by a channel's tournament. The tournament slot
// holds the full bracket state, picks accumulates winner choices for the
// current round until /advance fires.
const (
	slotTournament = "tournament"
	slotPicks      = "picks"
)

func loadTournament(sm *models.SessionSlotModel, sessionID string) (*bracket.Tournament, error) {
	raw, err := sm.Get(sessionID, slotTournament)
	if err != nil {
		return nil, err
	}
	t := &bracket.Tournament{}
	if err := json.Unmarshal(raw, t); err != nil {
		return nil, err
	}
	return t, nil
}

func saveTournament(sm *models.SessionSlotModel, sessionID string, t *bracket.Tournament) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return sm.Set(sessionID, slotTournament, raw)
}

func loadPicks(sm *models.SessionSlotModel, sessionID string) (map[bracket.MatchID]bracket.Entrant, error) {
	raw, err := sm.Get(sessionID, slotPicks)
	if errors.Is(err, models.ErrSlotNotFound) {
		return map[bracket.MatchID]bracket.Entrant{}, nil
	}
	if err != nil {
		return nil, err
	}
	picks := map[bracket.MatchID]bracket.Entrant{}
	if err := json.Unmarshal(raw, &picks); err != nil {
		return nil, err
	}
	return picks, nil
}

func savePicks(sm *models.SessionSlotModel, sessionID string, picks map[bracket.MatchID]bracket.Entrant) error {
	raw, err := json.Marshal(picks)
	if err != nil {
		return err
	}
	return sm.Set(sessionID, slotPicks, raw)
}

func roundLabel(t *bracket.Tournament) string {
	return fmt.Sprintf("Round %d of %d", t.Current, t.Rounds)
}
