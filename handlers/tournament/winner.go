package tournament

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rallyhq/matchpoint/bracket"
	"github.com/rallyhq/matchpoint/database"
	"github.com/rallyhq/matchpoint/handlers/base"
	"github.com/rallyhq/matchpoint/models"
)

type WinnerHandler struct {
	Base *base.BaseAdmin
	db   *sql.DB
}

func (h *WinnerHandler) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "winner",
		Description: "Record the winner of a match in the current round",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "match",
				Description: "Match id, e.g. R1M2",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "team",
				Description: "Winning team, e.g. Team 4",
				Required:    true,
			},
		},
	}
}

func (h *WinnerHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.Base.HasPermit(s, i); err != nil {
		base.Respond(err.Error(), s, i, true)
		return
	}

	h.db = database.GetDB()
	sm := models.NewSessionSlotModel(h.db)

	t, err := loadTournament(sm, i.ChannelID)
	if errors.Is(err, models.ErrSlotNotFound) {
		base.Respond(base.ERR_NO_TOURNAMENT.Error(), s, i, true)
		return
	}
	if err != nil {
		base.SendError(err, s, i)
		return
	}

	if t.Finished {
		base.Respond(base.ERR_TOURNAMENT_DONE.Error(), s, i, true)
		return
	}

	var matchArg, teamArg string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "match":
			matchArg = opt.StringValue()
		case "team":
			teamArg = opt.StringValue()
		}
	}

	matchID := bracket.MatchID(strings.ToUpper(strings.TrimSpace(matchArg)))
	team := bracket.Entrant(strings.TrimSpace(teamArg))

	if !slices.Contains(t.CurrentRound(), matchID) {
		base.Respond(fmt.Sprintf("Match %s is not in the current round.", matchID), s, i, true)
		return
	}

	m := t.Matches[matchID]
	if m == nil {
		base.SendError(fmt.Errorf("match %s listed in round %d but missing from bracket", matchID, t.Current), s, i)
		return
	}
	if m.Bye {
		base.Respond(fmt.Sprintf("%s is a bye, its winner is already decided.", matchID), s, i, true)
		return
	}
	if !m.HasOccupant(team) {
		base.Respond(fmt.Sprintf("%s is not playing in match %s.", team, matchID), s, i, true)
		return
	}

	picks, err := loadPicks(sm, i.ChannelID)
	if err != nil {
		base.SendError(err, s, i)
		return
	}
	picks[matchID] = team
	if err := savePicks(sm, i.ChannelID, picks); err != nil {
		base.Respond(base.ERR_SAVE_STATE.Error(), s, i, true)
		return
	}

	remaining := len(t.PendingMatches(picks))
	msg := fmt.Sprintf("Recorded %s as the winner of %s.", team, matchID)
	if remaining == 0 {
		msg = fmt.Sprintf("%s All winners are in, use /advance to play the next round.", msg)
	} else {
		msg = fmt.Sprintf("%s %d more match(es) need a winner.", msg, remaining)
	}
	base.Respond(msg, s, i, false)
}
