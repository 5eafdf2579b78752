package tournament

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rallyhq/matchpoint/bracket"
	"github.com/rallyhq/matchpoint/database"
	"github.com/rallyhq/matchpoint/discord/components"
	"github.com/rallyhq/matchpoint/handlers/base"
	"github.com/rallyhq/matchpoint/models"
)

type AdvanceHandler struct {
	Base *base.BaseAdmin
	db   *sql.DB
}

func (h *AdvanceHandler) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "advance",
		Description: "Close the current round and schedule the next one",
	}
}

func (h *AdvanceHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	picks, err := loadPicks(sm, i.ChannelID)
	if err != nil {
		base.SendError(err, s, i)
		return
	}

	err = t.AdvanceRound(picks)
	switch {
	case err == nil:
	case errors.Is(err, bracket.ErrIncompleteRound):
		pending := make([]string, 0)
		for _, id := range t.PendingMatches(picks) {
			pending = append(pending, string(id))
		}
		base.Respond(fmt.Sprintf("Please select the winner for all matches first. Still waiting on: %s", strings.Join(pending, ", ")), s, i, true)
		return
	case errors.Is(err, bracket.ErrInvalidWinner) || errors.Is(err, bracket.ErrUnknownMatch):
		// stale picks, e.g. recorded before a /create redo
		base.Respond(fmt.Sprintf("Recorded winners no longer fit the bracket (%v), use /winner to pick them again.", err), s, i, true)
		return
	default:
		base.SendError(err, s, i)
		return
	}

	if err := saveTournament(sm, i.ChannelID, t); err != nil {
		base.Respond(base.ERR_SAVE_STATE.Error(), s, i, true)
		return
	}
	if err := sm.Delete(i.ChannelID, slotPicks); err != nil {
		base.SendError(err, s, i)
		return
	}

	if t.Finished {
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{components.ChampionEmbed(t.Champion)},
			},
		})
		return
	}

	scheduled, err := t.ScheduleRound()
	if err != nil {
		base.SendError(err, s, i)
		return
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				components.ScheduleEmbed(roundLabel(t), scheduled),
			},
		},
	})
}
