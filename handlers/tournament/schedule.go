package tournament

import (
	"database/sql"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/rallyhq/matchpoint/database"
	"github.com/rallyhq/matchpoint/discord/components"
	"github.com/rallyhq/matchpoint/handlers/base"
	"github.com/rallyhq/matchpoint/models"
)

type ScheduleHandler struct {
	db *sql.DB
}

func (h *ScheduleHandler) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "schedule",
		Description: "Show the current round's court assignments",
	}
}

func (h *ScheduleHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
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
