package tournament

import (
	"database/sql"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/rallyhq/matchpoint/bracket"
	"github.com/rallyhq/matchpoint/database"
	"github.com/rallyhq/matchpoint/discord/components"
	"github.com/rallyhq/matchpoint/handlers/base"
	"github.com/rallyhq/matchpoint/models"
)

type CreateHandler struct {
	Base *base.BaseAdmin
	db   *sql.DB
}

func (h *CreateHandler) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "create",
		Description: "Create a tournament in this channel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "teams",
				Description: "Number of teams (8-16)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "courts",
				Description: "Number of courts (2-4)",
				Required:    true,
			},
		},
	}
}

func (h *CreateHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.Base.HasPermit(s, i); err != nil {
		base.Respond(err.Error(), s, i, true)
		return
	}

	h.db = database.GetDB()
	sm := models.NewSessionSlotModel(h.db)

	var teams, courts int
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "teams":
			teams = int(opt.IntValue())
		case "courts":
			courts = int(opt.IntValue())
		}
	}

	// range policy lives here, the bracket package assumes validated input
	if teams < 8 || teams > 16 {
		base.Respond("Number of teams must be between 8 and 16.", s, i, true)
		return
	}
	if courts < 2 || courts > 4 {
		base.Respond("Number of courts must be between 2 and 4.", s, i, true)
		return
	}

	if _, err := loadTournament(sm, i.ChannelID); err == nil {
		base.Respond(base.ERR_TOURNAMENT_EXISTS.Error(), s, i, true)
		return
	} else if !errors.Is(err, models.ErrSlotNotFound) {
		base.SendError(err, s, i)
		return
	}

	t := bracket.Generate(teams, courts)

	if err := saveTournament(sm, i.ChannelID, t); err != nil {
		base.Respond(base.ERR_SAVE_STATE.Error(), s, i, true)
		return
	}
	if err := sm.Delete(i.ChannelID, slotPicks); err != nil {
		base.SendError(err, s, i)
		return
	}

	scheduled, err := t.ScheduleRound()
	if err != nil {
		base.Respond(base.ERR_GENERATE_BRACKET.Error(), s, i, true)
		return
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Tournament layout generated successfully!",
			Embeds: []*discordgo.MessageEmbed{
				components.ScheduleEmbed(roundLabel(t), scheduled),
			},
		},
	})
}
