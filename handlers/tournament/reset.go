package tournament

import (
	"database/sql"

	"github.com/bwmarrin/discordgo"
	"github.com/rallyhq/matchpoint/database"
	"github.com/rallyhq/matchpoint/handlers/base"
	"github.com/rallyhq/matchpoint/models"
)

type ResetHandler struct {
	Base *base.BaseAdmin
	db   *sql.DB
}

func (h *ResetHandler) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "reset",
		Description: "Discard the tournament in this channel",
	}
}

func (h *ResetHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.Base.HasPermit(s, i); err != nil {
		base.Respond(err.Error(), s, i, true)
		return
	}

	h.db = database.GetDB()
	sm := models.NewSessionSlotModel(h.db)

	if err := sm.Reset(i.ChannelID); err != nil {
		base.SendError(err, s, i)
		return
	}

	base.Respond("Tournament state has been cleared, use /create to start a new one.", s, i, false)
}
