package tournament

import (
	"bytes"
	"database/sql"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/rallyhq/matchpoint/database"
	"github.com/rallyhq/matchpoint/handlers/base"
	"github.com/rallyhq/matchpoint/models"
	"github.com/rallyhq/matchpoint/report"
)

type ReportHandler struct {
	db *sql.DB
}

func (h *ReportHandler) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "report",
		Description: "Export the tournament summary as a text document",
	}
}

func (h *ReportHandler) Handler(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	var buf bytes.Buffer
	if err := report.NewTextSink(&buf).Render(report.Build(t)); err != nil {
		base.SendError(err, s, i)
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Files: []*discordgo.File{
				{Name: "tournament.txt", ContentType: "text/plain", Reader: &buf},
			},
		},
	})
	if err != nil {
		base.SendError(err, s, i)
	}
}
