package base

import (
	"errors"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
)

var (
	ERR_INTERNAL_ERROR    = errors.New("Something went wrong while executing this instruction")
	ERR_NO_TOURNAMENT     = errors.New("No tournament in this channel yet, use /create to start one")
	ERR_TOURNAMENT_EXISTS = errors.New("A tournament is already running in this channel, use /reset to discard it first")
	ERR_GENERATE_BRACKET  = errors.New("Error occured when generating the tournament bracket")
	ERR_SAVE_STATE        = errors.New("Something went wrong while saving the tournament state")
	ERR_TOURNAMENT_DONE   = errors.New("The tournament is already finished, use /report for the summary or /reset to start over")
)

var (
	instance *BaseAdmin
	once     sync.Once
)

type Command interface {
	Command() *discordgo.ApplicationCommand
	Handler(s *discordgo.Session, i *discordgo.InteractionCreate)
}

type BaseAdmin struct{}

func GetBaseAdmin() *BaseAdmin {
	once.Do(func() {
		instance = &BaseAdmin{}
	})
	return instance
}

func Respond(r string, s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) {
	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: r,
		},
	}

	if ephemeral {
		response.Data.Flags = discordgo.MessageFlagsEphemeral
	}

	s.InteractionRespond(i.Interaction, response)
}

func SendError(err error, s *discordgo.Session, i *discordgo.InteractionCreate) {
	log.Println(err)
	Respond(ERR_INTERNAL_ERROR.Error(), s, i, true)
}

func (h *BaseAdmin) HasPermit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	user := i.Member

	// skips check if user has admin access
	if user.Permissions&discordgo.PermissionAdministrator == discordgo.PermissionAdministrator {
		return nil
	}

	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		return err
	}

	var tm *discordgo.Role
	for _, role := range roles {
		if role.Name == "Tournament Manager" {
			tm = role
		}
	}

	if tm == nil {
		return errors.New("Can't find tournament role")
	}

	for _, ur := range user.Roles {
		if ur == tm.ID {
			return nil
		}
	}

	return errors.New("Insufficent permission to use this command")
}
