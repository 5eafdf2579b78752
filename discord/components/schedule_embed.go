package components

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rallyhq/matchpoint/bracket"
)

// ScheduleEmbed lists a round's court assignments, one field per display
// item in the order the courts were dealt.
func ScheduleEmbed(title string, scheduled []bracket.Scheduled) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{}

	for _, item := range scheduled {
		m := item.Match
		value := "match details unavailable"
		if m != nil {
			if m.Bye {
				value = fmt.Sprintf("%s gets a BYE", m.Slots[0].Entrant)
			} else {
				value = fmt.Sprintf("%s vs %s", slotName(m.Slots[0]), slotName(m.Slots[1]))
			}
		}

		name := fmt.Sprintf("Court %d", item.Court)
		if m != nil {
			name = fmt.Sprintf("Court %d · %s", item.Court, m.ID)
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  value,
			Inline: false,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  title,
		Fields: fields,
		Color:  0x2e7d32,
	}
}

func ChampionEmbed(champion bracket.Entrant) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Tournament Champion",
		Description: fmt.Sprintf("🏆 %s", champion),
		Color:       0xf9a825,
	}
}

func slotName(s bracket.Slot) string {
	switch s.Kind {
	case bracket.SlotKnown:
		return string(s.Entrant)
	case bracket.SlotBye:
		return "BYE"
	default:
		return "TBD"
	}
}
