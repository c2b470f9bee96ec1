package discord

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0x5865F2

// LogEmbed is what a game log announcement shows.
type LogEmbed struct {
	Title  string // e.g. the localized "Log"
	GameID string
	Player string
	Text   string
	At     time.Time
}

// htmlBreaks are the markup fragments the admin panel embeds in messages.
var htmlBreaks = strings.NewReplacer("<br>", "\n", "</p><p>", "\n\n", "<i>", "*", "</i>", "*")

// BuildLogEmbed builds the embed posted for one game log entry.
func BuildLogEmbed(e LogEmbed, loc *time.Location) *discordgo.MessageEmbed {
	title := e.Title
	if e.GameID != "" {
		title += " · " + e.GameID
	}
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: htmlBreaks.Replace(e.Text),
		Color:       embedColor,
	}
	if e.Player != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: e.Player}
	}
	if !e.At.IsZero() {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: FormatLogTime(e.At, loc)}
		embed.Timestamp = e.At.UTC().Format(time.RFC3339)
	}
	return embed
}
