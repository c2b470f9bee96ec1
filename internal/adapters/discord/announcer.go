package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"pbadmin/internal/application"
	"pbadmin/internal/domain/entities"
	"pbadmin/internal/ports/output"
	pkgdiscord "pbadmin/pkg/discord"
)

var _ output.Notifier = (*Announcer)(nil)

// embedSender is the part of *discordgo.Session the announcer uses.
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer posts game log entries to a Discord channel.
type Announcer struct {
	sender     embedSender
	channelID  string
	translator output.T
	loc        *time.Location
}

// NewAnnouncer creates a bot session for token. Only the REST API is used,
// so the gateway connection is never opened.
func NewAnnouncer(token, channelID string, translator output.T, loc *time.Location) (*Announcer, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	return newAnnouncer(s, channelID, translator, loc), nil
}

func newAnnouncer(sender embedSender, channelID string, translator output.T, loc *time.Location) *Announcer {
	if loc == nil {
		loc = time.UTC
	}
	return &Announcer{
		sender:     sender,
		channelID:  channelID,
		translator: translator,
		loc:        loc,
	}
}

// Announce renders entry in locale and posts it.
func (a *Announcer) Announce(ctx context.Context, locale string, entry entities.LogEntry) error {
	embed := pkgdiscord.BuildLogEmbed(pkgdiscord.LogEmbed{
		Title:  a.translator.T(locale, "game_log"),
		GameID: entry.GameID,
		Player: entry.Player,
		Text:   application.RenderLogEntry(a.translator, locale, entry),
		At:     entry.CreatedAt,
	}, a.loc)
	if _, err := a.sender.ChannelMessageSendEmbed(a.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send log entry to channel %s: %w", a.channelID, err)
	}
	return nil
}
