package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"pbadmin/internal/domain/entities"
	"pbadmin/internal/infrastructure/i18n"
)

type fakeSender struct {
	channelID string
	embeds    []*discordgo.MessageEmbed
	err       error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.channelID = channelID
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{ID: "1", ChannelID: channelID}, nil
}

func newTestAnnouncer(t *testing.T, sender *fakeSender) *Announcer {
	t.Helper()
	tr, err := i18n.NewTranslator("en")
	if err != nil {
		t.Fatal(err)
	}
	return newAnnouncer(sender, "42", tr, nil)
}

func TestAnnounce_PostsRenderedEntry(t *testing.T) {
	sender := &fakeSender{}
	a := newTestAnnouncer(t, sender)
	entry := entities.LogEntry{
		ID:        3,
		GameID:    "pb1",
		Player:    "Gandhi",
		Key:       "log_player_score_increased",
		Args:      []string{"120"},
		CreatedAt: time.Date(2026, 10, 17, 18, 30, 0, 0, time.UTC),
	}
	if err := a.Announce(context.Background(), "en", entry); err != nil {
		t.Fatalf("Announce: %v", err)
	}
	if sender.channelID != "42" || len(sender.embeds) != 1 {
		t.Fatalf("sender = %+v", sender)
	}
	embed := sender.embeds[0]
	if embed.Title != "Log · pb1" {
		t.Errorf("Title = %q", embed.Title)
	}
	if embed.Description != "Score increased to 120." {
		t.Errorf("Description = %q", embed.Description)
	}
	if embed.Footer == nil || embed.Footer.Text != "2026-10-17 18:30 UTC" {
		t.Errorf("Footer = %+v", embed.Footer)
	}
}

func TestAnnounce_German(t *testing.T) {
	sender := &fakeSender{}
	a := newTestAnnouncer(t, sender)
	if err := a.Announce(context.Background(), "de", entities.LogEntry{GameID: "pb1", Key: "log_logged_out"}); err != nil {
		t.Fatal(err)
	}
	if got := sender.embeds[0].Description; got != "Abgemeldet." {
		t.Errorf("Description = %q", got)
	}
}

func TestAnnounce_SendError(t *testing.T) {
	sendErr := errors.New("429 rate limited")
	a := newTestAnnouncer(t, &fakeSender{err: sendErr})
	err := a.Announce(context.Background(), "en", entities.LogEntry{GameID: "pb1", Key: "log_logged_in"})
	if !errors.Is(err, sendErr) {
		t.Fatalf("err = %v, want wrapped send error", err)
	}
}
