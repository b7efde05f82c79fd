package discord

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// InfoCommand answers from bot metadata without touching any session
type InfoCommand struct {
	BaseCommand
	respond func(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// Handle processes a Discord interaction for the command
func (c *InfoCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand || i.ApplicationCommandData().Name != c.Name {
		return nil
	}
	return c.respond(s, i)
}

// NewInfoCommands creates help, invite, ping, stats and support
func NewInfoCommands(cfg *Config, startedAt time.Time, commands func() []CommandHandler) []*InfoCommand {
	return []*InfoCommand{
		{
			BaseCommand: BaseCommand{Name: "help", Description: "Shows all commands"},
			respond: func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return RespondWithEmbed(s, i, helpEmbed(commands()))
			},
		},
		{
			BaseCommand: BaseCommand{Name: "invite", Description: "Get bot invite link"},
			respond: func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				if cfg.InviteURL == "" {
					return RespondWithEphemeralMessage(s, i, "No invite link is configured.")
				}
				return RespondWithEphemeralMessage(s, i, "Invite me: "+cfg.InviteURL)
			},
		},
		{
			BaseCommand: BaseCommand{Name: "ping", Description: "Shows bot ping"},
			respond: func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return RespondWithEphemeralMessage(s, i, fmt.Sprintf("🏓 Pong! Gateway latency: %dms", s.HeartbeatLatency().Milliseconds()))
			},
		},
		{
			BaseCommand: BaseCommand{Name: "stats", Description: "Shows bot statistics"},
			respond: func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return RespondWithEmbed(s, i, statsEmbed(len(s.State.Guilds), time.Since(startedAt)))
			},
		},
		{
			BaseCommand: BaseCommand{Name: "support", Description: "Join our support server"},
			respond: func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				if cfg.SupportURL == "" {
					return RespondWithEphemeralMessage(s, i, "No support server is configured.")
				}
				return RespondWithEphemeralMessage(s, i, "Support server: "+cfg.SupportURL)
			},
		},
	}
}

func helpEmbed(commands []CommandHandler) *discordgo.MessageEmbed {
	sorted := make([]CommandHandler, len(commands))
	copy(sorted, commands)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].GetName() < sorted[b].GetName() })

	var b strings.Builder
	for _, cmd := range sorted {
		fmt.Fprintf(&b, "`/%s` %s\n", cmd.GetName(), cmd.GetCommand().Description)
	}

	return &discordgo.MessageEmbed{
		Title:       "🎵 Commands",
		Description: b.String(),
		Color:       colorPrimary,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Use the buttons under the now playing message to control playback"},
	}
}

func statsEmbed(guilds int, uptime time.Duration) *discordgo.MessageEmbed {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return &discordgo.MessageEmbed{
		Title: "📊 Statistics",
		Color: colorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Servers", Value: fmt.Sprintf("%d", guilds), Inline: true},
			{Name: "Uptime", Value: uptime.Truncate(time.Second).String(), Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%.1f MB", float64(mem.Alloc)/1024/1024), Inline: true},
			{Name: "Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "Go", Value: runtime.Version(), Inline: true},
		},
	}
}
