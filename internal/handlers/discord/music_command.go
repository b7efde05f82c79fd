package discord

import (
	"context"
	"time"

	"github.com/biltubhaiff-blip/Discord-music/internal/services/dispatcher"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const requestTimeout = 30 * time.Second

// MusicCommand turns a slash command into a dispatcher request
type MusicCommand struct {
	BaseCommand
	action     dispatcher.Action
	dispatcher dispatcher.Service
	messaging  messaging.Service
}

func intOption(name, description string, lo, hi float64) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    true,
		MinValue:    &lo,
		MaxValue:    hi,
	}
}

type musicCommandDef struct {
	base   BaseCommand
	action dispatcher.Action
}

// musicCommandDefinitions lists every slash command backed by a playback action
func musicCommandDefinitions() []musicCommandDef {
	return []musicCommandDef{
		{BaseCommand{Name: "play", Description: "Plays a song", Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "query",
			Description: "Song name or URL, leave empty to restart the queue",
		}}}, dispatcher.ActionPlay},
		{BaseCommand{Name: "pause", Description: "Pause the current song"}, dispatcher.ActionPause},
		{BaseCommand{Name: "resume", Description: "Resume the current song"}, dispatcher.ActionResume},
		{BaseCommand{Name: "skip", Description: "Skip to the next song"}, dispatcher.ActionSkip},
		{BaseCommand{Name: "queue", Description: "Show the current queue"}, dispatcher.ActionQueue},
		{BaseCommand{Name: "nowplaying", Description: "Show currently playing song"}, dispatcher.ActionNowPlaying},
		{BaseCommand{Name: "shuffle", Description: "Shuffle the queue"}, dispatcher.ActionShuffle},
		{BaseCommand{Name: "loop", Description: "Toggle loop mode", Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "mode",
			Description: "Loop mode",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Off", Value: "off"},
				{Name: "Track", Value: "track"},
				{Name: "Queue", Value: "queue"},
			},
		}}}, dispatcher.ActionLoop},
		{BaseCommand{Name: "remove", Description: "Remove a song from the queue", Options: []*discordgo.ApplicationCommandOption{
			intOption("position", "Position in queue", 1, 10000),
		}}, dispatcher.ActionRemove},
		{BaseCommand{Name: "move", Description: "Move a song to a different position", Options: []*discordgo.ApplicationCommandOption{
			intOption("from", "From position", 1, 10000),
			intOption("to", "To position", 1, 10000),
		}}, dispatcher.ActionMove},
		{BaseCommand{Name: "clearqueue", Description: "Clear the queue"}, dispatcher.ActionClearQueue},
		{BaseCommand{Name: "stop", Description: "Stops the music and leaves"}, dispatcher.ActionStop},
		{BaseCommand{Name: "volume", Description: "Set the volume", Options: []*discordgo.ApplicationCommandOption{
			intOption("level", "Volume level (0-100)", 0, 100),
		}}, dispatcher.ActionVolume},
		{BaseCommand{Name: "247", Description: "Toggle 24/7 mode"}, dispatcher.ActionStayConnected},
	}
}

// NewMusicCommands creates the playback slash commands
func NewMusicCommands(d dispatcher.Service, m messaging.Service) []*MusicCommand {
	var commands []*MusicCommand
	for _, def := range musicCommandDefinitions() {
		commands = append(commands, &MusicCommand{
			BaseCommand: def.base,
			action:      def.action,
			dispatcher:  d,
			messaging:   m,
		})
	}
	return commands
}

// Handle processes a Discord interaction for the command
func (c *MusicCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID, userName := interactionUser(i)
	req := &dispatcher.Request{
		Action:        c.action,
		Source:        dispatcher.SourceCommand,
		GuildID:       i.GuildID,
		TextChannelID: i.ChannelID,
		UserID:        userID,
		UserName:      userName,
	}
	applyOptions(req, data.Options)

	// Resolving can outlast the interaction deadline
	if err := DeferResponse(s, i, false); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	embed, err := dispatchEmbed(ctx, c.dispatcher, c.messaging, req)
	if err != nil {
		return err
	}
	return EditDeferredEmbed(s, i, embed)
}

// applyOptions copies slash command options onto the request
func applyOptions(req *dispatcher.Request, options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		switch opt.Name {
		case "query":
			req.Query = opt.StringValue()
		case "mode":
			req.Mode = opt.StringValue()
		case "position":
			req.Position = int(opt.IntValue())
		case "from":
			req.From = int(opt.IntValue())
		case "to":
			req.To = int(opt.IntValue())
		case "level":
			req.Level = int(opt.IntValue())
		}
	}
}

// dispatchEmbed runs a request and renders its single reply
func dispatchEmbed(ctx context.Context, d dispatcher.Service, m messaging.Service, req *dispatcher.Request) (*discordgo.MessageEmbed, error) {
	reply, err := d.Dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	text, err := m.GetReplyMessage(ctx, &messaging.GetReplyMessageInput{Reply: reply})
	if err != nil {
		return nil, err
	}

	return replyEmbed(reply, text, req.UserName), nil
}
