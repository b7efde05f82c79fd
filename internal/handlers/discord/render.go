package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biltubhaiff-blip/Discord-music/internal/audionode"
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/dispatcher"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const (
	colorPrimary = 0x0099ff
	colorSuccess = 0x00ff00
	colorError   = 0xff0000
	colorNotice  = 0xffa500
)

// Control message custom IDs. Buttons carry the generation they were rendered for as "id:generation".
const (
	ButtonPause  = "pause"
	ButtonSkip   = "skip"
	ButtonStop   = "stop"
	ButtonLoop   = "loop"
	ButtonQueue  = "queue"
	SelectFilter = "filter"
)

// componentActions maps control IDs to dispatcher actions
var componentActions = map[string]dispatcher.Action{
	ButtonPause:  dispatcher.ActionTogglePause,
	ButtonSkip:   dispatcher.ActionSkip,
	ButtonStop:   dispatcher.ActionStop,
	ButtonLoop:   dispatcher.ActionToggleLoop,
	ButtonQueue:  dispatcher.ActionQueue,
	SelectFilter: dispatcher.ActionFilter,
}

func controlID(base string, generation uint64) string {
	return base + ":" + strconv.FormatUint(generation, 10)
}

// parseControlID splits a custom ID into its base and generation, 0 when absent
func parseControlID(customID string) (string, uint64) {
	base, gen, found := strings.Cut(customID, ":")
	if !found {
		return base, 0
	}
	generation, err := strconv.ParseUint(gen, 10, 64)
	if err != nil {
		return base, 0
	}
	return base, generation
}

// controlComponents renders the buttons and filter menu under a now playing message
func controlComponents(snapshot *models.SessionSnapshot, disabled bool) []discordgo.MessageComponent {
	var generation uint64
	pauseLabel, pauseEmoji := "Pause", "⏸️"
	loopLabel := "Loop: Off"
	filter := ""
	if snapshot != nil {
		generation = snapshot.Generation
		if snapshot.State == models.PlaybackStatePaused {
			pauseLabel, pauseEmoji = "Resume", "▶️"
		}
		switch snapshot.LoopMode {
		case models.LoopModeTrack:
			loopLabel = "Loop: Track"
		case models.LoopModeQueue:
			loopLabel = "Loop: Queue"
		}
		filter = snapshot.Filter
	}

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    pauseLabel,
			Style:    discordgo.PrimaryButton,
			CustomID: controlID(ButtonPause, generation),
			Emoji:    &discordgo.ComponentEmoji{Name: pauseEmoji},
			Disabled: disabled,
		},
		discordgo.Button{
			Label:    "Skip",
			Style:    discordgo.SecondaryButton,
			CustomID: controlID(ButtonSkip, generation),
			Emoji:    &discordgo.ComponentEmoji{Name: "⏭️"},
			Disabled: disabled,
		},
		discordgo.Button{
			Label:    "Stop",
			Style:    discordgo.DangerButton,
			CustomID: controlID(ButtonStop, generation),
			Emoji:    &discordgo.ComponentEmoji{Name: "⏹️"},
			Disabled: disabled,
		},
		discordgo.Button{
			Label:    loopLabel,
			Style:    discordgo.SecondaryButton,
			CustomID: controlID(ButtonLoop, generation),
			Emoji:    &discordgo.ComponentEmoji{Name: "🔁"},
			Disabled: disabled,
		},
		discordgo.Button{
			Label:    "Queue",
			Style:    discordgo.SecondaryButton,
			CustomID: controlID(ButtonQueue, generation),
			Emoji:    &discordgo.ComponentEmoji{Name: "📋"},
			Disabled: disabled,
		},
	}

	var options []discordgo.SelectMenuOption
	for _, name := range audionode.FilterNames() {
		label := strings.ToUpper(name[:1]) + name[1:]
		if name == audionode.FilterOff {
			label = "Off"
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:   label,
			Value:   name,
			Default: name == filter && filter != "",
		})
	}

	filterMenu := discordgo.SelectMenu{
		CustomID:    controlID(SelectFilter, generation),
		Placeholder: "Select a filter",
		Options:     options,
		Disabled:    disabled,
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{filterMenu}},
	}
}

// trackFields lists artist and duration the way every track embed shows them
func trackFields(t *models.Track) []*discordgo.MessageEmbedField {
	if t == nil {
		return nil
	}
	author := t.Author
	if author == "" {
		author = "Unknown"
	}
	duration := models.FormatDuration(t.DurationMs)
	if t.IsStream {
		duration = "Live"
	}
	return []*discordgo.MessageEmbedField{
		{Name: "👤 Artist", Value: author, Inline: true},
		{Name: "⏱️ Duration", Value: duration, Inline: true},
	}
}

func requestedBy(name string) *discordgo.MessageEmbedFooter {
	if name == "" {
		return nil
	}
	return &discordgo.MessageEmbedFooter{Text: "Requested by " + name}
}

// nowPlayingEmbed renders the control message body
func nowPlayingEmbed(snapshot *models.SessionSnapshot, title, description string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorPrimary,
	}
	if snapshot == nil || snapshot.Current == nil {
		return embed
	}

	current := snapshot.Current
	embed.Fields = trackFields(current)
	if snapshot.State == models.PlaybackStatePaused {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "State", Value: "⏸️ Paused", Inline: true})
	}
	if snapshot.Filter != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "🎛️ Filter", Value: snapshot.Filter, Inline: true})
	}
	if current.ArtworkURI != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: current.ArtworkURI}
	}
	embed.Footer = requestedBy(current.RequesterName)
	return embed
}

// replyEmbed renders a dispatcher reply
func replyEmbed(reply *dispatcher.Reply, text *messaging.GetReplyMessageOutput, userName string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       text.Title,
		Description: text.Message,
		Color:       colorPrimary,
		Footer:      requestedBy(userName),
	}

	switch reply.Kind {
	case dispatcher.ReplyError:
		embed.Color = colorError
		if embed.Title == "" {
			embed.Title = "Error"
		}
	case dispatcher.ReplyTrackAdded:
		embed.Color = colorSuccess
		embed.Fields = trackFields(reply.Track)
		position := "Now playing"
		if reply.Position > 0 {
			position = strconv.Itoa(reply.Position)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "📍 Position", Value: position, Inline: true})
		if reply.Track != nil && reply.Track.ArtworkURI != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: reply.Track.ArtworkURI}
		}
	case dispatcher.ReplyPlaylistAdded:
		embed.Color = colorSuccess
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "🎵 First Track", Value: messaging.TrackLink(reply.Track), Inline: true},
			{Name: "⏱️ Total Duration", Value: models.FormatDuration(models.TotalDuration(reply.Tracks)), Inline: true},
		}
	case dispatcher.ReplyNowPlaying:
		embed.Fields = trackFields(reply.Track)
	case dispatcher.ReplyQueue:
		if reply.Snapshot != nil {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: queueFooter(reply.Snapshot)}
		}
	}

	return embed
}

func queueFooter(snapshot *models.SessionSnapshot) string {
	return fmt.Sprintf("%d in queue • Loop: %s • Volume: %d • 24/7: %s",
		len(snapshot.Queue), snapshot.LoopMode, snapshot.Volume, onOff(snapshot.StayConnected))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// noticeEmbed renders a plain session notice such as the end of the queue
func noticeEmbed(title, message string, isError bool) *discordgo.MessageEmbed {
	color := colorNotice
	if isError {
		color = colorError
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       color,
	}
}
