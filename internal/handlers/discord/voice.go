package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// stateVoiceStates answers voice channel lookups from the gateway state cache
type stateVoiceStates struct {
	state *discordgo.State
}

// NewVoiceStates creates a voice state lookup backed by the session state
func NewVoiceStates(session *discordgo.Session) *stateVoiceStates {
	return &stateVoiceStates{state: session.State}
}

// UserVoiceChannel returns the voice channel the user is in, or "" when not connected
func (v *stateVoiceStates) UserVoiceChannel(guildID, userID string) (string, error) {
	vs, err := v.state.VoiceState(guildID, userID)
	if errors.Is(err, discordgo.ErrStateNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return vs.ChannelID, nil
}
