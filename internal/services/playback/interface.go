package playback

import (
	"context"

	"github.com/biltubhaiff-blip/Discord-music/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/biltubhaiff-blip/Discord-music/internal/services/playback Service
//go:generate mockgen -package=surfacemocks -destination=surfacemocks/mock_surface.go github.com/biltubhaiff-blip/Discord-music/internal/services/playback ControlSurface

// Service defines the interface for per-guild playback sessions
type Service interface {
	// Enqueue adds tracks to the guild's queue, creating the session and starting playback when idle
	Enqueue(ctx context.Context, input *EnqueueInput) (*EnqueueOutput, error)

	// Play restarts playback of an idle session that still has tracks
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// Pause holds the current track
	Pause(ctx context.Context, input *PauseInput) (*PauseOutput, error)

	// Resume releases a paused track
	Resume(ctx context.Context, input *ResumeInput) (*ResumeOutput, error)

	// Skip ends the current track and moves to the next one
	Skip(ctx context.Context, input *SkipInput) (*SkipOutput, error)

	// Stop clears the queue, leaves voice and removes the session
	Stop(ctx context.Context, input *StopInput) (*StopOutput, error)

	// SetLoop changes the loop mode
	SetLoop(ctx context.Context, input *SetLoopInput) (*SetLoopOutput, error)

	// SetVolume changes the volume once the audio node accepts it
	SetVolume(ctx context.Context, input *SetVolumeInput) (*SetVolumeOutput, error)

	// SetFilter applies an audio filter preset
	SetFilter(ctx context.Context, input *SetFilterInput) (*SetFilterOutput, error)

	// Remove deletes a pending track by position
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)

	// Move relocates a pending track
	Move(ctx context.Context, input *MoveInput) (*MoveOutput, error)

	// ClearQueue removes every pending track
	ClearQueue(ctx context.Context, input *ClearQueueInput) (*ClearQueueOutput, error)

	// Shuffle permutes the pending tracks
	Shuffle(ctx context.Context, input *ShuffleInput) (*ShuffleOutput, error)

	// SetStayConnected toggles 24/7 mode
	SetStayConnected(ctx context.Context, input *SetStayConnectedInput) (*SetStayConnectedOutput, error)

	// GetSnapshot returns a read-only copy of the session
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)

	// AttachControlMessage records the now playing message for the track of the given generation
	AttachControlMessage(ctx context.Context, input *AttachControlMessageInput) (*AttachControlMessageOutput, error)

	// HandleVoiceDisconnect tears the session down after the bot was removed from voice
	HandleVoiceDisconnect(ctx context.Context, input *HandleVoiceDisconnectInput) (*HandleVoiceDisconnectOutput, error)

	// Notifications returns the stream the control surface renders
	Notifications() <-chan *Notification

	// Run consumes audio node events until ctx is cancelled
	Run(ctx context.Context) error
}

// ControlSurface is the part of the renderer the session needs synchronously
type ControlSurface interface {
	// DisableControls greys out the buttons on a control message
	DisableControls(ctx context.Context, ref models.MessageRef) error
}
