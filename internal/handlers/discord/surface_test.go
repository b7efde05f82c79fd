package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/biltubhaiff-blip/Discord-music/internal/handlers/discord/mocks"
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/random"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/messaging"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/playback"
	playbackMocks "github.com/biltubhaiff-blip/Discord-music/internal/services/playback/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

type SurfaceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockMessenger *mocks.MockMessenger
	mockPlayback  *playbackMocks.MockService
	surface       *Surface
	ctx           context.Context

	snapshot *models.SessionSnapshot
}

func (s *SurfaceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMessenger = mocks.NewMockMessenger(s.mockCtrl)
	s.mockPlayback = playbackMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	msg, err := messaging.New(&messaging.Config{Random: random.New(&random.Config{Seed: 1})})
	s.Require().NoError(err)

	s.surface, err = NewSurface(&SurfaceConfig{
		Messenger: s.mockMessenger,
		Messaging: msg,
		Logger:    zerolog.Nop(),
	})
	s.Require().NoError(err)

	s.snapshot = &models.SessionSnapshot{
		GuildID:       "guild-1",
		TextChannelID: "text-1",
		Current:       &models.Track{Title: "Song", URI: "https://example.com/song", RequesterName: "Tester"},
		State:         models.PlaybackStatePlaying,
		LoopMode:      models.LoopModeOff,
		Volume:        100,
		Generation:    4,
	}
}

func (s *SurfaceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSurfaceSuite(t *testing.T) {
	suite.Run(t, new(SurfaceTestSuite))
}

func (s *SurfaceTestSuite) started() *playback.Notification {
	return &playback.Notification{
		Kind:          playback.NotificationTrackStarted,
		GuildID:       "guild-1",
		TextChannelID: "text-1",
		Snapshot:      s.snapshot,
		Track:         s.snapshot.Current,
	}
}

func (s *SurfaceTestSuite) expectDisabled(channelID, messageID string) *gomock.Call {
	return s.mockMessenger.EXPECT().
		EditMessage(gomock.Any()).
		DoAndReturn(func(edit *discordgo.MessageEdit) (*discordgo.Message, error) {
			s.Equal(channelID, edit.Channel)
			s.Equal(messageID, edit.ID)
			s.Require().NotNil(edit.Components)
			for _, b := range s.buttonsOf(*edit.Components) {
				s.True(b.Disabled)
			}
			return &discordgo.Message{ID: messageID}, nil
		})
}

func (s *SurfaceTestSuite) buttonsOf(rows []discordgo.MessageComponent) []discordgo.Button {
	row, ok := rows[0].(discordgo.ActionsRow)
	s.Require().True(ok)
	var buttons []discordgo.Button
	for _, c := range row.Components {
		if b, ok := c.(discordgo.Button); ok {
			buttons = append(buttons, b)
		}
	}
	return buttons
}

func (s *SurfaceTestSuite) TestNewSurfaceValidation() {
	_, err := NewSurface(nil)
	s.Error(err)

	_, err = NewSurface(&SurfaceConfig{Messenger: s.mockMessenger})
	s.Error(err)
}

func (s *SurfaceTestSuite) TestTrackStartedPostsAndAttaches() {
	s.mockMessenger.EXPECT().
		SendMessage("text-1", gomock.Any()).
		DoAndReturn(func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
			s.Require().Len(data.Embeds, 1)
			s.Equal("🎵 Now Playing", data.Embeds[0].Title)
			s.Len(data.Components, 2)
			return &discordgo.Message{ID: "msg-2", ChannelID: "text-1"}, nil
		})

	s.mockPlayback.EXPECT().
		AttachControlMessage(gomock.Any(), &playback.AttachControlMessageInput{
			GuildID:    "guild-1",
			Generation: 4,
			Ref:        models.MessageRef{ChannelID: "text-1", MessageID: "msg-2"},
		}).
		Return(&playback.AttachControlMessageOutput{
			Previous: models.MessageRef{ChannelID: "text-1", MessageID: "msg-1"},
		}, nil)

	s.expectDisabled("text-1", "msg-1")

	s.surface.render(s.ctx, s.mockPlayback, s.started())
}

func (s *SurfaceTestSuite) TestTrackStartedWithoutPrevious() {
	s.mockMessenger.EXPECT().
		SendMessage("text-1", gomock.Any()).
		Return(&discordgo.Message{ID: "msg-1", ChannelID: "text-1"}, nil)
	s.mockPlayback.EXPECT().
		AttachControlMessage(gomock.Any(), gomock.Any()).
		Return(&playback.AttachControlMessageOutput{}, nil)

	s.surface.render(s.ctx, s.mockPlayback, s.started())
}

func (s *SurfaceTestSuite) TestStaleMessageIsDisabled() {
	s.mockMessenger.EXPECT().
		SendMessage("text-1", gomock.Any()).
		Return(&discordgo.Message{ID: "msg-2", ChannelID: "text-1"}, nil)
	s.mockPlayback.EXPECT().
		AttachControlMessage(gomock.Any(), gomock.Any()).
		Return(nil, playback.ErrStaleControl)

	s.expectDisabled("text-1", "msg-2")

	s.surface.render(s.ctx, s.mockPlayback, s.started())
}

func (s *SurfaceTestSuite) TestSendFailureSkipsAttach() {
	s.mockMessenger.EXPECT().
		SendMessage("text-1", gomock.Any()).
		Return(nil, errors.New("missing permissions"))

	s.surface.render(s.ctx, s.mockPlayback, s.started())
}

func (s *SurfaceTestSuite) TestStateChangedRefreshesControls() {
	s.snapshot.State = models.PlaybackStatePaused
	s.snapshot.ControlMessage = models.MessageRef{ChannelID: "text-1", MessageID: "msg-1"}
	s.mockPlayback.EXPECT().
		GetSnapshot(gomock.Any(), &playback.GetSnapshotInput{GuildID: "guild-1"}).
		Return(&playback.GetSnapshotOutput{Snapshot: s.snapshot}, nil)

	s.mockMessenger.EXPECT().
		EditMessage(gomock.Any()).
		DoAndReturn(func(edit *discordgo.MessageEdit) (*discordgo.Message, error) {
			s.Equal("msg-1", edit.ID)
			s.Require().NotNil(edit.Embeds)
			s.Require().NotNil(edit.Components)
			buttons := s.buttonsOf(*edit.Components)
			s.Equal("Resume", buttons[0].Label)
			s.False(buttons[0].Disabled)
			return &discordgo.Message{ID: "msg-1"}, nil
		})

	s.surface.render(s.ctx, s.mockPlayback, &playback.Notification{
		Kind:          playback.NotificationStateChanged,
		GuildID:       "guild-1",
		TextChannelID: "text-1",
		Snapshot:      s.snapshot,
	})
}

func (s *SurfaceTestSuite) TestStateChangedAfterSkipLeavesControlsDisabled() {
	s.snapshot.ControlMessage = models.MessageRef{ChannelID: "text-1", MessageID: "msg-1"}
	queued := *s.snapshot

	// The skip cleared the control message and moved to the next track
	s.snapshot.ControlMessage = models.MessageRef{}
	s.snapshot.Generation = 5
	s.mockPlayback.EXPECT().
		GetSnapshot(gomock.Any(), &playback.GetSnapshotInput{GuildID: "guild-1"}).
		Return(&playback.GetSnapshotOutput{Snapshot: s.snapshot}, nil)

	s.surface.render(s.ctx, s.mockPlayback, &playback.Notification{
		Kind:          playback.NotificationStateChanged,
		GuildID:       "guild-1",
		TextChannelID: "text-1",
		Snapshot:      &queued,
	})
}

func (s *SurfaceTestSuite) TestStateChangedAfterStopIsDropped() {
	s.snapshot.ControlMessage = models.MessageRef{ChannelID: "text-1", MessageID: "msg-1"}
	s.mockPlayback.EXPECT().
		GetSnapshot(gomock.Any(), &playback.GetSnapshotInput{GuildID: "guild-1"}).
		Return(nil, playback.ErrSessionNotFound)

	s.surface.render(s.ctx, s.mockPlayback, &playback.Notification{
		Kind:          playback.NotificationStateChanged,
		GuildID:       "guild-1",
		TextChannelID: "text-1",
		Snapshot:      s.snapshot,
	})
}

func (s *SurfaceTestSuite) TestStateChangedWithoutControlMessage() {
	s.surface.render(s.ctx, s.mockPlayback, &playback.Notification{
		Kind:     playback.NotificationStateChanged,
		GuildID:  "guild-1",
		Snapshot: s.snapshot,
	})
}

func (s *SurfaceTestSuite) TestQueueEndedPostsNotice() {
	s.mockMessenger.EXPECT().
		SendMessage("text-1", gomock.Any()).
		DoAndReturn(func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
			s.Require().Len(data.Embeds, 1)
			s.Equal("Queue has ended!", data.Embeds[0].Description)
			s.Equal(colorNotice, data.Embeds[0].Color)
			s.Empty(data.Components)
			return &discordgo.Message{ID: "msg-3"}, nil
		})

	s.surface.render(s.ctx, s.mockPlayback, &playback.Notification{
		Kind:          playback.NotificationQueueEnded,
		GuildID:       "guild-1",
		TextChannelID: "text-1",
	})
}

func (s *SurfaceTestSuite) TestPlaybackFailedPostsError() {
	s.mockMessenger.EXPECT().
		SendMessage("text-1", gomock.Any()).
		DoAndReturn(func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
			s.Equal(colorError, data.Embeds[0].Color)
			s.Equal("❌ Playback Error", data.Embeds[0].Title)
			return &discordgo.Message{ID: "msg-4"}, nil
		})

	s.surface.render(s.ctx, s.mockPlayback, &playback.Notification{
		Kind:          playback.NotificationPlaybackFailed,
		GuildID:       "guild-1",
		TextChannelID: "text-1",
		Err:           playback.ErrPlaybackFailed,
	})
}

func (s *SurfaceTestSuite) TestDisableControlsIgnoresZeroRef() {
	s.NoError(s.surface.DisableControls(s.ctx, models.MessageRef{}))
}

func (s *SurfaceTestSuite) TestDisableControlsHonoursContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	err := s.surface.DisableControls(ctx, models.MessageRef{ChannelID: "text-1", MessageID: "msg-1"})
	s.ErrorIs(err, context.Canceled)
}

func (s *SurfaceTestSuite) TestRunRendersUntilCancelled() {
	defer goleak.VerifyNone(s.T(), goleak.IgnoreCurrent())

	notifications := make(chan *playback.Notification, 1)
	s.mockPlayback.EXPECT().Notifications().Return((<-chan *playback.Notification)(notifications))

	posted := make(chan struct{})
	s.mockMessenger.EXPECT().
		SendMessage("text-1", gomock.Any()).
		DoAndReturn(func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
			close(posted)
			return &discordgo.Message{ID: "msg-5"}, nil
		})

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() { done <- s.surface.Run(ctx, s.mockPlayback) }()

	notifications <- &playback.Notification{Kind: playback.NotificationStopped, GuildID: "guild-1", TextChannelID: "text-1"}

	select {
	case <-posted:
	case <-time.After(time.Second):
		s.FailNow("notification was not rendered")
	}

	cancel()
	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(time.Second):
		s.FailNow("run did not stop")
	}
}

func (s *SurfaceTestSuite) TestRunStopsWhenChannelCloses() {
	notifications := make(chan *playback.Notification)
	close(notifications)
	s.mockPlayback.EXPECT().Notifications().Return((<-chan *playback.Notification)(notifications))

	s.NoError(s.surface.Run(s.ctx, s.mockPlayback))
}
