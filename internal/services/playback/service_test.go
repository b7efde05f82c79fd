package playback

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/biltubhaiff-blip/Discord-music/internal/audionode"
	nodeMocks "github.com/biltubhaiff-blip/Discord-music/internal/audionode/mocks"
	clockMocks "github.com/biltubhaiff-blip/Discord-music/internal/common/clock/mocks"
	"github.com/biltubhaiff-blip/Discord-music/internal/metrics"
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/random"
	"github.com/biltubhaiff-blip/Discord-music/internal/services/playback/surfacemocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

type PlaybackServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockNode    *nodeMocks.MockClient
	mockSurface *surfacemocks.MockControlSurface
	mockClock   *clockMocks.MockClock
	svc         *service
	ctx         context.Context

	// Test data
	testTime      time.Time
	testGuildID   string
	testVoiceID   string
	testTextID    string
	testControlID models.MessageRef
}

func (s *PlaybackServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockNode = nodeMocks.NewMockClient(s.mockCtrl)
	s.mockSurface = surfacemocks.NewMockControlSurface(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"
	s.testVoiceID = "test-voice-id"
	s.testTextID = "test-text-id"
	s.testControlID = models.MessageRef{ChannelID: "test-text-id", MessageID: "test-message-id"}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		AudioNode:          s.mockNode,
		Surface:            s.mockSurface,
		Random:             random.New(&random.Config{Seed: 42}),
		Clock:              s.mockClock,
		Logger:             zerolog.Nop(),
		NodeTimeout:        time.Second,
		SurfaceTimeout:     time.Second,
		NotificationBuffer: 64,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *PlaybackServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPlaybackServiceSuite(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	suite.Run(t, new(PlaybackServiceTestSuite))
}

func track(name string) *models.Track {
	return &models.Track{
		ID:          name,
		Title:       name,
		URI:         "https://example.com/" + name,
		DurationMs:  180000,
		RequesterID: "requester-" + name,
	}
}

func (s *PlaybackServiceTestSuite) enqueue(tracks ...*models.Track) (*EnqueueOutput, error) {
	return s.svc.Enqueue(s.ctx, &EnqueueInput{
		GuildID:        s.testGuildID,
		VoiceChannelID: s.testVoiceID,
		TextChannelID:  s.testTextID,
		Tracks:         tracks,
	})
}

// startPlaying creates a session playing the first track with the rest pending
func (s *PlaybackServiceTestSuite) startPlaying(tracks ...*models.Track) {
	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, s.testVoiceID).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, tracks[0].URI).Return(nil)

	output, err := s.enqueue(tracks...)
	s.Require().NoError(err)
	s.Require().True(output.Started)
}

func (s *PlaybackServiceTestSuite) snapshot() *models.SessionSnapshot {
	output, err := s.svc.GetSnapshot(s.ctx, &GetSnapshotInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	return output.Snapshot
}

func (s *PlaybackServiceTestSuite) finished(t *models.Track) audionode.Event {
	return audionode.Event{
		Type:     audionode.EventTrackEnded,
		GuildID:  s.testGuildID,
		TrackURI: t.URI,
		Reason:   audionode.EndReasonFinished,
	}
}

func (s *PlaybackServiceTestSuite) drainNotifications() []*Notification {
	var out []*Notification
	for {
		select {
		case n := <-s.svc.Notifications():
			out = append(out, n)
		default:
			return out
		}
	}
}

func countKind(notifications []*Notification, kind NotificationKind) int {
	count := 0
	for _, n := range notifications {
		if n.Kind == kind {
			count++
		}
	}
	return count
}

func (s *PlaybackServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Surface: s.mockSurface, Random: random.New(nil), Clock: s.mockClock})
	s.ErrorIs(err, ErrNilAudioNode)

	_, err = New(&Config{AudioNode: s.mockNode, Random: random.New(nil), Clock: s.mockClock})
	s.ErrorIs(err, ErrNilSurface)

	_, err = New(&Config{AudioNode: s.mockNode, Surface: s.mockSurface, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilRandom)

	_, err = New(&Config{AudioNode: s.mockNode, Surface: s.mockSurface, Random: random.New(nil)})
	s.ErrorIs(err, ErrNilClock)
}

func (s *PlaybackServiceTestSuite) TestEnqueueOnEmptySessionStartsPlaying() {
	a := track("a")
	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, s.testVoiceID).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, a.URI).Return(nil)

	output, err := s.enqueue(a)
	s.Require().NoError(err)

	s.True(output.Created)
	s.True(output.Started)
	s.Equal(0, output.Position)
	s.Equal(1, output.Count)
	s.Equal(models.PlaybackStatePlaying, output.Snapshot.State)
	s.Equal(a, output.Snapshot.Current)
	s.Empty(output.Snapshot.Queue)
	s.Equal(DefaultVolume, output.Snapshot.Volume)
	s.Equal(models.LoopModeOff, output.Snapshot.LoopMode)
	s.Equal(s.testTime, output.Snapshot.CreatedAt)
	s.Equal(1, s.svc.sessions.len())
}

func (s *PlaybackServiceTestSuite) TestEnqueueWhilePlayingAppends() {
	a, b, c := track("a"), track("b"), track("c")
	s.startPlaying(a)

	output, err := s.enqueue(b)
	s.Require().NoError(err)
	s.False(output.Started)
	s.False(output.Created)
	s.Equal(1, output.Position)

	output, err = s.enqueue(c)
	s.Require().NoError(err)
	s.Equal(2, output.Position)
	s.Equal([]*models.Track{b, c}, output.Snapshot.Queue)
}

func (s *PlaybackServiceTestSuite) TestEnqueuePlaylistStartsFirstTrack() {
	a, b, c := track("a"), track("b"), track("c")
	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, s.testVoiceID).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, a.URI).Return(nil)

	output, err := s.enqueue(a, b, c)
	s.Require().NoError(err)
	s.Equal(3, output.Count)
	s.Equal(a, output.Snapshot.Current)
	s.Equal([]*models.Track{b, c}, output.Snapshot.Queue)
}

func (s *PlaybackServiceTestSuite) TestEnqueueWithoutTracks() {
	_, err := s.enqueue()
	s.ErrorIs(err, ErrNoTracks)
	s.Equal(0, s.svc.sessions.len())
}

func (s *PlaybackServiceTestSuite) TestEnqueueRelocatesActiveSession() {
	a, b := track("a"), track("b")
	s.startPlaying(a)

	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, "other-voice-id").Return(nil)

	output, err := s.svc.Enqueue(s.ctx, &EnqueueInput{
		GuildID:        s.testGuildID,
		VoiceChannelID: "other-voice-id",
		TextChannelID:  s.testTextID,
		Tracks:         []*models.Track{b},
	})
	s.Require().NoError(err)
	s.True(output.Relocated)
	s.Equal("other-voice-id", s.snapshot().VoiceChannelID)
}

func (s *PlaybackServiceTestSuite) TestFailedRelocationLeavesSessionInPlace() {
	a, b := track("a"), track("b")
	s.startPlaying(a)

	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, "other-voice-id").Return(errors.New("join refused"))

	_, err := s.svc.Enqueue(s.ctx, &EnqueueInput{
		GuildID:        s.testGuildID,
		VoiceChannelID: "other-voice-id",
		TextChannelID:  s.testTextID,
		Tracks:         []*models.Track{b},
	})
	s.ErrorIs(err, ErrPlaybackFailed)

	snapshot := s.snapshot()
	s.Equal(s.testVoiceID, snapshot.VoiceChannelID)
	s.Equal(a, snapshot.Current)
	s.Empty(snapshot.Queue)
	s.Equal(models.PlaybackStatePlaying, snapshot.State)

	// Still joined to the original channel, so no new connect
	output, err := s.enqueue(b)
	s.Require().NoError(err)
	s.False(output.Relocated)
	s.Equal(1, output.Position)
}

func (s *PlaybackServiceTestSuite) TestSupersededPlayIsNotSent() {
	a, b := track("a"), track("b")
	joining := make(chan struct{})
	release := make(chan struct{})

	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, s.testVoiceID).DoAndReturn(
		func(ctx context.Context, guildID, channelID string) error {
			close(joining)
			<-release
			return nil
		})
	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, s.testVoiceID).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, b.URI).Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.enqueue(a, b)
		done <- err
	}()

	<-joining
	output, err := s.svc.Skip(s.ctx, &SkipInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(b, output.Next)

	close(release)
	s.NoError(<-done)

	snapshot := s.snapshot()
	s.Equal(b, snapshot.Current)
	s.Equal(models.PlaybackStatePlaying, snapshot.State)
}

func (s *PlaybackServiceTestSuite) TestAdvanceThroughTwoTracks() {
	a, b := track("a"), track("b")
	s.startPlaying(a, b)

	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, b.URI).Return(nil)
	s.svc.handleEvent(s.ctx, s.finished(a))

	snapshot := s.snapshot()
	s.Equal(b, snapshot.Current)
	s.Empty(snapshot.Queue)
	s.Equal(models.PlaybackStatePlaying, snapshot.State)

	s.mockNode.EXPECT().Disconnect(gomock.Any(), s.testGuildID).Return(nil)
	s.svc.handleEvent(s.ctx, s.finished(b))

	_, err := s.svc.GetSnapshot(s.ctx, &GetSnapshotInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)

	notifications := s.drainNotifications()
	s.Equal(1, countKind(notifications, NotificationQueueEnded))
}

func (s *PlaybackServiceTestSuite) TestDrainWithStayConnectedKeepsSession() {
	a := track("a")
	s.startPlaying(a)

	_, err := s.svc.SetStayConnected(s.ctx, &SetStayConnectedInput{GuildID: s.testGuildID, Enabled: true})
	s.Require().NoError(err)

	s.mockNode.EXPECT().Stop(gomock.Any(), s.testGuildID).Return(nil)
	s.svc.handleEvent(s.ctx, s.finished(a))

	snapshot := s.snapshot()
	s.Equal(models.PlaybackStateIdle, snapshot.State)
	s.Nil(snapshot.Current)
	s.True(snapshot.StayConnected)

	// Turning 24/7 off while idle removes the session
	s.mockNode.EXPECT().Disconnect(gomock.Any(), s.testGuildID).Return(nil)
	output, err := s.svc.SetStayConnected(s.ctx, &SetStayConnectedInput{GuildID: s.testGuildID, Enabled: false})
	s.Require().NoError(err)
	s.True(output.Destroyed)
	s.Equal(0, s.svc.sessions.len())
}

func (s *PlaybackServiceTestSuite) TestStayConnectedSessionPlaysAgainAfterDrain() {
	a, b := track("a"), track("b")
	s.startPlaying(a)

	_, err := s.svc.SetStayConnected(s.ctx, &SetStayConnectedInput{GuildID: s.testGuildID, Enabled: true})
	s.Require().NoError(err)

	s.mockNode.EXPECT().Stop(gomock.Any(), s.testGuildID).Return(nil)
	s.svc.handleEvent(s.ctx, s.finished(a))

	// Still connected, so no second Connect
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, b.URI).Return(nil)
	output, err := s.enqueue(b)
	s.Require().NoError(err)
	s.True(output.Started)
	s.False(output.Created)
}

func (s *PlaybackServiceTestSuite) TestLoopTrackRepeatsOnFinish() {
	a, b := track("a"), track("b")
	s.startPlaying(a, b)

	_, err := s.svc.SetLoop(s.ctx, &SetLoopInput{GuildID: s.testGuildID, Mode: models.LoopModeTrack})
	s.Require().NoError(err)

	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, a.URI).Return(nil).Times(3)
	for i := 0; i < 3; i++ {
		s.svc.handleEvent(s.ctx, s.finished(a))
		s.Equal(a, s.snapshot().Current)
	}
	s.Equal([]*models.Track{b}, s.snapshot().Queue)

	// A failed track is not replayed forever
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, b.URI).Return(nil)
	s.svc.handleEvent(s.ctx, audionode.Event{
		Type:     audionode.EventTrackEnded,
		GuildID:  s.testGuildID,
		TrackURI: a.URI,
		Reason:   audionode.EndReasonError,
	})
	s.Equal(b, s.snapshot().Current)
}

func (s *PlaybackServiceTestSuite) TestLoopQueueCyclesTracks() {
	a, b, c := track("a"), track("b"), track("c")
	s.startPlaying(a, b, c)

	_, err := s.svc.SetLoop(s.ctx, &SetLoopInput{GuildID: s.testGuildID, Mode: models.LoopModeQueue})
	s.Require().NoError(err)

	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, gomock.Any()).Return(nil).Times(3)
	for _, t := range []*models.Track{a, b, c} {
		s.svc.handleEvent(s.ctx, s.finished(t))
	}

	snapshot := s.snapshot()
	s.Equal(a, snapshot.Current)
	s.Equal([]*models.Track{b, c}, snapshot.Queue)
}

func (s *PlaybackServiceTestSuite) TestStoppedEndReasonDoesNotAdvance() {
	a, b := track("a"), track("b")
	s.startPlaying(a, b)

	s.svc.handleEvent(s.ctx, audionode.Event{
		Type:     audionode.EventTrackEnded,
		GuildID:  s.testGuildID,
		TrackURI: a.URI,
		Reason:   audionode.EndReasonStopped,
	})

	s.Equal(a, s.snapshot().Current)
}

func (s *PlaybackServiceTestSuite) TestStaleTrackEndIsIgnored() {
	a, b := track("a"), track("b")
	s.startPlaying(a, b)

	// Event for a track that is no longer current
	s.svc.handleEvent(s.ctx, s.finished(b))
	s.Equal(a, s.snapshot().Current)

	// Event for a guild without a session
	s.svc.handleEvent(s.ctx, audionode.Event{
		Type:     audionode.EventTrackEnded,
		GuildID:  "unknown-guild",
		TrackURI: a.URI,
		Reason:   audionode.EndReasonFinished,
	})
}

func (s *PlaybackServiceTestSuite) TestSkipToNextTrack() {
	a, b := track("a"), track("b")
	s.startPlaying(a, b)

	_, err := s.svc.SetLoop(s.ctx, &SetLoopInput{GuildID: s.testGuildID, Mode: models.LoopModeTrack})
	s.Require().NoError(err)

	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, b.URI).Return(nil)

	output, err := s.svc.Skip(s.ctx, &SkipInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(a, output.Skipped)
	s.Equal(b, output.Next)
	s.False(output.QueueEnded)
	s.Equal(models.LoopModeTrack, s.snapshot().LoopMode)
}

func (s *PlaybackServiceTestSuite) TestSkipDisablesControlsFirst() {
	a, b := track("a"), track("b")
	s.startPlaying(a, b)

	_, err := s.svc.AttachControlMessage(s.ctx, &AttachControlMessageInput{
		GuildID:    s.testGuildID,
		Generation: s.snapshot().Generation,
		Ref:        s.testControlID,
	})
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockSurface.EXPECT().DisableControls(gomock.Any(), s.testControlID).Return(nil),
		s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, b.URI).Return(nil),
	)

	_, err = s.svc.Skip(s.ctx, &SkipInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.True(s.snapshot().ControlMessage.IsZero())
}

func (s *PlaybackServiceTestSuite) TestSkipWithStaleGeneration() {
	a, b := track("a"), track("b")
	s.startPlaying(a, b)

	output, err := s.svc.Skip(s.ctx, &SkipInput{GuildID: s.testGuildID, Generation: s.snapshot().Generation + 5})
	s.Require().NoError(err)
	s.True(output.AlreadySkipped)
	s.Equal(a, s.snapshot().Current)
}

func (s *PlaybackServiceTestSuite) TestConcurrentSkipsPerformOneTransition() {
	a := track("a")
	s.startPlaying(a)

	_, err := s.svc.AttachControlMessage(s.ctx, &AttachControlMessageInput{
		GuildID:    s.testGuildID,
		Generation: s.snapshot().Generation,
		Ref:        s.testControlID,
	})
	s.Require().NoError(err)

	// Both skips read the same track before either transitions
	var barrier sync.WaitGroup
	barrier.Add(2)
	s.mockSurface.EXPECT().DisableControls(gomock.Any(), s.testControlID).DoAndReturn(
		func(ctx context.Context, ref models.MessageRef) error {
			barrier.Done()
			barrier.Wait()
			return nil
		}).Times(2)
	s.mockNode.EXPECT().Disconnect(gomock.Any(), s.testGuildID).Return(nil).Times(1)

	outputs := make([]*SkipOutput, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outputs[i], errs[i] = s.svc.Skip(s.ctx, &SkipInput{GuildID: s.testGuildID})
		}(i)
	}
	wg.Wait()

	s.Require().NoError(errs[0])
	s.Require().NoError(errs[1])
	s.NotEqual(outputs[0].AlreadySkipped, outputs[1].AlreadySkipped)
	s.NotEqual(outputs[0].QueueEnded, outputs[1].QueueEnded)

	s.Equal(1, countKind(s.drainNotifications(), NotificationQueueEnded))
	s.Equal(0, s.svc.sessions.len())
}

func (s *PlaybackServiceTestSuite) TestSkipRacingDrain() {
	a := track("a")
	s.startPlaying(a)

	s.mockNode.EXPECT().Disconnect(gomock.Any(), s.testGuildID).Return(nil).Times(1)
	s.svc.handleEvent(s.ctx, s.finished(a))

	_, err := s.svc.Skip(s.ctx, &SkipInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)
	s.Equal(1, countKind(s.drainNotifications(), NotificationQueueEnded))
}

func (s *PlaybackServiceTestSuite) TestStop() {
	a, b, c := track("a"), track("b"), track("c")
	s.startPlaying(a, b, c)

	_, err := s.svc.AttachControlMessage(s.ctx, &AttachControlMessageInput{
		GuildID:    s.testGuildID,
		Generation: s.snapshot().Generation,
		Ref:        s.testControlID,
	})
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockSurface.EXPECT().DisableControls(gomock.Any(), s.testControlID).Return(nil),
		s.mockNode.EXPECT().Disconnect(gomock.Any(), s.testGuildID).Return(nil),
	)

	output, err := s.svc.Stop(s.ctx, &StopInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(2, output.Cleared)
	s.Equal(0, s.svc.sessions.len())

	notifications := s.drainNotifications()
	s.Require().Equal(1, countKind(notifications, NotificationStopped))
	stopped := notifications[len(notifications)-1]
	s.Equal(models.PlaybackStateStopped, stopped.Snapshot.State)
	s.Equal(s.testTextID, stopped.TextChannelID)

	// A finished event after stop changes nothing
	s.svc.handleEvent(s.ctx, s.finished(a))

	_, err = s.svc.Stop(s.ctx, &StopInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *PlaybackServiceTestSuite) TestStopWhileIdle() {
	a := track("a")
	s.startPlaying(a)
	_, err := s.svc.SetStayConnected(s.ctx, &SetStayConnectedInput{GuildID: s.testGuildID, Enabled: true})
	s.Require().NoError(err)

	s.mockNode.EXPECT().Stop(gomock.Any(), s.testGuildID).Return(nil)
	s.svc.handleEvent(s.ctx, s.finished(a))

	_, err = s.svc.Stop(s.ctx, &StopInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrNothingPlaying)
}

func (s *PlaybackServiceTestSuite) TestStopDuringInFlightPlay() {
	a := track("a")
	started := make(chan struct{})
	release := make(chan struct{})

	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, s.testVoiceID).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, a.URI).DoAndReturn(
		func(ctx context.Context, guildID, uri string) error {
			close(started)
			<-release
			return nil
		})
	s.mockNode.EXPECT().Disconnect(gomock.Any(), s.testGuildID).Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.enqueue(a)
		done <- err
	}()

	<-started
	_, err := s.svc.Stop(s.ctx, &StopInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	close(release)

	s.ErrorIs(<-done, ErrSessionNotFound)
	s.Equal(0, s.svc.sessions.len())
}

func (s *PlaybackServiceTestSuite) TestPlaybackFailureKeepsQueue() {
	a, b := track("a"), track("b")
	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, s.testVoiceID).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, a.URI).Return(errors.New("no such track"))

	_, err := s.enqueue(a, b)
	s.ErrorIs(err, ErrPlaybackFailed)

	snapshot := s.snapshot()
	s.Equal(models.PlaybackStateIdle, snapshot.State)
	s.Equal(a, snapshot.Current)
	s.Equal([]*models.Track{b}, snapshot.Queue)

	// Retry reconnects and plays the same track
	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, s.testVoiceID).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, a.URI).Return(nil)

	output, err := s.svc.Play(s.ctx, &PlayInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(a, output.Track)
	s.Equal(models.PlaybackStatePlaying, s.snapshot().State)

	output, err = s.svc.Play(s.ctx, &PlayInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.True(output.AlreadyInState)
}

func (s *PlaybackServiceTestSuite) TestPlaybackFailureDuringDrainNotifies() {
	a, b := track("a"), track("b")
	s.startPlaying(a, b)

	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, b.URI).Return(errors.New("boom"))
	s.svc.handleEvent(s.ctx, s.finished(a))

	notifications := s.drainNotifications()
	s.Require().Equal(1, countKind(notifications, NotificationPlaybackFailed))
	s.Equal(models.PlaybackStateIdle, s.snapshot().State)
	s.Equal(b, s.snapshot().Current)
}

func (s *PlaybackServiceTestSuite) TestNodeTimeout() {
	a := track("a")
	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, s.testVoiceID).Return(context.DeadlineExceeded)

	_, err := s.enqueue(a)
	s.ErrorIs(err, ErrNodeTimeout)
	s.Equal(models.PlaybackStateIdle, s.snapshot().State)
}

func (s *PlaybackServiceTestSuite) TestNodeNotReady() {
	a := track("a")
	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, s.testVoiceID).Return(audionode.ErrNodeNotReady)

	_, err := s.enqueue(a)
	s.ErrorIs(err, ErrNodeDisconnected)
}

func (s *PlaybackServiceTestSuite) TestPauseAndResume() {
	a := track("a")
	s.startPlaying(a)

	s.mockNode.EXPECT().Pause(gomock.Any(), s.testGuildID, true).Return(nil)
	pause, err := s.svc.Pause(s.ctx, &PauseInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.False(pause.AlreadyInState)
	s.Equal(models.PlaybackStatePaused, s.snapshot().State)

	pause, err = s.svc.Pause(s.ctx, &PauseInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.True(pause.AlreadyInState)

	s.mockNode.EXPECT().Pause(gomock.Any(), s.testGuildID, false).Return(nil)
	resume, err := s.svc.Resume(s.ctx, &ResumeInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.False(resume.AlreadyInState)
	s.Equal(models.PlaybackStatePlaying, s.snapshot().State)

	resume, err = s.svc.Resume(s.ctx, &ResumeInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.True(resume.AlreadyInState)
}

func (s *PlaybackServiceTestSuite) TestPauseFailureKeepsState() {
	a := track("a")
	s.startPlaying(a)

	s.mockNode.EXPECT().Pause(gomock.Any(), s.testGuildID, true).Return(errors.New("node error"))
	_, err := s.svc.Pause(s.ctx, &PauseInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrPlaybackFailed)
	s.Equal(models.PlaybackStatePlaying, s.snapshot().State)
}

func (s *PlaybackServiceTestSuite) TestOperationsWithoutSession() {
	_, err := s.svc.Pause(s.ctx, &PauseInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.svc.Skip(s.ctx, &SkipInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.svc.SetVolume(s.ctx, &SetVolumeInput{GuildID: s.testGuildID, Level: 50})
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.svc.ClearQueue(s.ctx, &ClearQueueInput{GuildID: s.testGuildID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *PlaybackServiceTestSuite) TestSetVolume() {
	a := track("a")
	s.startPlaying(a)

	_, err := s.svc.SetVolume(s.ctx, &SetVolumeInput{GuildID: s.testGuildID, Level: 150})
	s.ErrorIs(err, ErrOutOfRange)
	s.Equal(100, s.snapshot().Volume)

	_, err = s.svc.SetVolume(s.ctx, &SetVolumeInput{GuildID: s.testGuildID, Level: -1})
	s.ErrorIs(err, ErrOutOfRange)

	s.mockNode.EXPECT().SetVolume(gomock.Any(), s.testGuildID, 40).Return(errors.New("node error"))
	_, err = s.svc.SetVolume(s.ctx, &SetVolumeInput{GuildID: s.testGuildID, Level: 40})
	s.Error(err)
	s.Equal(100, s.snapshot().Volume)

	s.mockNode.EXPECT().SetVolume(gomock.Any(), s.testGuildID, 40).Return(nil)
	output, err := s.svc.SetVolume(s.ctx, &SetVolumeInput{GuildID: s.testGuildID, Level: 40})
	s.Require().NoError(err)
	s.Equal(100, output.Previous)
	s.Equal(40, s.snapshot().Volume)
}

func (s *PlaybackServiceTestSuite) TestSetFilter() {
	a := track("a")
	s.startPlaying(a)

	_, err := s.svc.SetFilter(s.ctx, &SetFilterInput{GuildID: s.testGuildID, Filter: "chipmunk"})
	s.ErrorIs(err, ErrUnknownFilter)

	s.mockNode.EXPECT().SetFilter(gomock.Any(), s.testGuildID, "nightcore").Return(nil)
	output, err := s.svc.SetFilter(s.ctx, &SetFilterInput{GuildID: s.testGuildID, Filter: "Nightcore"})
	s.Require().NoError(err)
	s.Equal("nightcore", output.Filter)
	s.Equal("nightcore", s.snapshot().Filter)

	s.mockNode.EXPECT().SetFilter(gomock.Any(), s.testGuildID, audionode.FilterOff).Return(nil)
	output, err = s.svc.SetFilter(s.ctx, &SetFilterInput{GuildID: s.testGuildID, Filter: "off"})
	s.Require().NoError(err)
	s.Empty(output.Filter)
	s.Empty(s.snapshot().Filter)
}

func (s *PlaybackServiceTestSuite) TestRemoveOutOfRangeLeavesQueue() {
	a, b, c, d := track("a"), track("b"), track("c"), track("d")
	s.startPlaying(a, b, c, d)

	_, err := s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID, Position: 5})
	s.ErrorIs(err, ErrOutOfRange)
	_, err = s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID, Position: 0})
	s.ErrorIs(err, ErrOutOfRange)
	s.Equal([]*models.Track{b, c, d}, s.snapshot().Queue)

	output, err := s.svc.Remove(s.ctx, &RemoveInput{GuildID: s.testGuildID, Position: 2})
	s.Require().NoError(err)
	s.Equal(c, output.Track)
	s.Equal([]*models.Track{b, d}, s.snapshot().Queue)
}

func (s *PlaybackServiceTestSuite) TestMoveClearAndShuffle() {
	a, b, c, d := track("a"), track("b"), track("c"), track("d")
	s.startPlaying(a, b, c, d)

	moved, err := s.svc.Move(s.ctx, &MoveInput{GuildID: s.testGuildID, From: 3, To: 1})
	s.Require().NoError(err)
	s.Equal(d, moved.Track)
	s.Equal([]*models.Track{d, b, c}, s.snapshot().Queue)

	_, err = s.svc.Move(s.ctx, &MoveInput{GuildID: s.testGuildID, From: 1, To: 4})
	s.ErrorIs(err, ErrOutOfRange)

	shuffled, err := s.svc.Shuffle(s.ctx, &ShuffleInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(3, shuffled.Count)
	s.ElementsMatch([]*models.Track{b, c, d}, s.snapshot().Queue)
	s.Equal(a, s.snapshot().Current)

	cleared, err := s.svc.ClearQueue(s.ctx, &ClearQueueInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.Equal(3, cleared.Removed)
	s.Empty(s.snapshot().Queue)
	s.Equal(a, s.snapshot().Current)
	s.Equal(models.PlaybackStatePlaying, s.snapshot().State)
}

func (s *PlaybackServiceTestSuite) TestSetLoop() {
	a := track("a")
	s.startPlaying(a)

	output, err := s.svc.SetLoop(s.ctx, &SetLoopInput{GuildID: s.testGuildID, Mode: models.LoopModeQueue})
	s.Require().NoError(err)
	s.Equal(models.LoopModeOff, output.Previous)
	s.Equal(models.LoopModeQueue, output.Mode)
	s.Equal(models.PlaybackStatePlaying, s.snapshot().State)

	_, err = s.svc.SetLoop(s.ctx, &SetLoopInput{GuildID: s.testGuildID, Mode: "forever"})
	s.ErrorIs(err, ErrInvalidLoopMode)
	s.Equal(models.LoopModeQueue, s.snapshot().LoopMode)
}

func (s *PlaybackServiceTestSuite) TestAttachControlMessage() {
	a, b := track("a"), track("b")
	s.startPlaying(a, b)
	generation := s.snapshot().Generation

	output, err := s.svc.AttachControlMessage(s.ctx, &AttachControlMessageInput{
		GuildID: s.testGuildID, Generation: generation, Ref: s.testControlID,
	})
	s.Require().NoError(err)
	s.True(output.Previous.IsZero())

	replacement := models.MessageRef{ChannelID: s.testTextID, MessageID: "replacement"}
	output, err = s.svc.AttachControlMessage(s.ctx, &AttachControlMessageInput{
		GuildID: s.testGuildID, Generation: generation, Ref: replacement,
	})
	s.Require().NoError(err)
	s.Equal(s.testControlID, output.Previous)

	s.mockSurface.EXPECT().DisableControls(gomock.Any(), replacement).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, b.URI).Return(nil)
	_, err = s.svc.Skip(s.ctx, &SkipInput{GuildID: s.testGuildID})
	s.Require().NoError(err)

	_, err = s.svc.AttachControlMessage(s.ctx, &AttachControlMessageInput{
		GuildID: s.testGuildID, Generation: generation, Ref: s.testControlID,
	})
	s.ErrorIs(err, ErrStaleControl)
}

func (s *PlaybackServiceTestSuite) TestHandleVoiceDisconnect() {
	a := track("a")
	s.startPlaying(a)

	s.mockNode.EXPECT().Disconnect(gomock.Any(), s.testGuildID).Return(nil)
	output, err := s.svc.HandleVoiceDisconnect(s.ctx, &HandleVoiceDisconnectInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.True(output.Destroyed)
	s.Equal(1, countKind(s.drainNotifications(), NotificationStopped))

	output, err = s.svc.HandleVoiceDisconnect(s.ctx, &HandleVoiceDisconnectInput{GuildID: s.testGuildID})
	s.Require().NoError(err)
	s.False(output.Destroyed)
}

func (s *PlaybackServiceTestSuite) TestNodeDisconnectTearsDownAllSessions() {
	a, b := track("a"), track("b")
	s.startPlaying(a)

	s.mockNode.EXPECT().Connect(gomock.Any(), "other-guild", s.testVoiceID).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), "other-guild", b.URI).Return(nil)
	_, err := s.svc.Enqueue(s.ctx, &EnqueueInput{
		GuildID:        "other-guild",
		VoiceChannelID: s.testVoiceID,
		TextChannelID:  s.testTextID,
		Tracks:         []*models.Track{b},
	})
	s.Require().NoError(err)
	s.Equal(2, s.svc.sessions.len())

	s.mockNode.EXPECT().Disconnect(gomock.Any(), s.testGuildID).Return(nil)
	s.mockNode.EXPECT().Disconnect(gomock.Any(), "other-guild").Return(nil)
	s.svc.handleEvent(s.ctx, audionode.Event{Type: audionode.EventNodeDisconnected})

	s.Equal(0, s.svc.sessions.len())
	s.Equal(2, countKind(s.drainNotifications(), NotificationNodeDisconnected))
}

func (s *PlaybackServiceTestSuite) TestTrackStartedNotification() {
	a, b := track("a"), track("b")
	s.startPlaying(a, b)

	s.svc.handleEvent(s.ctx, audionode.Event{Type: audionode.EventTrackStarted, GuildID: s.testGuildID, TrackURI: b.URI})
	s.Empty(s.drainNotifications())

	s.svc.handleEvent(s.ctx, audionode.Event{Type: audionode.EventTrackStarted, GuildID: s.testGuildID, TrackURI: a.URI})
	notifications := s.drainNotifications()
	s.Require().Len(notifications, 1)
	s.Equal(NotificationTrackStarted, notifications[0].Kind)
	s.Equal(a, notifications[0].Track)
	s.Equal(s.snapshot().Generation, notifications[0].Snapshot.Generation)
}

func (s *PlaybackServiceTestSuite) TestRunConsumesEvents() {
	a := track("a")
	s.startPlaying(a)

	events := make(chan audionode.Event, 1)
	s.mockNode.EXPECT().Events().Return((<-chan audionode.Event)(events))

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() {
		done <- s.svc.Run(ctx)
	}()

	events <- audionode.Event{Type: audionode.EventTrackStarted, GuildID: s.testGuildID, TrackURI: a.URI}

	select {
	case n := <-s.svc.Notifications():
		s.Equal(NotificationTrackStarted, n.Kind)
	case <-time.After(2 * time.Second):
		s.Fail("expected a notification")
	}

	cancel()
	s.NoError(<-done)
}

func (s *PlaybackServiceTestSuite) TestRunKeepsGuildsIndependent() {
	a, b, c := track("a"), track("b"), track("c")
	s.startPlaying(a, b)

	otherGuild := "other-guild-id"
	s.mockNode.EXPECT().Connect(gomock.Any(), otherGuild, s.testVoiceID).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), otherGuild, c.URI).Return(nil)
	_, err := s.svc.Enqueue(s.ctx, &EnqueueInput{GuildID: otherGuild, VoiceChannelID: s.testVoiceID, Tracks: []*models.Track{c}})
	s.Require().NoError(err)
	s.drainNotifications()

	playing := make(chan struct{})
	release := make(chan struct{})
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, b.URI).DoAndReturn(
		func(ctx context.Context, guildID, uri string) error {
			close(playing)
			<-release
			return nil
		})

	events := make(chan audionode.Event, 2)
	s.mockNode.EXPECT().Events().Return((<-chan audionode.Event)(events))

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() {
		done <- s.svc.Run(ctx)
	}()

	events <- s.finished(a)
	<-playing
	events <- audionode.Event{Type: audionode.EventTrackStarted, GuildID: otherGuild, TrackURI: c.URI}

	timeout := time.After(2 * time.Second)
	for started := false; !started; {
		select {
		case n := <-s.svc.Notifications():
			started = n.Kind == NotificationTrackStarted && n.GuildID == otherGuild
		case <-timeout:
			s.FailNow("other guild waited on a slow guild")
		}
	}

	close(release)
	cancel()
	s.NoError(<-done)
	s.Equal(b, s.snapshot().Current)
}

func (s *PlaybackServiceTestSuite) TestNotificationDropWhenFull() {
	svc, err := New(&Config{
		AudioNode:          s.mockNode,
		Surface:            s.mockSurface,
		Random:             random.New(nil),
		Clock:              s.mockClock,
		Logger:             zerolog.Nop(),
		NotificationBuffer: 1,
	})
	s.Require().NoError(err)

	a := track("a")
	s.mockNode.EXPECT().Connect(gomock.Any(), s.testGuildID, s.testVoiceID).Return(nil)
	s.mockNode.EXPECT().Play(gomock.Any(), s.testGuildID, a.URI).Return(nil)
	_, err = svc.Enqueue(s.ctx, &EnqueueInput{GuildID: s.testGuildID, VoiceChannelID: s.testVoiceID, Tracks: []*models.Track{a}})
	s.Require().NoError(err)

	before := testutil.ToFloat64(metrics.NotificationDropsTotal.WithLabelValues(string(NotificationStateChanged)))

	_, err = svc.SetLoop(s.ctx, &SetLoopInput{GuildID: s.testGuildID, Mode: models.LoopModeTrack})
	s.Require().NoError(err)
	_, err = svc.SetLoop(s.ctx, &SetLoopInput{GuildID: s.testGuildID, Mode: models.LoopModeOff})
	s.Require().NoError(err)

	after := testutil.ToFloat64(metrics.NotificationDropsTotal.WithLabelValues(string(NotificationStateChanged)))
	s.Equal(before+1, after)
	s.Len(svc.Notifications(), 1)
}
