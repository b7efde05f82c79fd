package playback

import (
	"sync"
	"time"

	"github.com/biltubhaiff-blip/Discord-music/internal/models"
	"github.com/biltubhaiff-blip/Discord-music/internal/queue"
)

// session is the playback state of one guild. Every field is guarded by mu.
type session struct {
	mu sync.Mutex

	// play orders node play calls so the last one sent is for the latest generation.
	// Acquired before mu, never while holding it.
	play sync.Mutex

	guildID        string
	voiceChannelID string
	textChannelID  string

	queue         *queue.Queue
	state         models.PlaybackState
	loop          models.LoopMode
	volume        int
	filter        string
	stayConnected bool

	// control is a weak reference; the message may be gone
	control models.MessageRef

	// manualStop is set by stop and cleared when the queue drains
	manualStop bool

	// connected is true once the node has the voice credentials for voiceChannelID
	connected bool

	// generation is bumped whenever the current track changes
	generation uint64

	// destroyed sessions are no longer in the registry and reject every operation
	destroyed bool

	createdAt time.Time
}

func newSession(guildID, voiceChannelID, textChannelID string, now time.Time) *session {
	return &session{
		guildID:        guildID,
		voiceChannelID: voiceChannelID,
		textChannelID:  textChannelID,
		queue:          queue.New(),
		state:          models.PlaybackStateIdle,
		loop:           models.LoopModeOff,
		volume:         DefaultVolume,
		createdAt:      now,
	}
}

// snapshot copies the session. Caller holds mu.
func (s *session) snapshot() *models.SessionSnapshot {
	current, _ := s.queue.Current()
	return &models.SessionSnapshot{
		GuildID:        s.guildID,
		VoiceChannelID: s.voiceChannelID,
		TextChannelID:  s.textChannelID,
		Current:        current,
		Queue:          s.queue.Tracks(),
		State:          s.state,
		LoopMode:       s.loop,
		Volume:         s.volume,
		Filter:         s.filter,
		StayConnected:  s.stayConnected,
		Generation:     s.generation,
		ControlMessage: s.control,
		CreatedAt:      s.createdAt,
	}
}

// takeControl clears and returns the control message ref. Caller holds mu.
func (s *session) takeControl() models.MessageRef {
	ref := s.control
	s.control = models.MessageRef{}
	return ref
}

// start moves an idle session to Playing, keeping a current track left by a failed play.
// Caller holds mu.
func (s *session) start() (*models.Track, uint64, bool) {
	track, ok := s.queue.Current()
	if !ok {
		track, ok = s.queue.Advance(models.LoopModeOff)
	}
	if !ok {
		return nil, 0, false
	}

	s.state = models.PlaybackStatePlaying
	s.generation++
	return track, s.generation, true
}

// transition is work decided under the lock and carried out after it is released
type transition struct {
	// next is the track to play, nil when the queue ended
	next       *models.Track
	generation uint64

	// stale is the control message to disable
	stale models.MessageRef

	queueEnded bool

	// destroy is true when the session was removed and the node should disconnect
	destroy bool

	snapshot *models.SessionSnapshot
}

// advance moves to the next track and plans the follow-up work. Caller holds mu.
func (s *session) advance(mode models.LoopMode) *transition {
	t := &transition{stale: s.takeControl()}
	s.generation++

	next, ok := s.queue.Advance(mode)
	if ok {
		s.state = models.PlaybackStatePlaying
		t.next = next
		t.generation = s.generation
		t.snapshot = s.snapshot()
		return t
	}

	t.queueEnded = true
	s.state = models.PlaybackStateIdle
	s.manualStop = false
	if !s.stayConnected {
		s.destroyed = true
		t.destroy = true
	}
	t.snapshot = s.snapshot()
	return t
}
