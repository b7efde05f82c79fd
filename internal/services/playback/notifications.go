package playback

import (
	"github.com/biltubhaiff-blip/Discord-music/internal/metrics"
	"github.com/biltubhaiff-blip/Discord-music/internal/models"
)

// Notifications returns the stream the control surface renders
func (s *service) Notifications() <-chan *Notification {
	return s.notifications
}

// notify never blocks; a full buffer drops the notification
func (s *service) notify(n *Notification) {
	select {
	case s.notifications <- n:
	default:
		metrics.IncNotificationDrop(string(n.Kind))
		s.logger.Warn().
			Str("guild_id", n.GuildID).
			Str("kind", string(n.Kind)).
			Msg("notification buffer full, dropping")
	}
}

// stateChanged publishes the session as it is now. Caller holds mu.
func (s *service) stateChanged(sess *session) {
	snapshot := sess.snapshot()
	s.notify(&Notification{
		Kind:          NotificationStateChanged,
		GuildID:       sess.guildID,
		TextChannelID: snapshot.TextChannelID,
		Snapshot:      snapshot,
		Track:         snapshot.Current,
	})
}

func (s *service) queueEnded(snapshot *models.SessionSnapshot) {
	metrics.QueueEndedTotal.Inc()
	s.logger.Info().
		Str("guild_id", snapshot.GuildID).
		Bool("stay_connected", snapshot.StayConnected).
		Msg("queue ended")

	s.notify(&Notification{
		Kind:          NotificationQueueEnded,
		GuildID:       snapshot.GuildID,
		TextChannelID: snapshot.TextChannelID,
		Snapshot:      snapshot,
	})
}
