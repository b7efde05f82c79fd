// Package metrics provides Prometheus metrics for the playback core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActiveSessions tracks guild sessions currently held in the registry.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "music_active_sessions",
		Help: "Current number of guild playback sessions.",
	})

	// CommandsTotal counts dispatched control actions by action and result.
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "music_commands_total",
		Help: "Total number of dispatched control actions, by action and result.",
	}, []string{"action", "result"})

	// QueueEndedTotal counts queue drains that produced an end-of-queue notification.
	QueueEndedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "music_queue_ended_total",
		Help: "Total number of queue-ended notifications.",
	})

	// NodeEventsTotal counts inbound audio node events by type.
	NodeEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "music_node_events_total",
		Help: "Total number of audio node events received, by type.",
	}, []string{"type"})

	// NotificationDropsTotal counts notifications dropped because the renderer fell behind.
	NotificationDropsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "music_notification_drops_total",
		Help: "Total number of control surface notifications dropped, by kind.",
	}, []string{"kind"})

	// SearchCacheTotal counts search cache lookups by outcome.
	SearchCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "music_search_cache_total",
		Help: "Total number of search cache lookups, by outcome (hit/miss/error).",
	}, []string{"outcome"})
)

// IncCommand records one dispatched action.
func IncCommand(action, result string) {
	if action == "" {
		action = "unknown"
	}
	if result == "" {
		result = "unknown"
	}
	CommandsTotal.WithLabelValues(action, result).Inc()
}

// IncNotificationDrop records a dropped notification.
func IncNotificationDrop(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	NotificationDropsTotal.WithLabelValues(kind).Inc()
}
