package audionode

// EventType identifies an inbound audio node event
type EventType string

const (
	// EventTrackStarted is sent when the node starts playing a track
	EventTrackStarted EventType = "track_started"

	// EventTrackEnded is sent when a track stops for any reason
	EventTrackEnded EventType = "track_ended"

	// EventNodeDisconnected is sent when the control connection to the node is lost
	EventNodeDisconnected EventType = "node_disconnected"
)

// EndReason is why a track ended
type EndReason string

const (
	// EndReasonFinished means the track played to the end
	EndReasonFinished EndReason = "finished"

	// EndReasonStopped covers stop, replace and cleanup
	EndReasonStopped EndReason = "stopped"

	// EndReasonError means the track failed to load or play
	EndReasonError EndReason = "error"
)

// ShouldAdvance returns true if the queue should move on after this end reason
func (r EndReason) ShouldAdvance() bool {
	return r == EndReasonFinished || r == EndReasonError
}

// Event is one inbound notification from the audio node
type Event struct {
	Type EventType

	// GuildID is empty for node wide events
	GuildID string

	// TrackURI identifies the track the event refers to
	TrackURI string

	// Reason is set for EventTrackEnded
	Reason EndReason

	// Message carries exception or close details
	Message string
}

// LoadType is the kind of result a track load produced
type LoadType string

const (
	LoadTypeTrack    LoadType = "track"
	LoadTypePlaylist LoadType = "playlist"
	LoadTypeSearch   LoadType = "search"
	LoadTypeEmpty    LoadType = "empty"
	LoadTypeError    LoadType = "error"
)

// LoadResult is the outcome of LoadTracks
type LoadResult struct {
	Type LoadType

	// Tracks is empty for empty and error results
	Tracks []*TrackInfo

	// PlaylistName is set for playlist results
	PlaylistName string

	// Error is the node supplied message for error results
	Error string
}

// TrackInfo is track metadata as reported by the node
type TrackInfo struct {
	Encoded    string `json:"encoded"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	URI        string `json:"uri"`
	ArtworkURL string `json:"artworkUrl"`
	SourceName string `json:"sourceName"`
	LengthMs   int64  `json:"length"`
	IsStream   bool   `json:"isStream"`
}
