package audionode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	clientName            = "discord-music/1.0"
	defaultEventBuffer    = 64
	defaultReconnectDelay = 5 * time.Second
	voicePushTimeout      = 10 * time.Second
)

// VoiceGateway sends voice join and leave ops over the Discord gateway.
// *discordgo.Session satisfies it.
type VoiceGateway interface {
	ChannelVoiceJoinManual(gID, cID string, mute, deaf bool) error
}

// Config holds configuration for the Lavalink client
type Config struct {
	// Name is used in logs only
	Name string

	Host     string
	Port     int
	Password string
	Secure   bool

	// UserID is the bot's Discord user ID, required by the websocket handshake
	UserID string

	// Gateway joins and leaves voice channels
	Gateway VoiceGateway

	// Optional HTTP client for REST calls
	HTTPClient *http.Client

	// Size of the event channel
	EventBuffer int

	// Delay between reconnect attempts
	ReconnectDelay time.Duration

	Logger zerolog.Logger
}

type voiceState struct {
	channelID   string
	sessionID   string
	token       string
	endpoint    string
	ready       chan struct{}
	readyClosed bool
}

// Lavalink is a Client for a single Lavalink v4 node
type Lavalink struct {
	cfg    *Config
	http   *http.Client
	logger zerolog.Logger
	events chan Event

	mu        sync.Mutex
	sessionID string
	readyCh   chan struct{}
	voice     map[string]*voiceState
}

// NewLavalink creates a new Lavalink client. Call Run to open the event connection.
func NewLavalink(cfg *Config) (*Lavalink, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Host == "" {
		return nil, ErrEmptyHost
	}
	if cfg.UserID == "" {
		return nil, ErrEmptyUserID
	}
	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	buffer := cfg.EventBuffer
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = defaultReconnectDelay
	}

	return &Lavalink{
		cfg:     cfg,
		http:    httpClient,
		logger:  cfg.Logger.With().Str("node", cfg.Name).Logger(),
		events:  make(chan Event, buffer),
		readyCh: make(chan struct{}),
		voice:   make(map[string]*voiceState),
	}, nil
}

// Events returns the inbound event stream
func (l *Lavalink) Events() <-chan Event {
	return l.events
}

// Run keeps the websocket connection open until ctx is cancelled, reconnecting after failures
func (l *Lavalink) Run(ctx context.Context) error {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}
		l.logger.Warn().Err(err).Dur("retry_in", l.cfg.ReconnectDelay).Msg("audio node connection lost")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.cfg.ReconnectDelay):
		}
	}
}

func (l *Lavalink) baseURL(scheme string) string {
	if l.cfg.Secure {
		scheme += "s"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, l.cfg.Host, l.cfg.Port)
}

// listen runs one websocket session
func (l *Lavalink) listen(ctx context.Context) error {
	headers := http.Header{}
	headers.Set("Authorization", l.cfg.Password)
	headers.Set("User-Id", l.cfg.UserID)
	headers.Set("Client-Name", clientName)

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, l.baseURL("ws")+"/v4/websocket", headers)
	if err != nil {
		return fmt.Errorf("failed to dial audio node: %w", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	l.logger.Info().Msg("connected to audio node")

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			l.markDisconnected(ctx)
			return err
		}
		l.handleMessage(ctx, message)
	}
}

type apiTrack struct {
	Encoded string    `json:"encoded"`
	Info    TrackInfo `json:"info"`
}

func (t apiTrack) toInfo() *TrackInfo {
	info := t.Info
	info.Encoded = t.Encoded
	return &info
}

type wsMessage struct {
	Op        string    `json:"op"`
	SessionID string    `json:"sessionId"`
	Resumed   bool      `json:"resumed"`
	Type      string    `json:"type"`
	GuildID   string    `json:"guildId"`
	Track     *apiTrack `json:"track"`
	Reason    string    `json:"reason"`
	Code      int       `json:"code"`
	Exception *struct {
		Message  string `json:"message"`
		Severity string `json:"severity"`
	} `json:"exception"`
}

func (l *Lavalink) handleMessage(ctx context.Context, data []byte) {
	var msg wsMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		l.logger.Debug().Err(err).Msg("ignoring malformed audio node message")
		return
	}

	switch msg.Op {
	case "ready":
		l.markReady(msg.SessionID)
	case "event":
		l.handleEvent(ctx, &msg)
	case "playerUpdate", "stats":
	default:
		l.logger.Debug().Str("op", msg.Op).Msg("unhandled audio node op")
	}
}

func (l *Lavalink) handleEvent(ctx context.Context, msg *wsMessage) {
	var uri string
	if msg.Track != nil {
		uri = msg.Track.Info.URI
	}

	switch msg.Type {
	case "TrackStartEvent":
		l.emit(ctx, Event{Type: EventTrackStarted, GuildID: msg.GuildID, TrackURI: uri})
	case "TrackEndEvent":
		l.emit(ctx, Event{Type: EventTrackEnded, GuildID: msg.GuildID, TrackURI: uri, Reason: endReason(msg.Reason)})
	case "TrackExceptionEvent":
		ev := l.logger.Warn().Str("guild_id", msg.GuildID).Str("uri", uri)
		if msg.Exception != nil {
			ev = ev.Str("severity", msg.Exception.Severity).Str("exception", msg.Exception.Message)
		}
		ev.Msg("track exception")
	case "TrackStuckEvent":
		l.logger.Warn().Str("guild_id", msg.GuildID).Str("uri", uri).Msg("track stuck")
	case "WebSocketClosedEvent":
		l.logger.Warn().Str("guild_id", msg.GuildID).Int("code", msg.Code).Str("reason", msg.Reason).Msg("voice websocket closed")
	}
}

func endReason(reason string) EndReason {
	switch reason {
	case "finished":
		return EndReasonFinished
	case "loadFailed":
		return EndReasonError
	default:
		return EndReasonStopped
	}
}

func (l *Lavalink) emit(ctx context.Context, ev Event) {
	select {
	case l.events <- ev:
	case <-ctx.Done():
	}
}

func (l *Lavalink) markReady(sessionID string) {
	l.mu.Lock()
	if l.sessionID == "" {
		close(l.readyCh)
	}
	l.sessionID = sessionID
	var pending []string
	for guildID := range l.voice {
		pending = append(pending, guildID)
	}
	l.mu.Unlock()

	l.logger.Info().Str("session_id", sessionID).Msg("audio node ready")

	for _, guildID := range pending {
		l.pushVoice(guildID)
	}
}

func (l *Lavalink) markDisconnected(ctx context.Context) {
	l.mu.Lock()
	wasReady := l.sessionID != ""
	if wasReady {
		l.sessionID = ""
		l.readyCh = make(chan struct{})
	}
	l.mu.Unlock()

	if wasReady {
		l.emit(ctx, Event{Type: EventNodeDisconnected})
	}
}

// waitReady returns the node session ID, waiting for the ready op if necessary
func (l *Lavalink) waitReady(ctx context.Context) (string, error) {
	l.mu.Lock()
	sessionID := l.sessionID
	readyCh := l.readyCh
	l.mu.Unlock()
	if sessionID != "" {
		return sessionID, nil
	}

	select {
	case <-readyCh:
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.sessionID == "" {
			return "", ErrNodeNotReady
		}
		return l.sessionID, nil
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrNodeNotReady, ctx.Err())
	}
}

// OnVoiceStateUpdate records the bot's own voice session for a guild
func (l *Lavalink) OnVoiceStateUpdate(guildID, channelID, sessionID string) {
	l.mu.Lock()
	vs, ok := l.voice[guildID]
	if !ok {
		l.mu.Unlock()
		return
	}
	vs.channelID = channelID
	vs.sessionID = sessionID
	l.mu.Unlock()

	l.pushVoice(guildID)
}

// OnVoiceServerUpdate records the voice server credentials for a guild
func (l *Lavalink) OnVoiceServerUpdate(guildID, token, endpoint string) {
	l.mu.Lock()
	vs, ok := l.voice[guildID]
	if !ok {
		l.mu.Unlock()
		return
	}
	vs.token = token
	vs.endpoint = endpoint
	l.mu.Unlock()

	l.pushVoice(guildID)
}

type voiceUpdate struct {
	Token     string `json:"token"`
	Endpoint  string `json:"endpoint"`
	SessionID string `json:"sessionId"`
}

// pushVoice forwards complete voice credentials to the node
func (l *Lavalink) pushVoice(guildID string) {
	l.mu.Lock()
	vs, ok := l.voice[guildID]
	if !ok || vs.sessionID == "" || vs.token == "" || vs.endpoint == "" || l.sessionID == "" {
		l.mu.Unlock()
		return
	}
	update := &voiceUpdate{Token: vs.token, Endpoint: vs.endpoint, SessionID: vs.sessionID}
	ready := vs.ready
	l.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), voicePushTimeout)
	defer cancel()

	if err := l.updatePlayer(ctx, guildID, &playerUpdate{Voice: update}); err != nil {
		l.logger.Error().Err(err).Str("guild_id", guildID).Msg("failed to forward voice state")
		return
	}

	l.mu.Lock()
	// A Connect to another channel may have replaced ready while this push was in flight
	if vs, ok := l.voice[guildID]; ok && vs.ready == ready && !vs.readyClosed {
		vs.readyClosed = true
		close(vs.ready)
	}
	l.mu.Unlock()
}

// Connect joins the voice channel and waits for the voice credentials to reach the node
func (l *Lavalink) Connect(ctx context.Context, guildID, voiceChannelID string) error {
	l.mu.Lock()
	vs, ok := l.voice[guildID]
	if !ok {
		vs = &voiceState{ready: make(chan struct{})}
		l.voice[guildID] = vs
	} else if vs.channelID != voiceChannelID {
		// Wait for the voice session of the new channel
		vs.sessionID = ""
		vs.ready = make(chan struct{})
		vs.readyClosed = false
	}
	vs.channelID = voiceChannelID
	ready := vs.ready
	l.mu.Unlock()

	if err := l.cfg.Gateway.ChannelVoiceJoinManual(guildID, voiceChannelID, false, true); err != nil {
		return fmt.Errorf("%w: %w", ErrVoiceJoinFailed, err)
	}

	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Disconnect destroys the node player and leaves voice
func (l *Lavalink) Disconnect(ctx context.Context, guildID string) error {
	l.mu.Lock()
	delete(l.voice, guildID)
	sessionID := l.sessionID
	l.mu.Unlock()

	var errs []error
	if err := l.cfg.Gateway.ChannelVoiceJoinManual(guildID, "", false, false); err != nil {
		errs = append(errs, fmt.Errorf("failed to leave voice channel: %w", err))
	}

	if sessionID != "" {
		path := fmt.Sprintf("/v4/sessions/%s/players/%s", sessionID, guildID)
		if err := l.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

type playerUpdate struct {
	Track   json.RawMessage `json:"track,omitempty"`
	Paused  *bool           `json:"paused,omitempty"`
	Volume  *int            `json:"volume,omitempty"`
	Filters json.RawMessage `json:"filters,omitempty"`
	Voice   *voiceUpdate    `json:"voice,omitempty"`
}

func (l *Lavalink) updatePlayer(ctx context.Context, guildID string, update *playerUpdate) error {
	sessionID, err := l.waitReady(ctx)
	if err != nil {
		return err
	}
	path := fmt.Sprintf("/v4/sessions/%s/players/%s", sessionID, guildID)
	return l.doJSON(ctx, http.MethodPatch, path, update, nil)
}

// Play starts a track by URI and clears pause
func (l *Lavalink) Play(ctx context.Context, guildID, trackURI string) error {
	track, err := json.Marshal(map[string]string{"identifier": trackURI})
	if err != nil {
		return err
	}
	paused := false
	return l.updatePlayer(ctx, guildID, &playerUpdate{Track: track, Paused: &paused})
}

// Stop unloads the current track
func (l *Lavalink) Stop(ctx context.Context, guildID string) error {
	return l.updatePlayer(ctx, guildID, &playerUpdate{Track: json.RawMessage(`{"encoded":null}`)})
}

// Pause holds or releases playback
func (l *Lavalink) Pause(ctx context.Context, guildID string, paused bool) error {
	return l.updatePlayer(ctx, guildID, &playerUpdate{Paused: &paused})
}

// SetVolume sets the volume in percent
func (l *Lavalink) SetVolume(ctx context.Context, guildID string, level int) error {
	return l.updatePlayer(ctx, guildID, &playerUpdate{Volume: &level})
}

// SetFilter applies a named filter preset
func (l *Lavalink) SetFilter(ctx context.Context, guildID, filter string) error {
	payload, err := filterPayload(filter)
	if err != nil {
		return err
	}
	return l.updatePlayer(ctx, guildID, &playerUpdate{Filters: payload})
}

type loadResponse struct {
	LoadType string          `json:"loadType"`
	Data     json.RawMessage `json:"data"`
}

// LoadTracks resolves an identifier through /v4/loadtracks
func (l *Lavalink) LoadTracks(ctx context.Context, identifier string) (*LoadResult, error) {
	var resp loadResponse
	path := "/v4/loadtracks?identifier=" + url.QueryEscape(identifier)
	if err := l.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	result := &LoadResult{Type: LoadType(resp.LoadType)}
	switch result.Type {
	case LoadTypeTrack:
		var track apiTrack
		if err := json.Unmarshal(resp.Data, &track); err != nil {
			return nil, fmt.Errorf("failed to decode track: %w", err)
		}
		result.Tracks = []*TrackInfo{track.toInfo()}
	case LoadTypePlaylist:
		var playlist struct {
			Info struct {
				Name string `json:"name"`
			} `json:"info"`
			Tracks []apiTrack `json:"tracks"`
		}
		if err := json.Unmarshal(resp.Data, &playlist); err != nil {
			return nil, fmt.Errorf("failed to decode playlist: %w", err)
		}
		result.PlaylistName = playlist.Info.Name
		for _, t := range playlist.Tracks {
			result.Tracks = append(result.Tracks, t.toInfo())
		}
	case LoadTypeSearch:
		var tracks []apiTrack
		if err := json.Unmarshal(resp.Data, &tracks); err != nil {
			return nil, fmt.Errorf("failed to decode search result: %w", err)
		}
		for _, t := range tracks {
			result.Tracks = append(result.Tracks, t.toInfo())
		}
	case LoadTypeError:
		var exception struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(resp.Data, &exception)
		result.Error = exception.Message
	case LoadTypeEmpty:
	default:
		return nil, fmt.Errorf("%w: unknown load type %q", ErrRequestFailed, resp.LoadType)
	}

	return result, nil
}

func (l *Lavalink) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, l.baseURL("http")+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", l.cfg.Password)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("%w: %s %s returned %d: %s", ErrRequestFailed, method, path, resp.StatusCode, apiErr.Message)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
