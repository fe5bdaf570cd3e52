package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/karski/cashboard/internal/api"
)

// StreamConfig holds the push-based subscription settings.
type StreamConfig struct {
	URL                string        // WebSocket endpoint, e.g. ws://host/ws/games/{code}/
	HandshakeTimeout   time.Duration // Dial timeout (default: 10s)
	ReadTimeout        time.Duration // Max silence before the connection is considered dead (default: 30s)
	ReconnectBaseDelay time.Duration // First reconnect delay (default: 1s)
	ReconnectMaxDelay  time.Duration // Reconnect delay cap (default: 60s)
}

func (c *StreamConfig) applyDefaults() {
	if c.HandshakeTimeout == 0 {
		c.HandshakeTimeout = 10 * time.Second
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 30 * time.Second
	}
	if c.ReconnectBaseDelay == 0 {
		c.ReconnectBaseDelay = time.Second
	}
	if c.ReconnectMaxDelay == 0 {
		c.ReconnectMaxDelay = 60 * time.Second
	}
}

// Stream subscribes to pushed game snapshots instead of polling. Messages
// carry the same payload as the data endpoint and replace the previous
// snapshot wholesale, so swapping a Stream for the poll loop cannot
// introduce partial-state merges.
type Stream struct {
	cfg     StreamConfig
	tokens  api.TokenSource
	handler SnapshotHandler
	onError func(err error)
	logger  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStream creates a snapshot subscription. handler receives every
// decoded snapshot; onError may be nil.
func NewStream(cfg StreamConfig, tokens api.TokenSource, handler SnapshotHandler, onError func(error), logger *slog.Logger) *Stream {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.applyDefaults()

	return &Stream{
		cfg:     cfg,
		tokens:  tokens,
		handler: handler,
		onError: onError,
		logger:  logger,
	}
}

// Start begins the subscription loop with automatic reconnects.
func (s *Stream) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.run()

	s.logger.Info("snapshot stream started", "url", s.cfg.URL)
	return nil
}

// Stop closes the subscription and waits for the loop to exit.
func (s *Stream) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("snapshot stream stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Stream) run() {
	defer s.wg.Done()

	delay := s.cfg.ReconnectBaseDelay
	for {
		if s.ctx.Err() != nil {
			return
		}

		connected, err := s.readUntilClosed()
		if s.ctx.Err() != nil {
			return
		}
		if connected {
			delay = s.cfg.ReconnectBaseDelay
		}

		if err != nil {
			s.logger.Warn("stream connection lost", "url", s.cfg.URL, "error", err, "reconnect_in", delay)
			if s.onError != nil {
				s.onError(err)
			}
		}

		select {
		case <-s.ctx.Done():
			return
		case <-time.After(delay):
		}

		delay *= 2
		if delay > s.cfg.ReconnectMaxDelay {
			delay = s.cfg.ReconnectMaxDelay
		}
	}
}

// readUntilClosed dials once and consumes snapshots until the connection
// drops or the stream is stopped. The first return value reports whether
// the dial succeeded, so the caller can reset its backoff.
func (s *Stream) readUntilClosed() (bool, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: s.cfg.HandshakeTimeout,
	}

	header := make(map[string][]string)
	if s.tokens != nil {
		if token := s.tokens.AccessToken(); token != "" {
			header["Authorization"] = []string{"Bearer " + token}
		}
	}

	conn, _, err := dialer.DialContext(s.ctx, s.cfg.URL, header)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	// Unblock the read when the stream is stopped.
	readDone := make(chan struct{})
	defer close(readDone)
	go func() {
		select {
		case <-s.ctx.Done():
			conn.Close()
		case <-readDone:
		}
	}()

	s.logger.Info("stream connected", "url", s.cfg.URL)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
			return true, err
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			return true, err
		}

		snap, err := api.ParseSnapshot(data)
		if err != nil {
			// A malformed message never produces a partial update.
			s.logger.Warn("dropping malformed snapshot message", "error", err)
			if s.onError != nil {
				s.onError(err)
			}
			continue
		}

		if s.handler != nil {
			s.handler.HandleSnapshot(snap)
		}
	}
}
