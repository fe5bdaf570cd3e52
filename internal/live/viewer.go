package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/karski/cashboard/internal/clock"
	"github.com/karski/cashboard/internal/model"
)

// SnapshotSource fetches the current table state.
type SnapshotSource interface {
	GetGameData(ctx context.Context, code string) (*model.GameSnapshot, error)
}

// SnapshotHandler receives each fresh snapshot.
type SnapshotHandler interface {
	HandleSnapshot(snap *model.GameSnapshot)
}

// SnapshotHandlerFunc is a function adapter for SnapshotHandler.
type SnapshotHandlerFunc func(*model.GameSnapshot)

func (f SnapshotHandlerFunc) HandleSnapshot(s *model.GameSnapshot) {
	f(s)
}

// Chimer plays the full-hour cue.
type Chimer interface {
	Chime()
}

// Config holds viewer configuration.
type Config struct {
	Code          string        // Game room code
	PollInterval  time.Duration // Snapshot refresh interval (default: 1s)
	ClockInterval time.Duration // Display tick interval (default: 1s)
	FetchTimeout  time.Duration // Per-fetch timeout (default: 5s)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(code string) Config {
	return Config{
		Code:          code,
		PollInterval:  time.Second,
		ClockInterval: time.Second,
		FetchTimeout:  5 * time.Second,
	}
}

func (c *Config) applyDefaults() {
	if c.PollInterval == 0 {
		c.PollInterval = time.Second
	}
	if c.ClockInterval == 0 {
		c.ClockInterval = time.Second
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 5 * time.Second
	}
}

// Viewer owns the live game view state: the latest snapshot and the
// derived clock. Two loops run per active view, one polling the backend
// and one ticking the display; Stop cancels and joins both.
type Viewer struct {
	cfg    Config
	source SnapshotSource
	logger *slog.Logger
	clk    clockwork.Clock

	handler SnapshotHandler
	onTick  func(display string)
	onError func(err error)
	chimer  Chimer

	mu        sync.RWMutex
	snap      *model.GameSnapshot
	gameClock *clock.GameClock
	chime     *clock.HourChime

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithSnapshotHandler sets the callback invoked on every fresh snapshot.
func WithSnapshotHandler(h SnapshotHandler) Option {
	return func(v *Viewer) { v.handler = h }
}

// WithTickHandler sets the callback invoked with the formatted game time
// on every clock tick.
func WithTickHandler(fn func(display string)) Option {
	return func(v *Viewer) { v.onTick = fn }
}

// WithErrorHandler sets the callback for non-fatal fetch errors.
func WithErrorHandler(fn func(err error)) Option {
	return func(v *Viewer) { v.onError = fn }
}

// WithChimer sets the full-hour cue player.
func WithChimer(c Chimer) Option {
	return func(v *Viewer) { v.chimer = c }
}

// WithClock sets the time source. Tests inject a fake.
func WithClock(clk clockwork.Clock) Option {
	return func(v *Viewer) { v.clk = clk }
}

// NewViewer creates a viewer for one game.
func NewViewer(cfg Config, source SnapshotSource, logger *slog.Logger, opts ...Option) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.applyDefaults()

	v := &Viewer{
		cfg:    cfg,
		source: source,
		logger: logger,
		clk:    clockwork.NewRealClock(),
		chime:  clock.NewHourChime(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Start fetches the first snapshot and begins both loops. A failing first
// fetch is non-fatal: the poll loop keeps retrying at its interval.
func (v *Viewer) Start(ctx context.Context) error {
	v.ctx, v.cancel = context.WithCancel(ctx)

	v.fetch()

	v.wg.Add(2)
	go v.pollLoop()
	go v.clockLoop()

	v.logger.Info("game view started",
		"code", v.cfg.Code,
		"poll_interval", v.cfg.PollInterval,
	)

	return nil
}

// Stop cancels both loops and waits for them to exit.
func (v *Viewer) Stop(ctx context.Context) error {
	if v.cancel != nil {
		v.cancel()
	}

	done := make(chan struct{})
	go func() {
		v.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		v.logger.Info("game view stopped", "code", v.cfg.Code)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the most recent snapshot, nil before the first
// successful fetch.
func (v *Viewer) Snapshot() *model.GameSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap
}

// Display returns the current formatted game time, "0:00:00" before the
// first snapshot.
func (v *Viewer) Display() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.gameClock == nil {
		return "0:00:00"
	}
	return v.gameClock.Display()
}

func (v *Viewer) pollLoop() {
	defer v.wg.Done()

	ticker := v.clk.NewTicker(v.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-v.ctx.Done():
			return
		case <-ticker.Chan():
			v.fetch()
		}
	}
}

func (v *Viewer) clockLoop() {
	defer v.wg.Done()

	ticker := v.clk.NewTicker(v.cfg.ClockInterval)
	defer ticker.Stop()

	for {
		select {
		case <-v.ctx.Done():
			return
		case <-ticker.Chan():
			v.tick()
		}
	}
}

// fetch refreshes the snapshot. On error the previous snapshot stays; on
// success the new one replaces it wholesale.
func (v *Viewer) fetch() {
	ctx, cancel := context.WithTimeout(v.ctx, v.cfg.FetchTimeout)
	defer cancel()

	snap, err := v.source.GetGameData(ctx, v.cfg.Code)

	// A response landing after teardown is dropped.
	if v.ctx.Err() != nil {
		return
	}

	if err != nil {
		v.logger.Warn("snapshot fetch failed", "code", v.cfg.Code, "error", err)
		if v.onError != nil {
			v.onError(err)
		}
		return
	}

	v.HandleSnapshot(snap)
}

// HandleSnapshot replaces the current snapshot wholesale. It is called by
// the poll loop and may also be fed by an external push source such as a
// Stream, which then shares the viewer's clock and handlers.
func (v *Viewer) HandleSnapshot(snap *model.GameSnapshot) {
	v.mu.Lock()
	v.snap = snap
	v.gameClock = clock.NewGameClock(snap.StartTime, v.clk)
	v.mu.Unlock()

	if v.handler != nil {
		v.handler.HandleSnapshot(snap)
	}
}

// tick advances the displayed time and fires the hour cue when due.
func (v *Viewer) tick() {
	v.mu.RLock()
	gc := v.gameClock
	v.mu.RUnlock()

	if gc == nil {
		return
	}

	elapsed := gc.Elapsed()
	if v.onTick != nil {
		v.onTick(clock.FormatElapsed(elapsed))
	}
	if v.chime.Observe(elapsed) && v.chimer != nil {
		v.chimer.Chime()
	}
}
