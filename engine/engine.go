package engine

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/backdrop"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/camera"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/interaction"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/mailbox"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/profiler"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/renderer"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/scene"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/settings"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/snapshot"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/synchronizer"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/texture"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/window"
	"github.com/google/uuid"
)

const (
	// DefaultWorkers is the size of the default worker pool for decoding.
	DefaultWorkers = 4

	// DefaultHeadlessFrameRate is the tick rate of a headless Run without a frame limit.
	DefaultHeadlessFrameRate = 30

	// DefaultSnapshotWidth and DefaultSnapshotHeight size snapshots taken with the snapshot key.
	DefaultSnapshotWidth  = 1280
	DefaultSnapshotHeight = 720

	// maxFrameDelta caps dt so a stalled frame does not jump the orbit.
	maxFrameDelta = 0.25
)

// engine implements the Engine interface.
// It wires the configuration, scene and interaction components together and drives the per-frame loop.
type engine struct {
	sessionID string
	logger    *slog.Logger

	cfg         *settings.Configuration
	store       settings.Store
	provisioner texture.Provisioner

	scene    scene.Scene
	camera   camera.Camera
	resolver *camera.Resolver
	sync     synchronizer.Synchronizer
	router   interaction.Router
	panel    *interaction.Panel
	backdrop backdrop.Backdrop
	mail     *mailbox.Mailbox
	executor mailbox.Executor
	picker   interaction.FilePicker

	window   window.Window
	renderer renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame        time.Time

	backdropOptions []backdrop.BackdropBuilderOption
	orbitHeight     float32
	dragSensitivity float32

	snapshotDir                   string
	snapshotWidth, snapshotHeight int

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once
	started     bool
}

// Engine is the main entry point for the sleeve configurator.
// It owns the frame loop: drain async completions, resolve the camera, project the configuration onto the scene,
// apply the drag rotation, render, and tick the profiler.
type Engine interface {
	// Start runs the one-off startup sequence: persist the normalized configuration, project it onto the scene
	// and load the artwork. It is called by Run when needed.
	//
	// Returns:
	//   - error: joined artwork load errors; the engine stays usable with placeholder-free panes
	Start() error

	// Frame advances the engine by one frame on the calling goroutine.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous frame
	Frame(dt float64)

	// Run starts the frame loop and blocks until the window closes, Quit is called or ctx is cancelled.
	// With a window the loop runs inside the window message pump and must be called from the main goroutine.
	//
	// Parameters:
	//   - ctx: cancels the loop
	//
	// Returns:
	//   - error: ctx.Err() when cancelled, nil otherwise
	Run(ctx context.Context) error

	// Snapshot renders the current scene to an image file.
	//
	// Parameters:
	//   - path: destination, .webp or .png; empty picks a timestamped name in the snapshot directory
	//
	// Returns:
	//   - string: the written path
	//   - error: error if encoding or writing failed
	Snapshot(path string) (string, error)

	// Quit signals the loop to stop. Safe to call multiple times.
	Quit()

	// Release frees the scene and renderer resources.
	Release()

	// SessionID returns the id tagged on every log line of this engine.
	SessionID() string

	// Config returns the live configuration.
	Config() *settings.Configuration

	// Scene returns the sleeve scene.
	Scene() scene.Scene

	// Router returns the interaction router.
	Router() interaction.Router

	// Panel returns the settings panel model.
	Panel() *interaction.Panel

	// Synchronizer returns the scene synchronizer.
	Synchronizer() synchronizer.Synchronizer

	// Window returns the window, or nil when headless.
	Window() window.Window

	// Renderer returns the renderer, or nil when frames are not drawn.
	Renderer() renderer.Renderer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine over a configuration store and an artwork provisioner.
// The persisted configuration is loaded immediately; nothing is written until Start.
//
// Parameters:
//   - store: where the configuration is loaded from and persisted to
//   - provisioner: resolves artwork presets and uploads
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(store settings.Store, provisioner texture.Provisioner, options ...EngineBuilderOption) Engine {
	e := &engine{
		sessionID:       uuid.NewString(),
		store:           store,
		provisioner:     provisioner,
		mail:            mailbox.New(),
		orbitHeight:     camera.DefaultOrbitHeight,
		dragSensitivity: camera.DefaultDragSensitivity,
		snapshotDir:     ".",
		snapshotWidth:   DefaultSnapshotWidth,
		snapshotHeight:  DefaultSnapshotHeight,
		quitChannel:     make(chan struct{}),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.logger = e.logger.With("session", e.sessionID)
	if e.executor == nil {
		e.executor = mailbox.NewPoolExecutor(DefaultWorkers)
	}
	if e.camera == nil {
		e.camera = camera.NewCamera(camera.WithController(camera.NewCameraController()))
	}
	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))

	cfg := store.Load()
	e.cfg = &cfg

	e.scene = scene.NewScene(scene.WithCamera(e.camera))
	e.resolver = camera.NewResolver(e.camera, camera.NewOrbitResolver(e.orbitHeight))
	e.sync = synchronizer.NewSynchronizer(e.cfg, e.scene, synchronizer.WithLogger(e.logger))

	backdropOptions := append([]backdrop.BackdropBuilderOption{
		backdrop.WithExecutor(e.executor),
		backdrop.WithLogger(e.logger),
	}, e.backdropOptions...)
	e.backdrop = backdrop.NewBackdrop(
		e.scene.Material(scene.SlotWall).Map(),
		e.scene.Material(scene.SlotFloor).Map(),
		e.mail,
		backdropOptions...,
	)

	routerOptions := []interaction.RouterBuilderOption{
		interaction.WithStore(store),
		interaction.WithBackdrop(e.backdrop),
		interaction.WithExecutor(e.executor),
		interaction.WithDragRotation(camera.NewDragRotation(e.dragSensitivity)),
		interaction.WithDropIndicator(func(visible bool) {
			e.logger.Debug("drop indicator", "visible", visible)
		}),
		interaction.WithLogger(e.logger),
	}
	if e.picker != nil {
		routerOptions = append(routerOptions, interaction.WithFilePicker(e.picker))
	}
	e.router = interaction.NewRouter(e.cfg, e.scene, e.sync, provisioner, e.mail, routerOptions...)
	e.panel = interaction.NewPanel(e.router, provisioner.Presets().Names())

	if e.renderer != nil {
		w, h := e.renderer.Size()
		e.resize(w, h)
	}
	if e.window != nil {
		e.bindWindow()
	}

	return e
}

// bindWindow routes window input to the router and engine shortcuts.
func (e *engine) bindWindow() {
	e.window.SetInput(window.Input{
		Resize:      e.resize,
		Scroll:      e.router.Wheel,
		Key:         e.handleKey,
		PointerDown: func(x, y float64) {
			e.endHover()
			e.router.PointerDown(x, y)
		},
		PointerMove: func(x, y float64) {
			e.endHover()
			e.router.PointerMove(x, y)
		},
		PointerUp: func(x, y float64) {
			e.router.PointerUp()
		},
		Drop: func(x, width float64, paths []string) {
			e.router.Drop(x, width, paths)
		},
		CursorEnter: func(entered bool) {
			if entered {
				e.router.DragEnter()
				return
			}
			e.endHover()
		},
	})
}

// endHover clears a drag started by a cursor enter. Platforms hold back cursor events while an external drag is
// over the window, so ordinary pointer input means no drag is in progress.
func (e *engine) endHover() {
	for e.router.DragDepth() > 0 {
		e.router.DragLeave()
	}
}

// handleKey runs engine-level shortcuts and forwards everything else to the router.
func (e *engine) handleKey(key int) {
	switch key {
	case common.KeyP:
		if path, err := e.Snapshot(""); err != nil {
			e.logger.Warn("snapshot failed", "error", err)
		} else {
			e.logger.Info("snapshot written", "path", path)
		}
	case common.KeyEsc:
		e.Quit()
	default:
		e.router.HandleKey(key)
	}
}

// resize updates the camera aspect and the renderer surface. Zero sizes are ignored by the camera.
func (e *engine) resize(width, height int) {
	if e.renderer != nil {
		if w, h := e.renderer.Size(); w != width || h != height {
			e.renderer.Resize(width, height)
		}
	}
	if width > 0 && height > 0 {
		e.camera.SetAspect(float32(width) / float32(height))
	}
}

func (e *engine) Start() error {
	if e.started {
		return nil
	}
	e.started = true

	e.store.Save(*e.cfg)
	e.sync.ApplyAll()
	if err := e.router.LoadArtwork(); err != nil {
		e.logger.Warn("artwork load incomplete", "error", err)
		return err
	}
	e.logger.Info("engine started", "front", e.cfg.FrontArt, "back", e.cfg.BackArt)
	return nil
}

func (e *engine) Frame(dt float64) {
	dt = common.Clamp(dt, 0, maxFrameDelta)

	e.mail.Drain()
	e.resolver.Resolve(dt, e.cfg)
	e.sync.ApplyFrame()
	e.router.Drag().Apply(e.scene.Sleeve())

	if e.renderer != nil {
		if err := e.renderer.Render(e.scene); err != nil {
			e.logger.Debug("frame not presented", "error", err)
		}
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

func (e *engine) Run(ctx context.Context) error {
	// artwork errors are already logged and the scene keeps running without the missing panes
	_ = e.Start()
	e.lastFrame = time.Now()

	if e.window != nil {
		return e.runWindowed(ctx)
	}
	return e.runHeadless(ctx)
}

// runWindowed drives frames from the window message pump.
func (e *engine) runWindowed(ctx context.Context) error {
	e.window.SetUpdateCallback(func() {
		if ctx.Err() != nil || e.quitting() {
			e.window.SetShouldClose()
			return
		}
		e.tick()

		// Frame rate limiting
		if e.renderFrameLimit > 0 {
			if remaining := e.renderFrameLimit - time.Since(e.lastFrame); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	})
	e.window.ProcessMessages()
	e.Quit()
	return ctx.Err()
}

// runHeadless drives frames from a ticker until ctx is cancelled or Quit is called.
func (e *engine) runHeadless(ctx context.Context) error {
	interval := e.renderFrameLimit
	if interval <= 0 {
		interval = time.Second / DefaultHeadlessFrameRate
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.Quit()
			return ctx.Err()
		case <-e.quitChannel:
			return nil
		case <-ticker.C:
			e.tick()
		}
	}
}

func (e *engine) tick() {
	now := time.Now()
	dt := now.Sub(e.lastFrame).Seconds()
	e.lastFrame = now
	e.Frame(dt)
}

func (e *engine) quitting() bool {
	select {
	case <-e.quitChannel:
		return true
	default:
		return false
	}
}

func (e *engine) Snapshot(path string) (string, error) {
	if path == "" {
		name := fmt.Sprintf("sleeve-%s.%s", time.Now().Format("20060102-150405"), snapshot.FormatWebP)
		path = filepath.Join(e.snapshotDir, name)
	}
	if err := snapshot.WriteFile(path, e.scene, e.snapshotWidth, e.snapshotHeight); err != nil {
		return "", fmt.Errorf("snapshot %s: %w", path, err)
	}
	return path, nil
}

// Quit signals the loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) Release() {
	if e.renderer != nil {
		e.renderer.Release()
	}
	e.scene.Release()
	if e.window != nil {
		if err := e.window.Close(); err != nil {
			e.logger.Debug("window close", "error", err)
		}
	}
}

func (e *engine) SessionID() string {
	return e.sessionID
}

func (e *engine) Config() *settings.Configuration {
	return e.cfg
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Router() interaction.Router {
	return e.router
}

func (e *engine) Panel() *interaction.Panel {
	return e.panel
}

func (e *engine) Synchronizer() synchronizer.Synchronizer {
	return e.sync
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}
