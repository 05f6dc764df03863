// Package interaction routes pointer, drag-and-drop, keyboard and settings panel input into configuration changes
// and scene updates.
package interaction

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/backdrop"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/camera"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/mailbox"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/scene"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/settings"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/synchronizer"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/texture"
	"github.com/google/uuid"
)

// Side selects one of the two artwork panes.
type Side int

const (
	SideFront Side = iota
	SideBack
)

func (s Side) String() string {
	if s == SideBack {
		return "back"
	}
	return "front"
}

func (s Side) slot() scene.Slot {
	if s == SideBack {
		return scene.SlotBack
	}
	return scene.SlotFront
}

func (s Side) key() string {
	if s == SideBack {
		return settings.KeyBackArt
	}
	return settings.KeyFrontArt
}

// Router turns user input into configuration mutations. Every method must be called on the frame goroutine;
// file reads and decodes run on the executor and come back through the mailbox.
type Router interface {
	// LoadArtwork binds the artwork named by the configuration, the shared overlay and the vinyl texture, and starts
	// the first backdrop generation.
	//
	// Returns:
	//   - error: every texture that could not be loaded, joined; the remaining textures are still bound
	LoadArtwork() error

	// PointerDown starts a sleeve drag.
	PointerDown(x, y float64)

	// PointerMove rotates the sleeve while a drag is active.
	PointerMove(x, y float64)

	// PointerUp ends the drag.
	PointerUp()

	// Wheel queues a camera zoom. Positive delta zooms in.
	Wheel(delta float64)

	// DragEnter records a drag entering the window and shows the drop indicator.
	DragEnter()

	// DragLeave records a drag leaving. The indicator hides when every enter has been matched.
	DragLeave()

	// DragDepth returns the number of unmatched drag enters.
	DragDepth() int

	// DropIndicator reports whether the drop indicator is shown.
	DropIndicator() bool

	// Drop handles dropped files. The first file is uploaded to the front pane when dropped on the left half of
	// the viewport and to the back pane otherwise. Non-image files are ignored.
	//
	// Parameters:
	//   - x: pointer x in window coordinates
	//   - width: viewport width in the same units
	//   - paths: dropped file paths
	//
	// Returns:
	//   - bool: true if an upload was started
	Drop(x, width float64, paths []string) bool

	// Upload reads and decodes path off the frame goroutine and binds the result to side. Only the most recently
	// started upload or preset selection for a side is applied.
	//
	// Returns:
	//   - uint64: the per-side request id
	Upload(side Side, path string) uint64

	// PickAndUpload opens the native file picker off the frame goroutine and uploads the chosen file.
	PickAndUpload(side Side)

	// SelectPreset binds a preset to side and persists the choice.
	//
	// Returns:
	//   - error: *texture.UnknownPresetError for names outside the preset table, or a load error
	SelectPreset(side Side, name string) error

	// Set changes a configuration field, projects it onto the scene and persists the configuration.
	//
	// Parameters:
	//   - key: a settings field key
	//   - value: float64, bool or string depending on the field kind
	//
	// Returns:
	//   - error: error if the key is unknown or the value does not fit the field
	Set(key string, value any) error

	// HandleKey runs the keyboard shortcut bound to key.
	//
	// Returns:
	//   - bool: true if the key was handled
	HandleKey(key int) bool

	// Drag returns the sleeve drag rotation state.
	Drag() *camera.DragRotation

	// Config returns the live configuration.
	Config() *settings.Configuration
}

type router struct {
	cfg         *settings.Configuration
	scene       scene.Scene
	sync        synchronizer.Synchronizer
	provisioner texture.Provisioner
	mail        *mailbox.Mailbox

	store    settings.Store
	backdrop backdrop.Backdrop
	executor mailbox.Executor
	picker   FilePicker
	drag     *camera.DragRotation
	onDrop   func(visible bool)
	logger   *slog.Logger

	dragDepth int
	indicator bool
	requests  [2]uint64
}

var _ Router = &router{}

// NewRouter creates a Router.
//
// Parameters:
//   - cfg: the live configuration
//   - sc: the scene
//   - sync: the synchronizer projecting cfg onto sc
//   - provisioner: resolves presets and decodes uploads
//   - mail: the frame goroutine mailbox
//   - options: variadic list of RouterBuilderOption functions
//
// Returns:
//   - Router: the router
func NewRouter(cfg *settings.Configuration, sc scene.Scene, sync synchronizer.Synchronizer, provisioner texture.Provisioner, mail *mailbox.Mailbox, options ...RouterBuilderOption) Router {
	r := &router{
		cfg:         cfg,
		scene:       sc,
		sync:        sync,
		provisioner: provisioner,
		mail:        mail,
		executor:    mailbox.ExecutorFunc(func(job func()) { job() }),
		picker:      NewZenityPicker(),
		drag:        camera.NewDragRotation(camera.DefaultDragSensitivity),
		logger:      slog.Default(),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *router) LoadArtwork() error {
	var errs []error

	for _, side := range []Side{SideFront, SideBack} {
		name := *r.artRef(side)
		if name == texture.RefCustom {
			// uploaded bytes are not persisted, so a stored custom ref starts on the default preset
			def := settings.Default()
			fallback, _ := def.Value(side.key())
			name = fallback.(string)
		}
		if err := r.bindPreset(side, name); err != nil {
			errs = append(errs, fmt.Errorf("%s artwork: %w", side, err))
		}
	}

	if overlay, err := r.provisioner.LoadAsset(texture.AssetOverlay); err != nil {
		errs = append(errs, fmt.Errorf("overlay: %w", err))
	} else {
		r.scene.Material(scene.SlotFrontOverlay).Map().Replace(overlay)
		r.scene.Material(scene.SlotBackOverlay).Map().Replace(overlay.Retain())
	}

	if vinyl, err := r.provisioner.LoadAsset(texture.AssetVinyl); err != nil {
		errs = append(errs, fmt.Errorf("vinyl: %w", err))
	} else {
		r.scene.Material(scene.SlotVinyl).Map().Replace(vinyl)
	}

	r.requestBackdrop()
	return errors.Join(errs...)
}

func (r *router) PointerDown(x, y float64) {
	r.drag.Begin(x, y)
}

func (r *router) PointerMove(x, y float64) {
	r.drag.Move(x, y)
}

func (r *router) PointerUp() {
	r.drag.End()
}

func (r *router) Wheel(delta float64) {
	if ctrl := r.scene.Camera().Controller(); ctrl != nil {
		ctrl.Zoom(float32(delta))
	}
}

func (r *router) DragEnter() {
	r.dragDepth++
	r.setIndicator(true)
}

func (r *router) DragLeave() {
	r.dragDepth = max(0, r.dragDepth-1)
	if r.dragDepth == 0 {
		r.setIndicator(false)
	}
}

func (r *router) DragDepth() int {
	return r.dragDepth
}

func (r *router) DropIndicator() bool {
	return r.indicator
}

func (r *router) setIndicator(visible bool) {
	if r.indicator == visible {
		return
	}
	r.indicator = visible
	if r.onDrop != nil {
		r.onDrop(visible)
	}
}

func (r *router) Drop(x, width float64, paths []string) bool {
	r.dragDepth = 0
	r.setIndicator(false)
	if len(paths) == 0 {
		return false
	}
	path := paths[0]
	if mediaType, ok := texture.SniffImageType(path, nil); !ok {
		r.logger.Debug("drop ignored, not an image", "path", path, "type", mediaType)
		return false
	}
	side := SideBack
	if x < width/2 {
		side = SideFront
	}
	r.Upload(side, path)
	return true
}

func (r *router) Upload(side Side, path string) uint64 {
	r.requests[side]++
	id := r.requests[side]
	uploadID := uuid.NewString()
	r.logger.Debug("upload started", "upload", uploadID, "side", side.String(), "path", path)

	r.executor.Go(func() {
		res, err := r.decodeFile(path)
		r.mail.Post(func() {
			r.finishUpload(side, id, uploadID, res, err)
		})
	})
	return id
}

func (r *router) decodeFile(path string) (*texture.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return r.provisioner.ResolveBytes(filepath.Base(path), data)
}

func (r *router) finishUpload(side Side, id uint64, uploadID string, res *texture.Resource, err error) {
	if id != r.requests[side] {
		if res != nil {
			res.Release()
		}
		r.logger.Debug("upload superseded", "upload", uploadID, "side", side.String())
		return
	}
	if err != nil {
		r.logger.Warn("upload failed", "upload", uploadID, "side", side.String(), "error", err)
		return
	}

	r.scene.Material(side.slot()).Map().Replace(res)
	*r.artRef(side) = texture.RefCustom
	if side == SideFront {
		r.requestBackdrop()
	}
	r.persist()
	r.logger.Info("artwork uploaded", "upload", uploadID, "side", side.String(), "label", res.Label())
}

func (r *router) PickAndUpload(side Side) {
	r.executor.Go(func() {
		path, err := r.picker.Pick(fmt.Sprintf("Upload %s artwork", side))
		if err != nil {
			r.logger.Warn("file picker failed", "side", side.String(), "error", err)
			return
		}
		if path == "" {
			return
		}
		r.mail.Post(func() {
			r.Upload(side, path)
		})
	})
}

func (r *router) SelectPreset(side Side, name string) error {
	if err := r.bindPreset(side, name); err != nil {
		return err
	}
	if side == SideFront {
		r.requestBackdrop()
	}
	r.persist()
	return nil
}

// bindPreset resolves name, binds it to side and records it in the configuration. Any pending upload for the side
// is superseded. The custom ref is rejected with texture.ErrCustomArt and leaves the binding alone.
func (r *router) bindPreset(side Side, name string) error {
	res, err := r.provisioner.Resolve(name)
	if err != nil {
		return err
	}
	r.requests[side]++
	r.scene.Material(side.slot()).Map().Replace(res)
	*r.artRef(side) = name
	return nil
}

func (r *router) requestBackdrop() {
	if r.backdrop == nil {
		return
	}
	r.backdrop.Request(r.scene.Material(scene.SlotFront).Map().Resource())
}

func (r *router) Set(key string, value any) error {
	field, ok := settings.LookupField(key)
	if !ok {
		return fmt.Errorf("unknown setting %q", key)
	}

	switch field.Kind {
	case settings.FieldArt:
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("setting %s: want string, got %T", key, value)
		}
		side := SideFront
		if key == settings.KeyBackArt {
			side = SideBack
		}
		return r.SelectPreset(side, name)
	case settings.FieldColor:
		hex, ok := value.(string)
		if !ok {
			return fmt.Errorf("setting %s: want string, got %T", key, value)
		}
		if err := r.setColor(key, hex); err != nil {
			return err
		}
	default:
		if err := r.cfg.Set(key, value, r.provisioner.IsPreset); err != nil {
			return err
		}
		r.project(key)
	}

	r.persist()
	return nil
}

func (r *router) setColor(key, hex string) error {
	switch key {
	case settings.KeyBackgroundColor:
		return r.sync.SetBackgroundColor(hex)
	case settings.KeyFogColor:
		return r.sync.SetFogColor(hex)
	}
	if err := r.cfg.Set(key, hex, r.provisioner.IsPreset); err != nil {
		return err
	}
	r.project(key)
	return nil
}

// project re-applies the projection that owns key.
func (r *router) project(key string) {
	switch key {
	case settings.KeyVinylReveal:
		r.sync.ApplyVinyl()
	case settings.KeyOverlayOpacity:
		r.sync.ApplyOverlayOpacity()
	case settings.KeyHemiIntensity, settings.KeyHemiSkyColor, settings.KeyHemiGroundColor, settings.KeyBrightness:
		r.sync.ApplyLighting()
	case settings.KeyFogEnabled, settings.KeyFogNear, settings.KeyFogFar:
		r.sync.ApplyFog()
	}
}

func (r *router) HandleKey(key int) bool {
	switch key {
	case common.KeyO:
		r.toggle(settings.KeyAutoOrbit, r.cfg.AutoOrbit)
	case common.KeyF:
		r.toggle(settings.KeyFogEnabled, r.cfg.FogEnabled)
	case common.KeyR:
		r.drag.Reset()
	case common.Key1:
		r.PickAndUpload(SideFront)
	case common.Key2:
		r.PickAndUpload(SideBack)
	default:
		return false
	}
	return true
}

func (r *router) toggle(key string, current bool) {
	if err := r.Set(key, !current); err != nil {
		r.logger.Warn("toggle failed", "setting", key, "error", err)
	}
}

func (r *router) persist() {
	if r.store != nil {
		r.store.Save(*r.cfg)
	}
}

func (r *router) artRef(side Side) *string {
	if side == SideBack {
		return &r.cfg.BackArt
	}
	return &r.cfg.FrontArt
}

func (r *router) Drag() *camera.DragRotation {
	return r.drag
}

func (r *router) Config() *settings.Configuration {
	return r.cfg
}
