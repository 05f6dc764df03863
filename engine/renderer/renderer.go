package renderer

import (
	"errors"
	"image"
	"log/slog"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/scene"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/snapshot"
	"github.com/cogentcore/webgpu/wgpu"
)

// MinRenderScale is the smallest accepted render scale.
const MinRenderScale = 0.25

// Surface is the part of a window the renderer needs. window.Window satisfies it.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

type renderer struct {
	mu          *sync.Mutex
	backendType RendererBackendType
	backend     RendererBackend
	raster      *snapshot.Rasterizer
	logger      *slog.Logger

	width, height int
	scale         float32
	frame         *image.NRGBA
	frames        uint64

	// Config flags applied during NewRenderer before backend creation.
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
}

// Renderer draws a scene once per frame and hands the result to its backend.
//
// Every frame is produced by the software rasterizer so the windowed view and exported snapshots show the
// same image. The WGPU backend only uploads the finished frame and blits it to the window surface.
type Renderer interface {
	// Render rasterizes the scene at the current render size and presents it.
	//
	// Parameters:
	//   - sc: the scene to draw
	//
	// Returns:
	//   - error: an error if the backend failed to present the frame
	Render(sc scene.Scene) error

	// Resize updates the surface size. Zero sizes (a minimized window) skip rendering until the next resize.
	//
	// Parameters:
	//   - width, height: new surface size in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Size returns the current surface size.
	//
	// Returns:
	//   - width, height: surface size in pixels
	Size() (width, height int)

	// RenderSize returns the size frames are rasterized at after applying the render scale.
	//
	// Returns:
	//   - width, height: frame size in pixels
	RenderSize() (width, height int)

	// LastFrame returns the most recently rendered frame, or nil before the first Render.
	// The image is reused by the next Render call.
	//
	// Returns:
	//   - *image.NRGBA: the last frame
	LastFrame() *image.NRGBA

	// Frames returns how many frames have been presented.
	//
	// Returns:
	//   - uint64: presented frame count
	Frames() uint64

	// BackendType returns the backend the renderer was created with.
	//
	// Returns:
	//   - RendererBackendType: the backend type
	BackendType() RendererBackendType

	// Release frees the backend's resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type.
// The surface is required for BackendTypeWGPU and may be nil for BackendTypeHeadless, in which case WithSize
// provides the frame size.
//
// Parameters:
//   - backendType: the type of rendering backend to use
//   - surface: the window to present into, or nil when headless
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
//   - error: an error if the GPU backend could not be initialized
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		raster:      snapshot.NewRasterizer(),
		scale:       1,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.scale = common.Clamp(r.scale, MinRenderScale, 1)

	switch backendType {
	case BackendTypeHeadless:
		r.backend = &headlessRendererBackend{}
	case BackendTypeWGPU:
		fallthrough
	default:
		if surface == nil {
			return nil, errors.New("renderer: the wgpu backend needs a window surface")
		}
		backend, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter)
		if err != nil {
			return nil, err
		}
		r.backend = backend
		r.width, r.height = surface.Width(), surface.Height()
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.ConfigureSurface(r.width, r.height)
	return r, nil
}

func (r *renderer) Render(sc scene.Scene) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, h := r.renderSize()
	if w == 0 || h == 0 {
		return nil
	}

	r.frame = r.raster.Render(sc, w, h)
	err := r.backend.PresentFrame(common.TextureStagingData{
		Pixels: r.frame.Pix,
		Width:  uint32(w),
		Height: uint32(h),
	}, sc.Background())
	if err != nil {
		r.logger.Warn("present frame failed", "error", err)
		return err
	}
	r.frames++
	return nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	r.width, r.height = max(width, 0), max(height, 0)
	r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
	w, h := r.Size()
	r.backend.ConfigureSurface(w, h)
}

func (r *renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) RenderSize() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renderSize()
}

// renderSize applies the render scale to the surface size. Caller must hold the mutex.
func (r *renderer) renderSize() (width, height int) {
	if r.width <= 0 || r.height <= 0 {
		return 0, 0
	}
	width = max(int(math.Ceil(float64(float32(r.width)*r.scale))), 1)
	height = max(int(math.Ceil(float64(float32(r.height)*r.scale))), 1)
	return width, height
}

func (r *renderer) LastFrame() *image.NRGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame
}

func (r *renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) Release() {
	r.backend.Release()
}
