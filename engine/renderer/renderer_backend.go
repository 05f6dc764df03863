package renderer

import "github.com/Carmen-Shannon/oxy-sleeve/common"

// RendererBackendType identifies the backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU presents frames to a window surface through WebGPU.
	BackendTypeWGPU RendererBackendType = iota

	// BackendTypeHeadless rasterizes frames without presenting them anywhere.
	BackendTypeHeadless
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// RendererBackend receives finished frames from the Renderer and puts them in front of the user.
type RendererBackend interface {
	// ConfigureSurface (re)configures the presentation surface for the given pixel size.
	//
	// Parameters:
	//   - width, height: surface size in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the present mode used from the next ConfigureSurface on.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// PresentFrame uploads an RGBA8 frame and presents it stretched over the whole surface.
	//
	// Parameters:
	//   - frame: tightly packed RGBA8 pixels
	//   - clear: color used for any surface area the frame does not cover
	//
	// Returns:
	//   - error: an error if the surface could not be acquired or the upload failed
	PresentFrame(frame common.TextureStagingData, clear common.Color) error

	// Release frees every GPU object held by the backend.
	Release()
}

type headlessRendererBackend struct {
	width, height int
	presented     int
}

var _ RendererBackend = &headlessRendererBackend{}

func (b *headlessRendererBackend) ConfigureSurface(width, height int) {
	b.width, b.height = width, height
}

func (b *headlessRendererBackend) SetPresentMode(PresentMode) {}

func (b *headlessRendererBackend) PresentFrame(common.TextureStagingData, common.Color) error {
	b.presented++
	return nil
}

func (b *headlessRendererBackend) Release() {}
