package texture

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
)

// Provisioner turns artwork references and uploaded bytes into texture resources.
type Provisioner interface {
	// Resolve loads the image behind a preset name.
	//
	// Parameters:
	//   - ref: a preset name
	//
	// Returns:
	//   - *Resource: the decoded resource, holding one reference for the caller
	//   - error: *UnknownPresetError for names outside the preset table, ErrCustomArt for the custom marker,
	//     or a load error. In strict mode an unknown preset panics instead.
	Resolve(ref string) (*Resource, error)

	// ResolveBytes decodes uploaded bytes.
	//
	// Parameters:
	//   - label: the upload file name, used for sniffing and logging
	//   - data: the encoded image
	//
	// Returns:
	//   - *Resource: the decoded resource, holding one reference for the caller
	//   - error: error if the bytes are not a decodable image
	ResolveBytes(label string, data []byte) (*Resource, error)

	// LoadAsset loads a fixed non-preset asset such as the vinyl disc or the overlay.
	LoadAsset(name string) (*Resource, error)

	// IsPreset reports whether ref names a preset.
	IsPreset(ref string) bool

	// Presets returns the preset table.
	Presets() Presets
}

type provisioner struct {
	assets       fs.FS
	presets      Presets
	strict       bool
	placeholders bool
	logger       *slog.Logger
}

var _ Provisioner = &provisioner{}

// NewProvisioner creates a Provisioner reading images from assets.
//
// Parameters:
//   - assets: the asset root
//   - options: variadic list of ProvisionerBuilderOption functions
//
// Returns:
//   - Provisioner: the provisioner
func NewProvisioner(assets fs.FS, options ...ProvisionerBuilderOption) Provisioner {
	p := &provisioner{
		assets:  assets,
		presets: DefaultPresets,
		logger:  slog.Default(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *provisioner) Resolve(ref string) (*Resource, error) {
	if ref == RefCustom {
		return nil, ErrCustomArt
	}
	file, ok := p.presets[ref]
	if !ok {
		err := &UnknownPresetError{Ref: ref}
		if p.strict {
			panic(err)
		}
		return nil, err
	}
	return p.load(ref, file)
}

func (p *provisioner) ResolveBytes(label string, data []byte) (*Resource, error) {
	img, _, err := DecodeImage(label, data)
	if err != nil {
		return nil, err
	}
	return NewResource(label, img, common.ClampSampler()), nil
}

func (p *provisioner) LoadAsset(name string) (*Resource, error) {
	return p.load(name, name)
}

func (p *provisioner) IsPreset(ref string) bool {
	return p.presets.Has(ref)
}

func (p *provisioner) Presets() Presets {
	return p.presets
}

func (p *provisioner) load(label, file string) (*Resource, error) {
	if p.assets == nil {
		return p.fallback(label, file, fs.ErrNotExist)
	}
	data, err := fs.ReadFile(p.assets, file)
	if err != nil {
		return p.fallback(label, file, err)
	}
	img, _, err := DecodeImage(file, data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", label, err)
	}
	p.logger.Debug("texture loaded", "label", label, "file", file, "width", img.Rect.Dx(), "height", img.Rect.Dy())
	return NewResource(label, img, common.ClampSampler()), nil
}

func (p *provisioner) fallback(label, file string, cause error) (*Resource, error) {
	if !p.placeholders || !errors.Is(cause, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", label, cause)
	}
	p.logger.Warn("asset missing, using placeholder", "label", label, "file", file)
	return NewResource(label, Placeholder(file), common.ClampSampler()), nil
}
