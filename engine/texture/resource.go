// Package texture provisions decoded images as reference-counted texture resources
// and binds them to material slots.
package texture

import (
	"image"
	"sync"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
)

// Resource is a decoded image plus its sampler addressing. It is reference counted: the creator holds the first
// reference, every additional owner calls Retain, and every owner calls Release exactly once. The pixel data is
// dropped when the last reference is released.
type Resource struct {
	mu       sync.Mutex
	label    string
	image    *image.NRGBA
	sampler  common.SamplerStagingData
	refs     int
	disposed bool
}

// NewResource wraps img in a Resource holding one reference.
//
// Parameters:
//   - label: a human readable label used in logs
//   - img: the decoded image
//   - sampler: the sampler addressing used when the image is drawn
//
// Returns:
//   - *Resource: the new resource
func NewResource(label string, img *image.NRGBA, sampler common.SamplerStagingData) *Resource {
	return &Resource{
		label:   label,
		image:   img,
		sampler: sampler,
		refs:    1,
	}
}

// Label returns the resource label.
func (r *Resource) Label() string {
	return r.label
}

// Image returns the decoded pixels, or nil once the resource has been disposed.
func (r *Resource) Image() *image.NRGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.image
}

// Sampler returns the sampler addressing of the resource.
func (r *Resource) Sampler() common.SamplerStagingData {
	return r.sampler
}

// Retain adds a reference and returns r so it can be handed to the new owner inline.
// Retaining a disposed resource panics.
func (r *Resource) Retain() *Resource {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed {
		panic("texture: retain of disposed resource " + r.label)
	}
	r.refs++
	return r
}

// Release drops one reference. The pixel data is dropped when the count reaches zero.
//
// Returns:
//   - bool: true if this call disposed the resource
func (r *Resource) Release() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed {
		return false
	}
	r.refs--
	if r.refs > 0 {
		return false
	}
	r.disposed = true
	r.image = nil
	return true
}

// Refs returns the current reference count.
func (r *Resource) Refs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refs
}

// Disposed reports whether the last reference has been released.
func (r *Resource) Disposed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disposed
}

// Clone returns an independent resource with a copy of the pixels and the given sampler.
//
// Parameters:
//   - label: label for the clone
//   - sampler: sampler addressing for the clone
//
// Returns:
//   - *Resource: the clone, holding one reference, or nil if r has been disposed
func (r *Resource) Clone(label string, sampler common.SamplerStagingData) *Resource {
	src := r.Image()
	if src == nil {
		return nil
	}
	dst := image.NewNRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return NewResource(label, dst, sampler)
}
