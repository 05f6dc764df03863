package backdrop

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-sleeve/common"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/mailbox"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/texture"
)

// Backdrop regenerates the wall and floor textures whenever the front artwork changes.
// Requests are numbered; only the most recently started request may be applied.
type Backdrop interface {
	// Request starts a regeneration from src. It must be called on the frame goroutine.
	// The source is retained until generation finishes, so the caller may replace it immediately.
	//
	// Parameters:
	//   - src: the front artwork resource, may be nil
	//
	// Returns:
	//   - uint64: the request id
	Request(src *texture.Resource) uint64

	// Latest returns the id of the most recently started request.
	Latest() uint64

	// Applied returns the id of the request whose result is currently bound, or zero.
	Applied() uint64
}

type backdropImpl struct {
	wall  *texture.Binding
	floor *texture.Binding
	mail  *mailbox.Mailbox

	executor    mailbox.Executor
	scale       float64
	blurRadius  float64
	brightness  float64
	floorRepeat float32
	logger      *slog.Logger

	latest  uint64
	applied uint64
}

var _ Backdrop = &backdropImpl{}

// NewBackdrop creates a Backdrop writing into the wall and floor bindings. Completions are posted to mail, which the
// frame goroutine drains.
//
// Parameters:
//   - wall: the backdrop wall material binding
//   - floor: the floor material binding; it receives an independent copy with scaled tiling
//   - mail: the frame goroutine mailbox
//   - options: variadic list of BackdropBuilderOption functions
//
// Returns:
//   - Backdrop: the backdrop generator
func NewBackdrop(wall, floor *texture.Binding, mail *mailbox.Mailbox, options ...BackdropBuilderOption) Backdrop {
	b := &backdropImpl{
		wall:        wall,
		floor:       floor,
		mail:        mail,
		executor:    mailbox.ExecutorFunc(func(job func()) { job() }),
		scale:       DefaultScale,
		blurRadius:  DefaultBlurRadius,
		brightness:  DefaultBrightness,
		floorRepeat: DefaultFloorRepeat,
		logger:      slog.Default(),
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

func (b *backdropImpl) Request(src *texture.Resource) uint64 {
	b.latest++
	id := b.latest
	if src != nil {
		src.Retain()
	}
	scale, radius, brightness := b.scale, b.blurRadius, b.brightness

	b.executor.Go(func() {
		var res *texture.Resource
		if src != nil {
			var err error
			res, err = GenerateScaled(src.Image(), scale, radius, brightness)
			src.Release()
			if err != nil {
				b.logger.Warn("backdrop generation failed", "id", id, "error", err)
			}
		}
		b.mail.Post(func() { b.apply(id, res) })
	})
	return id
}

func (b *backdropImpl) Latest() uint64 {
	return b.latest
}

func (b *backdropImpl) Applied() uint64 {
	return b.applied
}

func (b *backdropImpl) apply(id uint64, res *texture.Resource) {
	if id != b.latest {
		b.logger.Debug("discarding superseded backdrop", "id", id, "latest", b.latest)
		if res != nil {
			res.Release()
		}
		return
	}
	if res == nil {
		b.logger.Debug("backdrop source unreadable, keeping current backdrop", "id", id)
		return
	}

	repeat := b.floorRepeat
	b.floor.Replace(res.Clone("floor", common.RepeatSampler(repeat, repeat)))
	b.wall.Replace(res)
	b.applied = id
	b.logger.Debug("backdrop applied", "id", id, "width", res.Image().Rect.Dx(), "height", res.Image().Rect.Dy())
}
