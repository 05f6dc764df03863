package texture

import (
	"errors"
	"fmt"
)

// ErrCustomArt is returned when the custom marker is resolved by name. Custom artwork only exists as uploaded bytes.
var ErrCustomArt = errors.New("custom artwork has no preset source")

// UnknownPresetError reports an artwork reference outside the closed preset table.
type UnknownPresetError struct {
	Ref string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown artwork preset %q", e.Ref)
}
