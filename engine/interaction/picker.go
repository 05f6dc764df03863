package interaction

import (
	"errors"

	"github.com/ncruces/zenity"
)

// FilePicker asks the user for an image file.
type FilePicker interface {
	// Pick shows a file dialog.
	//
	// Parameters:
	//   - title: the dialog title
	//
	// Returns:
	//   - string: the chosen path, or "" if the user cancelled
	//   - error: error if the dialog could not be shown
	Pick(title string) (string, error)
}

// FilePickerFunc adapts a function to the FilePicker interface.
type FilePickerFunc func(title string) (string, error)

func (f FilePickerFunc) Pick(title string) (string, error) { return f(title) }

type zenityPicker struct {
	filters zenity.FileFilters
}

// NewZenityPicker returns a FilePicker backed by the platform's native file dialog, filtered to image files.
func NewZenityPicker() FilePicker {
	return &zenityPicker{
		filters: zenity.FileFilters{
			{Name: "Images", Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.tif", "*.tiff", "*.webp", "*.tga"}},
			{Name: "All files", Patterns: []string{"*"}},
		},
	}
}

func (z *zenityPicker) Pick(title string) (string, error) {
	path, err := zenity.SelectFile(zenity.Title(title), z.filters)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}
