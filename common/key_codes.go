package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyF = 70 // F key (ASCII), toggles fog
	KeyO = 79 // O key (ASCII), toggles auto orbit
	KeyP = 80 // P key (ASCII), writes a snapshot
	KeyR = 82 // R key (ASCII), resets sleeve rotation

	Key1 = 49 // 1 key (ASCII), front artwork picker
	Key2 = 50 // 2 key (ASCII), back artwork picker

	KeyEsc = 256 // Escape key (GLFW)
)
