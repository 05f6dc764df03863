package appconfig

import "github.com/Carmen-Shannon/oxy-sleeve/engine/settings"

// Default returns the configuration used for every key the config file leaves out.
func Default() Config {
	return Config{
		Window: Window{
			Title:       "oxy-sleeve",
			Width:       1280,
			Height:      720,
			PresentMode: PresentVSync,
			RenderScale: 1,
		},
		Render: Render{
			FrameLimit: 60,
		},
		Assets: Assets{
			Dir:          "~/.local/share/oxy-sleeve/assets",
			Placeholders: true,
		},
		Storage: Storage{
			Backend: StorageFile,
			Path:    "~/.local/share/oxy-sleeve/settings",
			Key:     settings.StorageKey,
		},
		Backdrop: Backdrop{
			Scale:       0.4,
			BlurRadius:  12,
			Brightness:  0.55,
			FloorRepeat: 4,
			Workers:     4,
		},
		Camera: Camera{
			DragSensitivity: 0.005,
			OrbitHeight:     0.85,
			ZoomSpeed:       1,
			MinDistance:     0.6,
			MaxDistance:     8,
		},
		Snapshot: Snapshot{
			Dir:    "~/Pictures/oxy-sleeve",
			Width:  1280,
			Height: 720,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}
