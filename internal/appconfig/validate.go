package appconfig

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateWindow(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateBackdrop(); err != nil {
		return err
	}
	if err := c.validateCamera(); err != nil {
		return err
	}
	if err := c.validateSnapshot(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateWindow() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window.width and window.height must be positive")
	}
	switch c.Window.PresentMode {
	case PresentVSync, PresentUncapped:
	default:
		return fmt.Errorf("window.present_mode: unsupported value %q", c.Window.PresentMode)
	}
	if c.Window.RenderScale < 0.25 || c.Window.RenderScale > 1 {
		return errors.New("window.render_scale must be between 0.25 and 1")
	}
	if c.Render.FrameLimit < 0 {
		return errors.New("render.frame_limit must not be negative")
	}
	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case StorageFile, StorageSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s backend", c.Storage.Backend)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("storage.backend: unsupported value %q", c.Storage.Backend)
	}
	if c.Storage.Key == "" {
		return errors.New("storage.key must be set")
	}
	return nil
}

func (c *Config) validateBackdrop() error {
	if c.Backdrop.Scale <= 0 || c.Backdrop.Scale > 1 {
		return errors.New("backdrop.scale must be in (0, 1]")
	}
	if c.Backdrop.BlurRadius < 0 {
		return errors.New("backdrop.blur_radius must not be negative")
	}
	if c.Backdrop.Brightness < 0 {
		return errors.New("backdrop.brightness must not be negative")
	}
	if c.Backdrop.FloorRepeat <= 0 {
		return errors.New("backdrop.floor_repeat must be positive")
	}
	return nil
}

func (c *Config) validateCamera() error {
	if c.Camera.DragSensitivity <= 0 {
		return errors.New("camera.drag_sensitivity must be positive")
	}
	if c.Camera.ZoomSpeed <= 0 {
		return errors.New("camera.zoom_speed must be positive")
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance {
		return errors.New("camera.min_distance must be positive and not above camera.max_distance")
	}
	return nil
}

func (c *Config) validateSnapshot() error {
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		return errors.New("snapshot.width and snapshot.height must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
