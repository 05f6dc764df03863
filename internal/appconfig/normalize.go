package appconfig

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.Window.PresentMode = strings.ToLower(strings.TrimSpace(c.Window.PresentMode))
	if c.Window.PresentMode == "" {
		c.Window.PresentMode = PresentVSync
	}
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = StorageFile
	}
	if strings.TrimSpace(c.Window.Title) == "" {
		c.Window.Title = Default().Window.Title
	}
	if c.Backdrop.Workers <= 0 {
		c.Backdrop.Workers = 1
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Assets.Dir, err = expandPath(c.Assets.Dir); err != nil {
		return fmt.Errorf("assets.dir: %w", err)
	}
	if c.Storage.Path, err = expandPath(c.Storage.Path); err != nil {
		return fmt.Errorf("storage.path: %w", err)
	}
	if c.Snapshot.Dir, err = expandPath(c.Snapshot.Dir); err != nil {
		return fmt.Errorf("snapshot.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}
