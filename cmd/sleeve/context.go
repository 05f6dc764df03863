package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-sleeve/engine/settings"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/texture"
	"github.com/Carmen-Shannon/oxy-sleeve/internal/appconfig"
	"github.com/Carmen-Shannon/oxy-sleeve/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config
	configErr  error
}

// config pairs the loaded application config with where it came from.
type config struct {
	*appconfig.Config
	path   string
	exists bool
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := appconfig.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = &config{Config: cfg, path: resolved, exists: exists}
	})
	return c.config, c.configErr
}

// newLogger builds the process logger from the config and installs it as the slog default.
func (c *commandContext) newLogger(out io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: out,
	})
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// newProvisioner opens the artwork directory named by the config.
func (c *commandContext) newProvisioner(logger *slog.Logger) (texture.Provisioner, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return texture.NewProvisioner(os.DirFS(cfg.Assets.Dir),
		texture.WithPlaceholders(cfg.Assets.Placeholders),
		texture.WithStrict(cfg.Assets.Strict),
		texture.WithLogger(logger),
	), nil
}

// openStore opens the configured storage backend. The returned close function releases the slot.
func (c *commandContext) openStore(prov texture.Provisioner, logger *slog.Logger) (settings.Store, func() error, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	var slot settings.Slot
	switch cfg.Storage.Backend {
	case appconfig.StorageFile:
		slot, err = settings.NewFileSlot(cfg.Storage.Path)
	case appconfig.StorageSQLite:
		path := cfg.Storage.Path
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			path = filepath.Join(path, "settings.db")
		}
		slot, err = settings.OpenSQLiteSlot(path)
	case appconfig.StorageMemory:
		slot = settings.NewMemorySlot()
	default:
		err = fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
	}

	store := settings.NewStore(slot,
		settings.WithKey(cfg.Storage.Key),
		settings.WithPresetCheck(prov.IsPreset),
		settings.WithLogger(logger),
	)
	return store, slot.Close, nil
}
