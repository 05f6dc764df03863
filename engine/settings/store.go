package settings

import (
	"encoding/json"
	"errors"
	"log/slog"
)

// Store loads and persists the Configuration through a Slot.
type Store interface {
	// Load reads the persisted record and merges it over the defaults.
	// It never fails: an absent, unparsable or partially invalid record yields defaults for the affected fields.
	//
	// Returns:
	//   - Configuration: the validated, clamped configuration
	Load() Configuration

	// Save writes the documented field set of cfg to the slot.
	// Write failures are logged and swallowed.
	//
	// Parameters:
	//   - cfg: the configuration to persist
	Save(cfg Configuration)

	// Reset removes the persisted record so the next Load returns defaults.
	//
	// Returns:
	//   - error: error if the slot could not be reset
	Reset() error

	// Key returns the slot key the store reads and writes.
	Key() string

	// Raw returns the persisted bytes, or ErrSlotEmpty.
	Raw() ([]byte, error)
}

type store struct {
	slot     Slot
	key      string
	isPreset func(string) bool
	logger   *slog.Logger
}

var _ Store = &store{}

// NewStore creates a Store over slot.
//
// Parameters:
//   - slot: the durable location to read and write
//   - options: variadic list of StoreBuilderOption functions
//
// Returns:
//   - Store: the store
func NewStore(slot Slot, options ...StoreBuilderOption) Store {
	s := &store{
		slot:   slot,
		key:    StorageKey,
		logger: slog.Default(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *store) Load() Configuration {
	raw, err := s.slot.Read(s.key)
	switch {
	case errors.Is(err, ErrSlotEmpty):
		s.logger.Debug("no persisted settings, using defaults", "key", s.key)
		return Default()
	case err != nil:
		s.logger.Warn("read persisted settings failed, using defaults", "key", s.key, "error", err)
		return Default()
	}

	cfg, rejected, err := Decode(raw, s.isPreset)
	if err != nil {
		s.logger.Warn("persisted settings unreadable, using defaults", "key", s.key, "error", err)
		return cfg
	}
	if len(rejected) > 0 {
		s.logger.Debug("persisted settings fields reset to defaults", "key", s.key, "fields", rejected)
	}
	return cfg
}

func (s *store) Save(cfg Configuration) {
	data, err := json.Marshal(cfg)
	if err != nil {
		s.logger.Warn("encode settings failed", "error", err)
		return
	}
	if err := s.slot.Write(s.key, data); err != nil {
		s.logger.Warn("persist settings failed", "key", s.key, "error", err)
	}
}

func (s *store) Reset() error {
	return s.slot.Delete(s.key)
}

func (s *store) Key() string {
	return s.key
}

func (s *store) Raw() ([]byte, error) {
	return s.slot.Read(s.key)
}
