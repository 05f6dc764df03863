package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// ErrSlotEmpty is returned by a Slot when nothing has been written under the requested key.
var ErrSlotEmpty = errors.New("settings slot is empty")

// Slot is a durable key-value location holding serialized records.
type Slot interface {
	// Read returns the bytes stored under key, or ErrSlotEmpty when nothing is stored.
	Read(key string) ([]byte, error)

	// Write replaces the bytes stored under key.
	Write(key string, data []byte) error

	// Delete removes the record stored under key. A missing record is not an error.
	Delete(key string) error

	// Close releases any resources held by the slot.
	Close() error
}

// MemorySlot keeps records in process memory. It is used for headless runs and tests.
type MemorySlot struct {
	mu       sync.Mutex
	records  map[string][]byte
	WriteErr error
}

var _ Slot = &MemorySlot{}

// NewMemorySlot creates an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{records: make(map[string][]byte)}
}

func (m *MemorySlot) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.records[key]
	if !ok {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), data...), nil
}

func (m *MemorySlot) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.records[key] = append([]byte(nil), data...)
	return nil
}

func (m *MemorySlot) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}

func (m *MemorySlot) Close() error { return nil }

// FileSlot stores each key as a JSON file under a directory. Writes go to a temp file that is renamed into place
// while an advisory lock on "<key>.lock" is held, so concurrent processes never observe a torn record.
type FileSlot struct {
	dir string
}

var _ Slot = &FileSlot{}

// NewFileSlot creates a file slot rooted at dir, creating the directory if needed.
//
// Parameters:
//   - dir: directory that will hold the record files
//
// Returns:
//   - *FileSlot: the slot
//   - error: error if the directory could not be created
func NewFileSlot(dir string) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}
	return &FileSlot{dir: dir}, nil
}

// Path returns the file that holds key.
func (f *FileSlot) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileSlot) Read(key string) ([]byte, error) {
	lock := flock.New(f.Path(key) + ".lock")
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock settings file: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	return data, nil
}

func (f *FileSlot) Write(key string, data []byte) error {
	lock := flock.New(f.Path(key) + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock settings file: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp settings file: %w", err)
	}
	if err := os.Rename(tmpName, f.Path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

func (f *FileSlot) Delete(key string) error {
	err := os.Remove(f.Path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove settings file: %w", err)
	}
	return nil
}

func (f *FileSlot) Close() error { return nil }
