package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"ticketsheet/backend/internal/models"

	"github.com/shopspring/decimal"
)

// Store owns the persisted operator settings and the currently loaded
// record set. Settings live in a JSON file and are re-read on every call
// so edits from another process are picked up on the next aggregation.
type Store struct {
	path string

	mu      sync.Mutex
	records []models.BookingRecord
}

// New creates a store backed by the given settings file.
func New(path string) *Store {
	return &Store{path: path}
}

// Settings reads the settings file. A missing file yields defaults.
func (s *Store) Settings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// UpdateFilter replaces the filter configuration.
func (s *Store) UpdateFilter(cfg models.FilterConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load()
	if err != nil {
		return err
	}
	settings.Filter = cfg
	return s.save(settings)
}

// ReplaceEventPrices commits a replacement pair of price mappings for one
// event key. Both mappings are replaced wholesale, not merged.
func (s *Store) ReplaceEventPrices(eventKey string, event, standard map[string]decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.load()
	if err != nil {
		return err
	}
	if settings.Prices.PerEvent == nil {
		settings.Prices.PerEvent = map[string]map[string]decimal.Decimal{}
	}
	if len(event) == 0 {
		delete(settings.Prices.PerEvent, eventKey)
	} else {
		settings.Prices.PerEvent[eventKey] = event
	}
	settings.Prices.Standard = standard
	return s.save(settings)
}

// SetRecords replaces the loaded record set.
func (s *Store) SetRecords(records []models.BookingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

// Records returns the loaded record set.
func (s *Store) Records() []models.BookingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records
}

func (s *Store) load() (models.Settings, error) {
	var settings models.Settings
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return withDefaults(settings), nil
	}
	if err != nil {
		return settings, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse settings: %w", err)
	}
	return withDefaults(settings), nil
}

func (s *Store) save(settings models.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func withDefaults(settings models.Settings) models.Settings {
	if settings.Prices.Standard == nil {
		settings.Prices.Standard = map[string]decimal.Decimal{}
	}
	if settings.Prices.PerEvent == nil {
		settings.Prices.PerEvent = map[string]map[string]decimal.Decimal{}
	}
	return settings
}
