// Package store persists cipher records on disk
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
	"vigenere-backend/models"

	"github.com/google/uuid"
)

var ErrRecordNotFound = errors.New("record not found")

// RecordStore keeps one JSON file per cipher record under a data directory.
type RecordStore struct {
	dir string
	mu  sync.RWMutex
}

func NewRecordStore(dir string) (*RecordStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create record directory: %w", err)
	}
	return &RecordStore{dir: dir}, nil
}

// Save persists the record and fills in its ID and creation time if unset.
func (s *RecordStore) Save(record *models.CipherRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if _, err := uuid.Parse(record.ID); err != nil {
		return fmt.Errorf("invalid record ID %q: %w", record.ID, err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path(record.ID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Get loads a single record by ID. The ID must parse as a UUID so that a
// caller-supplied value can never address a path outside the data dir.
func (s *RecordStore) Get(id string) (*models.CipherRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrRecordNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var record models.CipherRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse record %s: %w", id, err)
	}
	return &record, nil
}

// List returns all stored records, newest first.
func (s *RecordStore) List() ([]*models.CipherRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read record directory: %w", err)
	}

	records := make([]*models.CipherRecord, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read record %s: %w", entry.Name(), err)
		}
		var record models.CipherRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("failed to parse record %s: %w", entry.Name(), err)
		}
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (s *RecordStore) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrRecordNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (s *RecordStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}
