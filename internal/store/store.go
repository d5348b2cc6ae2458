// Package store persists learner records as one JSON document per user.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/example/wortbot/pkg/models"
)

const filePrefix = "progress_"

// Store reads and writes learner documents under a data directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(chatID string) string {
	return filepath.Join(s.dir, filePrefix+chatID+".json")
}

// Load returns the learner record for the chat id. A missing or malformed
// document yields a fresh default record, never an error: first use and a
// corrupted file are both treated as a new learner.
func (s *Store) Load(chatID string, now time.Time) *models.LearnerRecord {
	data, err := os.ReadFile(s.path(chatID))
	if err != nil {
		return models.NewLearnerRecord(chatID, now)
	}

	var rec models.LearnerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.NewLearnerRecord(chatID, now)
	}
	rec.ChatID = chatID
	rec.Normalize()
	return &rec
}

// Save writes the record back in full. The document is written to a temp
// file and renamed so a crash cannot leave a half-written document.
func (s *Store) Save(rec *models.LearnerRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record for %s: %v", rec.ChatID, err)
	}

	tmp := s.path(rec.ChatID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write record for %s: %v", rec.ChatID, err)
	}
	if err := os.Rename(tmp, s.path(rec.ChatID)); err != nil {
		return fmt.Errorf("failed to replace record for %s: %v", rec.ChatID, err)
	}
	return nil
}

// List returns the chat ids of every stored learner document, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %v", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), ".json")
		if id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
