package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/hootacademy/pkg/models"
)

// ProgressRepository stores one JSON progress document per user key.
// There is no merge on save: last write wins, and the single active
// session per user is responsible for serializing its own writes.
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// Load returns the progress record for a user key. A missing row or an
// unparseable document both yield the default empty record; corruption
// is treated as absence, never as a fatal error.
func (r *ProgressRepository) Load(userKey string) (models.ProgressRecord, error) {
	var data string
	err := DB.Get(&data, DB.Rebind("SELECT data FROM progress WHERE user_key = ?"), userKey)
	if err == sql.ErrNoRows {
		return models.NewProgressRecord(), nil
	}
	if err != nil {
		return models.ProgressRecord{}, fmt.Errorf("failed to load progress: %v", err)
	}

	var record models.ProgressRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		log.Printf("Corrupt progress record for %q, using defaults: %v", userKey, err)
		return models.NewProgressRecord(), nil
	}

	if record.CompletedLessons == nil {
		record.CompletedLessons = []string{}
	}
	if record.QuizScores == nil {
		record.QuizScores = make(map[string]int)
	}
	return record, nil
}

// Save overwrites the progress record for a user key
func (r *ProgressRepository) Save(userKey string, record models.ProgressRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %v", err)
	}

	query := `
		INSERT INTO progress (user_key, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (user_key) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err = DB.Exec(DB.Rebind(query), userKey, string(data))
	if err != nil {
		return fmt.Errorf("failed to save progress: %v", err)
	}
	return nil
}
