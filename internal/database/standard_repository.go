package database

import (
	"fmt"

	"github.com/example/hootacademy/pkg/models"
)

// StandardRepository stores curriculum standards imported on top of the
// builtin catalog. Rows are read once at startup; the merged catalog is
// immutable for the process lifetime.
type StandardRepository struct{}

// NewStandardRepository creates a new repository instance
func NewStandardRepository() *StandardRepository {
	return &StandardRepository{}
}

// Upsert inserts or replaces an imported standard
func (r *StandardRepository) Upsert(standard models.Standard) error {
	query := `
		INSERT INTO curriculum_standards (id, code, category, description)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			code = excluded.code,
			category = excluded.category,
			description = excluded.description
	`
	_, err := DB.Exec(DB.Rebind(query), standard.ID, standard.Code, standard.Category, standard.Description)
	if err != nil {
		return fmt.Errorf("failed to upsert standard %q: %v", standard.ID, err)
	}
	return nil
}

// GetAll returns every imported standard in insertion order
func (r *StandardRepository) GetAll() ([]models.Standard, error) {
	var standards []models.Standard
	err := DB.Select(&standards, "SELECT id, code, category, description FROM curriculum_standards ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to get imported standards: %v", err)
	}
	return standards, nil
}
