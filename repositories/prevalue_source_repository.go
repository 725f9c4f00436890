package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/models"
)

// PreValueSourceRepository interface defines pre-value source database operations
type PreValueSourceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.PreValueSource, error)
	Create(ctx context.Context, source *models.PreValueSource) error
}

type preValueSourceRepository struct {
	db *sql.DB
}

// NewPreValueSourceRepository creates a new pre-value source repository
func NewPreValueSourceRepository(db *sql.DB) PreValueSourceRepository {
	return &preValueSourceRepository{db: db}
}

// GetByID retrieves a pre-value source by ID
func (r *preValueSourceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PreValueSource, error) {
	query := `SELECT id, name, type, settings FROM prevalue_sources WHERE id = ?`

	var source models.PreValueSource
	var settings string

	err := r.db.QueryRowContext(ctx, query, id).Scan(&source.ID, &source.Name, &source.Type, &settings)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("prevalue source with ID %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prevalue source: %w", err)
	}

	if err := json.Unmarshal([]byte(settings), &source.Settings); err != nil {
		return nil, fmt.Errorf("failed to decode prevalue source settings: %w", err)
	}

	return &source, nil
}

// Create stores a pre-value source
func (r *preValueSourceRepository) Create(ctx context.Context, source *models.PreValueSource) error {
	if source.ID == uuid.Nil {
		source.ID = uuid.New()
	}

	settings := []byte("{}")
	if source.Settings != nil {
		var err error
		if settings, err = json.Marshal(source.Settings); err != nil {
			return fmt.Errorf("failed to encode prevalue source settings: %w", err)
		}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO prevalue_sources (id, name, type, settings) VALUES (?, ?, ?, ?)`,
		source.ID, source.Name, source.Type, string(settings),
	)
	if err != nil {
		return fmt.Errorf("failed to create prevalue source: %w", err)
	}

	return nil
}
