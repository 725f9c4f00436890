package prevalues

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jpkuehn/S3.Forms/models"
	"github.com/jpkuehn/S3.Forms/repositories"
)

// SourceType evaluates a configured pre-value source
type SourceType interface {
	Type() string
	GetPreValues(ctx context.Context, field *models.Field, source *models.PreValueSource) ([]models.PreValue, error)
}

// Service resolves the pre-values of fields
type Service struct {
	sources repositories.PreValueSourceRepository
	types   map[string]SourceType
}

// NewService creates a pre-value service with the given source types
func NewService(sources repositories.PreValueSourceRepository, types ...SourceType) *Service {
	s := &Service{
		sources: sources,
		types:   make(map[string]SourceType),
	}
	for _, t := range types {
		s.types[t.Type()] = t
	}
	return s
}

// Resolve returns the candidate options of a field: from its configured
// pre-value source when present, otherwise from its own static list
func (s *Service) Resolve(ctx context.Context, field *models.Field) ([]models.PreValue, error) {
	if !field.HasPreValueSource() {
		return field.PreValues, nil
	}

	source, err := s.sources.GetByID(ctx, *field.PreValueSourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load prevalue source for field %s: %w", field.Alias, err)
	}

	sourceType, ok := s.types[source.Type]
	if !ok {
		return nil, fmt.Errorf("unknown prevalue source type %q", source.Type)
	}

	return sourceType.GetPreValues(ctx, field, source)
}

// Dedupe maps each value to its caption, keeping the first caption seen for a value
func Dedupe(preValues []models.PreValue) map[string]string {
	m := make(map[string]string, len(preValues))
	for _, pv := range preValues {
		if _, exists := m[pv.Value]; exists {
			continue
		}
		m[pv.Value] = pv.Caption
	}
	return m
}

// StaticSource reads "value|caption" lines from the Values setting
type StaticSource struct{}

func (StaticSource) Type() string { return "static" }

func (StaticSource) GetPreValues(_ context.Context, _ *models.Field, source *models.PreValueSource) ([]models.PreValue, error) {
	var preValues []models.PreValue
	for i, line := range strings.Split(source.Settings["Values"], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		value, caption, found := strings.Cut(line, "|")
		if !found {
			caption = value
		}
		preValues = append(preValues, models.PreValue{
			Value:     strings.TrimSpace(value),
			Caption:   strings.TrimSpace(caption),
			SortOrder: i,
		})
	}
	return preValues, nil
}

// SQLSource runs the SELECT in the Query setting; the first two columns are value and caption
type SQLSource struct {
	db *sql.DB
}

// NewSQLSource creates a SQL pre-value source over the application database
func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{db: db}
}

func (s *SQLSource) Type() string { return "sql" }

func (s *SQLSource) GetPreValues(ctx context.Context, _ *models.Field, source *models.PreValueSource) ([]models.PreValue, error) {
	query := strings.TrimSpace(source.Settings["Query"])
	if !strings.HasPrefix(strings.ToUpper(query), "SELECT") {
		return nil, fmt.Errorf("prevalue source %s: only SELECT queries are allowed", source.Name)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query prevalue source %s: %w", source.Name, err)
	}
	defer rows.Close()

	var preValues []models.PreValue
	for rows.Next() {
		pv := models.PreValue{SortOrder: len(preValues)}
		if err := rows.Scan(&pv.Value, &pv.Caption); err != nil {
			return nil, fmt.Errorf("failed to scan prevalue: %w", err)
		}
		preValues = append(preValues, pv)
	}

	return preValues, rows.Err()
}
