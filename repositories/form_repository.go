package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/models"
)

// FormRepository interface defines form definition database operations
type FormRepository interface {
	GetAll(ctx context.Context) ([]models.Form, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Form, error)
	Create(ctx context.Context, form *models.Form) error
}

// formRepository implements FormRepository interface
type formRepository struct {
	db *sql.DB
}

// NewFormRepository creates a new form repository
func NewFormRepository(db *sql.DB) FormRepository {
	return &formRepository{db: db}
}

// GetAll retrieves all forms without their fields
func (r *formRepository) GetAll(ctx context.Context) ([]models.Form, error) {
	query := `
		SELECT id, name, store_records_locally, created
		FROM forms
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query forms: %w", err)
	}
	defer rows.Close()

	var forms []models.Form
	for rows.Next() {
		var form models.Form
		if err := rows.Scan(&form.ID, &form.Name, &form.StoreRecordsLocally, &form.Created); err != nil {
			return nil, fmt.Errorf("failed to scan form: %w", err)
		}
		forms = append(forms, form)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating forms: %w", err)
	}

	return forms, nil
}

// GetByID retrieves a form with its fields and static pre-values
func (r *formRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Form, error) {
	query := `
		SELECT id, name, store_records_locally, created
		FROM forms
		WHERE id = ?
	`

	var form models.Form
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&form.ID,
		&form.Name,
		&form.StoreRecordsLocally,
		&form.Created,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("form with ID %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	fields, err := r.getFields(ctx, id)
	if err != nil {
		return nil, err
	}
	form.Fields = fields

	return &form, nil
}

// getFields loads the field definitions of a form in sort order
func (r *formRepository) getFields(ctx context.Context, formID uuid.UUID) ([]*models.Field, error) {
	query := `
		SELECT id, form_id, alias, caption, field_type_id, mandatory, regex,
		       required_error_message, invalid_error_message, prevalue_source_id, sort_order
		FROM form_fields
		WHERE form_id = ?
		ORDER BY sort_order ASC, alias ASC
	`

	rows, err := r.db.QueryContext(ctx, query, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to query form fields: %w", err)
	}
	defer rows.Close()

	var fields []*models.Field
	for rows.Next() {
		var field models.Field
		var sourceID uuid.NullUUID

		err := rows.Scan(
			&field.ID,
			&field.FormID,
			&field.Alias,
			&field.Caption,
			&field.FieldTypeID,
			&field.Mandatory,
			&field.RegEx,
			&field.RequiredErrorMessage,
			&field.InvalidErrorMessage,
			&sourceID,
			&field.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan form field: %w", err)
		}

		// Convert NULL source to nil
		if sourceID.Valid {
			field.PreValueSourceID = &sourceID.UUID
		}

		fields = append(fields, &field)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating form fields: %w", err)
	}

	for _, field := range fields {
		preValues, err := r.getPreValues(ctx, field.ID)
		if err != nil {
			return nil, err
		}
		field.PreValues = preValues
	}

	return fields, nil
}

// getPreValues loads the static pre-values of a field
func (r *formRepository) getPreValues(ctx context.Context, fieldID uuid.UUID) ([]models.PreValue, error) {
	query := `
		SELECT value, caption, sort_order
		FROM field_prevalues
		WHERE field_id = ?
		ORDER BY sort_order ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, fieldID)
	if err != nil {
		return nil, fmt.Errorf("failed to query field prevalues: %w", err)
	}
	defer rows.Close()

	var preValues []models.PreValue
	for rows.Next() {
		var pv models.PreValue
		if err := rows.Scan(&pv.Value, &pv.Caption, &pv.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan field prevalue: %w", err)
		}
		preValues = append(preValues, pv)
	}

	return preValues, rows.Err()
}

// Create stores a form with its fields and static pre-values
func (r *formRepository) Create(ctx context.Context, form *models.Form) error {
	if form.ID == uuid.Nil {
		form.ID = uuid.New()
	}
	if form.Created.IsZero() {
		form.Created = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO forms (id, name, store_records_locally, created) VALUES (?, ?, ?, ?)`,
		form.ID, form.Name, form.StoreRecordsLocally, form.Created,
	)
	if err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}

	for i, field := range form.Fields {
		if field.ID == uuid.Nil {
			field.ID = uuid.New()
		}
		field.FormID = form.ID

		var sourceID uuid.NullUUID
		if field.HasPreValueSource() {
			sourceID = uuid.NullUUID{UUID: *field.PreValueSourceID, Valid: true}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO form_fields (id, form_id, alias, caption, field_type_id, mandatory, regex,
			                         required_error_message, invalid_error_message, prevalue_source_id, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			field.ID,
			field.FormID,
			field.Alias,
			field.Caption,
			field.FieldTypeID,
			field.Mandatory,
			field.RegEx,
			field.RequiredErrorMessage,
			field.InvalidErrorMessage,
			sourceID,
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to create form field %s: %w", field.Alias, err)
		}
		field.SortOrder = i

		for j, pv := range field.PreValues {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO field_prevalues (field_id, value, caption, sort_order) VALUES (?, ?, ?, ?)`,
				field.ID, pv.Value, pv.Caption, j,
			)
			if err != nil {
				return fmt.Errorf("failed to create prevalue for field %s: %w", field.Alias, err)
			}
		}
	}

	return tx.Commit()
}
