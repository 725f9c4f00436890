package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/models"
)

// RecordRepository interface defines record storage operations
type RecordRepository interface {
	Insert(ctx context.Context, record *models.Record, form *models.Form) error
	GetByUniqueID(ctx context.Context, uniqueID uuid.UUID) (*models.Record, error)
	GetByForm(ctx context.Context, formID uuid.UUID) ([]models.Record, error)
}

// recordRepository implements RecordRepository interface
type recordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *sql.DB) RecordRepository {
	return &recordRepository{db: db}
}

// Insert stores a record and its fields in one transaction
func (r *recordRepository) Insert(ctx context.Context, record *models.Record, form *models.Form) error {
	if form != nil && record.FormID == uuid.Nil {
		record.FormID = form.ID
	}
	if record.UniqueID == uuid.Nil {
		record.UniqueID = uuid.New()
	}
	if record.Created.IsZero() {
		record.Created = time.Now()
	}
	if record.Updated.IsZero() {
		record.Updated = record.Created
	}
	if record.State == "" {
		record.State = models.RecordStateSubmitted
	}

	data, err := record.GenerateRecordDataAsJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize record data: %w", err)
	}
	record.RecordData = data

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO records (unique_id, form_id, created, updated, ip, culture, page_id, member_key, state, record_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.UniqueID,
		record.FormID,
		record.Created,
		record.Updated,
		record.IP,
		record.Culture,
		record.PageID,
		record.MemberKey,
		string(record.State),
		record.RecordData,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	for _, field := range record.SortedFields() {
		if field.Key == uuid.Nil {
			field.Key = uuid.New()
		}

		values, err := json.Marshal(field.Values)
		if err != nil {
			return fmt.Errorf("failed to serialize values of field %s: %w", field.Alias, err)
		}
		if field.Values == nil {
			values = []byte("[]")
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO record_fields (key, record_id, field_id, alias, caption, field_type_id, field_values)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			field.Key,
			id,
			field.FieldID,
			field.Alias,
			field.Caption,
			field.FieldTypeID,
			string(values),
		)
		if err != nil {
			return fmt.Errorf("failed to insert record field %s: %w", field.Alias, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit record: %w", err)
	}

	record.ID = id
	return nil
}

// GetByUniqueID retrieves a record with its fields
func (r *recordRepository) GetByUniqueID(ctx context.Context, uniqueID uuid.UUID) (*models.Record, error) {
	query := `
		SELECT id, unique_id, form_id, created, updated, ip, culture, page_id, member_key, state, record_data
		FROM records
		WHERE unique_id = ?
	`

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, uniqueID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("record %s: %w", uniqueID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	if err := r.loadFields(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetByForm retrieves all records of a form, newest first
func (r *recordRepository) GetByForm(ctx context.Context, formID uuid.UUID) ([]models.Record, error) {
	query := `
		SELECT id, unique_id, form_id, created, updated, ip, culture, page_id, member_key, state, record_data
		FROM records
		WHERE form_id = ?
		ORDER BY created DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, *record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	for i := range records {
		if err := r.loadFields(ctx, &records[i]); err != nil {
			return nil, err
		}
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*models.Record, error) {
	var record models.Record
	var state string

	err := row.Scan(
		&record.ID,
		&record.UniqueID,
		&record.FormID,
		&record.Created,
		&record.Updated,
		&record.IP,
		&record.Culture,
		&record.PageID,
		&record.MemberKey,
		&state,
		&record.RecordData,
	)
	if err != nil {
		return nil, err
	}

	record.State = models.RecordState(state)
	record.RecordFields = make(map[uuid.UUID]*models.RecordField)
	return &record, nil
}

func (r *recordRepository) loadFields(ctx context.Context, record *models.Record) error {
	query := `
		SELECT key, field_id, alias, caption, field_type_id, field_values
		FROM record_fields
		WHERE record_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, record.ID)
	if err != nil {
		return fmt.Errorf("failed to query record fields: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var field models.RecordField
		var values string

		if err := rows.Scan(&field.Key, &field.FieldID, &field.Alias, &field.Caption, &field.FieldTypeID, &values); err != nil {
			return fmt.Errorf("failed to scan record field: %w", err)
		}
		if err := json.Unmarshal([]byte(values), &field.Values); err != nil {
			return fmt.Errorf("failed to decode values of field %s: %w", field.Alias, err)
		}

		record.RecordFields[field.FieldID] = &field
	}

	return rows.Err()
}
