package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpkuehn/S3.Forms/database"
	"github.com/jpkuehn/S3.Forms/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := filepath.Join(t.TempDir(), "test_"+time.Now().Format("20060102150405")+".db")

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() {
		database.CloseDB()
	})

	return database.GetDB()
}

func createTestForm(t *testing.T, repo FormRepository, storeLocally bool) *models.Form {
	form := &models.Form{
		Name:                "Contact",
		StoreRecordsLocally: storeLocally,
		Fields: []*models.Field{
			{Alias: "name", Caption: "Name", FieldTypeID: "textfield", Mandatory: true},
			{Alias: "topic", Caption: "Topic", FieldTypeID: "dropdownlist", PreValues: []models.PreValue{
				{Value: "sales", Caption: "Sales"},
				{Value: "support", Caption: "Support"},
			}},
		},
	}
	require.NoError(t, repo.Create(context.Background(), form))
	return form
}

func TestFormRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFormRepository(db)
	ctx := context.Background()

	form := createTestForm(t, repo, false)
	assert.NotEqual(t, uuid.Nil, form.ID)

	retrieved, err := repo.GetByID(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, "Contact", retrieved.Name)
	assert.False(t, retrieved.StoreRecordsLocally)
	require.Len(t, retrieved.Fields, 2)
	assert.Equal(t, "name", retrieved.Fields[0].Alias)
	assert.True(t, retrieved.Fields[0].Mandatory)
	assert.Nil(t, retrieved.Fields[0].PreValueSourceID)
	assert.Equal(t, []models.PreValue{
		{Value: "sales", Caption: "Sales", SortOrder: 0},
		{Value: "support", Caption: "Support", SortOrder: 1},
	}, retrieved.Fields[1].PreValues)

	forms, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, forms, 1)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkflowRepository(t *testing.T) {
	db := setupTestDB(t)
	form := createTestForm(t, NewFormRepository(db), false)
	repo := NewWorkflowRepository(db)
	ctx := context.Background()

	typeID := uuid.New()
	require.NoError(t, repo.Create(ctx, &models.Workflow{
		Name: "Second", FormID: form.ID, WorkflowTypeID: typeID, Active: true, SortOrder: 2,
		Settings: map[string]string{"Subject": "Hello"},
	}))
	require.NoError(t, repo.Create(ctx, &models.Workflow{
		Name: "First", FormID: form.ID, WorkflowTypeID: typeID, Active: true, SortOrder: 1,
	}))
	require.NoError(t, repo.Create(ctx, &models.Workflow{
		Name: "Inactive", FormID: form.ID, WorkflowTypeID: typeID, Active: false,
	}))
	require.NoError(t, repo.Create(ctx, &models.Workflow{
		Name: "On approve", FormID: form.ID, WorkflowTypeID: typeID, Active: true,
		ExecutesOn: models.ExecutionStageApproved,
	}))

	all, err := repo.GetByForm(ctx, form.ID)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	active, err := repo.GetActiveByFormAndStage(ctx, form.ID, models.ExecutionStageSubmitted)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "First", active[0].Name)
	assert.Equal(t, "Second", active[1].Name)
	assert.Equal(t, "Hello", active[1].Settings["Subject"])
	assert.Equal(t, typeID, active[1].WorkflowTypeID)
}

func TestRecordRepository(t *testing.T) {
	db := setupTestDB(t)
	form := createTestForm(t, NewFormRepository(db), false)
	repo := NewRecordRepository(db)
	ctx := context.Background()

	record := models.NewRecord(form.ID)
	record.IP = "10.0.0.1"
	record.Culture = "en-US"
	record.PageID = 1050
	record.RecordFields[form.Fields[0].ID] = models.NewRecordField(form.Fields[0], []string{"Jane"})
	record.RecordFields[form.Fields[1].ID] = models.NewRecordField(form.Fields[1], nil)

	require.NoError(t, repo.Insert(ctx, record, form))
	assert.NotZero(t, record.ID)
	assert.NotEmpty(t, record.RecordData)

	retrieved, err := repo.GetByUniqueID(ctx, record.UniqueID)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", retrieved.IP)
	assert.Equal(t, 1050, retrieved.PageID)
	assert.Equal(t, models.RecordStateSubmitted, retrieved.State)
	require.Len(t, retrieved.RecordFields, 2)
	assert.Equal(t, []string{"Jane"}, retrieved.RecordFields[form.Fields[0].ID].Values)
	assert.Empty(t, retrieved.RecordFields[form.Fields[1].ID].Values)

	records, err := repo.GetByForm(ctx, form.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = repo.GetByUniqueID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	recordID := uuid.New()
	audit := &models.RecordWorkflowAudit{
		RecordUniqueID:   recordID,
		WorkflowKey:      uuid.New(),
		WorkflowName:     "Send secure email",
		WorkflowTypeID:   uuid.New(),
		WorkflowTypeName: "Secure Email",
		ExecutedOn:       time.Now(),
		ExecutionStage:   models.ExecutionStageSubmitted,
		ExecutionStatus:  models.ExecutionStatusCompleted,
	}

	scope, err := database.NewScopeProvider(db).CreateScope(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(ctx, scope, audit))
	require.NoError(t, scope.Complete())
	assert.NotZero(t, audit.ID)

	audits, err := repo.GetByRecord(ctx, recordID)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, "Secure Email", audits[0].WorkflowTypeName)
	assert.Equal(t, models.ExecutionStatusCompleted, audits[0].ExecutionStatus)
	assert.Equal(t, models.ExecutionStageSubmitted, audits[0].ExecutionStage)
}

func TestPreValueSourceRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPreValueSourceRepository(db)
	ctx := context.Background()

	source := &models.PreValueSource{Name: "Countries", Type: "static", Settings: map[string]string{"Values": "nl|Netherlands"}}
	require.NoError(t, repo.Create(ctx, source))

	retrieved, err := repo.GetByID(ctx, source.ID)
	require.NoError(t, err)
	assert.Equal(t, "static", retrieved.Type)
	assert.Equal(t, "nl|Netherlands", retrieved.Settings["Values"])
}
