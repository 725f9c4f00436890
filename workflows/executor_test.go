package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jpkuehn/S3.Forms/models"
	"github.com/jpkuehn/S3.Forms/repositories"
	"github.com/jpkuehn/S3.Forms/repositories/mocks"
)

// ExecutorTestSuite tests running the configured workflows of a form
type ExecutorTestSuite struct {
	suite.Suite
	workflowRepo *mocks.MockWorkflowRepository
	auditRepo    *mocks.MockAuditRepository
	valid        *stubWorkflow
	invalid      *stubWorkflow
	executor     *Executor
	form         *models.Form
	record       *models.Record
}

func (suite *ExecutorTestSuite) SetupTest() {
	suite.workflowRepo = mocks.NewMockWorkflowRepository(suite.T())
	suite.auditRepo = mocks.NewMockAuditRepository(suite.T())
	suite.valid = &stubWorkflow{id: uuid.New(), name: "Valid", status: models.ExecutionStatusCompleted}
	suite.invalid = &stubWorkflow{id: uuid.New(), name: "Invalid", errs: models.ValidationErrors{models.RequiredSetting("Email")}}
	suite.executor = NewExecutor(NewRegistry(suite.valid, suite.invalid), suite.workflowRepo, suite.auditRepo, zerolog.Nop())

	suite.form = &models.Form{ID: uuid.New(), Name: "Contact"}
	suite.record = models.NewRecord(suite.form.ID)
}

func (suite *ExecutorTestSuite) configured() []models.Workflow {
	return []models.Workflow{
		{ID: uuid.New(), Name: "First", WorkflowTypeID: suite.valid.id, Active: true},
		{ID: uuid.New(), Name: "Second", WorkflowTypeID: suite.invalid.id, Active: true},
		{ID: uuid.New(), Name: "Unknown", WorkflowTypeID: uuid.New(), Active: true},
	}
}

func (suite *ExecutorTestSuite) TestRunsValidWorkflows() {
	suite.workflowRepo.EXPECT().GetActiveByFormAndStage(mock.Anything, suite.form.ID, models.ExecutionStageSubmitted).Return(suite.configured(), nil)

	results, err := suite.executor.Execute(context.Background(), suite.record, suite.form, models.ExecutionStageSubmitted, nil)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), "First", results[0].WorkflowName)
	assert.Equal(suite.T(), models.ExecutionStatusCompleted, results[0].Status)
	assert.Equal(suite.T(), "Second", results[1].WorkflowName)
	assert.Equal(suite.T(), models.ExecutionStatusNotValid, results[1].Status)
	assert.Len(suite.T(), results[1].Errors, 1)

	require.Len(suite.T(), suite.valid.executed, 1)
	ec := suite.valid.executed[0]
	assert.Same(suite.T(), suite.record, ec.Record)
	assert.Equal(suite.T(), models.ExecutionStageSubmitted, ec.Stage)
	assert.NotNil(suite.T(), ec.Content)
	assert.Empty(suite.T(), suite.invalid.executed)

	// The form does not store records locally, so auditing is left to the workflows
	suite.auditRepo.AssertNotCalled(suite.T(), "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExecutorTestSuite) TestWritesAuditForLocallyStoredForms() {
	suite.form.StoreRecordsLocally = true
	suite.workflowRepo.EXPECT().GetActiveByFormAndStage(mock.Anything, suite.form.ID, models.ExecutionStageSubmitted).Return(suite.configured(), nil)

	var audits []*models.RecordWorkflowAudit
	suite.auditRepo.EXPECT().Insert(mock.Anything, nil, mock.Anything).
		RunAndReturn(func(_ context.Context, _ repositories.Execer, audit *models.RecordWorkflowAudit) error {
			audits = append(audits, audit)
			return nil
		}).Times(2)

	_, err := suite.executor.Execute(context.Background(), suite.record, suite.form, models.ExecutionStageSubmitted, nil)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), audits, 2)
	assert.Equal(suite.T(), "Valid", audits[0].WorkflowTypeName)
	assert.Equal(suite.T(), models.ExecutionStatusCompleted, audits[0].ExecutionStatus)
	assert.Equal(suite.T(), models.ExecutionStatusNotValid, audits[1].ExecutionStatus)
	assert.Equal(suite.T(), suite.record.UniqueID, audits[1].RecordUniqueID)
}

func (suite *ExecutorTestSuite) TestRepositoryError() {
	suite.workflowRepo.EXPECT().GetActiveByFormAndStage(mock.Anything, suite.form.ID, models.ExecutionStageApproved).Return(nil, errors.New("no such table"))

	_, err := suite.executor.Execute(context.Background(), suite.record, suite.form, models.ExecutionStageApproved, nil)

	assert.ErrorContains(suite.T(), err, "failed to load workflows")
}

func TestExecutorTestSuite(t *testing.T) {
	suite.Run(t, new(ExecutorTestSuite))
}
