package workflows

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jpkuehn/S3.Forms/models"
)

// stubWorkflow is a configurable workflow for executor and registry tests
type stubWorkflow struct {
	id       uuid.UUID
	name     string
	errs     models.ValidationErrors
	status   models.ExecutionStatus
	executed []*ExecutionContext
}

func (w *stubWorkflow) Type() models.WorkflowType {
	return models.WorkflowType{ID: w.id, Name: w.name}
}

func (w *stubWorkflow) ValidateSettings(_ *models.Workflow) models.ValidationErrors {
	return w.errs
}

func (w *stubWorkflow) Execute(_ context.Context, ec *ExecutionContext) models.ExecutionStatus {
	w.executed = append(w.executed, ec)
	return w.status
}

func TestRegistry(t *testing.T) {
	first := &stubWorkflow{id: uuid.New(), name: "Zeta"}
	second := &stubWorkflow{id: uuid.New(), name: "Alpha"}
	registry := NewRegistry(first, second)

	w, ok := registry.Get(first.id)
	assert.True(t, ok)
	assert.Same(t, first, w)

	_, ok = registry.Get(uuid.New())
	assert.False(t, ok)

	wfType, ok := registry.WorkflowType(second.id)
	assert.True(t, ok)
	assert.Equal(t, "Alpha", wfType.Name)

	types := registry.Types()
	assert.Len(t, types, 2)
	assert.Equal(t, "Alpha", types[0].Name)
	assert.Equal(t, "Zeta", types[1].Name)

	// Registering the same type ID replaces the workflow
	replacement := &stubWorkflow{id: first.id, name: "Zeta v2"}
	registry.Register(replacement)
	w, _ = registry.Get(first.id)
	assert.Same(t, replacement, w)
	assert.Len(t, registry.Types(), 2)
}
