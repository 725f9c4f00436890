package workflows

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/models"
)

// Registry manages the workflow types available to forms.
// Workflows are looked up by their type ID.
type Registry struct {
	mu        sync.RWMutex
	workflows map[uuid.UUID]Workflow
}

// NewRegistry creates a registry holding the given workflows
func NewRegistry(workflows ...Workflow) *Registry {
	r := &Registry{
		workflows: make(map[uuid.UUID]Workflow),
	}
	for _, w := range workflows {
		r.Register(w)
	}
	return r
}

// Register adds a workflow to the registry.
// A workflow with the same type ID is replaced.
func (r *Registry) Register(w Workflow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workflows[w.Type().ID] = w
}

// Get retrieves the workflow registered for a type ID
func (r *Registry) Get(typeID uuid.UUID) (Workflow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workflows[typeID]
	return w, ok
}

// WorkflowType retrieves the descriptor of a registered workflow type
func (r *Registry) WorkflowType(typeID uuid.UUID) (models.WorkflowType, bool) {
	w, ok := r.Get(typeID)
	if !ok {
		return models.WorkflowType{}, false
	}
	return w.Type(), true
}

// Types returns all registered workflow types ordered by name
func (r *Registry) Types() []models.WorkflowType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]models.WorkflowType, 0, len(r.workflows))
	for _, w := range r.workflows {
		types = append(types, w.Type())
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].Name < types[j].Name
	})
	return types
}
