package fieldtypes

import (
	"embed"
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

//go:embed fieldTypes.json
var fieldTypesFS embed.FS

// FieldType describes the capabilities of a field type
type FieldType struct {
	ID                  string `json:"-"`
	Name                string `json:"name"`
	SupportsUploadTypes bool   `json:"supportsUploadTypes"`
	SupportsPreValues   bool   `json:"supportsPreValues"`
	SupportsRegex       bool   `json:"supportsRegex"`
	IsSensitive         bool   `json:"isSensitive,omitempty"`
	StoresData          *bool  `json:"storesData,omitempty"`
}

// HasData reports whether submitted values of this type are stored
func (f FieldType) HasData() bool {
	return f.StoresData == nil || *f.StoresData
}

// Registry holds field type definitions
type Registry struct {
	types map[string]FieldType
	mu    sync.RWMutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// GetRegistry returns the singleton field types registry
func GetRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = &Registry{
			types: make(map[string]FieldType),
		}
		if err := defaultRegistry.loadFromEmbedded(); err != nil {
			panic("fieldtypes: invalid embedded definitions: " + err.Error())
		}
	})
	return defaultRegistry
}

// loadFromEmbedded loads field types from the embedded JSON file
func (r *Registry) loadFromEmbedded() error {
	data, err := fieldTypesFS.ReadFile("fieldTypes.json")
	if err != nil {
		return err
	}

	var types map[string]FieldType
	if err := json.Unmarshal(data, &types); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, def := range types {
		def.ID = id
		r.types[id] = def
	}
	return nil
}

// Register adds or replaces a field type
func (r *Registry) Register(def FieldType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[strings.ToLower(def.ID)] = def
}

// Get returns a field type definition by ID (case-insensitive)
func (r *Registry) Get(id string) (FieldType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.types[strings.ToLower(id)]
	return def, ok
}

// Name returns the display name of a field type, or its ID when unknown
func (r *Registry) Name(id string) string {
	if def, ok := r.Get(id); ok {
		return def.Name
	}
	return id
}

// SupportsUploadTypes reports whether the field type accepts file uploads
func (r *Registry) SupportsUploadTypes(id string) bool {
	def, ok := r.Get(id)
	return ok && def.SupportsUploadTypes
}

// SupportsPreValues reports whether the field type offers selectable options
func (r *Registry) SupportsPreValues(id string) bool {
	def, ok := r.Get(id)
	return ok && def.SupportsPreValues
}

// IDs returns all registered field type IDs in sorted order
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
