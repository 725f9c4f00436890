package tempdata

import (
	"context"
	"net/http"
	"sync"

	"gitea.com/go-chi/session"
)

// Keys staged for views rendered after a submission
const (
	TrackingRecordIDKey = "TrackingRecordId"
	TrackingRecordIPKey = "TrackingRecordIp"
	FormErrorFieldsKey  = "FormErrorFields"
	AriaInvalidKey      = "FormsAriaInvalid"
	FocusFirstErrorKey  = "FormsFocusFirstError"
)

// Store is transient per-request key/value state.
// session.Store from gitea.com/go-chi/session satisfies it.
type Store interface {
	Set(key, value interface{}) error
	Get(key interface{}) interface{}
	Delete(key interface{}) error
}

// Provider resolves the temp data store of the current request
type Provider interface {
	TempData(ctx context.Context) (Store, bool)
}

type contextKey string

const storeKey contextKey = "temp_data"

// WithStore adds a temp data store to the context
func WithStore(ctx context.Context, store Store) context.Context {
	return context.WithValue(ctx, storeKey, store)
}

// FromContext retrieves the temp data store from the context
func FromContext(ctx context.Context) (Store, bool) {
	store, ok := ctx.Value(storeKey).(Store)
	return store, ok && store != nil
}

type contextProvider struct{}

// NewContextProvider returns a provider that reads the store placed by Middleware or WithStore
func NewContextProvider() Provider {
	return contextProvider{}
}

func (contextProvider) TempData(ctx context.Context) (Store, bool) {
	return FromContext(ctx)
}

// Middleware exposes the request session as the temp data store.
// It must run after session.Sessioner.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess := session.GetSession(r); sess != nil {
			r = r.WithContext(WithStore(r.Context(), sess))
		}
		next.ServeHTTP(w, r)
	})
}

// MapStore is an in-memory Store for work running outside an HTTP session
type MapStore struct {
	mu     sync.RWMutex
	values map[interface{}]interface{}
}

// NewMapStore creates an empty in-memory store
func NewMapStore() *MapStore {
	return &MapStore{values: make(map[interface{}]interface{})}
}

func (m *MapStore) Set(key, value interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MapStore) Get(key interface{}) interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key]
}

func (m *MapStore) Delete(key interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Has reports whether a key is present
func (m *MapStore) Has(key interface{}) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.values[key]
	return ok
}
