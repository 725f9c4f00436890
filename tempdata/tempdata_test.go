package tempdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStore(t *testing.T) {
	store := NewMapStore()
	require.NoError(t, store.Set(TrackingRecordIDKey, "abc"))
	assert.True(t, store.Has(TrackingRecordIDKey))
	assert.Equal(t, "abc", store.Get(TrackingRecordIDKey))

	require.NoError(t, store.Delete(TrackingRecordIDKey))
	assert.False(t, store.Has(TrackingRecordIDKey))
	assert.Nil(t, store.Get(TrackingRecordIDKey))
}

func TestContextProvider(t *testing.T) {
	provider := NewContextProvider()

	_, ok := provider.TempData(context.Background())
	assert.False(t, ok)

	store := NewMapStore()
	got, ok := provider.TempData(WithStore(context.Background(), store))
	require.True(t, ok)
	assert.Same(t, store, got)
}

func TestMiddlewareExposesSession(t *testing.T) {
	sessionHandler, err := session.Sessioner(session.Options{Provider: "memory", CookieName: "test_session"})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(sessionHandler)
	r.Use(Middleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		store, ok := NewContextProvider().TempData(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		store.Set(FormErrorFieldsKey, "")
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
