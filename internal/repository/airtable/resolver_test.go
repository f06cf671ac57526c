package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverCachesLookups(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, `{Назва закладу} = "Джерельна"`, r.URL.Query().Get("filterByFormula"))
		json.NewEncoder(w).Encode(recordsPage{Records: []Record{{ID: "recDzh"}}})
	}))
	defer srv.Close()

	c := NewClient("key", "base")
	c.BaseURL = srv.URL
	res := NewResolver(c)

	for i := 0; i < 3; i++ {
		id, err := res.OutletID(context.Background(), "Джерельна")
		require.NoError(t, err)
		assert.Equal(t, "recDzh", string(id))
	}
	assert.Equal(t, 1, calls)

	// после сброса кэша идём в хранилище заново
	res.Invalidate()
	_, err := res.OutletID(context.Background(), "Джерельна")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestResolverNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(recordsPage{})
	}))
	defer srv.Close()

	c := NewClient("key", "base")
	c.BaseURL = srv.URL
	res := NewResolver(c)

	_, err := res.OutletID(context.Background(), "Невідомий")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolverEmployeeMissingProfileMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `{Telegram ID} = "42"`, r.URL.Query().Get("filterByFormula"))
		json.NewEncoder(w).Encode(recordsPage{})
	}))
	defer srv.Close()

	c := NewClient("key", "base")
	c.BaseURL = srv.URL
	res := NewResolver(c)

	_, err := res.EmployeeByTelegramID(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "твого профілю немає")
}
