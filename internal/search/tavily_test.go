package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTavilySearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Bearer tvly-test", r.Header.Get("Authorization"))

		var body tavilyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "goroutines basics", body.Query)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"title":"Go by Example","url":"https://gobyexample.com/goroutines","content":"...","score":0.82},
			{"title":"Blog","url":"https://example.com","content":"...","score":0.31}
		]}`))
	}))
	defer srv.Close()

	c := NewTavilyClient("tvly-test", srv.URL)
	results, err := c.Search(context.Background(), "goroutines basics")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Go by Example", results[0].Title)
	assert.InDelta(t, 0.82, results[0].Score, 1e-9)
}

func TestTavilyErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewTavilyClient("k", srv.URL).Search(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")

	_, err = NewTavilyClient("", srv.URL).Search(context.Background(), "q")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
