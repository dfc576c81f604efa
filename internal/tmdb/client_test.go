package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetMovie(t *testing.T) {
	// Mock TMDB API
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/603", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))

		resp := Movie{
			ID:           603,
			Title:        "The Matrix",
			ReleaseDate:  "1999-03-30",
			PosterPath:   "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
			BackdropPath: "/l4QHerTSbMI7qgvasqxP36pqjN6.jpg",
			VoteAverage:  8.2,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	movie, err := client.GetMovie(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, int64(603), movie.ID)
	assert.Equal(t, "The Matrix", movie.Title)
	assert.Equal(t, 1999, movie.Year())
	assert.Equal(t, "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg", movie.PosterPath)
}

func TestClient_GetMovie_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	movie, err := client.GetMovie(context.Background(), 99999999)
	assert.Nil(t, movie)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_GetMovie_Cached(t *testing.T) {
	callCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		resp := Movie{ID: 603, Title: "The Matrix"}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithCacheTTL(time.Hour))

	// First call hits API
	_, err := client.GetMovie(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, 1, callCount)

	// Second call uses cache
	_, err = client.GetMovie(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, 1, callCount, "should use cache, not call API again")
}

func TestClient_SearchMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "de", r.URL.Query().Get("language"))
		assert.Equal(t, "The Matrix", r.URL.Query().Get("query"))

		resp := searchResponse{
			Page: 1,
			Results: []Movie{
				{ID: 603, Title: "The Matrix"},
				{ID: 604, Title: "The Matrix Reloaded"},
			},
			TotalResults: 2,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithLanguage("de"))

	results, err := client.SearchMovies(context.Background(), "The Matrix")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(603), results[0].ID)
}

func TestClient_SearchMovies_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(searchResponse{Page: 1})
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	results, err := client.SearchMovies(context.Background(), "zzz no such movie")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClient_DownloadImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg", r.URL.Path)
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	client := NewClient("test-key", WithImageBaseURL(server.URL))

	data, err := client.DownloadImage(context.Background(), "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestClient_DownloadImage_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-key", WithImageBaseURL(server.URL))

	_, err := client.DownloadImage(context.Background(), "/missing.jpg")
	assert.Error(t, err)
}
