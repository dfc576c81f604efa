package artwork

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecker_Valid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	c := NewChecker(nil)
	assert.True(t, c.Valid(context.Background(), server.URL))
}

func TestChecker_Valid_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewChecker(nil)
	assert.False(t, c.Valid(context.Background(), server.URL))
}

func TestChecker_Valid_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewChecker(nil)
	assert.False(t, c.Valid(context.Background(), server.URL))
}

func TestChecker_Valid_EmptyURL(t *testing.T) {
	c := NewChecker(nil)
	assert.False(t, c.Valid(context.Background(), ""))
}

func TestChecker_Valid_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewChecker(nil)
	assert.False(t, c.Valid(context.Background(), url))
}
