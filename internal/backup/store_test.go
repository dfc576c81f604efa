package backup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/healarr/internal/artwork"
)

func TestStore_Path(t *testing.T) {
	s := NewStore("/backups")

	assert.Equal(t,
		filepath.Join("/backups", "Movies", "The Matrix", "poster.jpg"),
		s.Path("Movies", "The Matrix", artwork.SlotPoster))

	// Illegal characters are stripped from the title segment only.
	assert.Equal(t,
		filepath.Join("/backups", "Movies", "Alien Covenant", "background.jpg"),
		s.Path("Movies", "Alien: Covenant", artwork.SlotBackground))
}

func TestStore_SaveLoad(t *testing.T) {
	s := NewStore(t.TempDir())

	assert.False(t, s.Exists("Movies", "Alpha", artwork.SlotPoster))

	require.NoError(t, s.Save("Movies", "Alpha", artwork.SlotPoster, []byte("jpeg-bytes")))
	assert.True(t, s.Exists("Movies", "Alpha", artwork.SlotPoster))

	data, err := s.Load("Movies", "Alpha", artwork.SlotPoster)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	// Slots are independent records.
	assert.False(t, s.Exists("Movies", "Alpha", artwork.SlotBackground))
}

func TestStore_Save_Overwrites(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Save("Movies", "Alpha", artwork.SlotPoster, []byte("old")))
	require.NoError(t, s.Save("Movies", "Alpha", artwork.SlotPoster, []byte("new")))

	data, err := s.Load("Movies", "Alpha", artwork.SlotPoster)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestStore_Load_NotFound(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.Load("Movies", "Nope", artwork.SlotPoster)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Matrix", "The Matrix"},
		{"Alien: Covenant", "Alien Covenant"},
		{`What/If*?`, "WhatIf"},
		{`"Quoted" <Title> | Pipe`, "Quoted Title  Pipe"},
		{`Back\slash`, "Backslash"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeTitle(tt.in))
	}
}
