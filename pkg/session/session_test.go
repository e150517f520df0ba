package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAbsentFileReturnsZeroSession(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "session.json"))

	s, err := st.Load()
	require.NoError(t, err)
	assert.False(t, s.Active())
	assert.Empty(t, s.Username)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "nested", "session.json"))

	saved := &Session{
		LoggedIn:  "true",
		Username:  "admin",
		UserID:    "7",
		CompanyID: "2",
	}
	require.NoError(t, st.Save(saved))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.True(t, loaded.Active())
	assert.Equal(t, saved, loaded)
}

func TestClearRemovesSession(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, st.Save(&Session{LoggedIn: "true", Username: "admin"}))

	require.NoError(t, st.Clear())

	s, err := st.Load()
	require.NoError(t, err)
	assert.False(t, s.Active())
}

func TestClearAbsentSessionIsNoError(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "session.json"))
	assert.NoError(t, st.Clear())
}
