package credentials

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProvider(t *testing.T) {
	m := NewMemory()

	_, err := m.GetToken()
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	assert.ErrorIs(t, m.SetToken("  "), apperrors.ErrValidation)
	require.NoError(t, m.SetToken("tok-1"))
	tok, err := m.GetToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	require.NoError(t, m.Clear())
	_, err = m.GetToken()
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestFileProviderRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "nested", "token")

	f, err := NewFile(path, key)
	require.NoError(t, err)

	_, err = f.GetToken()
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated, "missing file means no token")

	require.NoError(t, f.SetToken("secret-bearer"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-bearer", "token is stored encrypted")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	tok, err := f.GetToken()
	require.NoError(t, err)
	assert.Equal(t, "secret-bearer", tok)

	require.NoError(t, f.Clear())
	require.NoError(t, f.Clear(), "clearing twice is fine")
	_, err = f.GetToken()
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestFileProviderWrongKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	key1, _ := GenerateKey()
	key2, _ := GenerateKey()

	f1, err := NewFile(path, key1)
	require.NoError(t, err)
	require.NoError(t, f1.SetToken("secret"))

	f2, err := NewFile(path, key2)
	require.NoError(t, err)
	_, err = f2.GetToken()
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestNewFileRejectsBadKey(t *testing.T) {
	_, err := NewFile("token", "not-hex")
	assert.Error(t, err)

	_, err = NewFile("token", strings.Repeat("ab", 16))
	assert.Error(t, err, "16 bytes is too short")
}
