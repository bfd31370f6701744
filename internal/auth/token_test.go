package auth_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rick-stevens-ai/Sophia-tools/internal/auth"
	"github.com/rick-stevens-ai/Sophia-tools/internal/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTokenFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "access_token")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestFileProvider_ReadsTrimmedToken(t *testing.T) {
	path := writeTokenFile(t, "  tok-abc123\n")

	token, err := auth.FileProvider{Path: path}.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc123", token)
}

func TestFileProvider_MissingFile(t *testing.T) {
	_, err := auth.FileProvider{Path: filepath.Join(t.TempDir(), "nope")}.Token()
	require.Error(t, err)
}

func TestFileProvider_EmptyFile(t *testing.T) {
	path := writeTokenFile(t, "   \n")

	_, err := auth.FileProvider{Path: path}.Token()
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrNoToken))
}

func TestEnvProvider(t *testing.T) {
	t.Setenv("ALCF_ACCESS_TOKEN", "tok-env")

	token, err := auth.EnvProvider{Key: "ALCF_ACCESS_TOKEN"}.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-env", token)
}

func TestEnvProvider_Unset(t *testing.T) {
	t.Setenv("ALCF_ACCESS_TOKEN", "")

	_, err := auth.EnvProvider{Key: "ALCF_ACCESS_TOKEN"}.Token()
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrNoToken))
}

func TestChain_FallsBackToEnv(t *testing.T) {
	t.Setenv("ALCF_ACCESS_TOKEN", "tok-fallback")

	chain := auth.NewChain(console.Nop(),
		auth.FileProvider{Path: filepath.Join(t.TempDir(), "missing")},
		auth.EnvProvider{Key: "ALCF_ACCESS_TOKEN"},
	)

	token, err := chain.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-fallback", token)
}

func TestChain_PrefersFile(t *testing.T) {
	t.Setenv("ALCF_ACCESS_TOKEN", "tok-env")
	path := writeTokenFile(t, "tok-file")

	chain := auth.NewChain(console.Nop(),
		auth.FileProvider{Path: path},
		auth.EnvProvider{Key: "ALCF_ACCESS_TOKEN"},
	)

	token, err := chain.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-file", token)
}

func TestChain_Exhausted(t *testing.T) {
	t.Setenv("ALCF_ACCESS_TOKEN", "")

	chain := auth.NewChain(console.Nop(),
		auth.FileProvider{Path: ""},
		auth.EnvProvider{Key: "ALCF_ACCESS_TOKEN"},
	)

	_, err := chain.Token()
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrNoToken))
}
