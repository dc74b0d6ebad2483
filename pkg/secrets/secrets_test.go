package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superuser-passwd")
	require.NoError(t, os.WriteFile(path, []byte("s3cret\n"), 0o400))

	assert.Equal(t, "s3cret", NewFileProvider(path).Credential(), "trailing newline is trimmed")
}

func TestCredentialMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superuser-passwd")

	assert.Empty(t, NewFileProvider(path).Credential(), "missing secret means unauthenticated")
}

func TestCredentialEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "superuser-passwd")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o400))

	assert.Empty(t, NewFileProvider(path).Credential())
}
