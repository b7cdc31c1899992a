package auth_test

import (
	"os"
	"path/filepath"
	"testing"

	"emperror.dev/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soberlevi/notesync/internal/auth"
	"github.com/soberlevi/notesync/internal/gh"
)

const testEnvVar = "NOTESYNC_TEST_TOKEN"

func writeTokenFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "github_token.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestResolveExistingSession(t *testing.T) {
	hub := gh.NewMockGh()
	hub.Authed = true

	// Both other sources are available but must not be touched.
	path := writeTokenFile(t, "ghp_filetoken1234\n")
	t.Setenv(testEnvVar, "ghp_envtoken5678")

	r := auth.NewResolver(hub, path, testEnvVar)
	out, err := r.Resolve()
	require.NoError(t, err)

	assert.True(t, out.Authenticated)
	assert.Equal(t, auth.SourceCLISession, out.Credential.Source)
	assert.Empty(t, out.Credential.Value)
	assert.Zero(t, hub.Calls["LoginWithToken"])
}

func TestResolveTokenFile(t *testing.T) {
	hub := gh.NewMockGh()
	path := writeTokenFile(t, "  ghp_filetoken1234\n# ignored second line\n")
	t.Setenv(testEnvVar, "ghp_envtoken5678")

	r := auth.NewResolver(hub, path, testEnvVar)
	out, err := r.Resolve()
	require.NoError(t, err)

	assert.True(t, out.Authenticated)
	assert.Equal(t, auth.SourceTokenFile, out.Credential.Source)
	assert.Equal(t, "ghp_filetoken1234", out.Credential.Value)
	// Exactly one login, with the file's trimmed first line; env var never consulted.
	require.Len(t, hub.LoginTokens, 1)
	assert.Equal(t, "ghp_filetoken1234", hub.LoginTokens[0])
}

func TestResolveTokenFileLoginFailure(t *testing.T) {
	hub := gh.NewMockGh()
	hub.LoginErr = errors.New("bad credentials for ghp_filetoken1234")
	path := writeTokenFile(t, "ghp_filetoken1234\n")
	t.Setenv(testEnvVar, "ghp_envtoken5678")

	r := auth.NewResolver(hub, path, testEnvVar)
	out, err := r.Resolve()

	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrLoginFailed))
	assert.False(t, out.Authenticated)
	// Fatal, no fall-through to the environment variable.
	require.Len(t, hub.LoginTokens, 1)
	// The full token never appears in the diagnostic, only its suffix.
	assert.NotContains(t, err.Error(), "ghp_filetoken1234")
	assert.Contains(t, err.Error(), "...1234")
}

func TestResolveEnvVar(t *testing.T) {
	hub := gh.NewMockGh()
	path := filepath.Join(t.TempDir(), "absent.txt")
	t.Setenv(testEnvVar, "ghp_envtoken5678")

	r := auth.NewResolver(hub, path, testEnvVar)
	out, err := r.Resolve()
	require.NoError(t, err)

	assert.Equal(t, auth.SourceEnvVar, out.Credential.Source)
	assert.Equal(t, "ghp_envtoken5678", out.Credential.Value)
	require.Len(t, hub.LoginTokens, 1)
	assert.Equal(t, "ghp_envtoken5678", hub.LoginTokens[0])
}

func TestResolveEmptyFileFallsThroughToEnv(t *testing.T) {
	hub := gh.NewMockGh()
	path := writeTokenFile(t, "  \n\n")
	t.Setenv(testEnvVar, "ghp_envtoken5678")

	r := auth.NewResolver(hub, path, testEnvVar)
	out, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, auth.SourceEnvVar, out.Credential.Source)
}

func TestResolveNoCredential(t *testing.T) {
	hub := gh.NewMockGh()
	path := filepath.Join(t.TempDir(), "absent.txt")
	t.Setenv(testEnvVar, "")

	r := auth.NewResolver(hub, path, testEnvVar)
	out, err := r.Resolve()

	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrNoCredential))
	assert.False(t, out.Authenticated)
	assert.Equal(t, auth.SourceNone, out.Credential.Source)
	assert.Zero(t, hub.Calls["LoginWithToken"])
}

func TestBestEffortToken(t *testing.T) {
	t.Run("file_over_env", func(t *testing.T) {
		path := writeTokenFile(t, "ghp_filetoken1234\n")
		t.Setenv(testEnvVar, "ghp_envtoken5678")
		r := auth.NewResolver(gh.NewMockGh(), path, testEnvVar)
		assert.Equal(t, "ghp_filetoken1234", r.BestEffortToken())
	})

	t.Run("env_when_no_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.txt")
		t.Setenv(testEnvVar, "ghp_envtoken5678")
		r := auth.NewResolver(gh.NewMockGh(), path, testEnvVar)
		assert.Equal(t, "ghp_envtoken5678", r.BestEffortToken())
	})

	t.Run("empty_when_neither", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.txt")
		t.Setenv(testEnvVar, "")
		r := auth.NewResolver(gh.NewMockGh(), path, testEnvVar)
		assert.Empty(t, r.BestEffortToken())
	})

	t.Run("ignores_session_state", func(t *testing.T) {
		hub := gh.NewMockGh()
		hub.Authed = true
		path := writeTokenFile(t, "ghp_filetoken1234\n")
		r := auth.NewResolver(hub, path, testEnvVar)
		assert.Equal(t, "ghp_filetoken1234", r.BestEffortToken())
		assert.Zero(t, hub.Calls["LoginWithToken"])
	})
}

func TestResolveUnreadableFileFallsThrough(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	hub := gh.NewMockGh()
	path := writeTokenFile(t, "ghp_filetoken1234\n")
	require.NoError(t, os.Chmod(path, 0000))
	t.Setenv(testEnvVar, "ghp_envtoken5678")

	r := auth.NewResolver(hub, path, testEnvVar)
	out, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, auth.SourceEnvVar, out.Credential.Source)
}
