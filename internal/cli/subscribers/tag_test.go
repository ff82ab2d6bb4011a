package subscribers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendcast/sendcast-cli/internal/config"
)

// resetTagFlags clears the package-level flag state between runs.
func resetTagFlags() {
	tagFlags.DryRun = false
	tagFlags.Limit = 0
	tagFlags.Sample = 0
	tagFlags.Confirm = false
	tagTargets.Email = ""
	tagTargets.File = ""
	tagsToAdd = nil
	tagsToRemove = nil
}

// runTagCommand executes the tag subcommand against a stub API server.
func runTagCommand(t *testing.T, server *httptest.Server, args ...string) error {
	t.Helper()
	resetTagFlags()

	t.Setenv("SENDCAST_API_KEY", "sk_test")
	t.Setenv("SENDCAST_BASE_URL", server.URL)
	t.Setenv("SENDCAST_YES", "1")
	require.NoError(t, config.Init(""))

	Cmd.SetArgs(append([]string{"tag"}, args...))
	return Cmd.Execute()
}

func TestTagSingleEmail(t *testing.T) {
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := runTagCommand(t, server, "--email", "a@x.com", "--add", "vip", "--confirm")
	require.NoError(t, err)

	assert.Equal(t, []string{"POST /subscribers/a@x.com/tags"}, calls)
}

func TestTagFileOrdering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.txt")
	require.NoError(t, os.WriteFile(path, []byte("first@x.com\nsecond@x.com\n"), 0644))

	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := runTagCommand(t, server, "--file", path, "--add", "vip", "--remove", "old", "--confirm")
	require.NoError(t, err)

	// Per subscriber in input order: adds first, then removes.
	assert.Equal(t, []string{
		"POST /subscribers/first@x.com/tags",
		"DELETE /subscribers/first@x.com/tags/old",
		"POST /subscribers/second@x.com/tags",
		"DELETE /subscribers/second@x.com/tags/old",
	}, calls)
}

func TestTagDryRunTouchesNothing(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := runTagCommand(t, server, "--email", "a@x.com", "--add", "vip", "--dry-run")
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestTagRequiresAddOrRemove(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer server.Close()

	err := runTagCommand(t, server, "--email", "a@x.com", "--confirm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--add or --remove")
}
