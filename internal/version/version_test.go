package version

import (
	"runtime/debug"
	"strings"
	"sync"
	"testing"
)

func resetState(t *testing.T) {
	t.Helper()
	origVersion := Version
	origFunc := buildInfoFunc
	t.Cleanup(func() {
		once = sync.Once{}
		resolved = ""
		Version = origVersion
		buildInfoFunc = origFunc
	})
	once = sync.Once{}
	resolved = ""
	Version = ""
}

func TestResolveLdflags(t *testing.T) {
	resetState(t)
	Version = "1.2.3"

	if got := resolve(); got != "1.2.3" {
		t.Errorf("resolve() = %v, want 1.2.3", got)
	}
}

func TestResolveModuleVersion(t *testing.T) {
	resetState(t)
	buildInfoFunc = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Path: "github.com/soberlevi/notesync", Version: "v0.3.0"},
		}, true
	}

	if got := resolve(); got != "0.3.0" {
		t.Errorf("resolve() = %v, want 0.3.0", got)
	}
}

func TestResolveVCS(t *testing.T) {
	resetState(t)
	buildInfoFunc = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Path: "github.com/soberlevi/notesync", Version: "(devel)"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abcdef1234567"},
				{Key: "vcs.time", Value: "2026-08-31T12:00:00Z"},
			},
		}, true
	}

	got := resolve()
	if !strings.HasPrefix(got, "dev-abcdef1-") {
		t.Errorf("resolve() = %v, want dev-abcdef1- prefix", got)
	}
}

func TestResolveShortRevision(t *testing.T) {
	resetState(t)
	buildInfoFunc = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Path: "github.com/soberlevi/notesync", Version: "(devel)"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.time", Value: "2026-08-31T12:00:00Z"},
			},
		}, true
	}

	if got := resolve(); got != "dev-abc-2026-08-31T12:00:00Z" {
		t.Errorf("resolve() = %v, want the abbreviated revision kept whole", got)
	}
}

func TestResolveFallback(t *testing.T) {
	resetState(t)
	buildInfoFunc = func() (*debug.BuildInfo, bool) { return nil, false }

	if got := resolve(); got != "0.0.0-dev" {
		t.Errorf("resolve() = %v, want 0.0.0-dev", got)
	}
}

func TestGetCaches(t *testing.T) {
	resetState(t)
	Version = "9.9.9"

	if v1, v2 := Get(), Get(); v1 != v2 || v1 != "9.9.9" {
		t.Errorf("Get() not cached: %q, %q", v1, v2)
	}
}
