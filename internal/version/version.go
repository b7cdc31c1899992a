// Package version resolves the version string reported by the binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
)

// Version is injected via ldflags on release builds.
var Version string

var (
	once     sync.Once
	resolved string
)

// buildInfoFunc is swapped out in tests.
var buildInfoFunc = debug.ReadBuildInfo

// Get returns the version string, resolving it on first use.
func Get() string {
	once.Do(func() {
		resolved = resolve()
	})
	return resolved
}

// resolve prefers the ldflags version, then the module version recorded by
// go install, then whatever VCS stamp the build carries.
func resolve() string {
	if Version != "" {
		return Version
	}

	info, ok := buildInfoFunc()
	if !ok {
		return "0.0.0-dev"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}

	var revision, stamp string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			stamp = s.Value
		}
	}
	// Shallow clones can report an abbreviated revision.
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" && stamp != "" {
		return fmt.Sprintf("dev-%s-%s", revision, stamp)
	}

	return "0.0.0-dev"
}
