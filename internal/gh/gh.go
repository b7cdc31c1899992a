package gh

// Client is the slice of the GitHub CLI this tool depends on.
type Client interface {
	// Installed reports whether the gh binary is on PATH.
	Installed() bool
	// AuthStatus reports whether gh has an active authenticated session.
	AuthStatus() bool
	// LoginWithToken establishes a gh session, feeding the secret on stdin.
	LoginWithToken(token string) error
	// RepoExists reports whether owner/repo is visible to the current session.
	RepoExists(owner, repo string) bool
	// CreateRepo creates owner/repo from the current directory, wiring it up
	// as the origin remote.
	CreateRepo(owner, repo string, private bool) error
}
