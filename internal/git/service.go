package git

// Service is the slice of git this tool depends on. Repository inspection and
// remote management go through go-git; anything that rewrites history or
// talks to the network shells out to the git binary so that authenticated
// URLs behave exactly as they do for the user.
type Service interface {
	Installed() bool
	IsRepo() (bool, error)
	Init(branch string) error
	CurrentBranch() (string, error)
	StageAll() error
	// HasChangesToCommit reports whether the index differs from HEAD. A
	// repository without any commit yet counts as having changes.
	HasChangesToCommit() (bool, error)
	Commit(msg string) error
	// Pull fetches and merges branch from remote, tolerating unrelated
	// histories. remote may be a name or a full (authenticated) URL.
	Pull(remote, branch string) error
	// Push pushes branch to remote with -u. remote may be a name or URL.
	Push(remote, branch string) error
	Remotes() ([]string, error)
	AddRemote(name, url string) error
	SetRemoteURL(name, url string) error
	SetLocalConfig(key, value string) error
}
