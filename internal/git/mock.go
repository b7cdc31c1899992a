package git

// MockGit implements the Service interface for testing
type MockGit struct {
	// State
	Repo       bool
	Branch     string
	RemoteURLs map[string]string
	Dirty      bool
	PullErr    error
	PushErr    error
	CommitErr  error

	// Call tracking for tests
	CommitMsgs  []string
	PullRemotes []string
	PushRemotes []string
	Calls       map[string]int
}

// NewMockGit creates a mock git service representing an existing clean repo
func NewMockGit() *MockGit {
	return &MockGit{
		Repo:       true,
		Branch:     "main",
		RemoteURLs: make(map[string]string),
		Calls:      make(map[string]int),
	}
}

func (m *MockGit) Installed() bool {
	m.Calls["Installed"]++
	return true
}

func (m *MockGit) IsRepo() (bool, error) {
	m.Calls["IsRepo"]++
	return m.Repo, nil
}

func (m *MockGit) Init(branch string) error {
	m.Calls["Init"]++
	m.Repo = true
	m.Branch = branch
	return nil
}

func (m *MockGit) CurrentBranch() (string, error) {
	m.Calls["CurrentBranch"]++
	return m.Branch, nil
}

func (m *MockGit) StageAll() error {
	m.Calls["StageAll"]++
	return nil
}

func (m *MockGit) HasChangesToCommit() (bool, error) {
	m.Calls["HasChangesToCommit"]++
	return m.Dirty, nil
}

func (m *MockGit) Commit(msg string) error {
	m.Calls["Commit"]++
	if m.CommitErr != nil {
		return m.CommitErr
	}
	m.CommitMsgs = append(m.CommitMsgs, msg)
	m.Dirty = false
	return nil
}

func (m *MockGit) Pull(remote, branch string) error {
	m.Calls["Pull"]++
	m.PullRemotes = append(m.PullRemotes, remote)
	return m.PullErr
}

func (m *MockGit) Push(remote, branch string) error {
	m.Calls["Push"]++
	m.PushRemotes = append(m.PushRemotes, remote)
	return m.PushErr
}

func (m *MockGit) Remotes() ([]string, error) {
	m.Calls["Remotes"]++
	names := make([]string, 0, len(m.RemoteURLs))
	for name := range m.RemoteURLs {
		names = append(names, name)
	}
	return names, nil
}

func (m *MockGit) AddRemote(name, url string) error {
	m.Calls["AddRemote"]++
	m.RemoteURLs[name] = url
	return nil
}

func (m *MockGit) SetRemoteURL(name, url string) error {
	m.Calls["SetRemoteURL"]++
	m.RemoteURLs[name] = url
	return nil
}

func (m *MockGit) SetLocalConfig(key, value string) error {
	m.Calls["SetLocalConfig"]++
	return nil
}
