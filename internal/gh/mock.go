package gh

// MockGh implements the Client interface for testing
type MockGh struct {
	// State
	IsInstalled bool
	Authed      bool
	LoginErr    error
	Repos       map[string]bool
	CreateErr   error

	// Call tracking for tests
	LoginTokens  []string
	CreatedRepos []string
	Calls        map[string]int
}

// NewMockGh creates a mock gh client with the binary present and no session
func NewMockGh() *MockGh {
	return &MockGh{
		IsInstalled: true,
		Repos:       make(map[string]bool),
		Calls:       make(map[string]int),
	}
}

func (m *MockGh) Installed() bool {
	m.Calls["Installed"]++
	return m.IsInstalled
}

func (m *MockGh) AuthStatus() bool {
	m.Calls["AuthStatus"]++
	return m.Authed
}

func (m *MockGh) LoginWithToken(token string) error {
	m.Calls["LoginWithToken"]++
	m.LoginTokens = append(m.LoginTokens, token)
	if m.LoginErr != nil {
		return m.LoginErr
	}
	m.Authed = true
	return nil
}

func (m *MockGh) RepoExists(owner, repo string) bool {
	m.Calls["RepoExists"]++
	return m.Repos[owner+"/"+repo]
}

func (m *MockGh) CreateRepo(owner, repo string, private bool) error {
	m.Calls["CreateRepo"]++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.CreatedRepos = append(m.CreatedRepos, owner+"/"+repo)
	m.Repos[owner+"/"+repo] = true
	return nil
}
