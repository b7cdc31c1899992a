package githubutils

// User is the subset of GET /user this tool inspects.
type User struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

// Permissions is the per-user permission block GitHub attaches to repository
// responses. It reflects the user's access, which may be broader than what
// the token itself is scoped to.
type Permissions struct {
	Admin    bool `json:"admin"`
	Maintain bool `json:"maintain"`
	Push     bool `json:"push"`
	Triage   bool `json:"triage"`
	Pull     bool `json:"pull"`
}

// Repository is the subset of GET /repos/{owner}/{repo} this tool inspects.
type Repository struct {
	FullName    string       `json:"full_name"`
	Private     bool         `json:"private"`
	Permissions *Permissions `json:"permissions"`
}

// Scopes holds the OAuth scope headers GitHub attaches to responses for
// classic tokens. Fine-grained tokens leave both empty.
type Scopes struct {
	Granted  string // X-OAuth-Scopes
	Accepted string // X-Accepted-OAuth-Scopes
}

// apiError is the error body GitHub returns on failed requests.
type apiError struct {
	Message string `json:"message"`
}
