package auth

import (
	"os"
	"strings"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"

	"github.com/soberlevi/notesync/internal/gh"
)

// Source identifies where a credential came from.
type Source string

const (
	SourceTokenFile  Source = "token_file"
	SourceEnvVar     Source = "environment_variable"
	SourceCLISession Source = "cli_session"
	SourceNone       Source = "none"
)

// Credential is an opaque secret plus its origin. Value is empty when the
// source is cli_session or none.
type Credential struct {
	Source Source
	Value  string
}

// Outcome is the result of credential resolution.
type Outcome struct {
	Authenticated bool
	Credential    Credential
}

const (
	// ErrNoCredential means none of the credential sources produced a secret.
	ErrNoCredential = errors.Sentinel("no GitHub credential found")
	// ErrLoginFailed means a stored secret was rejected by gh auth login.
	ErrLoginFailed = errors.Sentinel("gh login failed")
	// ErrCredentialUnreadable means a source exists but could not be read.
	// Treated as "source absent" during resolution.
	ErrCredentialUnreadable = errors.Sentinel("credential source unreadable")
)

// Resolver decides which credential, if any, should back GitHub operations.
// Sources are checked in priority order: an existing gh CLI session, then the
// token file, then the environment variable. Each source is attempted exactly
// once per call.
type Resolver struct {
	hub       gh.Client
	tokenFile string
	envVar    string
}

func NewResolver(hub gh.Client, tokenFile, envVar string) *Resolver {
	return &Resolver{hub: hub, tokenFile: tokenFile, envVar: envVar}
}

// Resolve returns the credential to use for subsequent operations. A secret
// read from the file or the environment is validated by logging in with it;
// a secret that fails login is fatal rather than a fall-through, since it
// signals an unusable stored credential the user has to fix.
func (r *Resolver) Resolve() (Outcome, error) {
	if r.hub.AuthStatus() {
		logrus.Debug("gh reports an active session")
		return Outcome{Authenticated: true, Credential: Credential{Source: SourceCLISession}}, nil
	}

	if tok := r.fileToken(); tok != "" {
		if err := r.hub.LoginWithToken(tok); err != nil {
			return Outcome{}, errors.WithMessagef(ErrLoginFailed,
				"token from %s (%s): %s", r.tokenFile, Redact(tok), Scrub(err.Error(), tok))
		}
		return Outcome{Authenticated: true, Credential: Credential{Source: SourceTokenFile, Value: tok}}, nil
	}

	if tok := strings.TrimSpace(os.Getenv(r.envVar)); tok != "" {
		if err := r.hub.LoginWithToken(tok); err != nil {
			return Outcome{}, errors.WithMessagef(ErrLoginFailed,
				"token from $%s (%s): %s", r.envVar, Redact(tok), Scrub(err.Error(), tok))
		}
		return Outcome{Authenticated: true, Credential: Credential{Source: SourceEnvVar, Value: tok}}, nil
	}

	return Outcome{Credential: Credential{Source: SourceNone}}, errors.WithMessagef(ErrNoCredential,
		"log in with 'gh auth login', create %s containing a personal access token, or export %s. "+
			"GitHub no longer accepts passwords for CLI access; generate a token at https://github.com/settings/tokens",
		r.tokenFile, r.envVar)
}

// BestEffortToken returns a raw secret for building an authenticated remote
// URL: the token file first, then the environment variable. It never attempts
// a login and ignores any gh session state. Empty when neither source is set.
func (r *Resolver) BestEffortToken() string {
	if tok := r.fileToken(); tok != "" {
		return tok
	}
	return strings.TrimSpace(os.Getenv(r.envVar))
}

// fileToken reads the first line of the token file. Read errors and empty
// files both count as "file absent".
func (r *Resolver) fileToken() string {
	b, err := os.ReadFile(r.tokenFile)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(errors.WithMessage(ErrCredentialUnreadable, err.Error())).
				WithField("path", r.tokenFile).Debug("skipping token file")
		}
		return ""
	}
	line, _, _ := strings.Cut(string(b), "\n")
	return strings.TrimSpace(line)
}
