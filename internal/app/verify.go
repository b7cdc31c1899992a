package app

import (
	"encoding/json"

	"emperror.dev/errors"

	"github.com/soberlevi/notesync/internal/auth"
	"github.com/soberlevi/notesync/internal/config"
	"github.com/soberlevi/notesync/internal/githubutils"
	"github.com/soberlevi/notesync/internal/ui"
)

// newAPIClient builds the REST client. Reassignable for testing.
var newAPIClient = githubutils.NewClient

// VerifyToken checks the stored token against the GitHub API: identity and
// OAuth scopes via /user, then the user's permissions on the configured
// repository. Transport errors are reported and the next check still runs; a
// credential the API rejects is fatal.
func VerifyToken(resolver *auth.Resolver, cfg config.Config) error {
	token := resolver.BestEffortToken()
	if token == "" {
		return errors.WithMessagef(auth.ErrNoCredential,
			"no token found in %s or $%s", cfg.TokenFile, cfg.TokenEnvVar)
	}

	ui.Infof("Token found (length: %d)", len(token))
	ui.Infof("Type: %s", auth.Kind(token))

	client := newAPIClient(token)

	ui.Infof("\n--- Checking User Identity ---")
	user, scopes, err := client.CurrentUser()
	switch {
	case errors.Is(err, githubutils.ErrNetworkOrAPI):
		ui.Warnf("user identity check: %v", err)
	case err != nil:
		return errors.WithMessage(err, "authentication failed")
	default:
		if scopes.Granted != "" {
			ui.Infof("X-OAuth-Scopes: %s", scopes.Granted)
		}
		if scopes.Accepted != "" {
			ui.Infof("X-Accepted-OAuth-Scopes: %s", scopes.Accepted)
		}
		ui.Successf("Authenticated as: %s", user.Login)
	}

	ui.Infof("\n--- Checking Permissions for %s ---", cfg.FullRepo())
	repo, err := client.Repository(cfg.Owner, cfg.Repo)
	if err != nil {
		ui.Warnf("repository check: %v", err)
		return nil
	}
	if repo.Permissions == nil {
		ui.Infof("No permissions field in response for %s", repo.FullName)
		return nil
	}
	// The API reports the user's access, which may be broader than what the
	// token itself allows.
	pretty, err := json.MarshalIndent(repo.Permissions, "", "  ")
	if err != nil {
		return err
	}
	ui.Infof("API reported user permissions (may not match token): %s", string(pretty))
	return nil
}
