package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/crazywolf132/fstr"

	"github.com/soberlevi/notesync/internal/auth"
	"github.com/soberlevi/notesync/internal/config"
	"github.com/soberlevi/notesync/internal/gh"
	"github.com/soberlevi/notesync/internal/git"
	"github.com/soberlevi/notesync/internal/ui"
)

// ErrToolMissing means a required external binary is not on PATH.
const ErrToolMissing = errors.Sentinel("required tool missing")

// ConfirmRepoCreate asks before creating a repository on GitHub. Unattended
// runs have nobody to ask, and they expect the repo to appear, so without a
// terminal the answer is yes. Reassignable for testing.
var ConfirmRepoCreate = func(message string) bool {
	if !ui.IsInteractive() {
		return true
	}
	return ui.Confirm(message)
}

// UploadOptions are the per-invocation knobs of the upload flow.
type UploadOptions struct {
	// Content, when non-empty, is written to a timestamped note file before
	// uploading.
	Content string
	// AssumeYes skips the repo-creation confirmation.
	AssumeYes bool
	// Public creates the repository public instead of private.
	Public bool
}

// UploadResult reports what the flow did.
type UploadResult struct {
	NoteFile string
	Pushed   bool
	URL      string
}

// Upload commits and pushes the current directory to the configured GitHub
// repository, bootstrapping authentication first. It mirrors what a careful
// user would do by hand: log in, make sure the repo and remote exist, pull,
// stage, commit, push.
func Upload(g git.Service, hub gh.Client, resolver *auth.Resolver, cfg config.Config, opts UploadOptions) (*UploadResult, error) {
	res := &UploadResult{}

	if opts.Content != "" {
		name := fstr.F("meeting_summary_{}.md", time.Now().Format("20060102_150405"))
		if err := os.WriteFile(name, []byte(opts.Content), 0644); err != nil {
			return nil, errors.WithMessage(err, "writing note file")
		}
		ui.Successf("Created meeting note: %s", name)
		res.NoteFile = name
	}

	if !hub.Installed() {
		return nil, errors.WithMessage(ErrToolMissing, "gh is not installed; see https://cli.github.com")
	}
	if !g.Installed() {
		return nil, errors.WithMessage(ErrToolMissing, "git is not installed")
	}

	ui.Infof("Checking GitHub authentication status...")
	outcome, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}
	switch outcome.Credential.Source {
	case auth.SourceCLISession:
		ui.Successf("Already logged in to GitHub CLI")
	case auth.SourceTokenFile:
		ui.Successf("Logged in with token from %s", cfg.TokenFile)
	case auth.SourceEnvVar:
		ui.Successf("Logged in with token from $%s", cfg.TokenEnvVar)
	}

	// A raw token lets git push over HTTPS without a credential helper,
	// independent of the gh session.
	token := resolver.BestEffortToken()
	remote := "origin"
	if token != "" {
		remote = fstr.F("https://{}:{}@github.com/{}.git", cfg.Owner, token, cfg.FullRepo())
		ui.Infof("Using authenticated URL with token ending in %s", auth.Redact(token))
	} else {
		ui.Warnf("could not retrieve a raw token; git may prompt for credentials")
	}

	isRepo, err := g.IsRepo()
	if err != nil {
		return nil, err
	}
	if !isRepo {
		ui.Infof("Initializing git repository...")
		if err := g.Init(cfg.Branch); err != nil {
			return nil, err
		}
	}

	if hub.RepoExists(cfg.Owner, cfg.Repo) {
		if err := ensureOriginRemote(g, cfg.RemoteURL()); err != nil {
			return nil, err
		}
	} else {
		ui.Infof("Repository %s does not exist on GitHub", cfg.FullRepo())
		if !opts.AssumeYes && !ConfirmRepoCreate(fstr.F("Create {}?", cfg.FullRepo())) {
			return nil, errors.Errorf("aborted: repository %s was not created", cfg.FullRepo())
		}
		private := cfg.Private && !opts.Public
		if err := hub.CreateRepo(cfg.Owner, cfg.Repo, private); err != nil {
			return nil, errors.WithMessage(err, "creating repository")
		}
		ui.Successf("Created repository %s", cfg.FullRepo())
	}

	// Force the token-in-URL transport instead of whatever helper is
	// configured. Failure here is harmless.
	_ = g.SetLocalConfig("credential.helper", "")

	sp := ui.NewSpinner()
	sp.Start(fstr.F("Pulling {} from {}", cfg.Branch, cfg.FullRepo()))
	if err := g.Pull(remote, cfg.Branch); err != nil {
		sp.Stop()
		ui.Warnf("pull: %s", auth.Scrub(err.Error(), token))
	} else {
		sp.StopSuccess()
	}

	if err := ensureIgnored(cfg.TokenFile); err != nil {
		return nil, err
	}

	if err := g.StageAll(); err != nil {
		return nil, err
	}
	changed, err := g.HasChangesToCommit()
	if err != nil {
		return nil, err
	}
	if !changed {
		ui.Infof("No changes to commit.")
		return res, nil
	}

	msg := fstr.F("Update meeting content: {}", time.Now().Format("2006-01-02 15:04:05"))
	if err := g.Commit(msg); err != nil {
		return nil, errors.WithMessage(err, "committing changes")
	}

	sp = ui.NewSpinner()
	sp.Start(fstr.F("Pushing {} to GitHub", cfg.Branch))
	if err := g.Push(remote, cfg.Branch); err != nil {
		sp.StopFail()
		return nil, errors.Errorf("pushing to GitHub: %s", auth.Scrub(err.Error(), token))
	}
	sp.StopSuccess()

	res.Pushed = true
	res.URL = cfg.BlobURL(res.NoteFile)
	return res, nil
}

// ensureOriginRemote points origin at url, adding it when missing.
func ensureOriginRemote(g git.Service, url string) error {
	remotes, err := g.Remotes()
	if err != nil {
		return err
	}
	for _, name := range remotes {
		if name == "origin" {
			return g.SetRemoteURL("origin", url)
		}
	}
	ui.Infof("Adding remote origin...")
	return g.AddRemote("origin", url)
}

// ensureIgnored makes sure the token file never gets committed.
func ensureIgnored(tokenFile string) error {
	name := filepath.Base(tokenFile)
	b, err := os.ReadFile(".gitignore")
	if err == nil && strings.Contains(string(b), name) {
		return nil
	}
	f, err := os.OpenFile(".gitignore", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithMessage(err, "updating .gitignore")
	}
	defer f.Close()
	if _, err := f.WriteString("\n" + name + "\n"); err != nil {
		return errors.WithMessage(err, "updating .gitignore")
	}
	return nil
}
