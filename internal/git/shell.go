package git

import (
	"bytes"
	"os/exec"
	"strings"

	"emperror.dev/errors"
	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sirupsen/logrus"
)

type shellGit struct{}

func NewShellGit() Service {
	return &shellGit{}
}

// run executes git in the current directory. Only the subcommand is logged:
// arguments can carry an authenticated remote URL.
func (s *shellGit) run(args ...string) (string, error) {
	logrus.WithField("cmd", "git "+args[0]).Debug("exec")
	cmd := exec.Command("git", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", errors.Errorf("git %s: %v: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return string(out), nil
}

func (s *shellGit) Installed() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func (s *shellGit) IsRepo() (bool, error) {
	_, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return false, nil
	}
	if err != nil {
		return false, errors.WithMessage(err, "opening repository")
	}
	return true, nil
}

func (s *shellGit) Init(branch string) error {
	_, err := gogit.PlainInitWithOptions(".", &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(branch),
		},
	})
	if err != nil {
		return errors.WithMessage(err, "initializing repository")
	}
	return nil
}

func (s *shellGit) CurrentBranch() (string, error) {
	out, err := s.run("rev-parse", "--abbrev-ref", "HEAD")
	return strings.TrimSpace(out), err
}

func (s *shellGit) StageAll() error {
	_, err := s.run("add", ".")
	return err
}

func (s *shellGit) HasChangesToCommit() (bool, error) {
	// Exit 0 means the index matches HEAD. It also fails on a repo with no
	// commits yet, which we want to treat as "there is something to commit".
	_, err := s.run("diff-index", "--quiet", "HEAD", "--")
	return err != nil, nil
}

func (s *shellGit) Commit(msg string) error {
	_, err := s.run("commit", "-m", msg)
	return err
}

func (s *shellGit) Pull(remote, branch string) error {
	_, err := s.run("pull", remote, branch,
		"--allow-unrelated-histories", "--no-edit", "--no-rebase")
	return err
}

func (s *shellGit) Push(remote, branch string) error {
	_, err := s.run("push", "-u", remote, branch)
	return err
}

func (s *shellGit) Remotes() ([]string, error) {
	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{})
	if err != nil {
		return nil, errors.WithMessage(err, "opening repository")
	}
	remotes, err := repo.Remotes()
	if err != nil {
		return nil, errors.WithMessage(err, "listing remotes")
	}
	names := make([]string, 0, len(remotes))
	for _, r := range remotes {
		names = append(names, r.Config().Name)
	}
	return names, nil
}

func (s *shellGit) AddRemote(name, url string) error {
	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{})
	if err != nil {
		return errors.WithMessage(err, "opening repository")
	}
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	if err != nil {
		return errors.WithMessagef(err, "adding remote %s", name)
	}
	return nil
}

func (s *shellGit) SetRemoteURL(name, url string) error {
	_, err := s.run("remote", "set-url", name, url)
	return err
}

func (s *shellGit) SetLocalConfig(key, value string) error {
	_, err := s.run("config", "--local", key, value)
	return err
}
