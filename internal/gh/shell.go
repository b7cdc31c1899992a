package gh

import (
	"bytes"
	"os/exec"
	"strings"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

type shellGh struct{}

func NewShellGh() Client {
	return &shellGh{}
}

// run executes gh with the given arguments. stdin, when non-empty, is piped
// to the process; it is never logged.
func (s *shellGh) run(stdin string, args ...string) (string, error) {
	logrus.WithField("args", args).Debug("exec gh")
	cmd := exec.Command("gh", args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", errors.Errorf("gh %s: %v: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return string(out), nil
}

func (s *shellGh) Installed() bool {
	_, err := exec.LookPath("gh")
	return err == nil
}

func (s *shellGh) AuthStatus() bool {
	_, err := s.run("", "auth", "status")
	return err == nil
}

func (s *shellGh) LoginWithToken(token string) error {
	_, err := s.run(token, "auth", "login", "--with-token")
	return err
}

func (s *shellGh) RepoExists(owner, repo string) bool {
	_, err := s.run("", "repo", "view", owner+"/"+repo)
	return err == nil
}

func (s *shellGh) CreateRepo(owner, repo string, private bool) error {
	visibility := "--public"
	if private {
		visibility = "--private"
	}
	_, err := s.run("", "repo", "create", owner+"/"+repo, visibility, "--source=.", "--remote=origin")
	return err
}
