package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"emperror.dev/errors"
	"github.com/crazywolf132/fstr"
	"github.com/spf13/viper"
)

// Config carries everything that used to be a compiled-in constant:
// the target repository, branch, and credential source locations.
type Config struct {
	Owner       string
	Repo        string
	Branch      string
	TokenFile   string
	TokenEnvVar string
	Private     bool
	Verbose     bool
}

const (
	defaultBranch    = "main"
	defaultTokenFile = "github_token.txt"
	defaultTokenEnv  = "GITHUB_TOKEN"
)

// Load reads the config file (if any), then NOTESYNC_* environment
// variables. Flag overrides are applied by the commands afterwards.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("owner", "")
	v.SetDefault("repo", "")
	v.SetDefault("branch", defaultBranch)
	v.SetDefault("token_file", defaultTokenFile)
	v.SetDefault("token_env", defaultTokenEnv)
	v.SetDefault("private", true)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("NOTESYNC")
	v.AutomaticEnv()

	if p, err := configPath(); err == nil {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, errors.WithMessagef(err, "reading config file %s", p)
		}
	}

	return Config{
		Owner:       v.GetString("owner"),
		Repo:        v.GetString("repo"),
		Branch:      v.GetString("branch"),
		TokenFile:   v.GetString("token_file"),
		TokenEnvVar: v.GetString("token_env"),
		Private:     v.GetBool("private"),
		Verbose:     v.GetBool("verbose"),
	}, nil
}

// configPath returns the platform config file location for notesync.
func configPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "notesync")
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support", "notesync")
	default:
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			xdgConfig = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfig, "notesync")
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// SetRepo applies an "owner/name" flag value.
func (c *Config) SetRepo(full string) error {
	owner, repo, ok := strings.Cut(full, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return errors.Errorf("invalid repository %q, expected owner/name", full)
	}
	c.Owner = owner
	c.Repo = repo
	return nil
}

// Validate checks that a target repository is configured.
func (c Config) Validate() error {
	if c.Owner == "" || c.Repo == "" {
		return errors.New("no target repository configured; pass --repo owner/name or set owner and repo in the config file")
	}
	return nil
}

// FullRepo returns "owner/name".
func (c Config) FullRepo() string {
	return c.Owner + "/" + c.Repo
}

// RemoteURL returns the plain HTTPS clone URL.
func (c Config) RemoteURL() string {
	return fstr.F("https://github.com/{}/{}.git", c.Owner, c.Repo)
}

// BlobURL returns the web URL for path on the configured branch. An empty
// path points at the branch root.
func (c Config) BlobURL(path string) string {
	return fstr.F("https://github.com/{}/{}/blob/{}/{}", c.Owner, c.Repo, c.Branch, path)
}
