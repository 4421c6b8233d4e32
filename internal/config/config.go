package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/netrelease/sn-releases/internal/releases"
)

// Environment variables read by Load.
const (
	EnvConfigFile   = "SN_RELEASES_CONFIG"
	EnvGitHubAPIURL = "SN_RELEASES_GITHUB_API_URL"
	EnvRegistryURL  = "SN_RELEASES_REGISTRY_URL"
	EnvDownloadDir  = "SN_RELEASES_DOWNLOAD_DIR"
)

// Config holds the endpoints and defaults used by the CLI.
type Config struct {
	GitHubAPIURL  string `yaml:"github_api_url"`
	RegistryURL   string `yaml:"registry_url"`
	Org           string `yaml:"org"`
	WorkspaceRepo string `yaml:"workspace_repo"`
	UserAgent     string `yaml:"user_agent"`
	DownloadDir   string `yaml:"download_dir"`
	// BaseURLs maps artifact names (e.g. "safenode") to a distribution host.
	// Unknown names fail when the file is parsed.
	BaseURLs map[releases.ArtifactKind]string `yaml:"base_urls"`
}

// Defaults returns the production endpoints with downloads going to the
// working directory.
func Defaults() Config {
	return Config{
		GitHubAPIURL:  releases.DefaultGitHubAPIURL,
		RegistryURL:   releases.DefaultRegistryURL,
		Org:           releases.DefaultOrg,
		WorkspaceRepo: releases.DefaultWorkspaceRepo,
		UserAgent:     releases.DefaultUserAgent,
		DownloadDir:   ".",
	}
}

// Load layers defaults, the YAML file at path (or $SN_RELEASES_CONFIG when
// path is empty) and environment overrides. A missing file named by the
// environment is ignored; one passed explicitly is an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if v := os.Getenv(EnvGitHubAPIURL); v != "" {
		cfg.GitHubAPIURL = v
	}
	if v := os.Getenv(EnvRegistryURL); v != "" {
		cfg.RegistryURL = v
	}
	if v := os.Getenv(EnvDownloadDir); v != "" {
		cfg.DownloadDir = v
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	// Unmarshal over the defaults so absent keys keep their values.
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Releases converts the config into a releases.Config. Logger, HTTP client
// and clock are left for the caller.
func (c Config) Releases() releases.Config {
	var urls map[releases.ArtifactKind]string
	if len(c.BaseURLs) > 0 {
		urls = make(map[releases.ArtifactKind]string, len(c.BaseURLs))
		for kind, url := range c.BaseURLs {
			urls[kind] = strings.TrimSuffix(url, "/")
		}
	}
	return releases.Config{
		GitHubAPIURL:  c.GitHubAPIURL,
		RegistryURL:   c.RegistryURL,
		Org:           c.Org,
		WorkspaceRepo: c.WorkspaceRepo,
		UserAgent:     c.UserAgent,
		BaseURLs:      urls,
	}
}
