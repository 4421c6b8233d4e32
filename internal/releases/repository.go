// Package releases resolves the latest published version of a network
// binary and fetches its platform-specific archive.
//
// Versions come from one of three places depending on the artifact: the
// shared workspace repository whose release history interleaves tags for many
// binaries, a standalone repository whose latest release is the answer, or a
// package registry. Archives live at a deterministic distribution URL:
//
//	{base}/{name}-{version}-{triple}.{tar.gz|zip}
//
// and always contain a single binary.
package releases

import (
	"context"
	"net/http"
	"time"
)

const (
	DefaultGitHubAPIURL  = "https://api.github.com"
	DefaultRegistryURL   = "https://crates.io"
	DefaultOrg           = "maidsafe"
	DefaultWorkspaceRepo = "safe_network"
	DefaultUserAgent     = "sn-releases"
)

// Repository is everything a caller needs to go from an artifact name to a
// binary on disk.
type Repository interface {
	LatestVersion(ctx context.Context, kind ArtifactKind) (Version, error)
	DownloadFromDistribution(ctx context.Context, kind ArtifactKind, version Version, platform Platform, format ArchiveFormat, destDir string, progress ProgressFunc) (string, error)
	Download(ctx context.Context, url, destDir string, progress ProgressFunc) (string, error)
	ExtractArchive(archivePath, destDir string) (string, error)
}

// Config holds the endpoints a Client talks to. Tests point these at
// httptest servers.
type Config struct {
	GitHubAPIURL  string
	RegistryURL   string
	Org           string
	WorkspaceRepo string
	// BaseURLs overrides the distribution host per artifact.
	BaseURLs  map[ArtifactKind]string
	UserAgent string

	HTTPClient *http.Client
	Logger     Logger
	// Now is the clock used for the pagination cutoff.
	Now func() time.Time
}

// DefaultConfig returns the production endpoints.
func DefaultConfig() Config {
	return Config{
		GitHubAPIURL:  DefaultGitHubAPIURL,
		RegistryURL:   DefaultRegistryURL,
		Org:           DefaultOrg,
		WorkspaceRepo: DefaultWorkspaceRepo,
		UserAgent:     DefaultUserAgent,
	}
}

// Client is the HTTP-backed Repository.
type Client struct {
	cfg    Config
	http   *http.Client
	logger Logger
	now    func() time.Time
}

var _ Repository = (*Client)(nil)

// New creates a Client. Zero-valued fields of cfg fall back to DefaultConfig.
// No request timeout is applied; callers bound calls through ctx.
func New(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.GitHubAPIURL == "" {
		cfg.GitHubAPIURL = def.GitHubAPIURL
	}
	if cfg.RegistryURL == "" {
		cfg.RegistryURL = def.RegistryURL
	}
	if cfg.Org == "" {
		cfg.Org = def.Org
	}
	if cfg.WorkspaceRepo == "" {
		cfg.WorkspaceRepo = def.WorkspaceRepo
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}

	c := &Client{
		cfg:    cfg,
		http:   cfg.HTTPClient,
		logger: cfg.Logger,
		now:    cfg.Now,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.logger == nil {
		c.logger = noopLogger{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// BaseURL returns the distribution host for kind, honoring overrides.
func (c *Client) BaseURL(kind ArtifactKind) string {
	if u, ok := c.cfg.BaseURLs[kind]; ok && u != "" {
		return u
	}
	return kind.DefaultBaseURL()
}

// ExtractArchive unpacks the single binary in archivePath into destDir.
func (c *Client) ExtractArchive(archivePath, destDir string) (string, error) {
	path, err := ExtractArchive(archivePath, destDir)
	if err != nil {
		return "", err
	}
	c.logger.Debug("extracted archive", "archive", archivePath, "path", path)
	return path, nil
}
