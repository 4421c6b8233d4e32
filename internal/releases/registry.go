package releases

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// registryNewestVersion asks the crate registry for the newest published
// version of the package named by kind's resolver key.
func (c *Client) registryNewestVersion(ctx context.Context, kind ArtifactKind) (Version, error) {
	pkg := kind.ResolverKey()
	url := fmt.Sprintf("%s/api/v1/crates/%s", c.cfg.RegistryURL, pkg)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Version{}, err
	}
	// crates.io rejects requests without a User-Agent.
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Version{}, fmt.Errorf("failed to query registry for %s: %w", pkg, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Version{}, &RegistryStatusError{Package: pkg, StatusCode: resp.StatusCode}
	}

	var body struct {
		Crate struct {
			NewestVersion string `json:"newest_version"`
		} `json:"crate"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Version{}, fmt.Errorf("failed to parse registry response for %s: %w", pkg, err)
	}
	if body.Crate.NewestVersion == "" {
		return Version{}, fmt.Errorf("%w for %s", ErrLatestReleaseNotFound, kind)
	}

	return ParseVersion(body.Crate.NewestVersion)
}
