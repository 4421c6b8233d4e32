package releases

import (
	"context"
	"fmt"
	"time"
)

// releaseCutoff bounds how far back the workspace listing is paged. A page
// holding a release older than this is the last page fetched, so an artifact
// released less often than this may not be found.
const releaseCutoff = 14 * 24 * time.Hour

// LatestVersion returns the newest published version of kind.
func (c *Client) LatestVersion(ctx context.Context, kind ArtifactKind) (Version, error) {
	switch kind.Stream() {
	case StreamStandalone:
		return c.latestReleaseTag(ctx, kind.Repo())
	case StreamRegistry:
		return c.registryNewestVersion(ctx, kind)
	default:
		return c.latestFromWorkspace(ctx, kind)
	}
}

// latestFromWorkspace pages through the workspace repository's releases,
// newest first, and returns the version of the most recently created release
// whose tag belongs to kind.
//
// Each page is scanned in full. Once any scanned release is older than the
// cutoff no further page is requested, even when the Link header offers one.
func (c *Client) latestFromWorkspace(ctx context.Context, kind ArtifactKind) (Version, error) {
	key := kind.ResolverKey()
	now := c.now()

	var best *release
	for page := 1; ; page++ {
		p, err := c.fetchReleasesPage(ctx, page)
		if err != nil {
			return Version{}, err
		}
		c.logger.Debug("scanned releases page", "artifact", kind.String(), "page", page, "releases", len(p.Releases))

		pastCutoff := false
		for i := range p.Releases {
			rel := p.Releases[i]
			if rel.TagName == "" || rel.CreatedAt.IsZero() {
				continue
			}
			if MatchesTag(rel.TagName, key) && (best == nil || rel.CreatedAt.After(best.CreatedAt)) {
				best = &rel
			}
			if now.Sub(rel.CreatedAt) > releaseCutoff {
				pastCutoff = true
			}
		}

		if pastCutoff || !p.HasNext {
			break
		}
	}

	if best == nil {
		return Version{}, fmt.Errorf("%w for %s", ErrLatestReleaseNotFound, kind)
	}
	c.logger.Debug("matched release", "artifact", kind.String(), "tag", best.TagName, "created_at", best.CreatedAt)

	return VersionFromTag(best.TagName)
}
