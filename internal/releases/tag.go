package releases

import (
	"fmt"
	"strings"
)

// Tags in a workspace stream look like "<key>-v<version>", e.g.
// "sn_node-v0.98.2" or "sn_cli-v0.83.51-rc.1".

// MatchesTag reports whether tag belongs to the artifact with the given
// resolver key. The segment before the first '-' must equal key exactly; a
// prefix test would let "sn" claim tags of every "sn..." artifact.
func MatchesTag(tag, key string) bool {
	first, _, _ := strings.Cut(tag, "-")
	return first == key
}

// VersionFromTag extracts the version from a "<key>-v<version>" tag.
func VersionFromTag(tag string) (Version, error) {
	_, rest, ok := strings.Cut(tag, "-")
	if !ok || rest == "" {
		return Version{}, fmt.Errorf("%w: %q", ErrTagNameVersionParsingFailed, tag)
	}
	v, err := ParseVersion(strings.TrimPrefix(rest, "v"))
	if err != nil {
		return Version{}, fmt.Errorf("%w: %w", ErrTagNameVersionParsingFailed, err)
	}
	return v, nil
}
