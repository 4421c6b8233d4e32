package releases

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a semantic version: major.minor.patch with an optional
// pre-release suffix. Build metadata is not supported.
type Version struct {
	Major, Minor, Patch uint64
	Pre                 string // without the leading '-'
}

// ParseVersion parses "X.Y.Z" or "X.Y.Z-pre", with or without a leading "v".
// Shorthand forms such as "1.2" are rejected so that String round-trips.
func ParseVersion(s string) (Version, error) {
	v := strings.TrimSpace(s)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) || semver.Canonical(v) != v {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	pre := semver.Prerelease(v)
	core := strings.SplitN(strings.TrimSuffix(v[1:], pre), ".", 3)
	if len(core) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	var nums [3]uint64
	for i, part := range core {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
		}
		nums[i] = n
	}

	return Version{
		Major: nums[0],
		Minor: nums[1],
		Patch: nums[2],
		Pre:   strings.TrimPrefix(pre, "-"),
	}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	return s
}

// Compare returns -1, 0 or +1 following semver precedence.
func (v Version) Compare(o Version) int {
	return semver.Compare("v"+v.String(), "v"+o.String())
}

func (v Version) Equal(o Version) bool { return v.Compare(o) == 0 }

// IsZero reports whether v is the zero value.
func (v Version) IsZero() bool { return v == (Version{}) }

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(b []byte) error {
	parsed, err := ParseVersion(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
