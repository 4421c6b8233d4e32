package releases

import (
	"errors"
	"fmt"
)

var (
	// ErrPlatformNotSupported is returned when no distribution artifact exists
	// for the host OS/arch combination.
	ErrPlatformNotSupported = errors.New("platform not supported")

	// ErrLatestReleaseNotFound is returned when no release matched the artifact
	// within the searched pages, or the registry had no newest version.
	ErrLatestReleaseNotFound = errors.New("latest release not found")

	ErrTagNameVersionParsingFailed    = errors.New("could not parse version from tag name")
	ErrMalformedLatestReleaseResponse = errors.New("latest release response has no tag_name")
	ErrInvalidVersion                 = errors.New("invalid semantic version")

	ErrURLIsNotArchive            = errors.New("the URL must point to a zip or gzipped tar archive")
	ErrCannotParseFilenameFromURL = errors.New("cannot parse file name from the URL")

	// ErrReleaseBinaryNotFound matches any *ReleaseBinaryNotFoundError.
	ErrReleaseBinaryNotFound = errors.New("release binary not found")

	ErrUnsupportedArchive = errors.New("unsupported archive format")
	ErrExtractionFailed   = errors.New("failed to extract archive")
)

// ReleaseBinaryNotFoundError reports a distribution URL that answered with a
// non-success status, i.e. the artifact/version/platform was never published.
type ReleaseBinaryNotFoundError struct {
	URL        string
	StatusCode int
}

func (e *ReleaseBinaryNotFoundError) Error() string {
	return fmt.Sprintf("release binary %s was not found (HTTP %d)", e.URL, e.StatusCode)
}

func (e *ReleaseBinaryNotFoundError) Is(target error) bool {
	return target == ErrReleaseBinaryNotFound
}

// RegistryStatusError is returned when the package registry answers with a
// non-success status.
type RegistryStatusError struct {
	Package    string
	StatusCode int
}

func (e *RegistryStatusError) Error() string {
	return fmt.Sprintf("unexpected response from registry for %s: %d", e.Package, e.StatusCode)
}

// APIStatusError is returned when the release-hosting API answers with a
// non-success status.
type APIStatusError struct {
	URL        string
	StatusCode int
}

func (e *APIStatusError) Error() string {
	return fmt.Sprintf("release API error for %s: HTTP %d", e.URL, e.StatusCode)
}
