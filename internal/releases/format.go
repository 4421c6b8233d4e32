package releases

import (
	"fmt"
	"strings"
)

// ArchiveFormat is the container a distribution archive is published in.
type ArchiveFormat int

const (
	TarGz ArchiveFormat = iota
	Zip
)

// Extension returns the file extension without the leading dot.
func (f ArchiveFormat) Extension() string {
	switch f {
	case TarGz:
		return "tar.gz"
	case Zip:
		return "zip"
	default:
		return fmt.Sprintf("ArchiveFormat(%d)", int(f))
	}
}

func (f ArchiveFormat) String() string { return f.Extension() }

// ParseArchiveFormat accepts "tar.gz" (or "tgz") and "zip".
func ParseArchiveFormat(s string) (ArchiveFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "tar.gz", "tgz":
		return TarGz, nil
	case "zip":
		return Zip, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedArchive, s)
	}
}

// isArchiveURL reports whether url names a tar.gz or zip archive.
func isArchiveURL(url string) bool {
	return strings.HasSuffix(url, ".tar.gz") || strings.HasSuffix(url, ".zip")
}
