package releases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mholt/archives"
)

// ExtractArchive unpacks the first entry of a .tar.gz or .zip archive into
// destDir and returns the path it was written to.
//
// Distribution archives hold exactly one binary, so only the first entry is
// read; anything after it is ignored. If the first entry is a directory it is
// created and its path returned.
func ExtractArchive(archivePath, destDir string) (string, error) {
	if _, err := os.Stat(archivePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("archive not found at %s: %w", archivePath, fs.ErrNotExist)
		}
		return "", fmt.Errorf("stat archive: %w", err)
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	var extracted string
	handler := func(ctx context.Context, info archives.FileInfo) error {
		path, err := unpackEntry(info, destDir)
		if err != nil {
			return err
		}
		extracted = path
		return fs.SkipAll
	}

	ctx := context.Background()
	switch filepath.Ext(archivePath) {
	case ".gz":
		gz, err := archives.Gz{}.OpenReader(f)
		if err != nil {
			return "", fmt.Errorf("%w: create gzip reader: %w", ErrExtractionFailed, err)
		}
		defer gz.Close()
		err = archives.Tar{}.Extract(ctx, gz, handler)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
		}
	case ".zip":
		if err := (archives.Zip{}).Extract(ctx, f, handler); err != nil {
			return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
		}
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedArchive, archivePath)
	}

	if extracted == "" {
		return "", fmt.Errorf("%w: %s has no entries", ErrExtractionFailed, archivePath)
	}
	return extracted, nil
}

// unpackEntry writes one archive entry below destDir.
func unpackEntry(info archives.FileInfo, destDir string) (string, error) {
	name := filepath.Clean(filepath.FromSlash(info.NameInArchive))
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("invalid path in archive: %s", info.NameInArchive)
	}
	target := filepath.Join(destDir, name)

	switch {
	case info.IsDir():
		if err := os.MkdirAll(target, 0o755); err != nil {
			return "", fmt.Errorf("create dir %s: %w", name, err)
		}

	case info.Mode()&fs.ModeSymlink != 0:
		linkTarget := filepath.FromSlash(info.LinkTarget)
		if filepath.IsAbs(linkTarget) || !filepath.IsLocal(filepath.Join(filepath.Dir(name), linkTarget)) {
			return "", fmt.Errorf("symlink escapes destination: %s -> %s", name, info.LinkTarget)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return "", fmt.Errorf("create parent dir for %s: %w", name, err)
		}
		os.Remove(target)
		if err := os.Symlink(info.LinkTarget, target); err != nil {
			return "", fmt.Errorf("create symlink %s: %w", name, err)
		}

	default:
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return "", fmt.Errorf("create parent dir for %s: %w", name, err)
		}
		if err := writeEntry(info, target); err != nil {
			return "", err
		}
	}

	return target, nil
}

func writeEntry(info archives.FileInfo, target string) error {
	mode := info.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}

	src, err := info.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", info.NameInArchive, err)
	}
	defer src.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create file %s: %w", target, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("write file %s: %w", target, err)
	}
	return out.Close()
}
