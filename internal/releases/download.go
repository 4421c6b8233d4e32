package releases

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// ProgressFunc is called inline after every chunk written, with the bytes
// written so far and the total from Content-Length (0 when unknown). It must
// return quickly and cannot cancel the download.
type ProgressFunc func(downloaded, total uint64)

// DistributionURL builds the canonical archive URL under base.
func DistributionURL(base string, kind ArtifactKind, version Version, platform Platform, format ArchiveFormat) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(base, "/"), ArchiveName(kind, version, platform, format))
}

// ArchiveName is the file name of a distribution archive.
func ArchiveName(kind ArtifactKind, version Version, platform Platform, format ArchiveFormat) string {
	return fmt.Sprintf("%s-%s-%s.%s", kind.Name(), version, platform.Triple(), format.Extension())
}

// DownloadFromDistribution fetches the archive for kind/version/platform from
// the artifact's distribution host into destDir and returns its path.
func (c *Client) DownloadFromDistribution(ctx context.Context, kind ArtifactKind, version Version, platform Platform, format ArchiveFormat, destDir string, progress ProgressFunc) (string, error) {
	url := DistributionURL(c.BaseURL(kind), kind, version, platform, format)
	dest := filepath.Join(destDir, ArchiveName(kind, version, platform, format))

	if err := c.downloadURL(ctx, url, dest, progress); err != nil {
		return "", err
	}
	return dest, nil
}

// Download fetches an arbitrary tar.gz or zip archive into destDir, keeping
// the URL's last path segment as the file name.
func (c *Client) Download(ctx context.Context, url, destDir string, progress ProgressFunc) (string, error) {
	if !isArchiveURL(url) {
		return "", ErrURLIsNotArchive
	}

	name := url[strings.LastIndex(url, "/")+1:]
	if name == "" {
		return "", ErrCannotParseFilenameFromURL
	}
	dest := filepath.Join(destDir, name)

	if err := c.downloadURL(ctx, url, dest, progress); err != nil {
		return "", err
	}
	return dest, nil
}

func (c *Client) downloadURL(ctx context.Context, url, dest string, progress ProgressFunc) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ReleaseBinaryNotFoundError{URL: url, StatusCode: resp.StatusCode}
	}

	total, err := strconv.ParseUint(resp.Header.Get("Content-Length"), 10, 64)
	if err != nil {
		total = 0
	}
	c.logger.Debug("downloading", "url", url, "dest", dest, "size", total)
	c.warnIfLowOnSpace(filepath.Dir(dest), total)

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	w := &progressWriter{w: out, total: total, progress: progress}
	if _, err := io.Copy(w, resp.Body); err != nil {
		out.Close()
		os.Remove(dest)
		return fmt.Errorf("failed to read download from %s: %w", url, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return fmt.Errorf("close %s: %w", dest, err)
	}
	c.logger.Info("downloaded archive", "url", url, "path", dest, "bytes", w.downloaded)
	return nil
}

// warnIfLowOnSpace only logs: Content-Length may be wrong, and the write
// itself fails if the disk really fills up.
func (c *Client) warnIfLowOnSpace(dir string, need uint64) {
	if need == 0 {
		return
	}
	usage, err := disk.Usage(dir)
	if err != nil {
		return
	}
	if usage.Free < need {
		c.logger.Warn("destination may not have enough free space", "dir", dir, "free", usage.Free, "need", need)
	}
}

// progressWriter reports cumulative bytes after each chunk reaches the file.
type progressWriter struct {
	w          io.Writer
	total      uint64
	downloaded uint64
	progress   ProgressFunc
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	n, err := pw.w.Write(p)
	pw.downloaded += uint64(n)
	if pw.progress != nil && n > 0 {
		pw.progress(pw.downloaded, pw.total)
	}
	return n, err
}
