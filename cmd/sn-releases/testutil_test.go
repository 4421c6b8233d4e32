package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"

	"github.com/netrelease/sn-releases/internal/releases"
	"github.com/netrelease/sn-releases/internal/ui"
)

// errMock is a generic error for test assertions.
var errMock = errors.New("mock error")

type downloadCall struct {
	kind     releases.ArtifactKind
	version  releases.Version
	platform releases.Platform
	format   releases.ArchiveFormat
	destDir  string
}

// mockRepo implements releases.Repository for testing.
type mockRepo struct {
	latest    releases.Version
	latestErr error

	downloadErr  error
	progressStep []uint64 // bytes reported to the progress callback
	total        uint64

	extractPath string
	extractErr  error

	latestCalls   []releases.ArtifactKind
	downloads     []downloadCall
	urlDownloads  []string
	extractedFrom []string
}

func (m *mockRepo) LatestVersion(ctx context.Context, kind releases.ArtifactKind) (releases.Version, error) {
	m.latestCalls = append(m.latestCalls, kind)
	return m.latest, m.latestErr
}

func (m *mockRepo) DownloadFromDistribution(ctx context.Context, kind releases.ArtifactKind, version releases.Version, platform releases.Platform, format releases.ArchiveFormat, destDir string, progress releases.ProgressFunc) (string, error) {
	m.downloads = append(m.downloads, downloadCall{kind, version, platform, format, destDir})
	if m.downloadErr != nil {
		return "", m.downloadErr
	}
	m.report(progress)
	return filepath.Join(destDir, releases.ArchiveName(kind, version, platform, format)), nil
}

func (m *mockRepo) Download(ctx context.Context, url, destDir string, progress releases.ProgressFunc) (string, error) {
	m.urlDownloads = append(m.urlDownloads, url)
	if m.downloadErr != nil {
		return "", m.downloadErr
	}
	m.report(progress)
	return filepath.Join(destDir, filepath.Base(url)), nil
}

func (m *mockRepo) ExtractArchive(archivePath, destDir string) (string, error) {
	m.extractedFrom = append(m.extractedFrom, archivePath)
	if m.extractErr != nil {
		return "", m.extractErr
	}
	return filepath.Join(destDir, m.extractPath), nil
}

func (m *mockRepo) report(progress releases.ProgressFunc) {
	if progress == nil {
		return
	}
	for _, n := range m.progressStep {
		progress(n, m.total)
	}
}

// testPrinter returns a colorless printer writing into buffers.
func testPrinter(format string) (ui.Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	p := ui.NewPrinter(format)
	p.Colors = &ui.ColorConfig{Enabled: false, Theme: ui.DefaultTheme()}
	p.Out = &out
	p.ErrOut = &errOut
	return p, &out, &errOut
}

func detectAs(p releases.Platform) func() (releases.Platform, error) {
	return func() (releases.Platform, error) { return p, nil }
}
