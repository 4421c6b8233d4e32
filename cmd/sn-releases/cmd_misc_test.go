package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/netrelease/sn-releases/internal/exitcodes"
	"github.com/netrelease/sn-releases/internal/releases"
)

func TestRunFetchURLCore(t *testing.T) {
	repo := &mockRepo{}
	p, out, _ := testPrinter("text")
	dir := filepath.Join(t.TempDir(), "downloads")
	url := "https://example.org/jacderida/safenode-charlie-x86_64-unknown-linux-musl.tar.gz"

	if err := runFetchURLCore(context.Background(), repo, url, dir, p, true); err != nil {
		t.Fatalf("runFetchURLCore() error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("destination directory not created: %v", err)
	}
	if len(repo.urlDownloads) != 1 || repo.urlDownloads[0] != url {
		t.Errorf("Download calls = %v", repo.urlDownloads)
	}
	if want := filepath.Join(dir, "safenode-charlie-x86_64-unknown-linux-musl.tar.gz") + "\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunFetchURLCore_NotArchive(t *testing.T) {
	repo := &mockRepo{downloadErr: releases.ErrURLIsNotArchive}
	p, _, _ := testPrinter("text")

	err := runFetchURLCore(context.Background(), repo, "https://example.org/notes.txt", t.TempDir(), p, true)
	if code := exitcodes.CodeForError(err); code != exitcodes.InvalidArgs {
		t.Errorf("exit code = %d, want %d", code, exitcodes.InvalidArgs)
	}
}

func TestRunExtractCore(t *testing.T) {
	repo := &mockRepo{extractPath: "safe.exe"}
	p, out, _ := testPrinter("json")
	dir := t.TempDir()

	if err := runExtractCore(repo, "/tmp/safe.zip", dir, p, false); err != nil {
		t.Fatalf("runExtractCore() error: %v", err)
	}
	var got extractResult
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Path != filepath.Join(dir, "safe.exe") || got.Archive != "/tmp/safe.zip" {
		t.Errorf("result = %+v", got)
	}

	repo = &mockRepo{extractErr: releases.ErrExtractionFailed}
	err := runExtractCore(repo, "/tmp/safe.zip", dir, p, false)
	if code := exitcodes.CodeForError(err); code != exitcodes.IOError {
		t.Errorf("exit code = %d, want %d", code, exitcodes.IOError)
	}
}

func TestRunPlatformCore(t *testing.T) {
	p, out, _ := testPrinter("text")
	if err := runPlatformCore(detectAs(releases.WindowsX86_64), p); err != nil {
		t.Fatalf("runPlatformCore() error: %v", err)
	}
	if !strings.Contains(out.String(), "Platform: x86_64-pc-windows-msvc") || !strings.Contains(out.String(), "Archive format: zip") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunArtifactsCore(t *testing.T) {
	p, out, _ := testPrinter("json")
	base := func(k releases.ArtifactKind) string { return "http://mirror/" + k.String() }

	if err := runArtifactsCore(base, p); err != nil {
		t.Fatalf("runArtifactsCore() error: %v", err)
	}
	var got []artifactInfo
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != len(releases.AllArtifactKinds()) {
		t.Fatalf("listed %d artifacts, want %d", len(got), len(releases.AllArtifactKinds()))
	}
	if got[0].Name != "safe" || got[0].Key != "sn_cli" || got[0].BaseURL != "http://mirror/safe" {
		t.Errorf("first artifact = %+v", got[0])
	}

	p, out, _ = testPrinter("text")
	if err := runArtifactsCore(base, p); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "ARTIFACT") || !strings.Contains(out.String(), "nat-detection") {
		t.Errorf("table = %q", out.String())
	}
}

func TestRunVersionCore(t *testing.T) {
	p, out, _ := testPrinter("text")
	if err := runVersionCore(p); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "sn-releases dev") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRootCommandsRegistered(t *testing.T) {
	want := []string{"latest", "download", "fetch-url", "extract", "platform", "artifacts", "version", "completion"}
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("command %q not registered", name)
		}
	}

	for _, name := range []string{"config", "output", "quiet", "debug", "no-color"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s missing", name)
		}
	}
}

func TestShutdownSignals(t *testing.T) {
	want := map[os.Signal]bool{os.Interrupt: false, syscall.SIGTERM: false}
	for _, s := range shutdownSignals {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for s, seen := range want {
		if !seen {
			t.Errorf("%v does not cancel the command context", s)
		}
	}
}
