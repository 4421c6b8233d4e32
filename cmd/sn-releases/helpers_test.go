package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"testing"

	"github.com/netrelease/sn-releases/internal/exitcodes"
	"github.com/netrelease/sn-releases/internal/releases"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"platform", fmt.Errorf("%w: freebsd/amd64", releases.ErrPlatformNotSupported), exitcodes.PreconditionFailed},
		{"latest not found", fmt.Errorf("%w for testnet", releases.ErrLatestReleaseNotFound), exitcodes.NotFound},
		{"binary not found", &releases.ReleaseBinaryNotFoundError{URL: "u", StatusCode: 403}, exitcodes.NotFound},
		{"not an archive", releases.ErrURLIsNotArchive, exitcodes.InvalidArgs},
		{"no file name", releases.ErrCannotParseFilenameFromURL, exitcodes.InvalidArgs},
		{"unsupported archive", fmt.Errorf("%w: a.rar", releases.ErrUnsupportedArchive), exitcodes.InvalidArgs},
		{"tag parse", releases.ErrTagNameVersionParsingFailed, exitcodes.ValidationError},
		{"registry status", &releases.RegistryStatusError{Package: "nat-detection", StatusCode: 500}, exitcodes.NetworkError},
		{"transport", &url.Error{Op: "Get", URL: "https://api.github.com", Err: errMock}, exitcodes.NetworkError},
		{"deadline", context.DeadlineExceeded, exitcodes.NetworkError},
		{"extraction", fmt.Errorf("%w: %w", releases.ErrExtractionFailed, &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}), exitcodes.IOError},
		{"missing archive", fmt.Errorf("archive not found at x: %w", fs.ErrNotExist), exitcodes.IOError},
		{"other", errMock, exitcodes.GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError("doing it", tt.err)
			if got := exitcodes.CodeForError(err); got != tt.want {
				t.Errorf("code = %d, want %d", got, tt.want)
			}
			if !errors.Is(err, tt.err) {
				t.Error("classified error should wrap the original")
			}
		})
	}

	if classifyError("x", nil) != nil {
		t.Error("classifyError(nil) should be nil")
	}
	coded := exitcodes.InvalidArgsErrorf("bad")
	if classifyError("x", coded) != error(coded) {
		t.Error("an error that already carries a code is returned unchanged")
	}
}

func TestHintsFor(t *testing.T) {
	if h := hintsFor(releases.ErrPlatformNotSupported); len(h) != 1 || !strings.Contains(h[0], "x86_64-pc-windows-msvc") {
		t.Errorf("platform hint = %v", h)
	}
	if h := hintsFor(&releases.APIStatusError{StatusCode: 403}); len(h) != 1 || !strings.Contains(h[0], "rate limit") {
		t.Errorf("rate limit hint = %v", h)
	}
	if h := hintsFor(errMock); h != nil {
		t.Errorf("unexpected hint %v", h)
	}
}

func TestFormatFields(t *testing.T) {
	tests := []struct {
		msg  string
		kv   []interface{}
		want string
	}{
		{"scanned", nil, "scanned"},
		{"scanned", []interface{}{"page", 2, "releases", 100}, "scanned page=2 releases=100"},
		{"odd", []interface{}{"key"}, "odd key=?"},
	}
	for _, tt := range tests {
		if got := formatFields(tt.msg, tt.kv); got != tt.want {
			t.Errorf("formatFields(%q, %v) = %q, want %q", tt.msg, tt.kv, got, tt.want)
		}
	}
}

func TestPrinterLogger(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		debug      bool
		quiet      bool
		wantOut    string
		wantErrOut string
	}{
		{name: "default", format: "text", wantOut: "ℹ info\n", wantErrOut: "! warn k=v\n"},
		{name: "debug", format: "text", debug: true, wantOut: "ℹ info\n", wantErrOut: "· debug\n! warn k=v\n"},
		{name: "quiet", format: "text", quiet: true},
		{name: "json keeps stdout clean", format: "json", wantErrOut: "! warn k=v\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out, errOut := testPrinter(tt.format)
			var l releases.Logger = printerLogger{p: p, debug: tt.debug, quiet: tt.quiet}

			l.Debug("debug")
			l.Info("info")
			l.Warn("warn", "k", "v")

			if out.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out.String(), tt.wantOut)
			}
			if errOut.String() != tt.wantErrOut {
				t.Errorf("stderr = %q, want %q", errOut.String(), tt.wantErrOut)
			}
		})
	}
}
