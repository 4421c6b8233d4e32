package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/netrelease/sn-releases/internal/exitcodes"
	"github.com/netrelease/sn-releases/internal/releases"
	"github.com/netrelease/sn-releases/internal/ui"
)

func getPrinter() ui.Printer { return ui.NewPrinterFromGlobal(flagOutput) }

// printerLogger routes library diagnostics through the printer. Info is
// dropped for structured output so stdout stays parseable.
type printerLogger struct {
	p     ui.Printer
	debug bool
	quiet bool
}

func (l printerLogger) Debug(msg string, keysAndValues ...interface{}) {
	if l.debug {
		l.p.Debug(formatFields(msg, keysAndValues))
	}
}

func (l printerLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.quiet || l.p.Format() != ui.FormatText {
		return
	}
	l.p.Info(formatFields(msg, keysAndValues))
}

func (l printerLogger) Warn(msg string, keysAndValues ...interface{}) {
	if !l.quiet {
		l.p.Warn(formatFields(msg, keysAndValues))
	}
}

// formatFields renders "msg k1=v1 k2=v2". A trailing key without a value is
// printed as "k=?".
func formatFields(msg string, keysAndValues []interface{}) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		var v interface{} = "?"
		if i+1 < len(keysAndValues) {
			v = keysAndValues[i+1]
		}
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], v)
	}
	return b.String()
}

// classifyError attaches an exit code to an error from internal/releases.
func classifyError(action string, err error) error {
	if err == nil {
		return nil
	}
	var ec *exitcodes.ErrorWithCode
	if errors.As(err, &ec) {
		return err
	}
	return exitcodes.WrapError(codeFor(err), action, err)
}

func codeFor(err error) int {
	var (
		apiErr      *releases.APIStatusError
		registryErr *releases.RegistryStatusError
		urlErr      *url.Error
		netErr      net.Error
	)
	switch {
	case errors.Is(err, releases.ErrPlatformNotSupported):
		return exitcodes.PreconditionFailed
	case errors.Is(err, releases.ErrLatestReleaseNotFound),
		errors.Is(err, releases.ErrReleaseBinaryNotFound):
		return exitcodes.NotFound
	case errors.Is(err, releases.ErrURLIsNotArchive),
		errors.Is(err, releases.ErrCannotParseFilenameFromURL),
		errors.Is(err, releases.ErrUnsupportedArchive):
		return exitcodes.InvalidArgs
	case errors.Is(err, releases.ErrTagNameVersionParsingFailed),
		errors.Is(err, releases.ErrMalformedLatestReleaseResponse):
		return exitcodes.ValidationError
	case errors.Is(err, releases.ErrExtractionFailed):
		return exitcodes.IOError
	case errors.As(err, &apiErr), errors.As(err, &registryErr),
		errors.As(err, &urlErr), errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded):
		return exitcodes.NetworkError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return exitcodes.IOError
	default:
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return exitcodes.IOError
		}
		return exitcodes.GeneralError
	}
}

// hintsFor suggests a next step for well-known failures.
func hintsFor(err error) []string {
	var rateLimited *releases.APIStatusError
	switch {
	case errors.Is(err, releases.ErrPlatformNotSupported):
		return []string{"pass --platform with one of: " + strings.Join(platformTriples(), ", ")}
	case errors.Is(err, releases.ErrLatestReleaseNotFound):
		return []string{"only releases from the last two weeks are searched; pass --version to download an older one"}
	case errors.Is(err, releases.ErrReleaseBinaryNotFound):
		return []string{"check the version exists for this platform, or try --format zip|tar.gz"}
	case errors.Is(err, releases.ErrURLIsNotArchive):
		return []string{"the URL must end in .tar.gz or .zip"}
	case errors.As(err, &rateLimited) && rateLimited.StatusCode == 403:
		return []string{"the GitHub API may be rate limiting this address; retry later"}
	case errors.Is(err, context.Canceled):
		return []string{"interrupted"}
	}
	return nil
}

func platformTriples() []string {
	all := releases.AllPlatforms()
	out := make([]string, len(all))
	for i, p := range all {
		out[i] = p.Triple()
	}
	return out
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return exitcodes.WrapError(exitcodes.IOError, "failed to create directory", err)
	}
	return nil
}

// newProgress returns a ProgressFunc that drives a progress bar, and the
// func that closes it. Both are no-ops for quiet or structured output.
func newProgress(p ui.Printer, quiet bool, label string) (releases.ProgressFunc, func()) {
	if quiet || p.Format() != ui.FormatText {
		return nil, func() {}
	}
	bar := ui.NewProgressBar(p.Out, 0)
	bar.SetLabel(label)
	started := false
	progress := func(downloaded, total uint64) {
		started = true
		bar.SetTotal(int64(total))
		bar.Update(int64(downloaded))
	}
	finish := func() {
		if started {
			bar.Finish()
		}
	}
	return progress, finish
}
