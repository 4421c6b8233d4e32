package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netrelease/sn-releases/internal/exitcodes"
	"github.com/netrelease/sn-releases/internal/releases"
	"github.com/netrelease/sn-releases/internal/ui"
)

type downloadOpts struct {
	version   string
	platform  string
	format    string
	dir       string
	extractTo string
	quiet     bool
}

type downloadResult struct {
	Artifact releases.ArtifactKind `json:"artifact" yaml:"artifact"`
	Version  string                `json:"version" yaml:"version"`
	Platform string                `json:"platform" yaml:"platform"`
	Archive  string                `json:"archive" yaml:"archive"`
	Binary   string                `json:"binary,omitempty" yaml:"binary,omitempty"`
}

// runDownloadCore resolves the version and platform (unless given), fetches
// the distribution archive and optionally extracts it.
func runDownloadCore(ctx context.Context, repo releases.Repository, kind releases.ArtifactKind, opts downloadOpts, detect func() (releases.Platform, error), p ui.Printer) error {
	platform, err := resolvePlatform(opts.platform, detect)
	if err != nil {
		return err
	}

	format := platform.ArchiveFormat()
	if opts.format != "" {
		if format, err = releases.ParseArchiveFormat(opts.format); err != nil {
			return exitcodes.WrapError(exitcodes.InvalidArgs, "invalid --format", err)
		}
	}

	var version releases.Version
	if opts.version != "" {
		version, err = releases.ParseVersion(strings.TrimPrefix(opts.version, "v"))
		if err != nil {
			return exitcodes.WrapError(exitcodes.InvalidArgs, "invalid --version", err)
		}
	} else {
		version, err = repo.LatestVersion(ctx, kind)
		if err != nil {
			return classifyError(fmt.Sprintf("failed to resolve latest %s", kind), err)
		}
	}

	if err := ensureDir(opts.dir); err != nil {
		return err
	}

	if !opts.quiet && p.Format() == ui.FormatText {
		p.Info(fmt.Sprintf("Fetching %s %s for %s", kind, version, platform))
	}
	progress, finish := newProgress(p, opts.quiet, "Downloading")
	archive, err := repo.DownloadFromDistribution(ctx, kind, version, platform, format, opts.dir, progress)
	finish()
	if err != nil {
		return classifyError(fmt.Sprintf("failed to download %s %s", kind, version), err)
	}

	res := downloadResult{
		Artifact: kind,
		Version:  version.String(),
		Platform: platform.Triple(),
		Archive:  archive,
	}
	if opts.extractTo != "" {
		if err := ensureDir(opts.extractTo); err != nil {
			return err
		}
		res.Binary, err = repo.ExtractArchive(archive, opts.extractTo)
		if err != nil {
			return classifyError("failed to extract archive", err)
		}
	}

	if ok, err := p.Structured(res); ok {
		return err
	}
	if opts.quiet {
		if res.Binary != "" {
			p.Textf("%s\n", res.Binary)
		} else {
			p.Textf("%s\n", res.Archive)
		}
		return nil
	}
	p.Success(fmt.Sprintf("Downloaded %s %s", kind, p.Colors.Version(version.String())))
	p.KeyValueLine("Archive", res.Archive)
	if res.Binary != "" {
		p.KeyValueLine("Binary", res.Binary)
	}
	return nil
}

// resolvePlatform parses an explicit --platform triple or detects the host.
func resolvePlatform(flag string, detect func() (releases.Platform, error)) (releases.Platform, error) {
	if flag != "" {
		platform, err := releases.ParsePlatform(flag)
		if err != nil {
			return 0, exitcodes.WrapError(exitcodes.InvalidArgs, "invalid --platform", err)
		}
		return platform, nil
	}
	platform, err := detect()
	if err != nil {
		return 0, classifyError("failed to detect platform", err)
	}
	return platform, nil
}

func init() {
	var opts downloadOpts
	cmd := &cobra.Command{
		Use:               "download <artifact>",
		Short:             "Download an artifact's archive from its distribution host",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: artifactCompletion,
		Example: "  sn-releases download safenode\n" +
			"  sn-releases download safe --version 0.83.51 --extract-to ./bin\n" +
			"  sn-releases download faucet --platform x86_64-pc-windows-msvc",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseArtifactArg(args[0])
			if err != nil {
				return err
			}
			repo, cfg, p, err := repositoryFromFlags()
			if err != nil {
				return err
			}
			o := opts
			if o.dir == "" {
				o.dir = cfg.DownloadDir
			}
			o.quiet = flagQuiet
			return runDownloadCore(cmd.Context(), repo, kind, o, releases.DetectPlatform, p)
		},
	}
	cmd.Flags().StringVar(&opts.version, "version", "", "Version to download (default: latest)")
	cmd.Flags().StringVar(&opts.platform, "platform", "", "Target triple (default: this host)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Archive format: tar.gz|zip (default: per platform)")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Directory for the archive (default: download_dir from config)")
	cmd.Flags().StringVar(&opts.extractTo, "extract-to", "", "Extract the binary into this directory")
	rootCmd.AddCommand(cmd)
}
