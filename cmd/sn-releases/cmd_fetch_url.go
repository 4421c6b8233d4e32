package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/netrelease/sn-releases/internal/releases"
	"github.com/netrelease/sn-releases/internal/ui"
)

type fetchResult struct {
	URL     string `json:"url" yaml:"url"`
	Archive string `json:"archive" yaml:"archive"`
}

// runFetchURLCore downloads an arbitrary tar.gz or zip archive into dir.
func runFetchURLCore(ctx context.Context, repo releases.Repository, url, dir string, p ui.Printer, quiet bool) error {
	if err := ensureDir(dir); err != nil {
		return err
	}

	progress, finish := newProgress(p, quiet, "Downloading")
	archive, err := repo.Download(ctx, url, dir, progress)
	finish()
	if err != nil {
		return classifyError("failed to fetch "+url, err)
	}

	if ok, err := p.Structured(fetchResult{URL: url, Archive: archive}); ok {
		return err
	}
	if quiet {
		p.Textf("%s\n", archive)
		return nil
	}
	p.Success("Saved " + archive)
	return nil
}

func init() {
	var dir string
	cmd := &cobra.Command{
		Use:   "fetch-url <url>",
		Short: "Download a tar.gz or zip archive from an arbitrary URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, cfg, p, err := repositoryFromFlags()
			if err != nil {
				return err
			}
			d := dir
			if d == "" {
				d = cfg.DownloadDir
			}
			return runFetchURLCore(cmd.Context(), repo, args[0], d, p, flagQuiet)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Destination directory (default: download_dir from config)")
	rootCmd.AddCommand(cmd)
}
