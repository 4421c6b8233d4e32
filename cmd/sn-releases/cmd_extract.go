package main

import (
	"github.com/spf13/cobra"

	"github.com/netrelease/sn-releases/internal/releases"
	"github.com/netrelease/sn-releases/internal/ui"
)

type extractResult struct {
	Archive string `json:"archive" yaml:"archive"`
	Path    string `json:"path" yaml:"path"`
}

// runExtractCore unpacks the binary from a downloaded archive into dir.
func runExtractCore(repo releases.Repository, archive, dir string, p ui.Printer, quiet bool) error {
	if err := ensureDir(dir); err != nil {
		return err
	}
	path, err := repo.ExtractArchive(archive, dir)
	if err != nil {
		return classifyError("failed to extract "+archive, err)
	}

	if ok, err := p.Structured(extractResult{Archive: archive, Path: path}); ok {
		return err
	}
	if quiet {
		p.Textf("%s\n", path)
		return nil
	}
	p.Success("Extracted " + path)
	return nil
}

func init() {
	var dir string
	cmd := &cobra.Command{
		Use:   "extract <archive>",
		Short: "Extract the binary from a .tar.gz or .zip archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, p, err := repositoryFromFlags()
			if err != nil {
				return err
			}
			return runExtractCore(repo, args[0], dir, p, flagQuiet)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "Destination directory")
	rootCmd.AddCommand(cmd)
}
