package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/netrelease/sn-releases/internal/releases"
	"github.com/netrelease/sn-releases/internal/ui"
)

type platformResult struct {
	Platform string `json:"platform" yaml:"platform"`
	Format   string `json:"format" yaml:"format"`
	GOOS     string `json:"goos" yaml:"goos"`
	GOARCH   string `json:"goarch" yaml:"goarch"`
}

func runPlatformCore(detect func() (releases.Platform, error), p ui.Printer) error {
	platform, err := detect()
	if err != nil {
		return classifyError("failed to detect platform", err)
	}

	res := platformResult{
		Platform: platform.Triple(),
		Format:   platform.ArchiveFormat().String(),
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
	}
	if ok, err := p.Structured(res); ok {
		return err
	}
	p.KeyValueLine("Platform", res.Platform)
	p.KeyValueLine("Archive format", res.Format)
	return nil
}

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the distribution platform detected for this host",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlatformCore(releases.DetectPlatform, getPrinter())
	},
}

func init() {
	rootCmd.AddCommand(platformCmd)
}
