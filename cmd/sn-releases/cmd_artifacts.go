package main

import (
	"github.com/spf13/cobra"

	"github.com/netrelease/sn-releases/internal/releases"
	"github.com/netrelease/sn-releases/internal/ui"
)

type artifactInfo struct {
	Name    string `json:"name" yaml:"name"`
	Key     string `json:"key" yaml:"key"`
	Source  string `json:"source" yaml:"source"`
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// runArtifactsCore lists every known artifact with where its versions come
// from. baseURL resolves config overrides.
func runArtifactsCore(baseURL func(releases.ArtifactKind) string, p ui.Printer) error {
	var list []artifactInfo
	for _, k := range releases.AllArtifactKinds() {
		list = append(list, artifactInfo{
			Name:    k.String(),
			Key:     k.ResolverKey(),
			Source:  k.Stream().String(),
			BaseURL: baseURL(k),
		})
	}

	if ok, err := p.Structured(list); ok {
		return err
	}
	rows := make([][]string, len(list))
	for i, a := range list {
		rows[i] = []string{a.Name, a.Key, a.Source, a.BaseURL}
	}
	p.Textf("%s", ui.Table(p.Colors, []string{"ARTIFACT", "KEY", "SOURCE", "DISTRIBUTION"}, rows))
	return nil
}

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "List the artifacts that can be resolved and downloaded",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadCfg()
		if err != nil {
			return err
		}
		client := releases.New(cfg.Releases())
		return runArtifactsCore(client.BaseURL, getPrinter())
	},
}

func init() {
	rootCmd.AddCommand(artifactsCmd)
}
