package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netrelease/sn-releases/internal/exitcodes"
	"github.com/netrelease/sn-releases/internal/releases"
	"github.com/netrelease/sn-releases/internal/ui"
)

type latestResult struct {
	Artifact releases.ArtifactKind `json:"artifact" yaml:"artifact"`
	Version  string                `json:"version" yaml:"version"`
	Source   string                `json:"source" yaml:"source"`
}

// runLatestCore resolves and prints the newest version of kind.
func runLatestCore(ctx context.Context, repo releases.Repository, kind releases.ArtifactKind, p ui.Printer, quiet bool) error {
	v, err := repo.LatestVersion(ctx, kind)
	if err != nil {
		return classifyError(fmt.Sprintf("failed to resolve latest %s", kind), err)
	}

	res := latestResult{Artifact: kind, Version: v.String(), Source: kind.Stream().String()}
	if ok, err := p.Structured(res); ok {
		return err
	}
	if quiet {
		p.Textf("%s\n", v)
		return nil
	}
	p.KeyValueLine(kind.String(), p.Colors.Version(v.String()))
	return nil
}

func parseArtifactArg(name string) (releases.ArtifactKind, error) {
	kind, err := releases.ParseArtifactKind(name)
	if err != nil {
		return 0, exitcodes.WrapError(exitcodes.InvalidArgs, "run 'sn-releases artifacts' for the list", err)
	}
	return kind, nil
}

func artifactCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, k := range releases.AllArtifactKinds() {
		names = append(names, k.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

var latestCmd = &cobra.Command{
	Use:               "latest <artifact>",
	Short:             "Show the latest published version of an artifact",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: artifactCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseArtifactArg(args[0])
		if err != nil {
			return err
		}
		repo, _, p, err := repositoryFromFlags()
		if err != nil {
			return err
		}
		return runLatestCore(cmd.Context(), repo, kind, p, flagQuiet)
	},
}

func init() {
	rootCmd.AddCommand(latestCmd)
}
