package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/netrelease/sn-releases/internal/exitcodes"
	"github.com/netrelease/sn-releases/internal/ui"
)

type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
}

func runVersionCore(p ui.Printer) error {
	info := versionInfo{Version: Version, Commit: Commit, BuildDate: BuildDate}
	if ok, err := p.Structured(info); ok {
		return err
	}
	p.Textf("sn-releases %s (%s) built %s\n", Version, Commit, BuildDate)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersionCore(getPrinter())
	},
}

var completionCmd = &cobra.Command{
	Use:       "completion [bash|zsh|fish|powershell]",
	Short:     "Generate shell completion",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		default:
			return exitcodes.InvalidArgsErrorf("unknown shell: %s", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
