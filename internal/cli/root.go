package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
)

// rootCmd is the root command for resolvo.
var rootCmd = &cobra.Command{
	Use:     "resolvo",
	Version: "dev",
	Short:   "Automated merge-conflict resolution for git repositories",
	Long: `resolvo resolves merge conflicts non-interactively under a fixed policy.

Documentation files keep the incoming branch's version, JSON/config files
are deep-merged retaining keys from both sides, and everything else keeps
the current branch's content. Run it after a merge attempt leaves the
working tree conflicted.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion sets the version reported by the root command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the resolvo CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(statusCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
