package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordanhk/resolvo/internal/gitx"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show conflicted files and their planned strategies",
	Long:  `Display the repository's unmerged paths, how each would be resolved, and what is already staged.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		eng, err := newEngine(ctx)
		if errors.Is(err, gitx.ErrNotRepository) {
			PrintInfo("Not inside a git repository.")
			return nil
		}
		if err != nil {
			return err
		}

		result, err := eng.Status(ctx)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintInfo(fmt.Sprintf("Repository: %s", result.Root))
		if len(result.Conflicted) == 0 {
			PrintInfo("No merge conflicts detected.")
		} else {
			PrintInfo(fmt.Sprintf("%s:", PrintCount(len(result.Conflicted), "conflicted file", "conflicted files")))
			for _, c := range result.Conflicted {
				PrintInfo(fmt.Sprintf("  %-40s %s", c.Path, c.Strategy))
			}
		}
		if len(result.Staged) > 0 {
			PrintInfo(fmt.Sprintf("\n%s staged for commit:", PrintCount(len(result.Staged), "path", "paths")))
			PrintList(result.Staged, 1)
		}
		return nil
	},
}
