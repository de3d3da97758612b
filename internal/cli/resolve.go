package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jordanhk/resolvo/internal/engine"
	"github.com/jordanhk/resolvo/internal/gitx"
)

var (
	resolveMessage  string
	resolveNoCommit bool
	resolveDryRun   bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve all merge conflicts and commit the result",
	Long: `Resolve every conflicted file in the repository.

Documentation files (readme.md) keep the incoming branch's version,
JSON/config files are deep-merged retaining keys from both sides, and
everything else keeps the current branch's content. On full success the
resolution is committed unless --no-commit is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		eng, err := newEngine(ctx)
		if errors.Is(err, gitx.ErrNotRepository) {
			// Nothing to resolve outside a repository; a no-op is success.
			PrintInfo("Not inside a git repository; nothing to resolve.")
			return nil
		}
		if err != nil {
			return err
		}

		result, err := eng.Resolve(ctx, &engine.ResolveRequest{DryRun: resolveDryRun})
		if err != nil {
			return err
		}

		var fin *engine.FinalizeResult
		if result.Success() && !resolveDryRun && !resolveNoCommit && result.Total > 0 {
			fin, err = eng.Finalize(ctx, &engine.FinalizeRequest{Message: resolveMessage})
			if err != nil {
				return err
			}
		}

		if jsonOutput {
			out := struct {
				*engine.ResolveResult
				Finalize *engine.FinalizeResult `json:"finalize,omitempty"`
			}{result, fin}
			if err := outputJSON(out); err != nil {
				return err
			}
			return unresolvedError(result)
		}

		if result.Total == 0 {
			PrintInfo("No merge conflicts detected.")
			return nil
		}

		PrintInfo(fmt.Sprintf("Found %s to resolve:", PrintCount(result.Total, "conflict", "conflicts")))
		paths := make([]string, 0, len(result.Outcomes))
		for _, o := range result.Outcomes {
			paths = append(paths, o.Path)
		}
		PrintList(paths, 1)
		fmt.Println()

		if resolveDryRun {
			for _, o := range result.Outcomes {
				PrintInfo(fmt.Sprintf("Would resolve %s using %s", o.Path, o.Strategy))
			}
			return nil
		}

		for _, o := range result.Outcomes {
			label := o.Strategy.String()
			if o.Fallback {
				label = fmt.Sprintf("%s, fell back to prefer-current", label)
			}
			switch {
			case o.Resolved && o.Fallback:
				PrintWarning(fmt.Sprintf("%s (%s)", o.Path, label))
			case o.Resolved:
				PrintSuccess(fmt.Sprintf("%s (%s)", o.Path, label))
			default:
				PrintError(fmt.Sprintf("%s (%s): %s", o.Path, label, o.Reason))
			}
		}

		fmt.Println()
		PrintInfo(fmt.Sprintf("Resolved %d/%d conflicts.", result.Resolved, result.Total))

		if err := unresolvedError(result); err != nil {
			return err
		}

		if resolveNoCommit {
			PrintDim("Skipping commit (--no-commit).")
			return nil
		}
		if fin != nil && fin.Committed {
			PrintSuccess(fmt.Sprintf("Committed resolution: %s", fin.Message))
		} else {
			PrintInfo("No changes to commit.")
		}
		return nil
	},
}

// unresolvedError converts a partial failure into a non-zero exit.
func unresolvedError(result *engine.ResolveResult) error {
	if result.Success() {
		return nil
	}
	return fmt.Errorf("unresolved conflicts: %s", strings.Join(result.FailedPaths(), ", "))
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveMessage, "message", "m", "", `Commit message (default "Auto-resolve merge conflicts")`)
	resolveCmd.Flags().BoolVar(&resolveNoCommit, "no-commit", false, "Resolve and stage without committing")
	resolveCmd.Flags().BoolVar(&resolveDryRun, "dry-run", false, "Show how conflicts would be resolved without resolving")
}
