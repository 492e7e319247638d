package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/law-makers/filters/internal/script"
	"github.com/law-makers/filters/internal/source"
)

func newEvalCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "eval <expression> [file...]",
		Short: "Evaluate a JavaScript expression against the input lines",
		Long: `Evaluates a JavaScript expression. Every registered filter is a global
function and the input lines are bound to the array "lines". The result is
printed as JSON.`,
		Example: `  # Pick a single header
  curl -sI https://example.com | filters eval 'html_headers(lines)["content-type"]'

  # Count parsed headers
  filters eval 'Object.keys(html_headers(lines)).length' headers.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := GetAppFromCmd(cmd)
			if a == nil {
				return fmt.Errorf("application not initialized")
			}

			lines, err := source.Collect(args[1:], cmd.InOrStdin(), false)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			result, err := script.Eval(ctx, a.Filters, args[0], lines)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Abort evaluation after this long")
	return cmd
}
