package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/law-makers/filters/internal/source"
	"github.com/law-makers/filters/internal/utils/output"
)

func newParseCmd() *cobra.Command {
	var fromHTML bool

	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse header lines into a name/value mapping",
		Long: `Reads "Key: Value" lines from the given files (or stdin) and prints the
resulting mapping. A repeated key keeps the value of its last line.`,
		Example: `  # Parse a saved response header block
  curl -sI https://example.com | filters parse

  # Print as a markdown table
  filters parse headers.txt --format=markdown

  # Use the http-equiv meta tags of an HTML page
  filters parse page.html --html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := GetAppFromCmd(cmd)
			if a == nil {
				return fmt.Errorf("application not initialized")
			}

			lines, err := source.Collect(args, cmd.InOrStdin(), fromHTML)
			if err != nil {
				return err
			}

			result, err := a.Apply(lines)
			if err != nil {
				return err
			}

			log.Debug().Str("format", a.Config.Format).Int("entries", len(result)).Msg("Writing result")
			return output.Write(cmd.OutOrStdout(), a.Config.Format, result)
		},
	}

	cmd.Flags().BoolVar(&fromHTML, "html", false, "Treat input as HTML and read <meta http-equiv> tags")
	return cmd
}
