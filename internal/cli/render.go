package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/law-makers/filters/internal/render"
	"github.com/law-makers/filters/internal/source"
	"github.com/law-makers/filters/internal/ui"
)

func newRenderCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "render <template-file> [input-file]",
		Short: "Render a text/template with the filters available",
		Long: `Renders a Go text/template. Every registered filter is available as a
template function, together with "lines" which splits text into lines.

The template data has two fields: .Text holds the raw input and .Lines the
input split into lines.`,
		Example: `  # Print one header from a response
  curl -sI https://example.com | filters render server.tmpl

  # server.tmpl
  {{ index (html_headers .Lines) "Server" }}`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := GetAppFromCmd(cmd)
			if a == nil {
				return fmt.Errorf("application not initialized")
			}

			tmpl, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read template: %w", err)
			}

			inputPath := ""
			if len(args) > 1 {
				inputPath = args[1]
			}
			rc, err := source.Open(inputPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			text, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			var buf bytes.Buffer
			err = render.Render(&buf, filepath.Base(args[0]), string(tmpl), a.Filters, render.NewInput(string(text)))
			if err != nil {
				return err
			}

			if outputPath == "" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			log.Info().Str("file", outputPath).Msg("Output saved")
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Success("✓ Saved to "+outputPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "File path to save the rendered output")
	return cmd
}
