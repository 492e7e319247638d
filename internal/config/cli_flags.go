package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors")
	cmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")
	cmd.PersistentFlags().StringP("format", "f", "", "Output format: json, csv, markdown, html, or text")
	cmd.PersistentFlags().String("filter", "", "Filter to apply (default html_headers)")
	cmd.PersistentFlags().String("env-file", "", "Path to a .env file (optional)")
}
