package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/law-makers/filters/internal/ui"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := GetAppFromCmd(cmd)
			if a == nil {
				return fmt.Errorf("application not initialized")
			}
			w := cmd.OutOrStdout()

			registered := a.Filters.Filters()
			if len(registered) == 0 {
				fmt.Fprintln(w, ui.Info("No filters registered."))
				return nil
			}

			maxLen := 0
			for _, f := range registered {
				if len(f.Name) > maxLen {
					maxLen = len(f.Name)
				}
			}

			fmt.Fprintf(w, "%s\n", ui.Bold(fmt.Sprintf("Filters (%d)", len(registered))))
			for _, f := range registered {
				marker := " "
				if f.Name == a.Config.Filter {
					marker = "*"
				}
				padding := strings.Repeat(" ", maxLen-len(f.Name)+2)
				fmt.Fprintf(w, "%s %s%s%s%s%s%s%s\n",
					marker,
					ui.ColorCyan, f.Name, ui.ColorReset,
					padding,
					ui.ColorDim, f.Description, ui.ColorReset)
			}
			return nil
		},
	}
}
