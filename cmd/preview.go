package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/render"
)

func newPreviewCmd(root *rootOptions) *cobra.Command {
	var (
		width    int
		style    string
		markdown bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the portfolio to the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if markdown {
				return render.Markdown(cmd.OutOrStdout(), e.page())
			}
			return render.Terminal(cmd.OutOrStdout(), e.page(), width, style)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Wrap width (0 for the renderer default)")
	cmd.Flags().StringVar(&style, "style", "", "Glamour style (dark, light, notty); auto-detected when empty")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print raw markdown instead of styled output")
	return cmd
}
