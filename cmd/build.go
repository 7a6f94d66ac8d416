package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/render"
)

func newBuildCmd(root *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the portfolio as a static site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := render.WriteSite(out, render.NewDocument(e.page(), e.cfg.Locale)); err != nil {
				return err
			}
			e.logger.WithField("out", out).Info("site written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "public", "Output directory")
	return cmd
}
