package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the site data and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			page := e.page()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", e.site.Hero.Title)
			fmt.Fprintf(out, "  works:      %d\n", len(page.Cards))
			fmt.Fprintf(out, "  experience: %d\n", len(page.Jobs))
			for _, job := range page.Jobs {
				fmt.Fprintf(out, "    %-24s %s\n", job.Company, job.Range)
			}
			skills := 0
			for _, st := range page.Stacks {
				skills += len(st.Skills)
			}
			fmt.Fprintf(out, "  skills:     %d in %d stacks\n", skills, len(page.Stacks))
			return nil
		},
	}
}
