package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/pigmix/pigment"
	"github.com/mmuldo/pigmix/theme"
)

func newPigmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pigments",
		Short: "Lists the reference paints",
		Long: `Lists the reference paints. Their names can be used anywhere a color is
expected, written with spaces, dashes or underscores.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := output(cmd)
			for _, p := range pigment.Pigments {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %-22s %s\n", swatch(o, p.Color), p.Color.Hex(), p.Name, theme.Slug(p.Name))
			}
			return nil
		},
	}
}
