package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	pimg "github.com/mmuldo/pigmix/image"
	"github.com/mmuldo/pigmix/pigment"
)

func newGradientCmd() *cobra.Command {
	var (
		steps  int
		width  int
		height int
		out    string
	)

	gradientCmd := &cobra.Command{
		Use:   "gradient COLOR COLOR",
		Short: "Renders the pigment mixes between two colors",
		Long: `Prints the colors of a gradient from the first color to the second. With
--out the gradient is also written as a PNG, banded when --steps is above
one and smooth otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, e := parseColors(args)
			if e != nil {
				return e
			}
			a, b := colors[0], colors[1]

			if out != "" {
				if width < 1 || height < 1 {
					return fmt.Errorf("bad image size %dx%d", width, height)
				}
				if e := pimg.Save(out, pimg.Gradient(a, b, steps, width, height)); e != nil {
					return e
				}
				pigment.Logger().Info("wrote gradient", "path", out, "width", width, "height", height)
			}

			n := steps
			if n < 2 {
				n = 5
			}
			o := output(cmd)
			za, zb := a.Latent(), b.Latent()
			for i := 0; i < n; i++ {
				t := float32(i) / float32(n-1)
				r, g, bl := pigment.LatentToRGB(pigment.LerpLatent(za, zb, t))
				c := pigment.RGB(r, g, bl)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %.3f\n", swatch(o, c), c.Hex(), t)
			}
			return nil
		},
	}

	gradientCmd.Flags().IntVarP(&steps, "steps", "s", 0, "number of flat bands (0 for smooth)")
	gradientCmd.Flags().IntVar(&width, "width", 512, "image width")
	gradientCmd.Flags().IntVar(&height, "height", 64, "image height")
	gradientCmd.Flags().StringVarP(&out, "out", "o", "", "write the gradient to this PNG file")
	return gradientCmd
}
