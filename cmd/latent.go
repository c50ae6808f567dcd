package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	pimg "github.com/mmuldo/pigmix/image"
	"github.com/mmuldo/pigmix/pigment"
)

func newLatentCmd() *cobra.Command {
	var texture string

	latentCmd := &cobra.Command{
		Use:   "latent [COLOR...]",
		Short: "Shows colors in pigment space",
		Long: `Prints the four pigment concentrations and the RGB residual of each color,
and the color they map back to.

--texture writes the lookup table as a 512x512 PNG, an 8x8 grid of tiles
with one tile per blue level, for sampling on the GPU.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if texture != "" {
				lut, e := pigment.DefaultLUT()
				if e != nil {
					return e
				}
				if e = pimg.Save(texture, lut.Texture()); e != nil {
					return e
				}
				pigment.Logger().Info("wrote texture", "path", texture, "checksum", fmt.Sprintf("%08x", lut.Checksum()))
			}

			colors, e := parseColors(args)
			if e != nil {
				return e
			}

			o := output(cmd)
			for _, c := range colors {
				z := c.Latent()
				k, r := z.Concentrations(), z.Residual()
				br, bg, bb := pigment.LatentToRGB(z)
				back := pigment.RGB(br, bg, bb)

				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", swatch(o, c), c.Hex())
				fmt.Fprintf(cmd.OutOrStdout(), "  concentrations %.6f %.6f %.6f %.6f\n", k[0], k[1], k[2], k[3])
				fmt.Fprintf(cmd.OutOrStdout(), "  residual       %.6f %.6f %.6f\n", r[0], r[1], r[2])
				fmt.Fprintf(cmd.OutOrStdout(), "  back           %s\n", back.Hex())
			}
			return nil
		},
	}

	latentCmd.Flags().StringVar(&texture, "texture", "", "write the lookup table texture to this PNG file")
	return latentCmd
}
