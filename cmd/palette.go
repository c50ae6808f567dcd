package cmd

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/spf13/cobra"

	pimg "github.com/mmuldo/pigmix/image"
	"github.com/mmuldo/pigmix/palette"
	"github.com/mmuldo/pigmix/pigment"
	"github.com/mmuldo/pigmix/theme"
)

func newPaletteCmd() *cobra.Command {
	var (
		num    int
		steps  int
		size   int
		out    string
		format string
	)

	paletteCmd := &cobra.Command{
		Use:   "palette IMAGE",
		Short: "Extracts a palette from an image and mixes it",
		Long: `Quantizes an image down to --colors dominant colors, names each after the
closest reference paint and mixes every pair of them. --out writes the
resulting swatches as a PNG; --format prints them as a chart instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, e := pimg.Load(args[0])
			if e != nil {
				return e
			}

			ranked, e := pimg.Dominant(img, num)
			if e != nil {
				return fmt.Errorf("%s: %w", args[0], e)
			}

			refs := make([]color.Color, len(pigment.Pigments))
			for i, p := range pigment.Pigments {
				refs[i] = p.Color
			}

			o := output(cmd)
			bases := make([]pigment.Pigment, len(ranked))
			for i, cc := range ranked {
				bases[i] = pigment.Pigment{Name: "color" + strconv.Itoa(i), Color: cc.Color}
				if format != "" {
					continue
				}
				near := pigment.Pigments[palette.Nearest(cc.Color, refs)]
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s color%d %6d px  near %s (ΔE00 %.1f)\n",
					swatch(o, cc.Color), cc.Color.Hex(), i, cc.Count, near.Name, palette.Distance(cc.Color, near.Color))
			}

			chart, e := theme.Build(args[0], bases, steps)
			if e != nil {
				return e
			}

			if format != "" {
				s, e := theme.Render(chart, format, nil)
				if e != nil {
					return e
				}
				fmt.Fprint(cmd.OutOrStdout(), s)
			}

			if out != "" {
				cs := make([]color.Color, len(chart.Entries))
				for i, en := range chart.Entries {
					cs[i] = en.Color
				}
				return pimg.Save(out, pimg.Swatches(cs, size, len(bases)))
			}
			return nil
		},
	}

	paletteCmd.Flags().IntVarP(&num, "colors", "n", 6, "number of dominant colors")
	paletteCmd.Flags().IntVarP(&steps, "steps", "s", 2, "mixes per pair of colors, plus one")
	paletteCmd.Flags().IntVar(&size, "size", 64, "swatch size in pixels")
	paletteCmd.Flags().StringVarP(&out, "out", "o", "", "write swatches to this PNG file")
	paletteCmd.Flags().StringVarP(&format, "format", "f", "", "print the chart as css, gpl or json")
	return paletteCmd
}
