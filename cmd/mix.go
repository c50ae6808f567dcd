package cmd

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/spf13/cobra"

	"github.com/mmuldo/pigmix/palette"
	"github.com/mmuldo/pigmix/pigment"
)

var errWeights = errors.New("need one weight per color")

func newMixCmd() *cobra.Command {
	var (
		t       float32
		weights []float32
		linear  bool
		float   bool
	)

	mixCmd := &cobra.Command{
		Use:   "mix COLOR COLOR [COLOR...]",
		Short: "Mixes two or more colors",
		Long: `Mixes colors like paint. Two colors are mixed at ratio --t (0 gives the
first color, 1 the second). More colors are mixed in equal parts unless
--weights gives one weight per color.

The output also shows the plain RGB average and how far the pigment mix is
from it in CIEDE2000.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, e := parseColors(args)
			if e != nil {
				return e
			}

			var w []float32
			switch {
			case len(weights) > 0:
				if len(weights) != len(colors) {
					return fmt.Errorf("%w: got %d weights for %d colors", errWeights, len(weights), len(colors))
				}
				if w, e = normalize(weights); e != nil {
					return e
				}
			case len(colors) == 2:
				w = []float32{1 - t, t}
			default:
				w = make([]float32, len(colors))
				for i := range w {
					w[i] = 1 / float32(len(colors))
				}
			}

			o := output(cmd)
			var mix pigment.Color
			switch {
			case linear && len(colors) == 2:
				a, b := linearFloat(colors[0]), linearFloat(colors[1])
				f := pigment.LerpLinearFloat(a, b, w[1])
				fmt.Fprintf(cmd.OutOrStdout(), "linear %.6f %.6f %.6f\n", f.R, f.G, f.B)
				mix = pigment.FloatRGB(
					pigment.LinearToSRGB(f.R),
					pigment.LinearToSRGB(f.G),
					pigment.LinearToSRGB(f.B),
				).Color()
			case float && len(colors) == 2:
				f := pigment.LerpFloat(colors[0].Float(), colors[1].Float(), w[1])
				fmt.Fprintf(cmd.OutOrStdout(), "float %.6f %.6f %.6f\n", f.R, f.G, f.B)
				mix = f.Color()
			case len(colors) == 2:
				mix = pigment.Lerp(colors[0], colors[1], w[1])
			default:
				mix = mixWeighted(colors, w)
			}

			naive := average(colors, w)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s rgb(%d, %d, %d)\n", swatch(o, mix), mix.Hex(), mix.R, mix.G, mix.B)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s rgb average, ΔE00 %.2f\n", swatch(o, naive), naive.Hex(), palette.Distance(mix, naive))
			return nil
		},
	}

	mixCmd.Flags().Float32VarP(&t, "t", "t", 0.5, "mixing ratio for two colors")
	mixCmd.Flags().Float32SliceVarP(&weights, "weights", "w", nil, "one weight per color")
	mixCmd.Flags().BoolVar(&linear, "linear", false, "mix in linear light (two colors only)")
	mixCmd.Flags().BoolVar(&float, "float", false, "mix with float precision (two colors only)")
	return mixCmd
}

// mixWeighted sums the latent vectors of colors by weight. Alpha is
// dropped.
func mixWeighted(colors []pigment.Color, weights []float32) pigment.Color {
	var z pigment.Latent
	for k, c := range colors {
		zk := c.Latent()
		for i := range z {
			z[i] = z[i] + float32(weights[k]*zk[i])
		}
	}
	r, g, b := pigment.LatentToRGB(z)
	return pigment.RGB(r, g, b)
}

// average is the weighted mean of colors in sRGB, the way light mixes on a
// screen.
func average(colors []pigment.Color, weights []float32) pigment.Color {
	var r, g, b float32
	for k, c := range colors {
		r += weights[k] * float32(c.R)
		g += weights[k] * float32(c.G)
		b += weights[k] * float32(c.B)
	}
	return pigment.FloatRGB(r/255, g/255, b/255).Color()
}

// normalize scales weights to sum to one. Sums already within rounding of
// one are left alone.
func normalize(weights []float32) ([]float32, error) {
	var sum float32
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: %v is negative", errWeights, w)
		}
		sum += w
	}
	if sum == 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", errWeights)
	}
	if math32.Abs(sum-1) < 1e-6 {
		return weights, nil
	}

	out := make([]float32, len(weights))
	for i, w := range weights {
		out[i] = w / sum
	}
	return out, nil
}

func linearFloat(c pigment.Color) pigment.FloatColor {
	f := c.Float()
	return pigment.FloatRGB(
		pigment.SRGBToLinear(f.R),
		pigment.SRGBToLinear(f.G),
		pigment.SRGBToLinear(f.B),
	)
}
