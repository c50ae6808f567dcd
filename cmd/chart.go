/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmuldo/pigmix/pigment"
	"github.com/mmuldo/pigmix/theme"
)

func newChartCmd() *cobra.Command {
	var (
		name     string
		steps    int
		format   string
		template string
		out      string
		sorted   bool
		set      map[string]string
	)

	chartCmd := &cobra.Command{
		Use:   "chart [COLOR...]",
		Short: "Builds a mixing chart and renders it",
		Long: `Mixes every pair of the given colors (all reference paints when none are
given) in --steps increments and renders the chart as css, gpl or json, or
through a pongo2 template file.

Template files see name, entries (each with name, hex, r, g, b, a, b_name
and t), colors, columns, background and foreground. --set overrides any of
them, for example --set background=#000000.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bases, e := chartBases(args)
			if e != nil {
				return e
			}

			c, e := theme.Build(name, bases, steps)
			if e != nil {
				return e
			}
			if sorted {
				c.SortByLightness()
			}

			opts := make(map[string]interface{}, len(set))
			for k, v := range set {
				opts[k] = v
			}

			var o string
			if template != "" {
				o, e = theme.RenderFile(c, template, opts)
			} else {
				o, e = theme.Render(c, format, opts)
			}
			if e != nil {
				return e
			}

			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), o)
				return nil
			}
			if e = os.WriteFile(out, []byte(o), 0644); e != nil {
				return e
			}
			pigment.Logger().Info("wrote chart", "path", out, "entries", len(c.Entries))
			return nil
		},
	}

	chartCmd.Flags().StringVar(&name, "name", "pigmix", "chart name")
	chartCmd.Flags().IntVarP(&steps, "steps", "s", 4, "mixes per pair of colors, plus one")
	chartCmd.Flags().StringVarP(&format, "format", "f", "css", "output format: css, gpl or json")
	chartCmd.Flags().StringVar(&template, "template", "", "render through this pongo2 template instead")
	chartCmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	chartCmd.Flags().BoolVar(&sorted, "sort", false, "order entries from dark to light")
	chartCmd.Flags().StringToStringVar(&set, "set", nil, "template values to override, key=value")
	return chartCmd
}

// chartBases resolves args to named colors. Reference paints keep their
// names; anything else is named as written.
func chartBases(args []string) ([]pigment.Pigment, error) {
	if len(args) == 0 {
		return pigment.Pigments, nil
	}

	bases := make([]pigment.Pigment, len(args))
	for i, a := range args {
		if p, ok := pigment.PigmentByName(a); ok {
			bases[i] = p
			continue
		}
		c, e := pigment.ParseColor(a)
		if e != nil {
			return nil, e
		}
		bases[i] = pigment.Pigment{Name: a, Color: c}
	}
	return bases, nil
}
