package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/pigmix/palette"
	"github.com/mmuldo/pigmix/pigment"
)

var (
	// ErrUnknownFormat is returned by Render for a format with no built-in
	// template.
	ErrUnknownFormat = errors.New("theme: unknown output format")

	// ErrEmptyChart is returned by Build when there is nothing to mix.
	ErrEmptyChart = errors.New("theme: chart needs at least one color")
)

// Entry is one swatch of a chart. Base colors have empty A and B.
type Entry struct {
	Name  string
	A, B  string
	T     float32
	Color pigment.Color
}

// Chart is a named set of pigment mixes built from a few base colors.
type Chart struct {
	Name    string
	Entries []Entry
}

type byLightness []Entry

func (es byLightness) Len() int { return len(es) }
func (es byLightness) Less(i, j int) bool {
	return palette.RGBToLab(es[i].Color).L() < palette.RGBToLab(es[j].Color).L()
}
func (es byLightness) Swap(i, j int) { es[i], es[j] = es[j], es[i] }

// Build mixes every pair of bases in steps even increments. The chart lists
// the bases first, then the mixes of each pair in order of increasing
// share of the second color.
func Build(name string, bases []pigment.Pigment, steps int) (*Chart, error) {
	if len(bases) == 0 {
		return nil, ErrEmptyChart
	}
	if steps < 2 {
		steps = 2
	}

	c := &Chart{Name: name}
	for _, p := range bases {
		c.Entries = append(c.Entries, Entry{Name: Slug(p.Name), Color: p.Color})
	}

	for i := 0; i < len(bases); i++ {
		za := bases[i].Color.Latent()
		for j := i + 1; j < len(bases); j++ {
			zb := bases[j].Color.Latent()
			a, b := Slug(bases[i].Name), Slug(bases[j].Name)
			for k := 1; k < steps; k++ {
				t := float32(k) / float32(steps)
				r, g, bl := pigment.LatentToRGB(pigment.LerpLatent(za, zb, t))
				c.Entries = append(c.Entries, Entry{
					Name:  fmt.Sprintf("%s+%s-%d", a, b, k*100/steps),
					A:     a,
					B:     b,
					T:     t,
					Color: pigment.RGB(r, g, bl),
				})
			}
		}
	}

	pigment.Logger().Debug("built chart", "name", name, "bases", len(bases), "entries", len(c.Entries))
	return c, nil
}

// Colors maps entry names to hex strings.
func (c *Chart) Colors() map[string]string {
	m := make(map[string]string, len(c.Entries))
	for _, e := range c.Entries {
		m[e.Name] = e.Color.Hex()
	}
	return m
}

// SortByLightness orders the entries from darkest to lightest by Lab L.
func (c *Chart) SortByLightness() {
	sort.Stable(byLightness(c.Entries))
}

// Context returns the template context for c. Keys in opts override the
// computed ones.
//
// Available keys: name, entries (name, hex, r, g, b, a, b_name, t),
// colors, columns, background (darkest entry) and foreground (lightest).
func (c *Chart) Context(opts map[string]interface{}) pongo2.Context {
	entries := make([]map[string]interface{}, len(c.Entries))
	for i, e := range c.Entries {
		entries[i] = map[string]interface{}{
			"name":   e.Name,
			"hex":    e.Color.Hex(),
			"r":      int(e.Color.R),
			"g":      int(e.Color.G),
			"b":      int(e.Color.B),
			"a":      e.A,
			"b_name": e.B,
			"t":      e.T,
		}
	}

	ctx := pongo2.Context{
		"name":    c.Name,
		"entries": entries,
		"colors":  c.Colors(),
		"columns": columns(c),
	}
	setDefaults(c, ctx)

	for k, v := range opts {
		ctx[k] = v
	}
	return ctx
}

// Render renders c in a built-in format: css, gpl or json.
func Render(c *Chart, format string, opts map[string]interface{}) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		return renderJSON(c)
	case "css":
		return cssTemplate.Execute(c.Context(opts))
	case "gpl":
		return gplTemplate.Execute(c.Context(opts))
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// RenderFile renders c through the pongo2 template at path.
func RenderFile(c *Chart, path string, opts map[string]interface{}) (string, error) {
	tpl, e := pongo2.FromFile(path)
	if e != nil {
		return "", e
	}

	return tpl.Execute(c.Context(opts))
}

// Slug lowercases s and joins its words with dashes.
func Slug(s string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "-")
}

type jsonEntry struct {
	Name string  `json:"name"`
	Hex  string  `json:"hex"`
	A    string  `json:"a,omitempty"`
	B    string  `json:"b,omitempty"`
	T    float32 `json:"t,omitempty"`
}

func renderJSON(c *Chart) (string, error) {
	out := struct {
		Name    string      `json:"name"`
		Entries []jsonEntry `json:"entries"`
	}{Name: c.Name, Entries: make([]jsonEntry, len(c.Entries))}

	for i, e := range c.Entries {
		out.Entries[i] = jsonEntry{e.Name, e.Color.Hex(), e.A, e.B, e.T}
	}

	b, e := json.MarshalIndent(out, "", "  ")
	if e != nil {
		return "", e
	}
	return string(b) + "\n", nil
}

func columns(c *Chart) int {
	n := 0
	for _, e := range c.Entries {
		if e.A == "" {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

func setDefaults(c *Chart, ctx pongo2.Context) {
	if len(c.Entries) == 0 {
		return
	}

	sorted := make([]Entry, len(c.Entries))
	copy(sorted, c.Entries)
	sort.Stable(byLightness(sorted))

	ctx["background"] = sorted[0].Color.Hex()
	ctx["foreground"] = sorted[len(sorted)-1].Color.Hex()
}
