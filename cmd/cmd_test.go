package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pimg "github.com/mmuldo/pigmix/image"
	"github.com/mmuldo/pigmix/pigment"
	"github.com/mmuldo/pigmix/theme"
)

// run executes the command tree with args and an empty config file.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "pigmix.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("{}\n"), 0644))
	return runWithConfig(t, cfg, args...)
}

func runWithConfig(t *testing.T, cfg string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { pigment.SetLogger(nil) })

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfg}, args...))

	e := root.Execute()
	return out.String(), errOut.String(), e
}

func TestMix(t *testing.T) {
	out, _, e := run(t, "mix", "#002185", "#fcd300")
	require.NoError(t, e)
	assert.Contains(t, out, "#298239 rgb(41, 130, 57)")
	assert.Contains(t, out, "rgb average")

	out, _, e = run(t, "mix", "cobalt blue", "hansa-yellow", "-t", "0.25")
	require.NoError(t, e)
	assert.Contains(t, out, "#0e5752")

	out, _, e = run(t, "mix", "black", "white")
	require.NoError(t, e)
	assert.Contains(t, out, "#7d7a7f")
}

func TestMixWeights(t *testing.T) {
	out, _, e := run(t, "mix", "#002185", "#fcd300", "#ffffff", "--weights", "0.3,0.6,0.1")
	require.NoError(t, e)
	assert.Contains(t, out, "#6bb234")

	// unnormalized weights are scaled to sum to one
	out, _, e = run(t, "mix", "#002185", "#fcd300", "--weights", "1,1")
	require.NoError(t, e)
	assert.Contains(t, out, "#298239")

	_, _, e = run(t, "mix", "#002185", "#fcd300", "--weights", "1")
	assert.True(t, errors.Is(e, errWeights))

	_, _, e = run(t, "mix", "#002185", "#fcd300", "--weights", "0,0")
	assert.True(t, errors.Is(e, errWeights))
}

func TestMixFloat(t *testing.T) {
	out, _, e := run(t, "mix", "#002185", "#fcd300", "--float")
	require.NoError(t, e)
	assert.True(t, strings.HasPrefix(out, "float "))

	out, _, e = run(t, "mix", "#002185", "#fcd300", "--linear")
	require.NoError(t, e)
	assert.True(t, strings.HasPrefix(out, "linear "))
}

func TestMixErrors(t *testing.T) {
	_, _, e := run(t, "mix", "#002185", "not-a-color")
	assert.True(t, errors.Is(e, pigment.ErrInvalidColor))

	_, _, e = run(t, "mix", "#002185")
	assert.Error(t, e)
}

func TestGradient(t *testing.T) {
	out, _, e := run(t, "gradient", "#002185", "#fcd300", "--steps", "3")
	require.NoError(t, e)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "#002185 0.000")
	assert.Contains(t, lines[1], "#298239 0.500")
	assert.Contains(t, lines[2], "#fcd300 1.000")

	out, _, e = run(t, "gradient", "#002185", "#fcd300")
	require.NoError(t, e)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)
}

func TestGradientPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.png")
	_, _, e := run(t, "gradient", "#002185", "#fcd300", "--out", path, "--width", "30", "--height", "4")
	require.NoError(t, e)

	img, e := pimg.Load(path)
	require.NoError(t, e)
	assert.Equal(t, image.Rect(0, 0, 30, 4), img.Bounds())

	_, _, e = run(t, "gradient", "#002185", "#fcd300", "--out", path, "--width", "0")
	assert.Error(t, e)
}

func TestChart(t *testing.T) {
	out, _, e := run(t, "chart", "cobalt blue", "hansa yellow", "--steps", "2")
	require.NoError(t, e)
	assert.Contains(t, out, "/* pigmix */")
	assert.Contains(t, out, "--cobalt-blue+hansa-yellow-50: #298239;")

	out, _, e = run(t, "chart", "cobalt blue", "hansa yellow", "--steps", "2", "--format", "gpl", "--name", "greens")
	require.NoError(t, e)
	assert.Contains(t, out, "Name: greens")
	assert.Contains(t, out, " 41 130  57\tcobalt-blue+hansa-yellow-50")

	out, _, e = run(t, "chart", "--steps", "2", "--format", "json")
	require.NoError(t, e)
	var got struct {
		Entries []json.RawMessage `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	n := len(pigment.Pigments)
	assert.Len(t, got.Entries, n+n*(n-1)/2)
}

func TestChartOptions(t *testing.T) {
	out, _, e := run(t, "chart", "white", "cobalt blue", "--steps", "2", "--set", "background=#000000", "--sort")
	require.NoError(t, e)
	assert.Contains(t, out, "--background: #000000;")
	assert.Less(t, strings.Index(out, "--cobalt-blue:"), strings.Index(out, "--white:"))

	_, _, e = run(t, "chart", "--format", "xml")
	assert.True(t, errors.Is(e, theme.ErrUnknownFormat))

	_, _, e = run(t, "chart", "mauve-ish")
	assert.True(t, errors.Is(e, pigment.ErrInvalidColor))
}

func TestChartTemplateAndOut(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "kitty.conf.tpl")
	require.NoError(t, os.WriteFile(tpl, []byte("background {{ background }}\nforeground {{ foreground }}\n"), 0644))

	path := filepath.Join(dir, "kitty.conf")
	out, _, e := run(t, "chart", "#002185", "#fcd300", "--template", tpl, "--out", path)
	require.NoError(t, e)
	assert.Empty(t, out)

	b, e := os.ReadFile(path)
	require.NoError(t, e)
	assert.Equal(t, "background #002185\nforeground #fcd300\n", string(b))
}

func TestPigments(t *testing.T) {
	out, _, e := run(t, "pigments")
	require.NoError(t, e)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(pigment.Pigments))
	assert.Contains(t, out, "#002185 Cobalt Blue")
	assert.Contains(t, out, "quinacridone-magenta")
}

func TestLatent(t *testing.T) {
	out, _, e := run(t, "latent", "white", "#002185")
	require.NoError(t, e)
	assert.Contains(t, out, "concentrations 0.000000 0.000000 0.000000 1.000000")
	assert.Contains(t, out, "back           #ffffff")
	assert.Contains(t, out, "concentrations 0.864452")
	assert.Contains(t, out, "back           #002185")
}

func TestLatentTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lut.png")
	_, _, e := run(t, "latent", "--texture", path)
	require.NoError(t, e)

	img, e := pimg.Load(path)
	require.NoError(t, e)
	assert.Equal(t, image.Rect(0, 0, pigment.TextureSize, pigment.TextureSize), img.Bounds())
}

func TestPalette(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	colors := []pigment.Color{pigment.RGB(0, 33, 133), pigment.RGB(252, 211, 0)}
	require.NoError(t, pimg.Save(src, pimg.Gradient(colors[0], colors[1], 2, 40, 40)))

	swatches := filepath.Join(dir, "swatches.png")
	out, _, e := run(t, "palette", src, "--colors", "2", "--out", swatches, "--size", "10")
	require.NoError(t, e)
	assert.Contains(t, out, "color0")
	assert.Contains(t, out, "color1")
	assert.Contains(t, out, "800 px")

	img, e := pimg.Load(swatches)
	require.NoError(t, e)
	assert.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())

	out, _, e = run(t, "palette", src, "--colors", "2", "--format", "gpl")
	require.NoError(t, e)
	assert.Contains(t, out, "GIMP Palette")
	assert.Contains(t, out, "color0+color1-50")

	_, _, e = run(t, "palette", src, "--colors", "5")
	assert.True(t, errors.Is(e, pimg.ErrNoVariation))
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "pigmix.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("steps: 3\n"), 0644))

	out, _, e := runWithConfig(t, cfg, "gradient", "#002185", "#fcd300")
	require.NoError(t, e)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	// flags win over the file
	out, _, e = runWithConfig(t, cfg, "gradient", "#002185", "#fcd300", "--steps", "4")
	require.NoError(t, e)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)

	_, _, e = runWithConfig(t, filepath.Join(t.TempDir(), "missing.yaml"), "pigments")
	assert.Error(t, e)
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("PIGMIX_T", "0.25")
	out, _, e := run(t, "mix", "#002185", "#fcd300")
	require.NoError(t, e)
	assert.Contains(t, out, "#0e5752")
}

func TestLogLevel(t *testing.T) {
	_, errOut, e := run(t, "chart", "cobalt blue", "white", "--log-level", "debug")
	require.NoError(t, e)
	assert.Contains(t, errOut, "built chart")

	_, errOut, e = run(t, "chart", "cobalt blue", "white")
	require.NoError(t, e)
	assert.NotContains(t, errOut, "built chart")

	_, _, e = run(t, "pigments", "--log-level", "loud")
	assert.Error(t, e)
}
