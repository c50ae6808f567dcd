package pigment

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for text it does not recognize.
var ErrInvalidColor = errors.New("pigment: invalid color")

var (
	numPattern = `[+\-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+\-]?\d+)?%?`
	rgbRegex   = regexp.MustCompile(`^rgb\((` + numPattern + `),(` + numPattern + `),(` + numPattern + `)\)$`)
	rgbaRegex  = regexp.MustCompile(`^rgba\((` + numPattern + `),(` + numPattern + `),(` + numPattern + `),(` + numPattern + `)\)$`)
	hexRegex   = regexp.MustCompile(`^#?([0-9a-f]{3,4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
)

// ParseColor parses a color written as hex (#rgb, #rgba, #rrggbb or
// #rrggbbaa, the # optional), rgb(r, g, b), rgba(r, g, b, a), a CSS color
// name or the name of one of the reference Pigments. rgb components are
// numbers in [0, 255] or percentages; rgba alpha is in [0, 1].
//
// Only the hex forms with an alpha digit group and rgba produce a Color
// with alpha.
func ParseColor(s string) (Color, error) {
	str := strings.ToLower(strings.Join(strings.Fields(s), ""))

	if m := rgbRegex.FindStringSubmatch(str); m != nil {
		return RGB(component(m[1]), component(m[2]), component(m[3])), nil
	}
	if m := rgbaRegex.FindStringSubmatch(str); m != nil {
		a, e := strconv.ParseFloat(strings.TrimSuffix(m[4], "%"), 32)
		if e != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, e)
		}
		if strings.HasSuffix(m[4], "%") {
			a /= 100
		}
		return RGBA(component(m[1]), component(m[2]), component(m[3]), to8(float32(a))), nil
	}
	if m := hexRegex.FindStringSubmatch(str); m != nil {
		return parseHex(m[1]), nil
	}
	if c, ok := colornames.Map[str]; ok {
		return RGB(c.R, c.G, c.B), nil
	}
	if p, ok := PigmentByName(s); ok {
		return p.Color, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, e := ParseColor(s)
	if e != nil {
		panic(e)
	}
	return c
}

// component converts an rgb() argument to a byte. The regular expression
// has already validated the syntax.
func component(s string) uint8 {
	pct := strings.HasSuffix(s, "%")
	v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 32)
	f := float32(v)
	if pct {
		f = f / 100 * 255
	}
	f = math32.Round(f)
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}

func parseHex(h string) Color {
	digits := make([]uint8, 0, 8)
	short := len(h) <= 4
	step := 2
	if short {
		step = 1
	}
	for i := 0; i < len(h); i += step {
		v, _ := strconv.ParseUint(h[i:i+step], 16, 8)
		if short {
			v |= v << 4
		}
		digits = append(digits, uint8(v))
	}
	c, _ := ColorFromBytes(digits)
	return c
}
