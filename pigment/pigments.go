package pigment

import "strings"

// Pigment is a named reference paint color.
type Pigment struct {
	Name  string
	Color Color
}

// Pigments lists reference paints whose mixes the table reproduces well.
var Pigments = []Pigment{
	{"Cadmium Yellow", RGB(254, 236, 0)},
	{"Hansa Yellow", RGB(252, 211, 0)},
	{"Cadmium Orange", RGB(255, 105, 0)},
	{"Cadmium Red", RGB(255, 39, 2)},
	{"Quinacridone Magenta", RGB(128, 2, 46)},
	{"Cobalt Violet", RGB(78, 0, 66)},
	{"Ultramarine Blue", RGB(25, 0, 89)},
	{"Cobalt Blue", RGB(0, 33, 133)},
	{"Phthalo Blue", RGB(13, 27, 68)},
	{"Phthalo Green", RGB(0, 60, 50)},
	{"Permanent Green", RGB(7, 109, 22)},
	{"Sap Green", RGB(107, 148, 4)},
	{"Burnt Sienna", RGB(123, 72, 0)},
}

// PigmentByName looks up a reference paint. Case, spaces, dashes and
// underscores are ignored, so "cobalt-blue" finds "Cobalt Blue".
func PigmentByName(name string) (Pigment, bool) {
	key := pigmentKey(name)
	for _, p := range Pigments {
		if pigmentKey(p.Name) == key {
			return p, true
		}
	}
	return Pigment{}, false
}

func pigmentKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
