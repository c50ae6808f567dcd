package theme

import "github.com/flosch/pongo2"

var cssTemplate = pongo2.Must(pongo2.FromString(`/* {{ name }} */
:root {
{% for e in entries %}  --{{ e.name }}: {{ e.hex }};
{% endfor %}  --background: {{ background }};
  --foreground: {{ foreground }};
}
`))

var gplTemplate = pongo2.Must(pongo2.FromString(`GIMP Palette
Name: {{ name }}
Columns: {{ columns }}
#
{% for e in entries %}{{ e.r|stringformat:"%3d" }} {{ e.g|stringformat:"%3d" }} {{ e.b|stringformat:"%3d" }}	{{ e.name }}
{% endfor %}`))
