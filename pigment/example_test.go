package pigment_test

import (
	"fmt"

	"github.com/mmuldo/pigmix/pigment"
)

func ExampleLerp() {
	blue := pigment.RGB(0, 33, 133)
	yellow := pigment.RGB(252, 211, 0)
	fmt.Println(pigment.Lerp(blue, yellow, 0.5))
	// Output: #298239
}

func ExampleLerpPacked() {
	fmt.Printf("%08x\n", pigment.LerpPacked(0xff002185, 0xfffcd300, 0.5))
	// Output: ff298239
}

func ExampleLatentToRGB() {
	z1 := pigment.RGBToLatent(0, 33, 133)
	z2 := pigment.RGBToLatent(252, 211, 0)
	z3 := pigment.RGBToLatent(255, 255, 255)

	var z pigment.Latent
	for i := range z {
		z[i] = 0.3*z1[i] + 0.6*z2[i] + 0.1*z3[i]
	}
	fmt.Println(pigment.LatentToRGB(z))
	// Output: 107 178 52
}

func ExampleParseColor() {
	c, _ := pigment.ParseColor("cadmium red")
	fmt.Println(c.Hex(), pigment.Lerp(c, pigment.MustParseColor("white"), 0.5))
	// Output: #ff2702 #ff8275
}
