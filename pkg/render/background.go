package render

import "math/rand/v2"

// DefaultBackground is the background shown before any randomization.
var DefaultBackground = ColorWhite

// RandomBackground draws each channel as (U[1,32] << 3) - 1, giving one of
// 32 evenly spaced levels between 7 and 255.
func RandomBackground(rng *rand.Rand) Color {
	level := func() uint8 {
		return uint8((rng.IntN(32)+1)<<3 - 1)
	}
	return RGB(level(), level(), level())
}
