// Package naming produces random file names for generated sprites.
package naming

import "math/rand/v2"

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NameLength is the number of random characters in a sprite file name.
const NameLength = 16

// RandomString returns n characters drawn uniformly from [A-Za-z0-9].
func RandomString(r *rand.Rand, n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphanumeric[r.IntN(len(alphanumeric))]
	}
	return string(buf)
}

// PNGName returns a random sprite file name such as "q3ZrT0b8KxWm1aLd.png".
func PNGName(r *rand.Rand) string {
	return RandomString(r, NameLength) + ".png"
}
