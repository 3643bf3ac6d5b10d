package playground

import "math/rand"

const hexAlphabet = "0123456789abcdef"

// randomHash produces a 40-char lowercase hex string, each character drawn
// independently from rng. Purely decorative: hashes are not content-addressed
// and collisions are acceptable.
func randomHash(rng *rand.Rand) string {
	buf := make([]byte, 40)
	for i := range buf {
		buf[i] = hexAlphabet[rng.Intn(len(hexAlphabet))]
	}
	return string(buf)
}
