package token

import (
	"flipn-server/internal/rng"
)

// codeAlphabet omits 0/O, 1/I, and L to keep codes easy to read aloud
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

var random rng.Generator = rng.Crypto{}

// Generate returns a crypto-secure random room code of length n
func Generate(n int) string {
	code := make([]byte, n)
	for i := range code {
		code[i] = codeAlphabet[random.Intn(len(codeAlphabet))]
	}

	return string(code)
}
