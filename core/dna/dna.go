// core/dna/dna.go
package dna

import (
	"fmt"
	"math/rand"
	"unicode"
)

// Bases is the fixed DNA alphabet, in canonical display order.
var Bases = []byte{'A', 'T', 'G', 'C'}

// Alphabet returns a fresh copy of the alphabet so callers can't mutate it.
func Alphabet() []byte { return append([]byte(nil), Bases...) }

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['G'] = 'C'
	complement['C'] = 'G'
}

// IsBase reports whether b is one of A/T/G/C (uppercase).
func IsBase(b byte) bool {
	return b == 'A' || b == 'T' || b == 'G' || b == 'C'
}

// Comp returns the Watson–Crick complement of b, or 0 for any byte outside
// the alphabet. The zero sentinel never compares equal to a base, so
// undefined symbols can never participate in a complement pairing.
func Comp(b byte) byte { return complement[b] }

// RevComp returns the reverse complement of seq. Bytes outside the alphabet
// come back as 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// Normalize removes whitespace and quotes and uppercases bases.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate returns a normalized sequence or an error if any char is outside
// the A/T/G/C alphabet.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	for i := 0; i < len(s); i++ {
		if !IsBase(s[i]) {
			return "", fmt.Errorf("invalid base %q at %d; allowed: A T G C", s[i], i+1)
		}
	}
	return s, nil
}

// GenerateRandom returns a random sequence of n bases drawn from r.
func GenerateRandom(r *rand.Rand, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = Bases[r.Intn(len(Bases))]
	}
	return out
}
