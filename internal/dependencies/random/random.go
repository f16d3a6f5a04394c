package random

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Random picks the first team of a match and generates match IDs
type Random interface {
	// Intn picks from [0, n)
	Intn(n int) int

	// String builds an identifier of length characters drawn from alphabet
	String(length int, alphabet string) string
}

// CryptoRandom draws from crypto/rand so match IDs are not predictable
type CryptoRandom struct{}

func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns 0 when n is not positive, so a zero team count never panics
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || alphabet == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(length)
	for range length {
		sb.WriteByte(alphabet[r.Intn(len(alphabet))])
	}
	return sb.String()
}
