// Package vercode generates email verification codes.
package vercode

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	codeMin  = 10000
	codeSpan = 90000
)

// Generate returns a 5-digit code drawn uniformly from [10000, 99999].
// The code gates proof of email ownership, so it comes from crypto/rand
// rather than a seedable PRNG.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
