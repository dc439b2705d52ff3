package id

import (
	"crypto/rand"
	"math/big"
)

// NewAccountNumber returns an n-digit numeric account number with no leading
// zero, the shape the demo account seeder hands out.
func NewAccountNumber(n int) string {
	if n < 1 {
		n = 1
	}
	digits := make([]byte, n)
	for i := range digits {
		lo := int64(0)
		if i == 0 {
			lo = 1
		}
		v, _ := rand.Int(rand.Reader, big.NewInt(10-lo))
		digits[i] = byte('0' + lo + v.Int64())
	}
	return string(digits)
}
