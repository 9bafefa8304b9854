package field

import (
	"fmt"
	"io"
	"math/big"
)

// RandomElement draws a uniform integer in [0, 2^bits) from r. Callers
// reduce it modulo their prime.
func RandomElement(r io.Reader, bits int) (*big.Int, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("field: invalid bit length %d", bits)
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("field: failed to read randomness: %w", err)
	}
	if extra := len(buf)*8 - bits; extra > 0 {
		buf[0] &= byte(0xff >> extra)
	}
	return new(big.Int).SetBytes(buf), nil
}

// RandomTierElement draws a uniform integer in [0, 2^t.Bits).
func RandomTierElement(r io.Reader, t Tier) (*big.Int, error) {
	return RandomElement(r, t.Bits)
}
