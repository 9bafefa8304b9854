package shamir

import (
	"fmt"
	"math/big"

	"github.com/izouxv/goShamir/field"
)

// Reconstruct recovers the constant term of the polynomial from shares and
// the public modulus alone, by Lagrange interpolation at x = 0.
//
// X coordinates must be pairwise distinct; a duplicate makes a denominator
// vanish and the call fails with field.ErrNotCoprimes. Passing fewer shares
// than the threshold is not detected: the result is a well-formed but wrong
// value.
func Reconstruct(prime *big.Int, shares []*Share) (*big.Int, error) {
	if prime == nil || prime.Cmp(two) <= 0 {
		return nil, ErrInvalidPrime
	}

	secret := new(big.Int)
	for i, si := range shares {
		num := big.NewInt(1)
		den := big.NewInt(1)

		for j, sj := range shares {
			if i == j {
				continue
			}
			// (0 - x_j) and (x_i - x_j), as additions of the complement.
			negXj := field.Neg(prime, sj.X)
			num = field.Mul(prime, num, negXj)
			den = field.Mul(prime, den, field.Add(prime, si.X, negXj))
		}

		denInv, err := field.ModInverse(den, prime)
		if err != nil {
			return nil, fmt.Errorf("shamir: share %d: %w", i, err)
		}
		lambda := field.Mul(prime, num, denInv)

		secret = field.Add(prime, secret, field.Mul(prime, si.Y, lambda))
	}

	return secret, nil
}
