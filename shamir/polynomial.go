package shamir

import (
	"fmt"
	"io"
	"math/big"

	"github.com/izouxv/goShamir/field"
)

// polynomial holds coefficients a_0..a_d over Z_p; a_0 is the secret.
// It is immutable once built.
type polynomial struct {
	prime  *big.Int
	coeffs []*big.Int
}

// newPolynomial builds a polynomial of exact degree d with constant term
// secret mod p. Middle coefficients are uniform; the leading one is redrawn
// until non-zero so that d+1 shares are really needed.
func newPolynomial(secret *big.Int, degree int, prime *big.Int, tier field.Tier, r io.Reader, maxAttempts int) (*polynomial, error) {
	coeffs := make([]*big.Int, 0, degree+1)
	coeffs = append(coeffs, new(big.Int).Mod(secret, prime))

	for i := 1; i < degree; i++ {
		c, err := field.RandomTierElement(r, tier)
		if err != nil {
			return nil, err
		}
		coeffs = append(coeffs, c.Mod(c, prime))
	}

	var leading *big.Int
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c, err := field.RandomTierElement(r, tier)
		if err != nil {
			return nil, err
		}
		if c.Mod(c, prime).Sign() != 0 {
			leading = c
			break
		}
	}
	if leading == nil {
		return nil, fmt.Errorf("%w after %d attempts", ErrLeadingCoefficient, maxAttempts)
	}
	coeffs = append(coeffs, leading)

	return &polynomial{prime: prime, coeffs: coeffs}, nil
}

func (p *polynomial) degree() int {
	return len(p.coeffs) - 1
}

// eval returns P(x) mod p, reducing the running sum and power of x after
// every step.
func (p *polynomial) eval(x *big.Int) *big.Int {
	y := new(big.Int).Set(p.coeffs[0])
	xPow := new(big.Int).Mod(x, p.prime)
	xx := new(big.Int).Set(xPow)

	for _, c := range p.coeffs[1:] {
		y = field.Add(p.prime, y, field.Mul(p.prime, xPow, c))
		xPow = field.Mul(p.prime, xPow, xx)
	}
	return y
}
