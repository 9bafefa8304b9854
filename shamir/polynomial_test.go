package shamir

import (
	"math/big"
	"testing"

	"github.com/izouxv/goShamir/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolynomialEval(t *testing.T) {
	// P(x) = 12 + 5x + 2x^2 over Z_23
	p := &polynomial{prime: big.NewInt(23), coeffs: bigs(12, 5, 2)}

	expect := func(x int64) int64 {
		v := 12 + 5*x + 2*x*x
		return ((v % 23) + 23) % 23
	}
	assert.Equal(t, int64(12), p.eval(big.NewInt(0)).Int64())
	assert.Equal(t, int64(19), p.eval(big.NewInt(1)).Int64())
	for x := int64(0); x < 30; x++ {
		assert.Equal(t, expect(x), p.eval(big.NewInt(x)).Int64(), "x=%d", x)
	}
	assert.Equal(t, 2, p.degree())
}

func TestNewPolynomialLeadingCoefficient(t *testing.T) {
	prime := big.NewInt(5)
	tier := field.CustomTier(prime)
	for seed := range 50 {
		poly, err := newPolynomial(big.NewInt(3), 4, prime, tier, seededRand(byte(seed)), DefaultMaxLeadingAttempts)
		require.NoError(t, err)
		require.Len(t, poly.coeffs, 5)
		assert.NotZero(t, poly.coeffs[4].Sign())
		for _, c := range poly.coeffs {
			assert.Equal(t, -1, c.Cmp(prime))
		}
	}
}
