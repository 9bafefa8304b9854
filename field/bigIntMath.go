package field

import (
	"errors"
	"math/big"
)

var (
	// ErrZeroInputGCD is returned when GCD is called with a zero operand.
	ErrZeroInputGCD = errors.New("field: gcd of zero input")
	// ErrNotCoprimes is returned when a value has no inverse modulo p.
	ErrNotCoprimes = errors.New("field: value and modulus are not coprime")
)

var one = big.NewInt(1)

// Add returns (a + b) mod p.
func Add(p, a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Add(a, b)
	res.Mod(res, p)
	return
}

// Sub returns (a - b) mod p.
func Sub(p, a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Sub(a, b)
	res.Mod(res, p)
	return
}

// Mul returns (a * b) mod p.
func Mul(p, a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Mul(a, b)
	res.Mod(res, p)
	return
}

// Neg returns (p - a) mod p, the additive inverse of a.
func Neg(p, a *big.Int) (res *big.Int) {
	res = new(big.Int).Mod(a, p)
	res.Sub(p, res)
	res.Mod(res, p)
	return
}

// GCD computes the greatest common divisor of a and b with the classical
// Euclidean algorithm. Both operands must be non-zero.
func GCD(a, b *big.Int) (*big.Int, error) {
	if a.Sign() == 0 || b.Sign() == 0 {
		return nil, ErrZeroInputGCD
	}

	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x, nil
}

// ModInverse returns the unique value v in [0, p) such that a*v = 1 (mod p).
// a is normalized into [0, p) first; a value sharing a factor with p,
// including zero, yields ErrNotCoprimes.
func ModInverse(a, p *big.Int) (*big.Int, error) {
	aa := new(big.Int).Mod(a, p)
	if aa.Sign() == 0 {
		return nil, ErrNotCoprimes
	}

	g, err := GCD(aa, p)
	if err != nil {
		return nil, err
	}
	if g.Cmp(one) != 0 {
		return nil, ErrNotCoprimes
	}

	inv := new(big.Int).ModInverse(aa, p)
	if inv == nil {
		return nil, ErrNotCoprimes
	}
	return inv, nil
}
