package shamir

import (
	"fmt"
	"math/big"
)

// Share is a point (X, Y) on the secret polynomial, with Y = P(X) mod p.
// It carries no reference to the session that produced it.
type Share struct {
	X *big.Int
	Y *big.Int
}

// NewShare copies x and y into a new Share.
func NewShare(x, y *big.Int) *Share {
	return &Share{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

func (s *Share) String() string {
	return fmt.Sprintf("Share: (x = %s, y = %s)", s.X, s.Y)
}

// Clone returns a deep copy of s.
func (s *Share) Clone() *Share {
	return NewShare(s.X, s.Y)
}
