// Package shamir splits a secret integer into shares over Z_p and recovers
// it by Lagrange interpolation at x = 0. Any threshold t of the shares
// reconstruct the secret; fewer than t reveal nothing about it.
package shamir

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/izouxv/goShamir/field"
)

var two = big.NewInt(2)

// Session binds a prime modulus to one secret polynomial. The polynomial
// is fixed at construction; generating shares never changes it.
type Session struct {
	id     uuid.UUID
	tier   field.Tier
	prime  *big.Int
	poly   *polynomial
	logger *slog.Logger
}

// NewSession creates a session for secret with the given threshold. With
// useFixedPrime the tier's well-known prime is used, otherwise a fresh safe
// prime is generated, which can take a while for large tiers.
func NewSession(tier field.Tier, useFixedPrime bool, threshold int, secret *big.Int, opts ...Option) (*Session, error) {
	return NewSessionContext(context.Background(), tier, useFixedPrime, threshold, secret, opts...)
}

// NewSessionContext is NewSession with a context that cancels prime generation.
func NewSessionContext(ctx context.Context, tier field.Tier, useFixedPrime bool, threshold int, secret *big.Int, opts ...Option) (*Session, error) {
	if threshold <= 1 {
		return nil, ErrThresholdTooSmall
	}
	cfg := newConfig(opts)

	start := time.Now()
	prime, err := field.NewPrime(ctx, cfg.rand, tier, useFixedPrime, cfg.primeWorkers)
	if err != nil {
		return nil, fmt.Errorf("shamir: failed to obtain prime: %w", err)
	}
	if !useFixedPrime {
		cfg.logger.Info("generated safe prime",
			"tier", tier.Name,
			"bits", prime.BitLen(),
			"elapsed", time.Since(start))
	}

	return newSession(tier, prime, threshold, secret, useFixedPrime, cfg)
}

// NewSessionWithPrime creates a session over a caller-chosen modulus, which
// must be a prime greater than 2. Random coefficients are drawn with the
// bit length of prime.
func NewSessionWithPrime(prime *big.Int, threshold int, secret *big.Int, opts ...Option) (*Session, error) {
	if threshold <= 1 {
		return nil, ErrThresholdTooSmall
	}
	if prime == nil || prime.Cmp(two) <= 0 {
		return nil, ErrInvalidPrime
	}
	p := new(big.Int).Set(prime)
	return newSession(field.CustomTier(p), p, threshold, secret, true, newConfig(opts))
}

func newSession(tier field.Tier, prime *big.Int, threshold int, secret *big.Int, fixed bool, cfg *config) (*Session, error) {
	poly, err := newPolynomial(secret, threshold-1, prime, tier, cfg.rand, cfg.maxLeadingAttempts)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:     uuid.New(),
		tier:   tier,
		prime:  prime,
		poly:   poly,
		logger: cfg.logger,
	}
	s.logger.Debug("shamir session created",
		"session", s.id,
		"tier", tier.Name,
		"threshold", threshold,
		"fixed_prime", fixed)
	return s, nil
}

// ID identifies the session, e.g. to group its shares.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Tier reports the security tier the session was created with.
func (s *Session) Tier() field.Tier {
	return s.tier
}

// Threshold is the number of shares needed to reconstruct the secret.
func (s *Session) Threshold() int {
	return s.poly.degree() + 1
}

// Prime returns a copy of the modulus. It is public and must accompany the
// shares for reconstruction.
func (s *Session) Prime() *big.Int {
	return new(big.Int).Set(s.prime)
}

// GenerateShares evaluates the polynomial at each point, in order. Points
// are reduced mod p and not validated: a zero x exposes the secret and
// duplicate x values make reconstruction fail with field.ErrNotCoprimes.
func (s *Session) GenerateShares(points []*big.Int) []*Share {
	shares := make([]*Share, len(points))
	for i, x := range points {
		shares[i] = &Share{
			X: new(big.Int).Mod(x, s.prime),
			Y: s.poly.eval(x),
		}
	}
	return shares
}

func (s *Session) String() string {
	return fmt.Sprintf("Shamir session %s: tier %s, threshold %d, prime %s",
		s.id, s.tier, s.Threshold(), s.prime)
}
