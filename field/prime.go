package field

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/izouxv/goShamir/utils"
	"golang.org/x/sync/errgroup"
)

const (
	// MinSafePrimeBits is the smallest modulus GenerateSafePrime accepts.
	MinSafePrimeBits = 16
	primalityRounds  = 20
)

// ErrPrimeTooSmall is returned when a generated prime would be below MinSafePrimeBits.
var ErrPrimeTooSmall = errors.New("field: requested prime is too small")

// GenerateSafePrime returns a probable safe prime p of exactly bits bits,
// meaning (p-1)/2 is prime too. workers searchers run concurrently; the
// first hit stops the rest. Cancelling ctx aborts the search.
func GenerateSafePrime(ctx context.Context, r io.Reader, bits, workers int) (*big.Int, error) {
	if bits < MinSafePrimeBits {
		return nil, fmt.Errorf("%w: %d bits", ErrPrimeTooSmall, bits)
	}
	if workers < 1 {
		workers = 1
	}
	if r == nil {
		r = rand.Reader
	}
	r = utils.NewLockedReader(r)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once  sync.Once
		found *big.Int
	)
	g, gctx := errgroup.WithContext(searchCtx)
	for range workers {
		g.Go(func() error {
			for gctx.Err() == nil {
				// rand.Prime sets the top two bits, so 2q+1 has exactly bits bits.
				q, err := rand.Prime(r, bits-1)
				if err != nil {
					return fmt.Errorf("field: failed to generate prime: %w", err)
				}
				p := new(big.Int).Lsh(q, 1)
				p.Add(p, one)
				if p.ProbablyPrime(primalityRounds) {
					once.Do(func() {
						found = p
						cancel()
					})
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if found == nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("field: safe prime generation aborted: %w", err)
		}
		return nil, context.Canceled
	}
	return found, nil
}

// NewPrime returns the fixed prime of t when fixed is set, otherwise a
// freshly generated safe prime of t.Bits bits.
func NewPrime(ctx context.Context, r io.Reader, t Tier, fixed bool, workers int) (*big.Int, error) {
	if fixed {
		return FixedPrime(t)
	}
	return GenerateSafePrime(ctx, r, t.Bits, workers)
}
