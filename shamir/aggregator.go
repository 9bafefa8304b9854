package shamir

import (
	"fmt"
	"log/slog"
	"math/big"
	"sync"
)

// Aggregator collects shares per sharing set and reconstructs the secret
// once the threshold is met. It is safe for concurrent use.
type Aggregator struct {
	threshold int
	prime     *big.Int
	logger    *slog.Logger
	// collected stores shares keyed by the caller's set identifier,
	// typically a Session ID.
	collected map[string][]*Share
	mu        sync.Mutex
}

// NewAggregator creates an aggregator for shares over prime with the given threshold.
func NewAggregator(prime *big.Int, threshold int, opts ...Option) (*Aggregator, error) {
	if threshold <= 1 {
		return nil, ErrThresholdTooSmall
	}
	if prime == nil || prime.Cmp(two) <= 0 {
		return nil, ErrInvalidPrime
	}
	return &Aggregator{
		threshold: threshold,
		prime:     new(big.Int).Set(prime),
		logger:    newConfig(opts).logger,
		collected: make(map[string][]*Share),
	}, nil
}

// Add records share under setID. When the set reaches the threshold the
// shares are combined, the set is cleared and the secret is returned.
// Otherwise it returns a nil secret and no error, meaning more shares are
// needed. A share whose x matches one already held for the set is rejected.
func (a *Aggregator) Add(setID string, share *Share) (*big.Int, error) {
	if share == nil || share.X == nil || share.Y == nil {
		return nil, fmt.Errorf("shamir: invalid share: cannot be nil")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	x := new(big.Int).Mod(share.X, a.prime)
	for _, existing := range a.collected[setID] {
		if existing.X.Cmp(x) == 0 {
			return nil, fmt.Errorf("%w: x=%s in set %s", ErrDuplicateShare, x, setID)
		}
	}
	a.collected[setID] = append(a.collected[setID], &Share{X: x, Y: new(big.Int).Set(share.Y)})
	if len(a.collected[setID]) < a.threshold {
		return nil, nil
	}

	shares := a.collected[setID]
	delete(a.collected, setID)
	a.logger.Debug("combining shares", "set", setID, "shares", len(shares))
	return Reconstruct(a.prime, shares)
}

// Pending reports how many shares are held for setID.
func (a *Aggregator) Pending(setID string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.collected[setID])
}

// Discard drops any shares held for setID.
func (a *Aggregator) Discard(setID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.collected, setID)
}
