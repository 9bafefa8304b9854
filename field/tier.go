package field

import (
	"crypto/elliptic"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrUnknownTier is returned when a tier has no registered fixed prime.
var ErrUnknownTier = errors.New("field: unknown security tier")

// Tier names a security level: the bit length of its modulus and of the
// random field elements drawn for it.
type Tier struct {
	Name string
	Bits int
}

func (t Tier) String() string {
	return fmt.Sprintf("%s(%d)", t.Name, t.Bits)
}

// Built-in tiers. Bit256, Bit512 and Bit1024 carry fixed safe primes.
var (
	Bit256    = Tier{Name: "bit256", Bits: 256}
	Bit512    = Tier{Name: "bit512", Bits: 512}
	Bit1024   = Tier{Name: "bit1024", Bits: 1024}
	BN254     = Tier{Name: "bn254", Bits: 254}
	Secp256k1 = Tier{Name: "secp256k1", Bits: 256}
	P256      = Tier{Name: "p256", Bits: 256}
)

type tierEntry struct {
	tier  Tier
	fixed *big.Int
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]tierEntry)
)

// RegisterTier registers a tier together with its fixed prime so it can be
// looked up by name.
func RegisterTier(t Tier, fixed *big.Int) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[t.Name]; ok {
		panic("field: tier already registered: " + t.Name)
	}
	registry[t.Name] = tierEntry{tier: t, fixed: new(big.Int).Set(fixed)}
}

// LookupTier retrieves a registered tier by its name.
func LookupTier(name string) (Tier, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[name]
	return e.tier, ok
}

// Tiers lists the registered tiers ordered by bit length, then name.
func Tiers() []Tier {
	registryMu.RLock()
	defer registryMu.RUnlock()
	res := make([]Tier, 0, len(registry))
	for _, e := range registry {
		res = append(res, e.tier)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Bits != res[j].Bits {
			return res[i].Bits < res[j].Bits
		}
		return res[i].Name < res[j].Name
	})
	return res
}

// FixedPrime returns a copy of the well-known prime registered for t.
func FixedPrime(t Tier) (*big.Int, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[t.Name]
	if !ok || e.tier != t {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTier, t)
	}
	return new(big.Int).Set(e.fixed), nil
}

// CustomTier describes a caller-chosen modulus. It is never registered.
func CustomTier(p *big.Int) Tier {
	return Tier{Name: "custom", Bits: p.BitLen()}
}

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("field: bad prime constant")
	}
	return n
}

func init() {
	// Safe primes: (p-1)/2 is prime as well.
	RegisterTier(Bit256, mustHex("D7F71B07B75BC19077A53B9B1BAEA33249C8CD5C132C7FA3E20E18AAF17F5A9B"))
	RegisterTier(Bit512, mustHex("EB3CFFA5DBAB1325022CE08399445F0E4B9B146B0BA3D17967D70616B2E33B62"+
		"FCE08149C3D76FA8EAC2769B4DB5232DFF3416848ED598BA2470CEC3CB5DCD6B"))
	RegisterTier(Bit1024, mustHex("DE97F71CFA25F986F6D07618C9EDB1378517A16101CEF67262AFBD3D703E9413"+
		"4F91757A03262A988C1A8DE361AAE62F96D7E2C70C10AFD647F718A628651C23"+
		"4225FE75F25FB1D6FB28596BEA5E2802B5B4E4BE3CE573192CC1E1F1DEB8CACA"+
		"C9BC55AA8CB213945388C78271D5E500D34469A4108680E1AF56FA7C05D321DF"))

	// Group orders of common curves, so shares line up with their scalars.
	RegisterTier(BN254, fr.Modulus())
	RegisterTier(Secp256k1, secp256k1.S256().Params().N)
	RegisterTier(P256, elliptic.P256().Params().N)
}
