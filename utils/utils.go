package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"golang.org/x/crypto/sha3"
)

// Sha3Hash hashes the concatenation of parts using SHA3-256.
func Sha3Hash(parts ...[]byte) ([]byte, error) {
	sha := sha3.New256()
	for _, p := range parts {
		if _, err := sha.Write(p); err != nil {
			return nil, err
		}
	}
	return sha.Sum(nil), nil
}

// FieldBytes encodes n big-endian, left padded to the byte width of modulus.
func FieldBytes(n, modulus *big.Int) []byte {
	return math.PaddedBigBytes(n, (modulus.BitLen()+7)/8)
}

// GenerateSeed returns size bytes from crypto/rand.
func GenerateSeed(size int) ([]byte, error) {
	if size < 16 || size > 64 {
		return nil, fmt.Errorf("seed size must be between 16 and 64 bytes, but got %d", size)
	}
	seed := make([]byte, size)
	_, err := rand.Read(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate random seed: %w", err)
	}
	return seed, nil
}
