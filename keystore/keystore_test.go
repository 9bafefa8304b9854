package keystore

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/izouxv/goShamir/field"
	"github.com/izouxv/goShamir/shamir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lowScrypt(t *testing.T) {
	// Use a lower N for faster testing
	originalScryptN := ScryptN
	ScryptN = 2
	t.Cleanup(func() { ScryptN = originalScryptN })
}

func newShares(t *testing.T, tier field.Tier, secret int64) (*shamir.Session, []*shamir.Share) {
	ss, err := shamir.NewSession(tier, true, 3, big.NewInt(secret))
	require.NoError(t, err)
	points := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4)}
	return ss, ss.GenerateShares(points)
}

func TestEncryptDecryptShare(t *testing.T) {
	lowScrypt(t)

	for _, tier := range []field.Tier{field.Bit256, field.Bit1024, field.BN254} {
		t.Run(tier.Name, func(t *testing.T) {
			// 1. Split a secret
			ss, shares := newShares(t, tier, 1234)
			meta := Meta{SessionID: ss.ID(), Tier: tier.Name, Prime: ss.Prime()}
			password := "my-secret-password"

			// 2. Encrypt every share
			files := make([][]byte, len(shares))
			for i, share := range shares {
				var err error
				files[i], err = EncryptShare(share, meta, password)
				require.NoError(t, err)
				require.NotEmpty(t, files[i])
			}
			t.Logf("Keystore JSON: %s", string(files[0]))

			// 3. Decrypt three of them with the correct password
			var recoveredShares []*shamir.Share
			for _, f := range files[1:] {
				share, gotMeta, err := DecryptShare(f, password)
				require.NoError(t, err)
				assert.Equal(t, meta.SessionID, gotMeta.SessionID)
				assert.Equal(t, meta.Tier, gotMeta.Tier)
				assert.Equal(t, 0, meta.Prime.Cmp(gotMeta.Prime))
				recoveredShares = append(recoveredShares, share)
			}

			// 4. Reconstruct from the decrypted shares and the stored prime
			secret, err := shamir.Reconstruct(meta.Prime, recoveredShares)
			require.NoError(t, err)
			assert.Equal(t, int64(1234), secret.Int64())

			// 5. Attempt to decrypt with the wrong password
			_, _, err = DecryptShare(files[0], "wrong-password")
			assert.ErrorIs(t, err, ErrInvalidPassword)
		})
	}
}

func TestDecryptShareDetectsTampering(t *testing.T) {
	lowScrypt(t)

	ss, shares := newShares(t, field.Bit256, 7)
	data, err := EncryptShare(shares[0], Meta{SessionID: ss.ID(), Tier: "bit256", Prime: ss.Prime()}, "pw")
	require.NoError(t, err)

	var key Key
	require.NoError(t, json.Unmarshal(data, &key))
	key.X = []byte{0x09}
	tampered, err := json.Marshal(&key)
	require.NoError(t, err)

	_, _, err = DecryptShare(tampered, "pw")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestDecryptShareRejectsUnknownFormat(t *testing.T) {
	lowScrypt(t)

	ss, shares := newShares(t, field.Bit256, 7)
	data, err := EncryptShare(shares[0], Meta{SessionID: ss.ID(), Tier: "bit256", Prime: ss.Prime()}, "pw")
	require.NoError(t, err)

	var key Key
	require.NoError(t, json.Unmarshal(data, &key))
	key.Crypto.KDF = "pbkdf2"
	changed, err := json.Marshal(&key)
	require.NoError(t, err)

	_, _, err = DecryptShare(changed, "pw")
	assert.ErrorContains(t, err, "unsupported KDF")

	_, _, err = DecryptShare([]byte("{"), "pw")
	assert.Error(t, err)
}

func TestEncryptShareRequiresPrime(t *testing.T) {
	_, err := EncryptShare(shamir.NewShare(big.NewInt(1), big.NewInt(2)), Meta{}, "pw")
	assert.Error(t, err)
}
