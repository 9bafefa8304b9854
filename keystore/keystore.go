// Package keystore stores single shares in password-protected JSON files.
package keystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/izouxv/goShamir/shamir"
	"github.com/izouxv/goShamir/utils"
	"golang.org/x/crypto/scrypt"
)

const (
	keyHeaderKDF = "scrypt"
	cipherName   = "aes-256-gcm"
	version      = 1
)

// ScryptN is the N parameter of Scrypt encryption algorithm, using 2^18 per recommendation for standard security.
// For testing, a smaller value can be used to speed up execution.
var ScryptN = 1 << 18

// ScryptP is the P parameter of Scrypt encryption algorithm, using 1 per recommendation.
var ScryptP = 1

var (
	// ErrInvalidPassword is returned when the password for decryption is incorrect.
	ErrInvalidPassword = errors.New("invalid password")
)

// Meta is the public context of a share: the session that produced it,
// its tier and the modulus needed for reconstruction.
type Meta struct {
	SessionID uuid.UUID
	Tier      string
	Prime     *big.Int
}

// Key is the top-level structure for a share keystore file.
type Key struct {
	ID        string        `json:"id"`
	Version   int           `json:"version"`
	SessionID string        `json:"session"`
	Tier      string        `json:"tier"`
	Prime     hexutil.Bytes `json:"prime"`
	X         hexutil.Bytes `json:"x"`
	Crypto    CryptoJSON    `json:"crypto"`
}

// CryptoJSON contains the cryptographic parameters.
type CryptoJSON struct {
	Cipher     string           `json:"cipher"`
	CipherText hexutil.Bytes    `json:"ciphertext"`
	KDF        string           `json:"kdf"`
	KDFParams  ScryptParamsJSON `json:"kdfparams"`
}

// ScryptParamsJSON contains the parameters for the scrypt KDF.
type ScryptParamsJSON struct {
	N     int           `json:"n"`
	R     int           `json:"r"`
	P     int           `json:"p"`
	Dklen int           `json:"dklen"`
	Salt  hexutil.Bytes `json:"salt"`
}

// binding is the GCM additional data, tying the ciphertext to the public
// fields of the file.
func binding(k *Key) ([]byte, error) {
	return utils.Sha3Hash([]byte(k.SessionID), []byte(k.Tier), k.Prime, k.X)
}

// EncryptShare encrypts a share using a password and scrypt KDF, returning
// the JSON-encoded keystore file bytes. The x-coordinate and prime stay in
// the clear; y is encrypted.
func EncryptShare(share *shamir.Share, meta Meta, password string) ([]byte, error) {
	if meta.Prime == nil || meta.Prime.Sign() <= 0 {
		return nil, fmt.Errorf("keystore: missing prime")
	}
	shareBytes, err := MarshalShare(share)
	if err != nil {
		return nil, err
	}

	// Generate a random salt for scrypt
	salt, err := utils.GenerateSeed(32)
	if err != nil {
		return nil, err
	}

	// We derive a 32-byte key for AES-256-GCM.
	const dklen = 32
	derivedKey, err := scrypt.Key([]byte(password), salt, ScryptN, 8, ScryptP, dklen)
	if err != nil {
		return nil, err
	}

	key := &Key{
		ID:        uuid.New().String(),
		Version:   version,
		SessionID: meta.SessionID.String(),
		Tier:      meta.Tier,
		Prime:     meta.Prime.Bytes(),
		X:         utils.FieldBytes(share.X, meta.Prime),
		Crypto: CryptoJSON{
			Cipher: cipherName,
			KDF:    keyHeaderKDF,
			KDFParams: ScryptParamsJSON{
				N:     ScryptN,
				R:     8,
				P:     ScryptP,
				Dklen: dklen,
				Salt:  salt,
			},
		},
	}

	ad, err := binding(key)
	if err != nil {
		return nil, err
	}
	key.Crypto.CipherText, err = gcmEncrypt(shareBytes, derivedKey, ad)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(key, "", "  ")
}

// DecryptShare decrypts a keystore file using a password.
func DecryptShare(keystoreBytes []byte, password string) (*shamir.Share, Meta, error) {
	var key Key
	if err := json.Unmarshal(keystoreBytes, &key); err != nil {
		return nil, Meta{}, err
	}

	if key.Version != version {
		return nil, Meta{}, fmt.Errorf("unsupported version: %d", key.Version)
	}
	if key.Crypto.KDF != keyHeaderKDF {
		return nil, Meta{}, fmt.Errorf("unsupported KDF: %s", key.Crypto.KDF)
	}
	if key.Crypto.Cipher != cipherName {
		return nil, Meta{}, fmt.Errorf("unsupported cipher: %s", key.Crypto.Cipher)
	}
	sessionID, err := uuid.Parse(key.SessionID)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("invalid session id: %w", err)
	}

	// Re-derive the key from the password and stored salt
	kdfParams := key.Crypto.KDFParams
	derivedKey, err := scrypt.Key([]byte(password), kdfParams.Salt, kdfParams.N, kdfParams.R, kdfParams.P, kdfParams.Dklen)
	if err != nil {
		return nil, Meta{}, err
	}

	ad, err := binding(&key)
	if err != nil {
		return nil, Meta{}, err
	}
	// GCM authentication fails for a wrong password and for edited public fields alike.
	shareBytes, err := gcmDecrypt(key.Crypto.CipherText, derivedKey, ad)
	if err != nil {
		return nil, Meta{}, ErrInvalidPassword
	}

	share, err := UnmarshalShare(shareBytes)
	if err != nil {
		return nil, Meta{}, err
	}

	return share, Meta{
		SessionID: sessionID,
		Tier:      key.Tier,
		Prime:     new(big.Int).SetBytes(key.Prime),
	}, nil
}
