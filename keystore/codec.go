package keystore

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/izouxv/goShamir/shamir"
	"github.com/izouxv/goShamir/utils"
)

// ErrMalformedShare is returned when share bytes cannot be decoded.
var ErrMalformedShare = errors.New("keystore: malformed share")

// MarshalShare serializes a share as two varint length-prefixed big-endian integers.
func MarshalShare(share *shamir.Share) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := utils.WriteVarBigInt(buf, share.X); err != nil {
		return nil, fmt.Errorf("failed to write X value: %w", err)
	}
	if err := utils.WriteVarBigInt(buf, share.Y); err != nil {
		return nil, fmt.Errorf("failed to write Y value: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalShare deserializes bytes written by MarshalShare.
func UnmarshalShare(data []byte) (*shamir.Share, error) {
	buf := bytes.NewBuffer(data)

	x, err := utils.ReadVarBigInt(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read X value: %v", ErrMalformedShare, err)
	}
	y, err := utils.ReadVarBigInt(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read Y value: %v", ErrMalformedShare, err)
	}
	if buf.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedShare, buf.Len())
	}
	return &shamir.Share{X: x, Y: y}, nil
}
