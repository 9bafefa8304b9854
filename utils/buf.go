package utils

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// MaxVarBytes bounds the length prefix accepted by ReadVarBytes.
const MaxVarBytes = 1 << 16

// ErrVarBytesLength is returned when a length prefix is negative or exceeds MaxVarBytes.
var ErrVarBytesLength = errors.New("utils: invalid length prefix")

type readByte struct {
	in   io.Reader
	read int
}

func (s *readByte) ReadByte() (byte, error) {
	var data [1]byte
	if _, err := io.ReadFull(s.in, data[:]); err != nil {
		return 0, err
	}
	s.read++
	return data[0], nil
}

// ReadVarInt reads a zig-zag varint, returning the value and the number of bytes consumed.
func ReadVarInt(sr io.Reader) (num int64, n int64, err error) {
	rb := &readByte{in: sr}
	num, err = binary.ReadVarint(rb)
	return num, int64(rb.read), err
}

// ReadVarBytes reads a varint length prefix followed by that many bytes.
func ReadVarBytes(r io.Reader) (data []byte, varIntLen int, err error) {
	num, n, err := ReadVarInt(r)
	if err != nil {
		return nil, 0, err
	}
	if num < 0 || num > MaxVarBytes {
		return nil, int(n), fmt.Errorf("%w: %d", ErrVarBytesLength, num)
	}
	varIntLen = int(n)
	data = make([]byte, num)
	_, err = io.ReadFull(r, data)
	return data, varIntLen, err
}

// WriteVarInt writes num as a zig-zag varint.
func WriteVarInt(w io.Writer, num int64) error {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutVarint(buf, num)
	_, err := w.Write(buf[:n])
	return err
}

// WriteVarBytes writes a varint length prefix followed by data.
func WriteVarBytes(w io.Writer, data []byte) error {
	if err := WriteVarInt(w, int64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// WriteVarBigInt writes the big-endian magnitude of a non-negative n.
func WriteVarBigInt(w io.Writer, n *big.Int) error {
	if n.Sign() < 0 {
		return fmt.Errorf("utils: cannot encode negative integer")
	}
	return WriteVarBytes(w, n.Bytes())
}

// ReadVarBigInt reads a value written by WriteVarBigInt.
func ReadVarBigInt(r io.Reader) (*big.Int, error) {
	data, _, err := ReadVarBytes(r)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(data), nil
}
