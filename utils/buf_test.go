package utils

import (
	"bytes"
	"math/big"
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRand_buf(t *testing.T) {
	maxLength := 1000
	var vardata = make([]byte, mathrand.Intn(maxLength))
	var varint = int64(mathrand.Intn(maxLength))
	writeBuf := bytes.NewBuffer(nil)
	require.NoError(t, WriteVarInt(writeBuf, varint))
	require.NoError(t, WriteVarBytes(writeBuf, vardata))

	readBuf := bytes.NewBuffer(writeBuf.Bytes())
	varintRead, _, err := ReadVarInt(readBuf)
	assert.Nil(t, err)
	assert.Equal(t, varint, varintRead)
	vardataRead, _, err := ReadVarBytes(readBuf)
	assert.Nil(t, err)
	assert.Equal(t, vardata, vardataRead)
}

func TestVarBigInt(t *testing.T) {
	n, ok := new(big.Int).SetString("DE97F71CFA25F986F6D07618C9EDB1378517A16101CEF67262AFBD3D703E9413", 16)
	require.True(t, ok)

	buf := bytes.NewBuffer(nil)
	require.NoError(t, WriteVarBigInt(buf, n))
	require.NoError(t, WriteVarBigInt(buf, big.NewInt(0)))

	got, err := ReadVarBigInt(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Cmp(got))

	zero, err := ReadVarBigInt(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Sign())

	assert.Error(t, WriteVarBigInt(buf, big.NewInt(-1)))
}

func TestReadVarBytesRejectsBadLength(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, WriteVarInt(buf, -5))
	_, _, err := ReadVarBytes(buf)
	assert.ErrorIs(t, err, ErrVarBytesLength)

	buf.Reset()
	require.NoError(t, WriteVarInt(buf, MaxVarBytes+1))
	_, _, err = ReadVarBytes(buf)
	assert.ErrorIs(t, err, ErrVarBytesLength)
}

func TestFieldBytes(t *testing.T) {
	modulus := big.NewInt(0x1_0001) // 17 bits -> 3 bytes
	assert.Equal(t, []byte{0x00, 0x00, 0x07}, FieldBytes(big.NewInt(7), modulus))
}

func TestSha3Hash(t *testing.T) {
	a, err := Sha3Hash([]byte("ab"), []byte("c"))
	require.NoError(t, err)
	b, err := Sha3Hash([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}
