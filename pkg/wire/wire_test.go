package wire

import (
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chieftain0/staticstring"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := staticstring.FromString(64, "Hello, World!")
	data := Encode(src)
	require.Equal(t, headerSize+src.Len()+crcSize, len(data))

	dst := staticstring.New(64)
	require.NoError(t, Decode(data, dst))
	require.True(t, dst.Equal(src))
}

func TestEncodeDecodeEmpty(t *testing.T) {
	data := Encode(staticstring.New(8))
	dst := staticstring.FromString(8, "old")
	require.NoError(t, Decode(data, dst))
	require.Equal(t, 0, dst.Len())
}

func TestEncodeNil(t *testing.T) {
	require.Nil(t, Encode(nil))
}

func TestDecodeRejectsOverflow(t *testing.T) {
	data := Encode(staticstring.FromString(16, "too long for dst"))
	dst := staticstring.FromString(4, "keep")
	require.ErrorIs(t, Decode(data, dst), ErrOverflow)
	assert.Equal(t, "keep", dst.String()) // untouched on failure
}

func TestDecodeRejectsCorruption(t *testing.T) {
	dst := staticstring.New(64)
	data := Encode(staticstring.FromString(64, "payload"))

	require.ErrorIs(t, Decode(nil, dst), ErrBadFrame)
	require.ErrorIs(t, Decode(data[:headerSize], dst), ErrBadFrame)
	require.ErrorIs(t, Decode(data[:len(data)-1], dst), ErrBadFrame)
	require.ErrorIs(t, Decode(data, nil), ErrBadFrame)

	bad := append([]byte(nil), data...)
	bad[0] ^= 0xFF
	require.ErrorIs(t, Decode(bad, dst), ErrBadFrame)

	bad = append([]byte(nil), data...)
	bad[headerSize] ^= 0xFF // flip a payload byte, CRC must catch it
	require.ErrorIs(t, Decode(bad, dst), ErrChecksum)
	require.Equal(t, 0, dst.Len())
}

func TestDecodeRejectsEmbeddedNUL(t *testing.T) {
	data := Encode(staticstring.FromString(16, "ab"))
	data[headerSize] = 0 // no valid encoder emits NUL content
	binary.LittleEndian.PutUint32(data[len(data)-crcSize:],
		crc32.ChecksumIEEE(data[2:len(data)-crcSize]))

	dst := staticstring.New(16)
	require.ErrorIs(t, Decode(data, dst), ErrBadFrame)
}

func FuzzDecode(f *testing.F) {
	f.Add(Encode(staticstring.FromString(32, "seed")))
	f.Add([]byte{magic0, magic1, TypeString, 0, 0, 0, 0})
	f.Fuzz(func(t *testing.T, data []byte) {
		dst := staticstring.New(32)
		if err := Decode(data, dst); err == nil {
			// a frame that decodes must round-trip byte-for-byte
			require.Equal(t, data, Encode(dst))
		}
		require.LessOrEqual(t, dst.Len(), dst.Cap())
	})
}

func BenchmarkEncode(b *testing.B) {
	s := staticstring.FromString(255, "Hello, World!")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Encode(s)
	}
}

func BenchmarkDecode(b *testing.B) {
	data := Encode(staticstring.FromString(255, "Hello, World!"))
	dst := staticstring.New(255)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Decode(data, dst)
	}
}
