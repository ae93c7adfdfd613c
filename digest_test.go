package fasthash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fasthash"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 4, fasthash.Width32.Size())
	assert.Equal(t, 8, fasthash.Width64.Size())
	assert.Equal(t, 16, fasthash.Width128.Size())
	assert.Equal(t, "128-bit", fasthash.Width128.String())
}

func TestDigest32(t *testing.T) {
	d := fasthash.Digest32(0x01020304)

	assert.Equal(t, fasthash.Width32, d.Width())
	assert.Equal(t, []byte{4, 3, 2, 1}, d.Bytes())
	assert.Equal(t, []byte{9, 4, 3, 2, 1}, d.AppendBytes([]byte{9}))
	assert.Equal(t, uint32(0x01020304), d.Uint32())
	assert.Equal(t, uint64(0x01020304), d.Uint64())
	assert.Equal(t, "01020304", d.String())
}

func TestDigest64(t *testing.T) {
	d := fasthash.Digest64(0x0102030405060708)

	assert.Equal(t, fasthash.Width64, d.Width())
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, d.Bytes())
	assert.Equal(t, uint64(0x0102030405060708), d.Uint64())
	assert.Equal(t, "0102030405060708", d.String())
}

func TestDigest128(t *testing.T) {
	d := fasthash.Digest128{Lo: 0x0807060504030201, Hi: 0x100f0e0d0c0b0a09}

	assert.Equal(t, fasthash.Width128, d.Width())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, d.Bytes())
	assert.Equal(t, "100f0e0d0c0b0a090807060504030201", d.String())

	// Reduction keeps the low lane.
	assert.Equal(t, uint64(0x0807060504030201), d.Uint64())

	lo, hi := d.Lanes()
	assert.Equal(t, d.Lo, lo)
	assert.Equal(t, d.Hi, hi)

	back, err := fasthash.Digest128FromBytes(d.Bytes())
	require.NoError(t, err)
	assert.True(t, back.Equal(d))

	_, err = fasthash.Digest128FromBytes(make([]byte, 15))
	assert.Error(t, err)
}

func TestDigest128_Compare(t *testing.T) {
	a := fasthash.Digest128{Lo: 9, Hi: 1}
	b := fasthash.Digest128{Lo: 1, Hi: 2}
	c := fasthash.Digest128{Lo: 10, Hi: 1}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 0, a.Compare(a))
}

func TestParseDigest(t *testing.T) {
	for _, d := range []fasthash.Digest{
		fasthash.Digest32(0xdeadbeef),
		fasthash.Digest64(0x0123456789abcdef),
		fasthash.Digest128{Lo: 0x1111, Hi: 0xffff000000000000},
	} {
		t.Run(d.Width().String(), func(t *testing.T) {
			got, err := fasthash.ParseDigest(d.Width(), d.String())
			require.NoError(t, err)
			assert.Equal(t, d, got)

			got, err = fasthash.ParseDigest(d.Width(), "0X"+d.String())
			require.NoError(t, err)
			assert.Equal(t, d, got)
		})
	}

	_, err := fasthash.ParseDigest(fasthash.Width64, "abc")
	assert.Error(t, err)
	_, err = fasthash.ParseDigest(fasthash.Width32, "zzzzzzzz")
	assert.Error(t, err)
	_, err = fasthash.ParseDigest(fasthash.Width(48), "000000000000")
	assert.Error(t, err)
}
