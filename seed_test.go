package fasthash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLanes(t *testing.T) {
	assert.Equal(t, 0, SeedLanes[NoSeed]())
	assert.Equal(t, 1, SeedLanes[uint32]())
	assert.Equal(t, 1, SeedLanes[uint64]())
	assert.Equal(t, 2, SeedLanes[Seed128]())
	assert.Equal(t, 4, SeedLanes[Seed256]())
}

func TestSeedFromLanes(t *testing.T) {
	s32, err := seedFromLanes[uint32]("a", []uint64{7})
	require.NoError(t, err)
	assert.Equal(t, uint32(7), s32)

	s128, err := seedFromLanes[Seed128]("a", []uint64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, Seed128{Lo: 1, Hi: 2}, s128)

	s256, err := seedFromLanes[Seed256]("a", []uint64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, Seed256{1, 2, 3, 4}, s256)
	assert.Equal(t, []uint64{1, 2, 3, 4}, seedToLanes(s256))

	_, err = seedFromLanes[Seed128]("a", []uint64{1})
	assert.ErrorIs(t, err, ErrInvalidSeedWidth)
	assert.Contains(t, err.Error(), "expected 2 lanes, got 1")

	_, err = seedFromLanes[uint32]("a", []uint64{1 << 32})
	assert.ErrorIs(t, err, ErrInvalidSeedWidth)
	assert.Contains(t, err.Error(), "overflow")

	_, err = seedFromLanes[NoSeed]("a", nil)
	assert.NoError(t, err)
}

func TestSeedFromKeys(t *testing.T) {
	assert.Equal(t, uint32(0x89abcdef), seedFromKeys[uint32](0x0123456789abcdef, 5))
	assert.Equal(t, uint64(0x0123456789abcdef), seedFromKeys[uint64](0x0123456789abcdef, 5))
	assert.Equal(t, Seed128{Lo: 1, Hi: 2}, seedFromKeys[Seed128](1, 2))
	assert.Equal(t, Seed256{1, 2, splitmix64(1), splitmix64(2)}, seedFromKeys[Seed256](1, 2))
	assert.Equal(t, NoSeed{}, seedFromKeys[NoSeed](1, 2))
}

func TestSeedToLanes(t *testing.T) {
	assert.Nil(t, seedToLanes(NoSeed{}))
	assert.Equal(t, []uint64{9}, seedToLanes(uint32(9)))
	assert.Equal(t, []uint64{3, 4}, seedToLanes(Seed128{Lo: 3, Hi: 4}))
}
