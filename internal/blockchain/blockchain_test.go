package blockchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	// Keccak-256 of the empty string.
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", Hash(""))
	assert.Len(t, Hash("econosfera"), 64)
}

func TestMerkleTree(t *testing.T) {
	tree, ok := BuildMerkleTree([]string{"a", "b", "c"})
	require.True(t, ok)
	require.Len(t, tree.Levels, 3)
	assert.Len(t, tree.Levels[0], 3)
	assert.Len(t, tree.Levels[1], 2)

	ha, hb, hc := Hash("a"), Hash("b"), Hash("c")
	want := Hash(Hash(ha+hb) + Hash(hc+hc))
	assert.Equal(t, want, tree.Root())
}

func TestMerkleTreeDetectsTampering(t *testing.T) {
	original, _ := BuildMerkleTree([]string{"tx1", "tx2", "tx3", "tx4"})
	tampered, _ := BuildMerkleTree([]string{"tx1", "tx2", "tx3", "tx5"})
	assert.NotEqual(t, original.Root(), tampered.Root())
}

func TestMerkleTreeSingleLeaf(t *testing.T) {
	tree, ok := BuildMerkleTree([]string{"only"})
	require.True(t, ok)
	assert.Equal(t, Hash("only"), tree.Root())

	_, ok = BuildMerkleTree(nil)
	assert.False(t, ok)
	assert.Empty(t, MerkleTree{}.Root())
}

func TestMine(t *testing.T) {
	block, ok := Mine("genesis", "", 2, 1_000_000)
	require.True(t, ok)
	assert.Equal(t, "00", block.Hash[:2])
	assert.Equal(t, block.Nonce+1, block.Attempts)
	assert.True(t, Verify(block, 2))

	block.Data = "forged"
	assert.False(t, Verify(block, 2))
}

func TestMineGivesUp(t *testing.T) {
	block, ok := Mine("genesis", "", MaxDifficulty, 10)
	assert.False(t, ok)
	assert.Equal(t, 10, block.Attempts)

	_, ok = Mine("genesis", "", MaxDifficulty+1, 10)
	assert.False(t, ok)
}
