// Package blockchain contains classroom demonstrations of how blocks are
// chained and mined. Nothing here is meant to secure real value.
package blockchain

import (
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

// MaxDifficulty caps the number of leading zero hex digits a demo may ask for
const MaxDifficulty = 6

// Hash returns the hex Keccak-256 digest of data
func Hash(data string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// MerkleTree holds every level of a tree, leaves first and root last
type MerkleTree struct {
	Levels [][]string `json:"levels"`
}

// Root returns the top hash
func (t MerkleTree) Root() string {
	if len(t.Levels) == 0 {
		return ""
	}
	return t.Levels[len(t.Levels)-1][0]
}

// BuildMerkleTree hashes the leaves and combines them pairwise until one hash
// remains. A level with an odd count pairs its last hash with itself.
func BuildMerkleTree(leaves []string) (MerkleTree, bool) {
	if len(leaves) == 0 {
		return MerkleTree{}, false
	}

	level := make([]string, len(leaves))
	for i, leaf := range leaves {
		level[i] = Hash(leaf)
	}
	tree := MerkleTree{Levels: [][]string{level}}

	for len(level) > 1 {
		next := make([]string, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			right := level[i]
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, Hash(level[i]+right))
		}
		tree.Levels = append(tree.Levels, next)
		level = next
	}
	return tree, true
}

// Block is the outcome of a proof-of-work search
type Block struct {
	Data     string `json:"data"`
	PrevHash string `json:"prev_hash"`
	Nonce    int    `json:"nonce"`
	Hash     string `json:"hash"`
	Attempts int    `json:"attempts"`
}

func blockHash(data, prevHash string, nonce int) string {
	return Hash(prevHash + data + strconv.Itoa(nonce))
}

// Mine searches nonces until the block hash starts with difficulty zeros.
// It gives up after maxAttempts tries or when difficulty is out of range.
func Mine(data, prevHash string, difficulty, maxAttempts int) (Block, bool) {
	if difficulty < 0 || difficulty > MaxDifficulty || maxAttempts <= 0 {
		return Block{}, false
	}
	target := strings.Repeat("0", difficulty)

	for nonce := 0; nonce < maxAttempts; nonce++ {
		hash := blockHash(data, prevHash, nonce)
		if strings.HasPrefix(hash, target) {
			return Block{Data: data, PrevHash: prevHash, Nonce: nonce, Hash: hash, Attempts: nonce + 1}, true
		}
	}
	return Block{Data: data, PrevHash: prevHash, Attempts: maxAttempts}, false
}

// Verify recomputes the block hash and checks it meets difficulty
func Verify(b Block, difficulty int) bool {
	hash := blockHash(b.Data, b.PrevHash, b.Nonce)
	return hash == b.Hash && strings.HasPrefix(hash, strings.Repeat("0", difficulty))
}
