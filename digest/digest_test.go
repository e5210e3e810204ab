package digest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeccakHasherDeterministic(t *testing.T) {
	h := NewKeccakHasher()
	a := bytes.Repeat([]byte{0xAA}, 32)
	b := bytes.Repeat([]byte{0xBB}, 32)

	first := h.Hash2(a, b)
	second := h.Hash2(a, b)
	assert.Equal(t, first, second, "Hash2 not deterministic")
	assert.Len(t, first, h.Size())

	swapped := h.Hash2(b, a)
	assert.NotEqual(t, first, swapped, "Hash2(a, b) should differ from Hash2(b, a)")
}

func TestKeccakHasherSensitivity(t *testing.T) {
	h := NewKeccakHasher()
	a := bytes.Repeat([]byte{0x01}, 32)
	b := bytes.Repeat([]byte{0x02}, 32)
	base := h.Hash2(a, b)

	tampered := bytes.Clone(b)
	tampered[0] ^= 0x01
	assert.NotEqual(t, base, h.Hash2(a, tampered), "flipping a bit in the second input should change the digest")
}

func TestKeccakHashManyDeterministicAndOrderSensitive(t *testing.T) {
	h := NewKeccakHasher()
	xs := [][]byte{{0x01}, {0x02}, {0x03}}
	got := h.HashMany(xs)
	assert.Len(t, got, 32)
	assert.Equal(t, got, h.HashMany(xs), "HashMany not deterministic")

	reordered := [][]byte{{0x03}, {0x02}, {0x01}}
	assert.NotEqual(t, got, h.HashMany(reordered), "HashMany should not ignore input order")
}

func TestFieldHasherDeterministic(t *testing.T) {
	h := NewFieldHasher()
	a := []byte{0x03}
	b := []byte{0x05}

	first := h.Hash2(a, b)
	second := h.Hash2(a, b)
	assert.Equal(t, first, second, "Hash2 not deterministic")
	assert.Len(t, first, h.Size())
}

func TestFieldHasherEncodeSize(t *testing.T) {
	h := NewFieldHasher()
	a := h.EncodeSize(11)
	b := h.EncodeSize(11)
	assert.Equal(t, a, b, "EncodeSize not deterministic")

	c := h.EncodeSize(35)
	assert.NotEqual(t, a, c)
}
