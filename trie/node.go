package trie

import (
	"github.com/ethereum/go-ethereum/rlp"
)

// Kind distinguishes the three trie node shapes (spec §4.6).
type Kind int

const (
	KindBranch Kind = iota
	KindExtension
	KindLeaf
)

// Child is a branch or extension's reference to the next node: either a
// 32-byte digest (Hash) that must be looked up among the proof's remaining
// encoded nodes, or the next node's own encoding inlined in place (Inline),
// when that encoding is shorter than a digest.
type Child struct {
	Hash   []byte
	Inline []byte
}

// Empty reports whether the slot holds neither a hash reference nor an
// inlined node.
func (c Child) Empty() bool {
	return c.Hash == nil && c.Inline == nil
}

// Node is a decoded trie node of one of the three kinds. Only the fields
// relevant to its Kind are populated.
type Node struct {
	Kind Kind

	// Branch
	Children [16]Child
	Value    []byte // slot 16, often empty

	// Extension / Leaf
	Path  Nibbles
	Child Child  // Extension only
	// Leaf reuses Value for its value.
}

// Decode parses the canonical RLP encoding of a trie node (spec §4.6).
// Decode is total on well-formed encodings and fails with
// ErrTrieNodeDecode otherwise. A decoded node re-encodes byte-for-byte to
// its input; see Encode.
func Decode(encoded []byte) (*Node, error) {
	var items []rlp.RawValue
	if err := rlp.DecodeBytes(encoded, &items); err != nil {
		return nil, ErrTrieNodeDecode
	}

	switch len(items) {
	case 17:
		return decodeBranch(items)
	case 2:
		return decodeExtensionOrLeaf(items)
	default:
		return nil, ErrTrieNodeDecode
	}
}

func decodeBranch(items []rlp.RawValue) (*Node, error) {
	node := &Node{Kind: KindBranch}
	for i := 0; i < 16; i++ {
		child, err := decodeChildSlot(items[i])
		if err != nil {
			return nil, err
		}
		node.Children[i] = child
	}
	value, err := decodeRLPString(items[16])
	if err != nil {
		return nil, err
	}
	node.Value = value
	return node, nil
}

func decodeExtensionOrLeaf(items []rlp.RawValue) (*Node, error) {
	pathBytes, err := decodeRLPString(items[0])
	if err != nil {
		return nil, err
	}
	path, isLeaf, err := decodePath(pathBytes)
	if err != nil {
		return nil, err
	}
	if isLeaf {
		value, err := decodeRLPString(items[1])
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindLeaf, Path: path, Value: value}, nil
	}
	child, err := decodeChildSlot(items[1])
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindExtension, Path: path, Child: child}, nil
}

// decodeChildSlot interprets one RLP item from a branch or extension node:
// an empty string is an empty slot, a 32-byte string is a hash reference,
// and anything else (an RLP list) is an inlined node whose own encoding is
// exactly these raw bytes.
func decodeChildSlot(raw rlp.RawValue) (Child, error) {
	if len(raw) == 0 {
		return Child{}, ErrTrieNodeDecode
	}
	if raw[0] < 0xc0 {
		s, err := decodeRLPString(raw)
		if err != nil {
			return Child{}, err
		}
		if len(s) == 0 {
			return Child{}, nil
		}
		if len(s) != 32 {
			return Child{}, ErrTrieNodeDecode
		}
		return Child{Hash: s}, nil
	}
	return Child{Inline: append([]byte(nil), raw...)}, nil
}

func decodeRLPString(raw rlp.RawValue) ([]byte, error) {
	var s []byte
	if err := rlp.DecodeBytes(raw, &s); err != nil {
		return nil, ErrTrieNodeDecode
	}
	return s, nil
}

// Encode re-encodes a Node to its canonical RLP form. Decode(Encode(n))
// reproduces n and Encode(Decode(b)) reproduces b, the round-trip contract
// §4.6 requires.
func Encode(n *Node) ([]byte, error) {
	switch n.Kind {
	case KindBranch:
		items := make([]interface{}, 17)
		for i := 0; i < 16; i++ {
			items[i] = childSlotValue(n.Children[i])
		}
		items[16] = valueOrEmpty(n.Value)
		return rlp.EncodeToBytes(items)
	case KindExtension:
		items := []interface{}{encodePath(n.Path, false), childSlotValue(n.Child)}
		return rlp.EncodeToBytes(items)
	case KindLeaf:
		items := []interface{}{encodePath(n.Path, true), valueOrEmpty(n.Value)}
		return rlp.EncodeToBytes(items)
	default:
		return nil, ErrTrieNodeDecode
	}
}

func childSlotValue(c Child) interface{} {
	if c.Inline != nil {
		return rlp.RawValue(c.Inline)
	}
	if c.Hash != nil {
		return c.Hash
	}
	return []byte{}
}

func valueOrEmpty(v []byte) []byte {
	if v == nil {
		return []byte{}
	}
	return v
}
