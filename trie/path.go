package trie

// encodePath applies the hex-prefix (compact) encoding used by both
// extension and leaf nodes: a tag nibble combining a leaf flag and an
// odd-length flag, optionally padded with a zero nibble so the whole
// result packs into whole bytes (spec §4.6: tag 0/1 for extension,
// tag 2/3 for leaf).
func encodePath(path Nibbles, isLeaf bool) []byte {
	tag := byte(0)
	if isLeaf {
		tag = 2
	}
	oddLen := len(path)%2 == 1

	var withTag Nibbles
	if oddLen {
		withTag = append(Nibbles{tag + 1}, path...)
	} else {
		withTag = append(Nibbles{tag, 0}, path...)
	}
	return packNibbles(withTag)
}

// decodePath reverses encodePath, returning the original path nibbles and
// whether the leaf flag was set.
func decodePath(encoded []byte) (path Nibbles, isLeaf bool, err error) {
	if len(encoded) == 0 {
		return nil, false, ErrTrieNodeDecode
	}
	unpacked := Unpack(encoded)
	tag := unpacked[0]
	if tag > 3 {
		return nil, false, ErrTrieNodeDecode
	}
	oddLen := tag&1 == 1
	isLeaf = tag&2 == 2

	if oddLen {
		return unpacked[1:], isLeaf, nil
	}
	if len(unpacked) < 2 || unpacked[1] != 0 {
		return nil, false, ErrTrieNodeDecode
	}
	return unpacked[2:], isLeaf, nil
}

// packNibbles packs an even-length nibble sequence two-per-byte, high
// nibble first. It panics if given an odd-length sequence, which would
// indicate a bug in encodePath itself (callers never pass one).
func packNibbles(n Nibbles) []byte {
	if len(n)%2 != 0 {
		panic("trie: packNibbles given odd-length nibble sequence")
	}
	out := make([]byte, len(n)/2)
	for i := 0; i < len(out); i++ {
		out[i] = n[2*i]<<4 | n[2*i+1]
	}
	return out
}
