package tinflate

/*
 * Huffman tree: a compact canonical-Huffman representation built from a
 * length vector, grounded on blast's huffman{count, symbol}/construct()
 * pair, retargeted from blast's 13-bit PKWare DCL codes to RFC 1951's
 * 15-bit DEFLATE codes and 288-entry literal/length alphabet.
 *
 * Unlike blast's decode(), which walks bit-reversed codes to match
 * PKWare's first-code-is-all-ones convention, DEFLATE codes are assigned
 * in the more common all-zeros-first order, so the decode loop here
 * multiplies by two per consumed bit rather than blast's shift-and-invert.
 */

const maxCodeLength = 15

// tree is a canonical Huffman table, rebuilt in place per block.
type tree struct {
	count  [maxCodeLength + 1]uint16 // number of codes of each length
	trans  [288]uint16               // symbols in ascending canonical-code order
	maxSym int                       // largest symbol with non-zero length, -1 if empty
}

// buildTree constructs t from a length vector. lengths[i] is the code
// length (0..15) of symbol i. Returns a data error if the lengths do not
// describe a legal canonical Huffman code.
func buildTree(t *tree, lengths []byte) Status {
	var offs [maxCodeLength + 1]uint16

	for i := range t.count {
		t.count[i] = 0
	}
	t.maxSym = -1

	for i, l := range lengths {
		if l != 0 {
			t.maxSym = i
		}
		t.count[l]++
	}
	t.count[0] = 0

	max := 1
	sum := 0
	for i := 0; i <= maxCodeLength; i++ {
		if int(t.count[i]) > max {
			return DataError
		}
		max = 2 * (max - int(t.count[i]))

		offs[i] = uint16(sum)
		sum += int(t.count[i])
	}

	if (sum > 1 && max > 0) || (sum == 1 && t.count[1] != 1) {
		return DataError
	}

	for i, l := range lengths {
		if l != 0 {
			t.trans[offs[l]] = uint16(i)
			offs[l]++
		}
	}

	// Single-symbol degenerate case: plant a guard code so the unused
	// half of the one-bit code decodes to an out-of-range symbol,
	// forcing a data error if a conforming stream ever emits it.
	if sum == 1 {
		t.count[1] = 2
		t.trans[1] = uint16(t.maxSym + 1)
	}

	return OK
}

// buildFixedTrees writes the hard-coded RFC 1951 fixed literal/length and
// distance tables directly, without going through buildTree.
func buildFixedTrees(lt, dt *tree) {
	for i := range lt.count {
		lt.count[i] = 0
	}
	lt.count[7] = 24
	lt.count[8] = 152
	lt.count[9] = 112

	for i := 0; i < 24; i++ {
		lt.trans[i] = uint16(256 + i)
	}
	for i := 0; i < 144; i++ {
		lt.trans[24+i] = uint16(i)
	}
	for i := 0; i < 8; i++ {
		lt.trans[24+144+i] = uint16(280 + i)
	}
	for i := 0; i < 112; i++ {
		lt.trans[24+144+8+i] = uint16(144 + i)
	}
	lt.maxSym = 285

	for i := range dt.count {
		dt.count[i] = 0
	}
	dt.count[5] = 32
	for i := 0; i < 32; i++ {
		dt.trans[i] = uint16(i)
	}
	dt.maxSym = 29
}

// decodeSymbol walks the canonical code bit-by-bit, tracking for each
// length how many longer-code slots remain (cur) and how many codes of
// shorter length have been accumulated (sum). Length never exceeds 15 for
// a valid tree. No bounds check is applied to the returned symbol; callers
// that depend on a particular range check sym against t.maxSym.
func (d *decoder) decodeSymbol(t *tree) int {
	sum, cur, length := 0, 0, 0
	for {
		cur = 2*cur + int(d.getBits(1))
		length++
		sum += int(t.count[length])
		cur -= int(t.count[length])
		if cur < 0 {
			break
		}
	}
	return int(t.trans[sum+cur])
}
