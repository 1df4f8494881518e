package tinflate

/*
 * Dynamic-tree decoder: reads HLIT/HDIST/HCLEN, the code-length alphabet,
 * and the RLE-encoded length vectors for the literal/length and distance
 * trees of a dynamic block. Grounded on tinf_decode_trees in
 * original_source/src/tinflate.c; blast has no equivalent since the
 * PKWare DCL format bakes its code tables into fixed bit-length tables
 * (literalBitLength etc. in blast's writer.go) rather than transmitting
 * them per block.
 */

// clcIndex is the fixed permutation used to read HCLEN code-length-code
// lengths into their natural alphabet positions.
var clcIndex = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5,
	11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// decodeTrees reads a dynamic block's header and rebuilds d.ltree and
// d.dtree from the stream. The code-length tree is built transiently in
// d.ltree to avoid an extra scratch tree, matching tinf_decode_trees's
// reuse of lt for that purpose.
func (d *decoder) decodeTrees() Status {
	var lengths [320]byte

	hlit := d.getBitsBase(5, 257)
	hdist := d.getBitsBase(5, 1)
	hclen := d.getBitsBase(4, 4)

	// The RFC lists HDIST's raw range as 1-32, but distance codes 30
	// and 31 have no meaning; reject here rather than silently
	// accepting them (see madler/zlib#82, carried from tinflate.c).
	if hlit > 286 || hdist > 30 {
		return DataError
	}

	var clLengths [19]byte
	for i := 0; i < hclen; i++ {
		clLengths[clcIndex[i]] = byte(d.getBits(3))
	}

	if status := buildTree(&d.ltree, clLengths[:]); status != OK {
		return status
	}
	if d.ltree.maxSym == -1 {
		return DataError
	}

	total := hlit + hdist
	for num := 0; num < total; {
		sym := d.decodeSymbol(&d.ltree)
		if sym > d.ltree.maxSym {
			return DataError
		}

		var length int
		switch {
		case sym == 16:
			if num == 0 {
				return DataError
			}
			sym = int(lengths[num-1])
			length = d.getBitsBase(2, 3)
		case sym == 17:
			sym = 0
			length = d.getBitsBase(3, 3)
		case sym == 18:
			sym = 0
			length = d.getBitsBase(7, 11)
		default:
			length = 1
		}

		if length > total-num {
			return DataError
		}
		for ; length > 0; length-- {
			lengths[num] = byte(sym)
			num++
		}
	}

	if lengths[256] == 0 {
		return DataError
	}

	if status := buildTree(&d.ltree, lengths[:hlit]); status != OK {
		return status
	}
	if status := buildTree(&d.dtree, lengths[hlit:hlit+hdist]); status != OK {
		return status
	}
	return OK
}
