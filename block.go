package tinflate

/*
 * Block inflater: the per-BTYPE block routines that Uncompress dispatches
 * to, driving either the stored literal copy or the literal/length+distance
 * Huffman loop, writing into the destination slice and enforcing its bounds.
 *
 * The stored-block path is grounded on blast's literal output handling in
 * decompress() (bounds checked before any output is written, then copied
 * here in one bulk copy); the
 * Huffman symbol loop has no blast equivalent (PKWare DCL has no block
 * framing) and is grounded on tinf_inflate_block_data in
 * original_source/src/tinflate.c.
 */

// Extra bits and base-length tables for length codes 257..285.
var lengthExtraBits = [30]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
	1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0, 127,
}

var lengthBase = [30]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
	15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258, 0,
}

// Extra bits and base-distance tables for distance codes 0..29.
var distExtraBits = [30]byte{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

var distBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

// inflateUncompressedBlock copies a stored block verbatim after aligning
// to a byte boundary.
func (d *decoder) inflateUncompressedBlock() Status {
	d.tag = 0
	d.bitcount = 0

	if len(d.source)-d.srcCursor < 4 {
		return DataError
	}

	length := int(d.source[d.srcCursor]) | int(d.source[d.srcCursor+1])<<8
	invLength := int(d.source[d.srcCursor+2]) | int(d.source[d.srcCursor+3])<<8
	if length != (^invLength & 0xFFFF) {
		return DataError
	}
	d.srcCursor += 4

	if len(d.source)-d.srcCursor < length {
		return DataError
	}
	if len(d.dest)-d.destCursor < length {
		return BufError
	}

	copy(d.dest[d.destCursor:d.destCursor+length], d.source[d.srcCursor:d.srcCursor+length])
	d.srcCursor += length
	d.destCursor += length
	d.destLen += length

	return OK
}

// inflateBlockData runs the shared literal/length+distance symbol loop
// against the two trees already built by the caller (fixed or dynamic).
func (d *decoder) inflateBlockData() Status {
	for {
		sym := d.decodeSymbol(&d.ltree)

		if d.overflow {
			return DataError
		}

		if sym == 256 {
			return OK
		}

		if sym < 256 {
			if d.destCursor == len(d.dest) {
				return BufError
			}
			d.dest[d.destCursor] = byte(sym)
			d.destCursor++
			d.destLen++
			continue
		}

		if sym > d.ltree.maxSym || sym-257 > 28 || d.dtree.maxSym == -1 {
			return DataError
		}
		sym -= 257

		length := d.getBitsBase(int(lengthExtraBits[sym]), lengthBase[sym])

		dist := d.decodeSymbol(&d.dtree)
		if dist > d.dtree.maxSym || dist > 29 {
			return DataError
		}

		offset := d.getBitsBase(int(distExtraBits[dist]), distBase[dist])
		if offset > d.destLen {
			return DataError
		}
		if len(d.dest)-d.destCursor < length {
			return BufError
		}

		// LZ77 back-reference: copy byte-by-byte in ascending order so
		// that offset < length correctly propagates just-written
		// bytes (run-length behaviour). A bulk/reverse copy would
		// corrupt overlapping runs.
		for i := 0; i < length; i++ {
			d.dest[d.destCursor+i] = d.dest[d.destCursor+i-offset]
		}
		d.destCursor += length
		d.destLen += length
	}
}

// inflateFixedBlock builds the RFC 1951 fixed trees and runs the shared
// symbol loop.
func (d *decoder) inflateFixedBlock() Status {
	buildFixedTrees(&d.ltree, &d.dtree)
	return d.inflateBlockData()
}

// inflateDynamicBlock decodes the per-block trees from the stream and
// runs the shared symbol loop.
func (d *decoder) inflateDynamicBlock() Status {
	if status := d.decodeTrees(); status != OK {
		return status
	}
	return d.inflateBlockData()
}
