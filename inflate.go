// Package tinflate decodes a raw RFC 1951 DEFLATE bit-stream into a
// caller-provided destination buffer. It is the decompression half of
// gzip/zlib payloads, without the container framing — see the gzip
// subpackage for RFC 1952 gzip support.
//
// The whole compressed input and a pre-sized destination slice are
// supplied up front; there is no streaming or incremental API, no
// compression, and no adaptive resizing of the destination.
package tinflate

/*
 * Top-level inflater: reads the BFINAL/BTYPE header of each block,
 * dispatches to the appropriate block routine, and finalises. Grounded
 * on tinf_uncompress in original_source/src/tinflate.c; blast's top-level
 * blast() function plays the analogous role for PKWare DCL (single block,
 * no BTYPE dispatch) and supplies the pattern of threading one state
 * struct through the call and returning leftover/used counts.
 */

// BTYPE values.
const (
	btypeStored  = 0
	btypeFixed   = 1
	btypeDynamic = 2
	btypeReserved = 3
)

// Uncompress decompresses a raw DEFLATE stream from source into dest. On
// success it returns the number of bytes written and a nil error. On
// failure it returns 0 and an *Error identifying whether the input was
// malformed (ErrDataError) or dest was too small (ErrBufError); any bytes
// already written to dest on a failing call must not be trusted by the
// caller.
func Uncompress(dest, source []byte) (int, error) {
	d := decoder{
		source: source,
		dest:   dest,
	}

	for {
		bfinal := d.getBits(1)
		btype := d.getBits(2)

		var status Status
		switch btype {
		case btypeStored:
			status = d.inflateUncompressedBlock()
		case btypeFixed:
			status = d.inflateFixedBlock()
		case btypeDynamic:
			status = d.inflateDynamicBlock()
		default:
			status = DataError
		}

		if status != OK {
			return 0, errorFor(status)
		}

		if bfinal != 0 {
			break
		}
	}

	// The bit stream may retain unread bits within the last refilled
	// byte; this is expected and is not an overflow.
	if d.overflow {
		return 0, ErrDataError
	}

	return d.destLen, nil
}

// Init is a historical no-op, retained as an empty one-shot hook so code
// ported from the C tinf_init() ABI has somewhere to call.
func Init() {}
