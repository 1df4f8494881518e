// Package gzip validates and strips the RFC 1952 gzip container around a
// DEFLATE payload, handing the payload to tinflate and verifying the
// trailing CRC32/ISIZE against the emitted output.
//
// This is the "external collaborator" framing layer described by the
// inflate engine's specification: a thin, obvious shell around the
// engine, not part of the engine itself.
package gzip

/*
 * Grounded on original_source/examples/tgunzip/tgunzip.c
 * (tinf_gzip_uncompress's caller, read_le32) for the overall shape —
 * pre-size the destination from the trailing ISIZE, decompress, and
 * reject on any length mismatch — and on the standard library's
 * compress/gzip header reader for which optional fields to skip and in
 * what order.
 */

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/JoshVarga/tinflate"
)

const (
	gzipMagic1 = 0x1F
	gzipMagic2 = 0x8B
	gzipMethod = 0x08

	flagText    = 1 << 0
	flagHCRC    = 1 << 1
	flagExtra   = 1 << 2
	flagName    = 1 << 3
	flagComment = 1 << 4
	flagReserved = 0xE0

	headerLen  = 10
	trailerLen = 8
	minLen     = headerLen + trailerLen // header and trailer only; DEFLATE bytes are not counted
)

// ErrHeader is returned when the gzip magic, method, or flag bits are
// invalid, or the input is too short to contain a header and trailer.
var ErrHeader = errors.New("gzip: invalid header")

// ErrTrailer is returned when the trailing CRC32 or ISIZE does not match
// the decompressed output.
var ErrTrailer = errors.New("gzip: crc32 or size mismatch")

// Size returns the uncompressed size declared in a gzip stream's trailer,
// as read from the last 4 bytes of source. Callers use this to size a
// destination slice before calling Uncompress, mirroring tgunzip.c's
// read_le32(&source[len-4]) pre-sizing step.
func Size(source []byte) (int, error) {
	if len(source) < minLen {
		return 0, ErrHeader
	}
	return int(binary.LittleEndian.Uint32(source[len(source)-4:])), nil
}

// Uncompress validates the gzip header, inflates the DEFLATE payload into
// dest, and validates the trailing CRC32 and ISIZE. It returns the number
// of bytes written on success.
func Uncompress(dest, source []byte) (int, error) {
	if len(source) < minLen {
		return 0, ErrHeader
	}

	if source[0] != gzipMagic1 || source[1] != gzipMagic2 {
		return 0, ErrHeader
	}
	if source[2] != gzipMethod {
		return 0, ErrHeader
	}

	flags := source[3]
	if flags&flagReserved != 0 {
		return 0, ErrHeader
	}

	// MTIME(4) + XFL(1) + OS(1)
	cursor := headerLen

	if flags&flagExtra != 0 {
		if len(source) < cursor+2 {
			return 0, ErrHeader
		}
		xlen := int(binary.LittleEndian.Uint16(source[cursor:]))
		cursor += 2
		if len(source) < cursor+xlen {
			return 0, ErrHeader
		}
		cursor += xlen
	}

	if flags&flagName != 0 {
		n, err := skipCString(source, cursor)
		if err != nil {
			return 0, err
		}
		cursor = n
	}

	if flags&flagComment != 0 {
		n, err := skipCString(source, cursor)
		if err != nil {
			return 0, err
		}
		cursor = n
	}

	if flags&flagHCRC != 0 {
		if len(source) < cursor+2 {
			return 0, ErrHeader
		}
		cursor += 2
	}

	if len(source) < cursor+trailerLen {
		return 0, ErrHeader
	}

	payload := source[cursor : len(source)-trailerLen]
	trailer := source[len(source)-trailerLen:]

	n, err := tinflate.Uncompress(dest, payload)
	if err != nil {
		return 0, fmt.Errorf("gzip: %w", err)
	}

	wantCRC := binary.LittleEndian.Uint32(trailer[0:4])
	wantSize := binary.LittleEndian.Uint32(trailer[4:8])

	gotCRC := crc32.ChecksumIEEE(dest[:n])
	if gotCRC != wantCRC || uint32(n) != wantSize {
		return 0, ErrTrailer
	}

	return n, nil
}

func skipCString(source []byte, cursor int) (int, error) {
	for i := cursor; i < len(source); i++ {
		if source[i] == 0 {
			return i + 1, nil
		}
	}
	return 0, ErrHeader
}
