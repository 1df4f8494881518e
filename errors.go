package tinflate

/*
 * Copyright (c) 2018 Josh Varga
 * Original C version: Copyright (c) 2003-2019 Joergen Ibsen (tinflate,
 * chris-y/tinf), Copyright (C) 1995-2022 Mark Adler (RFC 1951 reference)
 *
 * This software is provided 'as-is', without any express or implied
 * warranty. In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 * 3. This notice may not be removed or altered from any source distribution.
 *
 * This code has been adapted to Go from Joergen Ibsen's tinflate.c,
 * re-targeting the package shape used by JoshVarga/blast for the PKWare
 * DCL format to RFC 1951 DEFLATE and RFC 1952 gzip.
 */

// Status is the ABI-stable result code of a decompression call. The numeric
// values match tinf_uncompress's return codes so a reimplementation can
// stay drop-in compatible with callers written against the C ABI.
type Status int

// Status codes. Values are part of the ABI and must not change.
const (
	OK        Status = 0
	DataError Status = -3
	BufError  Status = -5
)

// Error reports a Status as an error. A nil *Error means OK.
type Error struct {
	Status Status
}

func (e *Error) Error() string {
	switch e.Status {
	case DataError:
		return "tinflate: data error"
	case BufError:
		return "tinflate: output buffer too small"
	default:
		return "tinflate: unknown error"
	}
}

// ErrDataError is returned when the compressed stream is malformed,
// truncated, or otherwise does not conform to RFC 1951.
var ErrDataError = &Error{Status: DataError}

// ErrBufError is returned when the destination slice is too small to hold
// the decompressed output. Unlike ErrDataError this is potentially
// recoverable: the caller may retry with a larger destination.
var ErrBufError = &Error{Status: BufError}

// errorFor maps an internal Status to the shared *Error singleton callers
// compare against with ==. status must be DataError or BufError.
func errorFor(status Status) error {
	if status == BufError {
		return ErrBufError
	}
	return ErrDataError
}
