package gzip_test

import (
	"testing"

	"github.com/JoshVarga/tinflate/gzip"
)

func TestEmptyGzip(t *testing.T) {
	// Literal example from the gzip container's minimal framing: magic,
	// method, all flags clear, a two-byte DEFLATE payload that decodes to
	// nothing (final fixed block with just EOB), and a zero CRC32/ISIZE
	// trailer.
	source := []byte{
		0x1F, 0x8B, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	dest := make([]byte, 0)
	n, err := gzip.Uncompress(dest, source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("found=%d want=0", n)
	}
}

func quickBrownFoxGzip() []byte {
	return []byte{
		0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0xff,
		0x0b, 0xc9, 0x48, 0x55, 0x28, 0x2c, 0xcd, 0x4c, 0xce, 0x56,
		0x48, 0x2a, 0xca, 0x2f, 0xcf, 0x53, 0x48, 0xcb, 0xaf, 0x50,
		0xc8, 0x2a, 0xcd, 0x2d, 0x28, 0x56, 0xc8, 0x2f, 0x4b, 0x2d,
		0x52, 0x28, 0x01, 0x4a, 0xe7, 0x24, 0x56, 0x55, 0x2a, 0xa4,
		0xe4, 0xa7, 0x03, 0x00, 0x39, 0xa3, 0x4f, 0x41, 0x2b, 0x00,
		0x00, 0x00,
	}
}

func TestGzipRoundTrip(t *testing.T) {
	want := "The quick brown fox jumps over the lazy dog"
	source := quickBrownFoxGzip()

	size, err := gzip.Size(source)
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != len(want) {
		t.Fatalf("Size=%d want=%d", size, len(want))
	}

	dest := make([]byte, size)
	n, err := gzip.Uncompress(dest, source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(dest[:n]) != want {
		t.Errorf("found=%q want=%q", dest[:n], want)
	}
}

func TestGzipCorruptedPayload(t *testing.T) {
	source := quickBrownFoxGzip()
	source[12] ^= 0xFF

	dest := make([]byte, 64)
	if _, err := gzip.Uncompress(dest, source); err == nil {
		t.Error("expected an error decoding a corrupted payload")
	}
}

func TestGzipBufferOneByteShort(t *testing.T) {
	source := quickBrownFoxGzip()
	dest := make([]byte, len("The quick brown fox jumps over the lazy dog")-1)
	if _, err := gzip.Uncompress(dest, source); err == nil {
		t.Error("expected an error decoding into an undersized buffer")
	}
}

func TestInvalidMagic(t *testing.T) {
	source := quickBrownFoxGzip()
	source[0] = 0x00
	dest := make([]byte, 64)
	if _, err := gzip.Uncompress(dest, source); err != gzip.ErrHeader {
		t.Errorf("found=%v want=%v", err, gzip.ErrHeader)
	}
}

func TestTooShortToBeGzip(t *testing.T) {
	dest := make([]byte, 0)
	if _, err := gzip.Uncompress(dest, []byte{0x1F, 0x8B}); err != gzip.ErrHeader {
		t.Errorf("found=%v want=%v", err, gzip.ErrHeader)
	}
}
