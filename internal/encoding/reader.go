package encoding

import (
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/tiwaryash/httpd/specs"
)

// NewReader wraps reader with the decompressor for the given encoding.
func NewReader(enc Encoding, reader io.Reader) (io.ReadCloser, error) {
	switch enc {
	case Gzip:
		return gzip.NewReader(reader)
	case Deflate:
		return zlib.NewReader(reader)
	case Brotli:
		return io.NopCloser(brotli.NewReader(reader)), nil
	}
	return nil, specs.NewError(specs.KindCompression, "unknown content encoding %q", enc)
}
