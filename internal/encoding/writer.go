package encoding

import (
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/tiwaryash/httpd/specs"
)

// NewWriter wraps writer with the compressor for the given encoding.
func NewWriter(enc Encoding, writer io.Writer) (io.WriteCloser, error) {
	switch enc {
	case Gzip:
		return gzip.NewWriter(writer), nil
	case Deflate:
		return zlib.NewWriter(writer), nil
	case Brotli:
		return brotli.NewWriter(writer), nil
	}
	return nil, specs.NewError(specs.KindCompression, "unknown content encoding %q", enc)
}
