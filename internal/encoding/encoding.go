package encoding

import "github.com/tiwaryash/httpd/specs"

// Encoding is a negotiated response content encoding. The zero value is
// identity: no transformation, no Content-Encoding header.
type Encoding string

const (
	Identity Encoding = ""
	Gzip     Encoding = specs.ContentEncodingGzip
	Deflate  Encoding = specs.ContentEncodingDeflate
	Brotli   Encoding = specs.ContentEncodingBrotli
)

// Select scans the client-advertised encoding tokens in the order given and
// returns the first recognized one. Unknown tokens (including "identity" and
// "*") are skipped; no match means Identity.
func Select(accepted []string) Encoding {
	for _, token := range accepted {
		switch token {
		case specs.ContentEncodingBrotli:
			return Brotli
		case specs.ContentEncodingGzip:
			return Gzip
		case specs.ContentEncodingDeflate:
			return Deflate
		}
	}
	return Identity
}
