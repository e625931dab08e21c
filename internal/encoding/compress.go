package encoding

import (
	"bytes"
	"io"

	"github.com/tiwaryash/httpd/specs"
)

// Compress applies enc to data in one shot. Identity returns data unchanged.
func Compress(enc Encoding, data []byte) ([]byte, error) {
	if enc == Identity {
		return data, nil
	}

	var buf bytes.Buffer
	writer, err := NewWriter(enc, &buf)
	if err != nil {
		return nil, err
	}
	if _, err = writer.Write(data); err != nil {
		writer.Close()
		return nil, specs.NewError(specs.KindCompression, "%s compression failed: %s", enc, err)
	}
	if err = writer.Close(); err != nil {
		return nil, specs.NewError(specs.KindCompression, "%s compression failed: %s", enc, err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress; used to verify round-trips.
func Decompress(enc Encoding, data []byte) ([]byte, error) {
	if enc == Identity {
		return data, nil
	}

	reader, err := NewReader(enc, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, specs.NewError(specs.KindCompression, "%s decompression failed: %s", enc, err)
	}
	return out, nil
}
