package httpd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tiwaryash/httpd/internal/parsing"
	"github.com/tiwaryash/httpd/internal/stream"
	"github.com/tiwaryash/httpd/specs"
)

// Request is one parsed HTTP request. It is built once per connection and
// not mutated afterwards.
type Request struct {
	Method  specs.HttpMethod
	Path    string
	Version string

	// Headers maps lower-cased header names to trimmed values. On duplicate
	// names the last occurrence wins.
	Headers map[string]string

	// Body holds exactly Content-Length bytes, or nothing. The body length is
	// never inferred from the socket beyond the declared Content-Length.
	Body []byte
}

// Header looks up a header value case-insensitively.
func (req *Request) Header(name string) string {
	return req.Headers[strings.ToLower(name)]
}

// AcceptedEncodings returns the Accept-Encoding tokens in client order.
func (req *Request) AcceptedEncodings() []string {
	return parsing.SplitListHeader(req.Header("Accept-Encoding"))
}

// ReadRequest reads a single request from the buffered stream: request line,
// headers up to the empty line, then exactly Content-Length body bytes.
// A Content-Length value that does not parse as a non-negative integer is
// treated as zero rather than failing the request. No header-count or
// line-length limit is enforced.
func ReadRequest(reader *bufio.Reader) (*Request, error) {
	line, err := stream.ReadLine(reader)
	if err != nil {
		return nil, specs.WrapError(specs.KindInvalidRequest,
			fmt.Errorf("failed to read request line: %w", err))
	}

	rawMethod, path, version, ok := parsing.ParseRequestLine(line)
	if !ok {
		return nil, specs.NewError(specs.KindInvalidRequest, "invalid request line format")
	}

	method, ok := specs.ParseHttpMethod(rawMethod)
	if !ok {
		return nil, specs.NewError(specs.KindInvalidMethod, "unknown http method %q", rawMethod)
	}

	headers := map[string]string{}
	var contentLength int
	for {
		line, err = stream.ReadLine(reader)
		if err != nil {
			return nil, specs.WrapError(specs.KindInvalidRequest,
				fmt.Errorf("failed to read header line: %w", err))
		}
		if len(line) == 0 {
			break
		}

		name, value, ok := parsing.ParseHeaderLine(line)
		if !ok {
			continue
		}
		if name == "content-length" {
			contentLength = parsing.ParseContentLength(value)
		}
		headers[name] = value
	}

	var body []byte
	if contentLength > 0 {
		body = make([]byte, contentLength)
		if _, err = io.ReadFull(reader, body); err != nil {
			return nil, specs.WrapError(specs.KindInvalidRequest,
				fmt.Errorf("failed to read request body: %w", err))
		}
	}

	return &Request{
		Method:  method,
		Path:    path,
		Version: version,
		Headers: headers,
		Body:    body,
	}, nil
}
