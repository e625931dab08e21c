package httpd

import (
	"bytes"
	"encoding/json"
	"strconv"

	"golang.org/x/net/http/httpguts"

	"github.com/tiwaryash/httpd/internal"
	"github.com/tiwaryash/httpd/internal/encoding"
	"github.com/tiwaryash/httpd/specs"
)

// Response accumulates status, headers and body through chained mutations
// and finalizes once into wire bytes via Build.
type Response struct {
	status  specs.StatusCode
	headers map[string]string
	body    []byte
}

func NewResponse(status specs.StatusCode) *Response {
	return &Response{
		status:  status,
		headers: map[string]string{},
	}
}

func Ok() *Response {
	return NewResponse(specs.StatusCodeOK)
}

func Created() *Response {
	return NewResponse(specs.StatusCodeCreated)
}

func NotFound() *Response {
	return NewResponse(specs.StatusCodeNotFound).Text("404 - Not Found")
}

func MethodNotAllowed() *Response {
	return NewResponse(specs.StatusCodeMethodNotAllowed).Text("405 - Method Not Allowed")
}

func InternalError() *Response {
	return NewResponse(specs.StatusCodeInternalServerError).Text("500 - Internal Server Error")
}

// Header sets a header under its canonical Title-Case name, so a name can
// never appear twice under different casings. Names or values that are not
// valid header fields are dropped.
func (resp *Response) Header(name, value string) *Response {
	if !httpguts.ValidHeaderFieldName(name) || !httpguts.ValidHeaderFieldValue(value) {
		return resp
	}
	resp.headers[internal.TitleCase(name)] = value
	return resp
}

// Body replaces the response body. Any previously computed Content-Length
// is discarded so Build recomputes it.
func (resp *Response) Body(body []byte) *Response {
	resp.body = body
	delete(resp.headers, "Content-Length")
	return resp
}

// Text sets a plain-text body.
func (resp *Response) Text(text string) *Response {
	return resp.Header("Content-Type", specs.ContentTypePlain).Body([]byte(text))
}

// HTML sets an HTML body.
func (resp *Response) HTML(html string) *Response {
	return resp.Header("Content-Type", specs.ContentTypeHTML).Body([]byte(html))
}

// JSON marshals v as the response body.
func (resp *Response) JSON(v any) (*Response, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, specs.NewError(specs.KindInternal, "json encoding failed: %s", err)
	}
	return resp.Header("Content-Type", specs.ContentTypeJson).Body(payload), nil
}

// Compress applies the negotiated encoding to the body and records it in
// Content-Encoding. An empty body is left untouched, as is identity.
func (resp *Response) Compress(enc encoding.Encoding) error {
	if enc == encoding.Identity || len(resp.body) == 0 {
		return nil
	}

	compressed, err := encoding.Compress(enc, resp.body)
	if err != nil {
		return err
	}
	resp.Body(compressed)
	resp.Header("Content-Encoding", string(enc))
	return nil
}

// Build serializes the response: status line, headers in no particular
// order, blank line, raw body. Content-Length is injected if absent.
func (resp *Response) Build() []byte {
	if _, has := resp.headers["Content-Length"]; !has {
		resp.headers["Content-Length"] = strconv.Itoa(len(resp.body))
	}

	var buf bytes.Buffer
	buf.WriteString("HTTP/1.1 ")
	buf.Write(resp.status.Formatted())
	buf.WriteString("\r\n")

	for name, value := range resp.headers {
		buf.WriteString(name)
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.WriteString("\r\n")
	}

	buf.WriteString("\r\n")
	buf.Write(resp.body)
	return buf.Bytes()
}
