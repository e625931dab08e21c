package httpd

import (
	"bufio"
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/tiwaryash/httpd/internal/encoding"
	"github.com/tiwaryash/httpd/specs"
)

func readBuilt(t *testing.T, wire []byte) *http.Response {
	t.Helper()
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(wire)), nil)
	if err != nil {
		t.Fatalf("built response is not parseable: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestResponse_Build(t *testing.T) {
	wire := Ok().Text("hello").Build()

	if !bytes.HasPrefix(wire, []byte("HTTP/1.1 200 OK\r\n")) {
		t.Errorf("status line wrong: %q", wire[:20])
	}
	if !bytes.HasSuffix(wire, []byte("\r\n\r\nhello")) {
		t.Errorf("body framing wrong: %q", wire)
	}

	resp := readBuilt(t, wire)
	if resp.Header.Get("Content-Length") != "5" {
		t.Errorf("Content-Length = %q", resp.Header.Get("Content-Length"))
	}
	if resp.Header.Get("Content-Type") != "text/plain" {
		t.Errorf("Content-Type = %q", resp.Header.Get("Content-Type"))
	}
}

func TestResponse_UnknownReason(t *testing.T) {
	wire := NewResponse(specs.StatusCode(418)).Build()
	if !bytes.HasPrefix(wire, []byte("HTTP/1.1 418 Unknown\r\n")) {
		t.Errorf("status line = %q", bytes.SplitN(wire, []byte("\r\n"), 2)[0])
	}
}

func TestResponse_HeaderCasingDedup(t *testing.T) {
	resp := Ok().
		Header("x-token", "one").
		Header("X-Token", "two").
		Text("")
	wire := resp.Build()

	if n := bytes.Count(wire, []byte("X-Token:")); n != 1 {
		t.Errorf("X-Token appears %d times", n)
	}
	if got := readBuilt(t, wire).Header.Get("X-Token"); got != "two" {
		t.Errorf("X-Token = %q", got)
	}
}

func TestResponse_InvalidHeaderDropped(t *testing.T) {
	wire := Ok().Header("Bad Name", "v").Header("X-Ok", "bad\x00value").Build()
	if bytes.Contains(wire, []byte("Bad Name")) || bytes.Contains(wire, []byte("X-Ok")) {
		t.Errorf("invalid header leaked into wire: %q", wire)
	}
}

func TestResponse_CompressRecomputesContentLength(t *testing.T) {
	body := strings.Repeat("compress me ", 50)
	resp := Ok().Text(body)
	if err := resp.Compress(encoding.Gzip); err != nil {
		t.Fatal(err)
	}
	wire := resp.Build()

	parsed := readBuilt(t, wire)
	if parsed.Header.Get("Content-Encoding") != "gzip" {
		t.Errorf("Content-Encoding = %q", parsed.Header.Get("Content-Encoding"))
	}

	declared, err := strconv.Atoi(parsed.Header.Get("Content-Length"))
	if err != nil {
		t.Fatal(err)
	}
	idx := bytes.Index(wire, []byte("\r\n\r\n"))
	if actual := len(wire) - idx - 4; actual != declared {
		t.Errorf("Content-Length = %d but body is %d bytes", declared, actual)
	}
	if declared == len(body) {
		t.Error("Content-Length was not recomputed after compression")
	}
}

func TestResponse_CompressEmptyBody(t *testing.T) {
	resp := Ok().Text("")
	if err := resp.Compress(encoding.Brotli); err != nil {
		t.Fatal(err)
	}
	wire := resp.Build()
	parsed := readBuilt(t, wire)
	if parsed.Header.Get("Content-Encoding") != "" {
		t.Error("empty body must not be compressed")
	}
	if parsed.Header.Get("Content-Length") != "0" {
		t.Errorf("Content-Length = %q", parsed.Header.Get("Content-Length"))
	}
}

func TestResponse_JSON(t *testing.T) {
	resp, err := Ok().JSON(map[string]int{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	wire := resp.Build()
	parsed := readBuilt(t, wire)
	if parsed.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", parsed.Header.Get("Content-Type"))
	}
	if !bytes.HasSuffix(wire, []byte(`{"a":1}`)) {
		t.Errorf("body = %q", wire)
	}
}
