package httpd

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/tiwaryash/httpd/specs"
)

func parseRaw(t *testing.T, raw string) (*Request, error) {
	t.Helper()
	return ReadRequest(bufio.NewReader(strings.NewReader(raw)))
}

func TestReadRequest_RequestLine(t *testing.T) {
	req, err := parseRaw(t, "GET /echo/hello HTTP/1.1\r\n\r\n")
	if err != nil {
		t.Fatal(err)
	}
	if req.Method != specs.HttpMethodGet || req.Path != "/echo/hello" || req.Version != "HTTP/1.1" {
		t.Errorf("parsed %q %q %q", req.Method, req.Path, req.Version)
	}
}

func TestReadRequest_LowercaseMethod(t *testing.T) {
	req, err := parseRaw(t, "post /files/a.txt HTTP/1.1\r\nContent-Length: 2\r\n\r\nhi")
	if err != nil {
		t.Fatal(err)
	}
	if req.Method != specs.HttpMethodPost {
		t.Errorf("method = %q", req.Method)
	}
}

func TestReadRequest_MalformedRequestLine(t *testing.T) {
	_, err := parseRaw(t, "GET /\r\n\r\n")
	if err == nil {
		t.Fatal("expected error for short request line")
	}
	if specs.ErrorStatus(err) != specs.StatusCodeBadRequest {
		t.Errorf("status = %d, want 400", specs.ErrorStatus(err))
	}
}

func TestReadRequest_UnknownMethod(t *testing.T) {
	_, err := parseRaw(t, "FETCH / HTTP/1.1\r\n\r\n")
	var serr *specs.ServerError
	if !errors.As(err, &serr) || serr.Kind != specs.KindInvalidMethod {
		t.Fatalf("expected invalid method error, got %v", err)
	}
}

func TestReadRequest_Headers(t *testing.T) {
	raw := "GET / HTTP/1.1\r\n" +
		"Host: example.com\r\n" +
		"User-Agent:   curl/8.0  \r\n" +
		"X-Dup: first\r\n" +
		"x-dup: second\r\n" +
		"not a header line\r\n" +
		"\r\n"
	req, err := parseRaw(t, raw)
	if err != nil {
		t.Fatal(err)
	}

	if got := req.Headers["host"]; got != "example.com" {
		t.Errorf("host = %q", got)
	}
	if got := req.Header("USER-AGENT"); got != "curl/8.0" {
		t.Errorf("user-agent = %q (want trimmed value)", got)
	}
	if got := req.Headers["x-dup"]; got != "second" {
		t.Errorf("x-dup = %q, want last occurrence", got)
	}
	if _, has := req.Headers["not a header line"]; has {
		t.Error("colon-less line should be ignored")
	}
}

func TestReadRequest_Body(t *testing.T) {
	req, err := parseRaw(t, "POST /files/x HTTP/1.1\r\nContent-Length: 3\r\n\r\nabcEXTRA")
	if err != nil {
		t.Fatal(err)
	}
	if string(req.Body) != "abc" {
		t.Errorf("body = %q, want exactly 3 bytes", req.Body)
	}
}

func TestReadRequest_MalformedContentLength(t *testing.T) {
	for _, value := range []string{"abc", "-3", "1e3", ""} {
		req, err := parseRaw(t, "POST /files/x HTTP/1.1\r\nContent-Length: "+value+"\r\n\r\nignored")
		if err != nil {
			t.Fatalf("Content-Length %q: %v", value, err)
		}
		if len(req.Body) != 0 {
			t.Errorf("Content-Length %q: body = %q, want empty", value, req.Body)
		}
	}
}

func TestReadRequest_MissingContentLength(t *testing.T) {
	req, err := parseRaw(t, "POST /files/x HTTP/1.1\r\n\r\nleftover")
	if err != nil {
		t.Fatal(err)
	}
	if len(req.Body) != 0 {
		t.Errorf("body = %q, want empty without Content-Length", req.Body)
	}
}

func TestReadRequest_TruncatedBody(t *testing.T) {
	_, err := parseRaw(t, "POST /files/x HTTP/1.1\r\nContent-Length: 10\r\n\r\nabc")
	if err == nil {
		t.Fatal("expected error for truncated body")
	}
}

func TestReadRequest_BareLFLines(t *testing.T) {
	req, err := parseRaw(t, "GET /user-agent HTTP/1.1\nUser-Agent: tester\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if req.Header("User-Agent") != "tester" {
		t.Errorf("headers = %v", req.Headers)
	}
}

func TestRequest_AcceptedEncodings(t *testing.T) {
	req, err := parseRaw(t, "GET /echo/x HTTP/1.1\r\nAccept-Encoding: GZip, br , frob\r\n\r\n")
	if err != nil {
		t.Fatal(err)
	}
	got := req.AcceptedEncodings()
	want := []string{"gzip", "br", "frob"}
	if len(got) != len(want) {
		t.Fatalf("AcceptedEncodings = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AcceptedEncodings[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
