package parsing

import "strings"

// ParseRequestLine splits a request line, e.g. "GET /index.html HTTP/1.1",
// into its method, path and protocol version tokens. At least three
// whitespace-separated tokens are required; extra tokens are ignored.
func ParseRequestLine(line []byte) (method, path, version string, ok bool) {
	fields := strings.Fields(string(line))
	if len(fields) < 3 {
		return "", "", "", false
	}
	return fields[0], fields[1], fields[2], true
}
