package parsing

import (
	"bytes"
	"strconv"
	"strings"
)

// ParseHeaderLine splits a header line on the first colon. The name comes
// back lower-cased and trimmed, the value trimmed. A line without a colon
// is not a header line and reports ok = false.
func ParseHeaderLine(line []byte) (name, value string, ok bool) {
	idx := bytes.IndexByte(line, ':')
	if idx < 0 {
		return "", "", false
	}
	name = strings.ToLower(strings.TrimSpace(string(line[:idx])))
	value = strings.TrimSpace(string(line[idx+1:]))
	return name, value, true
}

// ParseContentLength interprets a content-length header value. Anything that
// does not parse as a non-negative integer counts as zero, meaning "no body".
func ParseContentLength(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SplitListHeader splits a comma-separated header value (e.g. Accept-Encoding)
// into trimmed, lower-cased tokens. Empty tokens are dropped.
func SplitListHeader(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
