package specs

import "strconv"

type StatusCode uint16

const (
	StatusCodeUndefined StatusCode = 0

	StatusCodeOK        StatusCode = 200
	StatusCodeCreated   StatusCode = 201
	StatusCodeNoContent StatusCode = 204

	StatusCodeBadRequest       StatusCode = 400
	StatusCodeNotFound         StatusCode = 404
	StatusCodeMethodNotAllowed StatusCode = 405

	StatusCodeInternalServerError StatusCode = 500
)

func (status StatusCode) IsValid() bool {
	return 100 <= status && status < 600
}

// Formatted renders the code followed by its reason phrase,
// e.g. "404 Not Found".
func (status StatusCode) Formatted() []byte {
	buf := strconv.AppendUint(nil, uint64(status), 10)
	buf = append(buf, ' ')
	return append(buf, status.Detail()...)
}

// Detail returns the reason phrase for the status code. Codes outside
// the fixed table render as "Unknown".
func (status StatusCode) Detail() []byte {
	switch status {
	case StatusCodeOK:
		return []byte("OK")
	case StatusCodeCreated:
		return []byte("Created")
	case StatusCodeNoContent:
		return []byte("No Content")
	case StatusCodeBadRequest:
		return []byte("Bad Request")
	case StatusCodeNotFound:
		return []byte("Not Found")
	case StatusCodeMethodNotAllowed:
		return []byte("Method Not Allowed")
	case StatusCodeInternalServerError:
		return []byte("Internal Server Error")
	}
	return []byte("Unknown")
}
