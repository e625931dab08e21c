package specs

import "strings"

type HttpMethod string

// HttpMethod constants represent the HTTP methods the server accepts
// on the wire. Requests carrying anything else are rejected before routing.
const (
	HttpMethodGet     HttpMethod = "GET"
	HttpMethodPost    HttpMethod = "POST"
	HttpMethodPut     HttpMethod = "PUT"
	HttpMethodDelete  HttpMethod = "DELETE"
	HttpMethodPatch   HttpMethod = "PATCH"
	HttpMethodHead    HttpMethod = "HEAD"
	HttpMethodOptions HttpMethod = "OPTIONS"
)

// ParseHttpMethod matches a raw token against the known methods,
// case-insensitively.
func ParseHttpMethod(raw string) (HttpMethod, bool) {
	method := HttpMethod(strings.ToUpper(raw))
	if method.IsValid() {
		return method, true
	}
	return "", false
}

// IsValid checks if the HttpMethod is one of the accepted methods.
func (method HttpMethod) IsValid() bool {
	return method == HttpMethodGet ||
		method == HttpMethodPost ||
		method == HttpMethodPut ||
		method == HttpMethodDelete ||
		method == HttpMethodPatch ||
		method == HttpMethodHead ||
		method == HttpMethodOptions
}

// IsPostable checks if the HttpMethod is suitable for carrying a request body.
func (method HttpMethod) IsPostable() bool {
	return method == HttpMethodPost || method == HttpMethodPut ||
		method == HttpMethodDelete || method == HttpMethodPatch
}
