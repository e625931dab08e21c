package specs

import "testing"

func TestParseHttpMethod(t *testing.T) {
	for raw, want := range map[string]HttpMethod{
		"GET":    HttpMethodGet,
		"get":    HttpMethodGet,
		"Post":   HttpMethodPost,
		"DELETE": HttpMethodDelete,
		"paTCH":  HttpMethodPatch,
	} {
		method, ok := ParseHttpMethod(raw)
		if !ok || method != want {
			t.Errorf("ParseHttpMethod(%q) = %q, %v", raw, method, ok)
		}
	}

	for _, raw := range []string{"", "FETCH", "G E T", "CONNECT", "TRACE"} {
		if _, ok := ParseHttpMethod(raw); ok {
			t.Errorf("ParseHttpMethod(%q) unexpectedly succeeded", raw)
		}
	}
}

func TestHttpMethod_IsPostable(t *testing.T) {
	if !HttpMethodPost.IsPostable() || !HttpMethodPut.IsPostable() {
		t.Error("POST/PUT should carry bodies")
	}
	if HttpMethodGet.IsPostable() || HttpMethodHead.IsPostable() {
		t.Error("GET/HEAD should not carry bodies")
	}
}
