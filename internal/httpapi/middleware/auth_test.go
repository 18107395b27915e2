package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestStaticKey_Verify(t *testing.T) {
	cases := []struct {
		key   StaticKey
		token string
		want  bool
	}{
		{"s3cret", "s3cret", true},
		{"s3cret", "wrong", false},
		{"s3cret", "", false},
		{"", "", false}, // empty secret never matches a token directly
		{"", "anything", false},
	}
	for _, c := range cases {
		if got := c.key.Verify(c.token); got != c.want {
			t.Fatalf("StaticKey(%q).Verify(%q)=%v want %v", c.key, c.token, got, c.want)
		}
	}
}

func TestRequireKey_QueryHeaderAndBearer(t *testing.T) {
	h := RequireKey(StaticKey("s3cret"))(okHandler())

	cases := []struct {
		name string
		set  func(r *http.Request)
		want int
	}{
		{"query_param", func(r *http.Request) { q := r.URL.Query(); q.Set("apikey", "s3cret"); r.URL.RawQuery = q.Encode() }, 200},
		{"x_api_key", func(r *http.Request) { r.Header.Set("X-API-Key", "s3cret") }, 200},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer s3cret") }, 200},
		{"wrong_key", func(r *http.Request) { r.Header.Set("X-API-Key", "nope") }, 401},
		{"no_key", func(r *http.Request) {}, 401},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/x", nil)
			c.set(req)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != c.want {
				t.Fatalf("want %d got %d", c.want, rr.Code)
			}
		})
	}
}

func TestRequireKey_DisabledWhenUnconfigured(t *testing.T) {
	h := RequireKey(StaticKey(""))(okHandler())
	req := httptest.NewRequest("GET", "/x", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("auth should be disabled with no key configured, got %d", rr.Code)
	}
}
