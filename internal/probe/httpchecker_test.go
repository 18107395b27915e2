package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPChecker_StatusOK(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if !out.Success {
		t.Fatalf("want success, got %+v", out)
	}
	if out.StatusCode != 200 {
		t.Fatalf("want status 200, got %d", out.StatusCode)
	}
	if out.Message != "" {
		t.Fatalf("message should be empty on success, got %q", out.Message)
	}
	if out.LatencyMS < 0 {
		t.Fatalf("latency should be >= 0, got %f", out.LatencyMS)
	}
}

func TestHTTPChecker_ClassificationBoundary(t *testing.T) {
	cases := []struct {
		code    int
		success bool
	}{
		{200, true},
		{301, true},
		{399, true},
		{400, false},
		{404, false},
		{500, false},
	}
	for _, c := range cases {
		s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(c.code)
		}))
		chk := NewHTTPChecker(2 * time.Second)
		out := chk.Check(context.Background(), s.URL)
		s.Close()
		if out.Success != c.success {
			t.Fatalf("status %d: want success=%v, got %+v", c.code, c.success, out)
		}
		if out.StatusCode != c.code {
			t.Fatalf("want status %d, got %d", c.code, out.StatusCode)
		}
	}
}

func TestHTTPChecker_TimeoutSetsStatusZero(t *testing.T) {
	// server sleeps longer than the client timeout
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer s.Close()

	chk := NewHTTPChecker(50 * time.Millisecond)
	out := chk.Check(context.Background(), s.URL)
	if out.Success {
		t.Fatalf("want failure due to timeout, got %+v", out)
	}
	if out.StatusCode != 0 {
		t.Fatalf("want status 0 on transport error, got %d", out.StatusCode)
	}
	if out.Message == "" {
		t.Fatalf("want non-empty error message")
	}
	if out.LatencyMS <= 0 {
		t.Fatalf("latency should be measured on the failure path, got %f", out.LatencyMS)
	}
}

func TestHTTPChecker_ConnectionRefused(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := s.URL
	s.Close() // nothing listens here anymore

	chk := NewHTTPChecker(time.Second)
	out := chk.Check(context.Background(), url)
	if out.Success || out.StatusCode != 0 || out.Message == "" {
		t.Fatalf("want transport failure with message, got %+v", out)
	}
}
