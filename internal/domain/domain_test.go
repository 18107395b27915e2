package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func up(ms float64) CheckResult {
	code := 200
	return CheckResult{Status: StatusUp, StatusCode: &code, ResponseTimeMS: ms, CheckedAt: time.Now().UTC()}
}

func down() CheckResult {
	return CheckResult{Status: StatusDown, ResponseTimeMS: 1.0, CheckedAt: time.Now().UTC(), Error: "connection refused"}
}

func TestUptimePercentage(t *testing.T) {
	cases := []struct {
		name string
		ups  int
		dns  int
		want float64
	}{
		{"empty", 0, 0, 0.0},
		{"all_up", 4, 0, 100.0},
		{"all_down", 0, 3, 0.0},
		{"one_third", 1, 2, 33.33},
		{"two_thirds", 2, 1, 66.67},
		{"half", 5, 5, 50.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := &Monitor{URL: "https://example.com"}
			for i := 0; i < c.ups; i++ {
				m.Checks = append(m.Checks, up(10))
			}
			for i := 0; i < c.dns; i++ {
				m.Checks = append(m.Checks, down())
			}
			if got := m.UptimePercentage(); got != c.want {
				t.Fatalf("uptime=%v want %v", got, c.want)
			}
		})
	}
}

func TestLastCheck(t *testing.T) {
	m := &Monitor{URL: "https://example.com"}
	if m.LastCheck() != nil {
		t.Fatalf("expected nil last check for empty history")
	}
	m.Checks = append(m.Checks, down(), up(12.5))
	lc := m.LastCheck()
	if lc == nil || lc.Status != StatusUp {
		t.Fatalf("unexpected last check: %+v", lc)
	}
}

func TestValidHTTPURL(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"https://", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidHTTPURL(c.in); got != c.want {
			t.Fatalf("ValidHTTPURL(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestCheckResult_JSONShape(t *testing.T) {
	c := down()
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["status"] != "down" {
		t.Fatalf("status field wrong: %v", m["status"])
	}
	if v, present := m["status_code"]; !present || v != nil {
		t.Fatalf("status_code should be explicit null on transport failure, got %v (present=%v)", v, present)
	}
	if _, present := m["error"]; !present {
		t.Fatalf("error field should be present on failure")
	}

	b, err = json.Marshal(up(9.99))
	if err != nil {
		t.Fatalf("marshal up: %v", err)
	}
	var u map[string]any
	_ = json.Unmarshal(b, &u)
	if _, present := u["error"]; present {
		t.Fatalf("error field should be omitted on success")
	}
	if u["status_code"].(float64) != 200 {
		t.Fatalf("status_code wrong: %v", u["status_code"])
	}
}
