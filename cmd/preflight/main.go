// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	apiKey := strings.TrimSpace(os.Getenv("AUTH_API_KEY"))
	addr := strings.TrimSpace(os.Getenv("SERVER_ADDR"))
	logDir := strings.TrimSpace(os.Getenv("LOG_DIR"))
	rpm := strings.TrimSpace(os.Getenv("RATELIMIT_RPM"))
	burst := strings.TrimSpace(os.Getenv("RATELIMIT_BURST"))
	origins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))

	if apiKey == "" {
		fail("AUTH_API_KEY is empty (monitor routes would be wide open).")
	}
	if strings.Contains(apiKey, " ") {
		warn("AUTH_API_KEY contains spaces; check for copy-paste mistakes.")
	}

	if addr == "" {
		warn("SERVER_ADDR is empty; the app default will be used.")
	} else {
		ok("SERVER_ADDR=" + addr)
	}

	if logDir == "" {
		warn("LOG_DIR empty — logs go to ./logs by default.")
	} else {
		ok("LOG_DIR=" + logDir)
	}

	if rpm != "" && burst == "" {
		fail("RATELIMIT_RPM set without RATELIMIT_BURST — config load will reject this.")
	}

	if origins == "" {
		warn("CORS_ALLOWED_ORIGINS empty — all origins will be allowed.")
	} else {
		ok("CORS_ALLOWED_ORIGINS=" + origins)
	}

	ok("preflight passed")
}
