package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

func main() {
	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}
	key := os.Getenv("API_KEY")

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter a site URL to monitor (e.g., https://example.com): ")
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		fmt.Println("Invalid URL.")
		return
	}

	req, _ := http.NewRequest(http.MethodPost,
		api+"/api/uptime/monitors/add?url="+url.QueryEscape(raw), nil)
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Error contacting API:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fmt.Println("API returned status:", resp.Status)
		return
	}

	var added struct {
		ID      string  `json:"id"`
		Uptime  float64 `json:"uptime"`
		Message string  `json:"message"`
		Last    struct {
			Status         string  `json:"status"`
			ResponseTimeMS float64 `json:"responseTime"`
		} `json:"lastCheck"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&added); err != nil {
		fmt.Println("Added, but could not decode response:", err)
		return
	}
	fmt.Printf("%s (id=%s, first check: %s in %.2fms)\n",
		added.Message, added.ID, added.Last.Status, added.Last.ResponseTimeMS)
}
