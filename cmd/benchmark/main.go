package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Config holds the benchmark settings
var (
	targetURL   string
	concurrency int
	duration    time.Duration
	email       string
	password    string
)

// Metrics
var (
	totalRequests uint64
	success201    uint64 // Created
	fail400       uint64 // Validation rejections
	failOther     uint64
)

func init() {
	flag.StringVar(&targetURL, "url", "http://localhost:8080", "API Base URL")
	flag.IntVar(&concurrency, "workers", 10, "Number of concurrent workers")
	flag.DurationVar(&duration, "duration", 30*time.Second, "Test duration")
	flag.StringVar(&email, "email", "seed@example.com", "Login email")
	flag.StringVar(&password, "password", "password123", "Login password")
}

func main() {
	flag.Parse()
	log.Printf("Starting Benchmark | Workers: %d | Duration: %s", concurrency, duration)

	token, numbers, err := login()
	if err != nil {
		log.Fatalf("Setup failed: %v", err)
	}
	if len(numbers) == 0 {
		log.Fatal("No accounts available; run the seeder first")
	}
	log.Printf("Authenticated, %d accounts available", len(numbers))

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go worker(&wg, start, token, numbers)
	}

	wg.Wait()
	printResults(time.Since(start))
}

// login authenticates and lists the caller's account numbers.
func login() (string, []string, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(targetURL+"/login", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return "", nil, fmt.Errorf("login returned %d", resp.StatusCode)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return "", nil, err
	}

	req, _ := http.NewRequest("GET", targetURL+"/v1/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	listResp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer listResp.Body.Close()

	var accounts []struct {
		Number string `json:"account_number"`
	}
	if err := json.NewDecoder(listResp.Body).Decode(&accounts); err != nil {
		return "", nil, err
	}

	numbers := make([]string, 0, len(accounts))
	for _, a := range accounts {
		numbers = append(numbers, a.Number)
	}
	return loginResp.Token, numbers, nil
}

func worker(wg *sync.WaitGroup, start time.Time, token string, numbers []string) {
	defer wg.Done()
	client := &http.Client{Timeout: 5 * time.Second}

	for time.Since(start) < duration {
		number := numbers[rand.Intn(len(numbers))]

		payload := map[string]interface{}{
			"amount":    "1.00",
			"currency":  "GBP",
			"type":      "deposit",
			"reference": "bench",
		}
		body, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", targetURL+"/v1/accounts/"+number+"/transactions", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			atomic.AddUint64(&failOther, 1)
			continue
		}

		atomic.AddUint64(&totalRequests, 1)
		switch resp.StatusCode {
		case 201:
			atomic.AddUint64(&success201, 1)
		case 400:
			// Ceiling reached on a hot account.
			atomic.AddUint64(&fail400, 1)
		default:
			atomic.AddUint64(&failOther, 1)
		}
		resp.Body.Close()
	}
}

func printResults(d time.Duration) {
	total := atomic.LoadUint64(&totalRequests)
	s201 := atomic.LoadUint64(&success201)
	f400 := atomic.LoadUint64(&fail400)
	fErr := atomic.LoadUint64(&failOther)

	tps := float64(total) / d.Seconds()

	results := map[string]interface{}{
		"duration_sec":    d.Seconds(),
		"total_requests":  total,
		"throughput_tps":  tps,
		"success_created": s201,
		"ceiling_reject":  f400,
		"errors":          fErr,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(results)
}
