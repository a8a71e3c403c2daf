package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"
)

// guestSignup is the body of POST /guests
type guestSignup struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// registeredGuest is the part of the sign-up response the test needs
type registeredGuest struct {
	ID    uint64 `json:"id"`
	Token string `json:"token"`
}

// payment is the body of POST /transactions
type payment struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	HostID   uint64 `json:"hostId,omitempty"`
}

// settlementReply is the part of the transaction response the test reports on
type settlementReply struct {
	Status   string `json:"status"`
	Protocol string `json:"protocol"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
}

// paymentScenario is one amount the guests pay
type paymentScenario struct {
	Name   string
	Amount int64
}

// requestResult contains metrics for a single request
type requestResult struct {
	Scenario     string
	StatusCode   int
	Status       string
	ErrorCode    int
	ResponseTime time.Duration
	Err          error
}

// loadStats contains aggregated test statistics
type loadStats struct {
	mu            sync.Mutex
	total         int
	byStatusCode  map[int]int
	bySettlement  map[string]int
	byScenario    map[string]int
	byErrorCode   map[int]int
	transportErrs map[string]int
	responseTimes []time.Duration
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 100, "Total number of payments to submit")
	guestCount := flag.Int("guests", 3, "Number of guests to register and pay from")
	hostID := flag.Uint64("host", 0, "Host to pay; 0 lets the server pick the first onboarded host")
	currency := flag.String("currency", "usd", "Payment currency")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests per worker in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	guests, err := registerGuests(client, *baseURL, *guestCount)
	if err != nil {
		fmt.Printf("Guest registration failed: %v\n", err)
		return
	}

	scenarios := []paymentScenario{
		{"Small ride", 1200},
		{"Medium ride", 2500},
		{"Long ride", 6800},
		{"Odd cents", 999},
	}

	fmt.Printf("Submitting %d payments from %d guests with %d workers (delay %d ms)\n",
		*totalRequests, len(guests), *concurrency, *delayMs)

	stats := &loadStats{
		total:         *totalRequests,
		byStatusCode:  make(map[int]int),
		bySettlement:  make(map[string]int),
		byScenario:    make(map[string]int),
		byErrorCode:   make(map[int]int),
		transportErrs: make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				guest := guests[rand.Intn(len(guests))]
				scenario := scenarios[rand.Intn(len(scenarios))]
				stats.record(submitPayment(client, *baseURL, guest, payment{
					Amount:   scenario.Amount,
					Currency: *currency,
					HostID:   *hostID,
				}, scenario.Name))
			}
		}()
	}
	wg.Wait()

	stats.print(time.Since(start))
}

func registerGuests(client *http.Client, baseURL string, count int) ([]registeredGuest, error) {
	runID := time.Now().UnixNano()
	guests := make([]registeredGuest, 0, count)
	for i := 0; i < count; i++ {
		body, err := json.Marshal(guestSignup{
			Email:     fmt.Sprintf("load-%d-%d@example.com", runID, i),
			FirstName: "Load",
			LastName:  fmt.Sprintf("Tester%d", i),
		})
		if err != nil {
			return nil, err
		}

		resp, err := client.Post(baseURL+"/guests", "application/json", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		var guest registeredGuest
		decodeErr := json.NewDecoder(resp.Body).Decode(&guest)
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			return nil, fmt.Errorf("POST /guests returned %d", resp.StatusCode)
		}
		if decodeErr != nil {
			return nil, decodeErr
		}
		guests = append(guests, guest)
	}
	return guests, nil
}

func submitPayment(client *http.Client, baseURL string, guest registeredGuest, p payment, scenario string) requestResult {
	result := requestResult{Scenario: scenario}

	body, err := json.Marshal(p)
	if err != nil {
		result.Err = err
		return result
	}
	req, err := http.NewRequest(http.MethodPost, baseURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		result.Err = err
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+guest.Token)

	start := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	var reply settlementReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err == nil {
		result.Status = reply.Status
		result.ErrorCode = reply.Code
	}
	return result
}

func (s *loadStats) record(r requestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byScenario[r.Scenario]++
	if r.Err != nil {
		s.transportErrs[r.Err.Error()]++
		return
	}
	s.responseTimes = append(s.responseTimes, r.ResponseTime)
	s.byStatusCode[r.StatusCode]++
	if r.Status != "" {
		s.bySettlement[r.Status]++
	}
	if r.ErrorCode != 0 {
		s.byErrorCode[r.ErrorCode]++
	}
}

func (s *loadStats) print(elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	times := append([]time.Duration(nil), s.responseTimes...)
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	percentile := func(p int) time.Duration {
		if len(times) == 0 {
			return 0
		}
		return times[min(len(times)*p/100, len(times)-1)]
	}

	settled := s.bySettlement["settled"]
	fmt.Println("\n================= LOAD TEST RESULTS =================")
	fmt.Printf("Payments submitted:  %d\n", s.total)
	fmt.Printf("Settled:             %d (%.1f%%)\n", settled, float64(settled)/float64(max(s.total, 1))*100)
	fmt.Printf("Charged, unsettled:  %d\n", s.bySettlement["charged"])
	fmt.Printf("Elapsed:             %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f payments/second\n", float64(len(times))/elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50: %v  P90: %v  P95: %v  P99: %v\n", percentile(50), percentile(90), percentile(95), percentile(99))
	if len(times) > 0 {
		fmt.Printf("Min: %v  Max: %v\n", times[0], times[len(times)-1])
	}

	fmt.Println("\n----------------- HTTP STATUS -----------------")
	for code, count := range s.byStatusCode {
		fmt.Printf("%d: %d\n", code, count)
	}

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for name, count := range s.byScenario {
		fmt.Printf("%-12s: %d\n", name, count)
	}

	if len(s.byErrorCode) > 0 {
		fmt.Println("\n----------------- API ERROR CODES -----------------")
		for code, count := range s.byErrorCode {
			fmt.Printf("%d: %d\n", code, count)
		}
	}
	if len(s.transportErrs) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for msg, count := range s.transportErrs {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
	fmt.Println("=====================================================")
}
