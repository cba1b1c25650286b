package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

// BookingRequest represents the booking payload
type BookingRequest struct {
	PropertyID  uint64 `json:"propertyId"`
	CustomerID  uint64 `json:"customerId"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	GuestsCount int    `json:"guestsCount"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Conflict     bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	ConflictRequests   int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	PropertyStats      map[int]int // Track requests per property
	WindowStats        map[string]int
	Lock               sync.Mutex
}

// StayWindow defines a check-in/check-out pair workers compete for
type StayWindow struct {
	Name     string
	CheckIn  string
	CheckOut string
}

func main() {

	// Define command line flags
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of requests to make")
	propertyIDsStr := flag.String("p", "1", "Comma-separated list of property IDs to contend on")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 50, "Delay between requests in milliseconds")
	flag.Parse()

	// Parse property IDs
	var propertyIDs []int
	for _, idStr := range strings.Split(*propertyIDsStr, ",") {
		var id int
		if _, err := fmt.Sscanf(idStr, "%d", &id); err == nil && id > 0 {
			propertyIDs = append(propertyIDs, id)
		}
	}
	if len(propertyIDs) == 0 {
		propertyIDs = []int{1}
	}

	// A handful of overlapping stay windows so most requests collide.
	// Exactly one booking per window per property should succeed.
	base := time.Now().AddDate(0, 1, 0)
	windows := make([]StayWindow, 0, 5)
	for i := 0; i < 5; i++ {
		in := base.AddDate(0, 0, i*2)
		out := in.AddDate(0, 0, 3)
		windows = append(windows, StayWindow{
			Name:     fmt.Sprintf("Window %d", i+1),
			CheckIn:  in.Format("2006-01-02"),
			CheckOut: out.Format("2006-01-02"),
		})
	}

	fmt.Printf("Load testing booking contention on %d properties: %v\n", len(propertyIDs), propertyIDs)
	fmt.Printf("Stay windows: %d overlapping ranges\n", len(windows))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Initialize test statistics
	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		PropertyStats:   make(map[int]int),
		WindowStats:     make(map[string]int),
	}
	for _, id := range propertyIDs {
		stats.PropertyStats[id] = 0
	}
	for _, w := range windows {
		stats.WindowStats[w.Name] = 0
	}

	// Channel to collect results
	results := make(chan TestResult, *totalRequests)

	// Channel to distribute work
	jobs := make(chan int, *totalRequests)

	// Start worker goroutines
	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, propertyIDs, windows, jobs, results, stats)
		}(i)
	}

	// Fill the jobs channel
	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// Start a goroutine to collect results
	go func() {
		for result := range results {
			stats.Lock.Lock()
			switch {
			case result.Success:
				stats.SuccessfulRequests++
			case result.Conflict:
				stats.ConflictRequests++
			default:
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	// Start the timer
	startTime := time.Now()
	fmt.Println("Test running...")

	// Print progress periodically
	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.ConflictRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	// Wait for all workers to finish
	wg.Wait()
	close(results)
	ticker.Stop()

	// Calculate the total test time
	stats.TotalTime = time.Since(startTime)

	// Print results
	printResults(stats, len(propertyIDs)*5)
}

func worker(id int, baseURL string, delayMs int, propertyIDs []int,
	windows []StayWindow, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for jobID := range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		// Randomly select a property and a stay window
		propertyID := propertyIDs[rand.Intn(len(propertyIDs))]
		window := windows[rand.Intn(len(windows))]

		stats.Lock.Lock()
		stats.PropertyStats[propertyID]++
		stats.WindowStats[window.Name]++
		stats.Lock.Unlock()

		booking := BookingRequest{
			PropertyID:  uint64(propertyID),
			CustomerID:  uint64(1000 + id*10000 + jobID),
			CheckIn:     window.CheckIn,
			CheckOut:    window.CheckOut,
			GuestsCount: 2,
		}

		jsonData, err := json.Marshal(booking)
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		// Create request
		req, err := http.NewRequest("POST", baseURL+"/bookings", bytes.NewBuffer(jsonData))
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		// Send the request and measure response time
		startTime := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(startTime)

		result := TestResult{
			ResponseTime: responseTime,
		}

		if err != nil {
			result.Success = false
			result.Error = err
		} else {
			statusCode := resp.StatusCode
			result.StatusCode = statusCode
			result.Success = statusCode == http.StatusCreated
			// 409 means the window is already taken or locked; that is the
			// expected outcome for all but the first booking of a window
			result.Conflict = statusCode == http.StatusConflict
			if !result.Success && !result.Conflict {
				result.Error = fmt.Errorf("HTTP status code %d", statusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats, maxPossibleBookings int) {
	rawTps := float64(stats.SuccessfulRequests+stats.ConflictRequests) / stats.TotalTime.Seconds()

	// Calculate average response time
	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	// Calculate percentiles
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)

		// Simple bubble sort (OK for small datasets)
		for i := 0; i < len(sortedTimes); i++ {
			for j := i + 1; j < len(sortedTimes); j++ {
				if sortedTimes[i] > sortedTimes[j] {
					sortedTimes[i], sortedTimes[j] = sortedTimes[j], sortedTimes[i]
				}
			}
		}

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	// Print results
	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Bookings Created:    %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Conflicts (409):     %d (%.1f%%)\n", stats.ConflictRequests,
		float64(stats.ConflictRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Handled TPS:         %.2f (created + conflicts / total time)\n", rawTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	// Print property distribution
	fmt.Println("\n----------------- PROPERTY DISTRIBUTION -----------------")
	totalProperties := 0
	for _, count := range stats.PropertyStats {
		totalProperties += count
	}
	for propertyID, count := range stats.PropertyStats {
		if count > 0 {
			fmt.Printf("Property %d:    %d requests (%.1f%%)\n", propertyID, count,
				float64(count)/float64(totalProperties)*100)
		}
	}

	// Print window distribution
	fmt.Println("\n----------------- WINDOW DISTRIBUTION -----------------")
	totalWindows := 0
	for _, count := range stats.WindowStats {
		totalWindows += count
	}
	for window, count := range stats.WindowStats {
		if count > 0 {
			fmt.Printf("%-15s: %d requests (%.1f%%)\n", window, count,
				float64(count)/float64(totalWindows)*100)
		}
	}

	// Print error distribution if there were errors
	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}

	// Final conclusion
	fmt.Println("\n================= CONCLUSION =================")
	if stats.SuccessfulRequests <= maxPossibleBookings {
		fmt.Printf("✅ NO DOUBLE BOOKING: %d bookings created, at most %d windows were available\n",
			stats.SuccessfulRequests, maxPossibleBookings)
	} else {
		fmt.Printf("❌ DOUBLE BOOKING DETECTED: %d bookings created for only %d windows\n",
			stats.SuccessfulRequests, maxPossibleBookings)
	}
	fmt.Println("================================================")
}
