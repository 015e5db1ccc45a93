package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	storeCount = 50 // Number of stores to generate source data for
	// Every store gets one poll sample per hour over the trailing week,
	// alternating active/inactive, so uptime and downtime are predictable.
	samplesPerStore = 7 * 24
)

// ### End - fixed configs

var reportHeader = []string{
	"store_id",
	"uptime_last_hour",
	"downtime_last_hour",
	"uptime_last_day",
	"downtime_last_day",
	"uptime_last_week",
	"downtime_last_week",
}

type triggerResponse struct {
	ReportID string `json:"report_id"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// main runs the e2e scenario: 001_full_report_cycle
//
// This scenario tests the end-to-end flow of report generation: source data
// ingestion, asynchronous report triggering, status polling, and CSV download.
//
// What it tests:
//   - Source CSV generation for poll samples, business hours and timezones
//   - Report triggering via POST /trigger_report (202 + report_id)
//   - Status polling via GET /get_report/{reportID} while the run is in flight
//   - CSV artifact download once the job is Complete
//   - Report shape: header row plus one row per store with samples
//   - Value sanity: uptime+downtime covers the full window for 24/7 stores
//
// Expected results:
//   - Trigger returns 202 with a non-empty report_id
//   - The job reaches Complete within the polling deadline
//   - The downloaded CSV has the canonical 7-column header
//   - Every generated store appears exactly once in the report
//   - For stores with no business hours, hour-window uptime+downtime == 60
//     minutes and week-window uptime+downtime == 168 hours
//
// Before running: point configs/configs.yml report.csv paths at
// .tmp/e2e-data/*.csv (or adjust dataDir below), start the server, then run
// this scenario from the project root.
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the uptime monitoring API server
	dataDir := ".tmp/e2e-data"         // Directory the server's report.csv paths point at
	pollInterval := 500 * time.Millisecond
	pollDeadline := 2 * time.Minute
	wantRegenerateData := true // If true, rewrite the source CSVs before triggering

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	dataPath := filepath.Join(projectRoot, dataDir)

	fmt.Println("Starting e2e scenario: 001_full_report_cycle")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATA_DIR: %s\n", dataPath)
	fmt.Printf("STORE_COUNT: %d\n", storeCount)
	fmt.Printf("SAMPLES_PER_STORE: %d\n", samplesPerStore)
	fmt.Println()

	if wantRegenerateData {
		fmt.Println("Generating source CSVs...")
		if err := generateSourceData(dataPath); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate source data: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %d stores x %d samples\n", storeCount, samplesPerStore)
		fmt.Println()
	}

	client := &http.Client{Timeout: 30 * time.Second}

	// Trigger the report
	fmt.Println("Triggering report...")
	reportID, err := triggerReport(client, baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Trigger failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Report triggered: %s\n", reportID)
	fmt.Println()

	// Poll until the job leaves Running
	fmt.Println("Polling for completion...")
	body, contentType, err := pollForResult(client, baseURL, reportID, pollInterval, pollDeadline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Report complete, downloaded %d bytes (%s)\n", len(body), contentType)
	fmt.Println()

	// Verify the artifact
	fmt.Println("Verifying report CSV...")
	if err := verifyReport(body); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Report verification failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("All checks passed")
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("could not find go.mod; run from the project root")
}

// generateSourceData writes the three source CSVs. Even stores alternate
// active/inactive every hour and declare no business hours (24/7); odd stores
// are always active with business hours 08:00-18:00 every day.
func generateSourceData(dataPath string) error {
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return err
	}

	// Anchor "now" at a fixed instant so results are reproducible
	now := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)

	pollFile, err := os.Create(filepath.Join(dataPath, "store_status.csv"))
	if err != nil {
		return err
	}
	defer pollFile.Close()
	pollWriter := csv.NewWriter(pollFile)
	if err := pollWriter.Write([]string{"store_id", "status", "timestamp_utc"}); err != nil {
		return err
	}
	for store := 0; store < storeCount; store++ {
		storeID := fmt.Sprintf("e2e-store-%03d", store)
		for i := 0; i < samplesPerStore; i++ {
			ts := now.Add(-time.Duration(samplesPerStore-1-i) * time.Hour)
			status := "active"
			if store%2 == 0 && i%2 == 1 {
				status = "inactive"
			}
			record := []string{storeID, status, ts.Format("2006-01-02 15:04:05") + " UTC"}
			if err := pollWriter.Write(record); err != nil {
				return err
			}
		}
	}
	pollWriter.Flush()
	if err := pollWriter.Error(); err != nil {
		return err
	}

	hoursFile, err := os.Create(filepath.Join(dataPath, "business_hours.csv"))
	if err != nil {
		return err
	}
	defer hoursFile.Close()
	hoursWriter := csv.NewWriter(hoursFile)
	if err := hoursWriter.Write([]string{"store_id", "day", "start_time_local", "end_time_local"}); err != nil {
		return err
	}
	for store := 1; store < storeCount; store += 2 {
		storeID := fmt.Sprintf("e2e-store-%03d", store)
		for day := 0; day < 7; day++ {
			record := []string{storeID, strconv.Itoa(day), "08:00:00", "18:00:00"}
			if err := hoursWriter.Write(record); err != nil {
				return err
			}
		}
	}
	hoursWriter.Flush()
	if err := hoursWriter.Error(); err != nil {
		return err
	}

	tzFile, err := os.Create(filepath.Join(dataPath, "timezones.csv"))
	if err != nil {
		return err
	}
	defer tzFile.Close()
	tzWriter := csv.NewWriter(tzFile)
	if err := tzWriter.Write([]string{"store_id", "timezone_str"}); err != nil {
		return err
	}
	for store := 0; store < storeCount; store++ {
		record := []string{fmt.Sprintf("e2e-store-%03d", store), "UTC"}
		if err := tzWriter.Write(record); err != nil {
			return err
		}
	}
	tzWriter.Flush()
	return tzWriter.Error()
}

func triggerReport(client *http.Client, baseURL string) (string, error) {
	resp, err := client.Post(baseURL+"/trigger_report", "application/json", nil)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body triggerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if body.ReportID == "" {
		return "", fmt.Errorf("empty report_id in response")
	}
	return body.ReportID, nil
}

// pollForResult polls get_report until the response switches from the Running
// status JSON to the CSV artifact.
func pollForResult(client *http.Client, baseURL, reportID string, interval, deadline time.Duration) ([]byte, string, error) {
	deadlineAt := time.Now().Add(deadline)

	for attempt := 1; ; attempt++ {
		if time.Now().After(deadlineAt) {
			return nil, "", fmt.Errorf("report %s did not complete within %s", reportID, deadline)
		}

		resp, err := client.Get(baseURL + "/get_report/" + reportID)
		if err != nil {
			return nil, "", fmt.Errorf("HTTP request failed: %w", err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, "", fmt.Errorf("failed to read response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
		}

		contentType := resp.Header.Get("Content-Type")
		if contentType == "text/csv" {
			return body, contentType, nil
		}

		var status statusResponse
		if err := json.Unmarshal(body, &status); err != nil {
			return nil, "", fmt.Errorf("failed to decode status response: %w", err)
		}
		switch status.Status {
		case "Running":
			fmt.Printf("Attempt %d: still Running\n", attempt)
			time.Sleep(interval)
		case "Failed":
			return nil, "", fmt.Errorf("report %s failed", reportID)
		default:
			return nil, "", fmt.Errorf("unexpected status %q", status.Status)
		}
	}
}

func verifyReport(body []byte) error {
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("empty CSV")
	}

	header := records[0]
	if len(header) != len(reportHeader) {
		return fmt.Errorf("header has %d columns, want %d", len(header), len(reportHeader))
	}
	for i, name := range reportHeader {
		if header[i] != name {
			return fmt.Errorf("header column %d is %q, want %q", i, header[i], name)
		}
	}

	// Row order is not part of the contract: index by store
	rowsByStore := make(map[string][]string, len(records)-1)
	for _, record := range records[1:] {
		if _, ok := rowsByStore[record[0]]; ok {
			return fmt.Errorf("store %s appears more than once", record[0])
		}
		rowsByStore[record[0]] = record
	}
	if len(rowsByStore) != storeCount {
		return fmt.Errorf("report has %d stores, want %d", len(rowsByStore), storeCount)
	}

	for store := 0; store < storeCount; store++ {
		storeID := fmt.Sprintf("e2e-store-%03d", store)
		record, ok := rowsByStore[storeID]
		if !ok {
			return fmt.Errorf("store %s missing from report", storeID)
		}

		// 24/7 stores (even index) must account for the full window spans
		if store%2 == 0 {
			if err := checkWindowSum(record, 1, 2, 60); err != nil {
				return fmt.Errorf("store %s hour window: %w", storeID, err)
			}
			if err := checkWindowSum(record, 3, 4, 24); err != nil {
				return fmt.Errorf("store %s day window: %w", storeID, err)
			}
			if err := checkWindowSum(record, 5, 6, 168); err != nil {
				return fmt.Errorf("store %s week window: %w", storeID, err)
			}
		}
	}

	fmt.Printf("Verified %d store rows\n", len(rowsByStore))
	return nil
}

func checkWindowSum(record []string, uptimeCol, downtimeCol int, want float64) error {
	uptime, err := strconv.ParseFloat(record[uptimeCol], 64)
	if err != nil {
		return fmt.Errorf("invalid uptime %q: %w", record[uptimeCol], err)
	}
	downtime, err := strconv.ParseFloat(record[downtimeCol], 64)
	if err != nil {
		return fmt.Errorf("invalid downtime %q: %w", record[downtimeCol], err)
	}
	sum := uptime + downtime
	if sum < want-0.01 || sum > want+0.01 {
		return fmt.Errorf("uptime %.2f + downtime %.2f = %.2f, want %.2f", uptime, downtime, sum, want)
	}
	return nil
}
