package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
)

// TestGenerateItinerarySample runs the San Francisco to Los Angeles sample
// against a live server. Set TRAVEL_API_BASE_URL to enable it.
func TestGenerateItinerarySample(t *testing.T) {
	t.Logf("[TEST LOG] starting TestGenerateItinerarySample")
	loadDotEnv(t)

	baseURL := strings.TrimRight(os.Getenv("TRAVEL_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("TRAVEL_API_BASE_URL not set")
	}
	client := &http.Client{Timeout: 3 * time.Minute}
	waitForAPIReady(t, client, baseURL)

	payload, err := json.Marshal(map[string]any{
		"from_location": "San Francisco",
		"to_location":   "Los Angeles",
		"start_date":    "2024-02-01",
		"end_date":      "2024-02-05",
		"preferences": map[string]any{
			"budget":             "moderate",
			"interests":          []string{"food", "culture", "nature"},
			"transportation":     "car",
			"accommodation_type": "hotel",
			"pace":               "moderate",
		},
		"number_of_travelers": 2,
		"include_weather":     true,
		"include_local_tips":  true,
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	resp, err := client.Post(baseURL+"/api/v1/generate-itinerary", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%s", http.StatusOK, resp.StatusCode, body)
	}

	var out struct {
		Itinerary          string            `json:"itinerary"`
		TransportationInfo []json.RawMessage `json:"transportation_info"`
		Attractions        []json.RawMessage `json:"attractions"`
		Restaurants        []json.RawMessage `json:"restaurants"`
		Hotels             []json.RawMessage `json:"hotels"`
		LocalTips          []json.RawMessage `json:"local_tips"`
		WeatherInfo        map[string]any    `json:"weather_info"`
		RequestDetails     struct {
			DurationDays int `json:"duration_days"`
		} `json:"request_details"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal response: %v, raw=%s", err, body)
	}
	if out.RequestDetails.DurationDays != 5 {
		t.Fatalf("expected duration_days=5, got %d", out.RequestDetails.DurationDays)
	}
	if strings.TrimSpace(out.Itinerary) == "" {
		t.Fatalf("expected non-empty itinerary, raw=%s", body)
	}
	if out.TransportationInfo == nil || out.Attractions == nil || out.Restaurants == nil || out.Hotels == nil || out.LocalTips == nil {
		t.Fatalf("expected every collection to be present (possibly empty), raw=%s", body)
	}
	t.Logf("[TEST LOG] itinerary opening: %.120s", out.Itinerary)
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}

// loadDotEnv loads the nearest .env walking up from the working directory.
func loadDotEnv(t *testing.T) {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			_ = godotenv.Load(candidate)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
