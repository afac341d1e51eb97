package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestIncrementListCreated(t *testing.T) {
	m := getTestMetrics()
	
	// Get initial value
	initialValue := getCounterValue(t, m.ListCreatedTotal)

	// Increment
	m.IncrementListCreated()

	// Verify increment
	newValue := getCounterValue(t, m.ListCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementVideoCreated(t *testing.T) {
	m := getTestMetrics()
	
	// Get initial value
	initialValue := getCounterValue(t, m.VideoCreatedTotal)

	// Increment
	m.IncrementVideoCreated()

	// Verify increment
	newValue := getCounterValue(t, m.VideoCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestSetListsTotal(t *testing.T) {
	m := getTestMetrics()
	
	tests := []struct {
		name  string
		count int64
	}{
		{"zero lists", 0},
		{"one list", 1},
		{"multiple lists", 42},
		{"large number", 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetListsTotal(tt.count)
			value := getGaugeValue(t, m.ListsTotal)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestSetVideosTotal(t *testing.T) {
	m := getTestMetrics()
	
	tests := []struct {
		name  string
		count int64
	}{
		{"zero videos", 0},
		{"one video", 1},
		{"multiple videos", 100},
		{"large number", 5000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetVideosTotal(tt.count)
			value := getGaugeValue(t, m.VideosTotal)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestBusinessMetricsIntegration(t *testing.T) {
	m := getTestMetrics()
	
	// Set initial totals
	m.SetListsTotal(10)
	m.SetVideosTotal(50)

	// Verify initial values
	if getGaugeValue(t, m.ListsTotal) != 10 {
		t.Error("Expected ListsTotal to be 10")
	}
	if getGaugeValue(t, m.VideosTotal) != 50 {
		t.Error("Expected VideosTotal to be 50")
	}

	// Increment creation counters
	initialProjectCreated := getCounterValue(t, m.ListCreatedTotal)
	initialBoardCreated := getCounterValue(t, m.VideoCreatedTotal)

	m.IncrementListCreated()
	m.IncrementVideoCreated()
	m.IncrementVideoCreated()

	// Verify counters
	if getCounterValue(t, m.ListCreatedTotal) <= initialProjectCreated {
		t.Error("Expected ListCreatedTotal to increment")
	}
	if getCounterValue(t, m.VideoCreatedTotal) <= initialBoardCreated {
		t.Error("Expected VideoCreatedTotal to increment")
	}

	// Update totals
	m.SetListsTotal(11)
	m.SetVideosTotal(52)

	// Verify updated values
	if getGaugeValue(t, m.ListsTotal) != 11 {
		t.Error("Expected ListsTotal to be 11")
	}
	if getGaugeValue(t, m.VideosTotal) != 52 {
		t.Error("Expected VideosTotal to be 52")
	}
}

// Helper function to get counter value
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

// Helper function to get gauge value
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}
