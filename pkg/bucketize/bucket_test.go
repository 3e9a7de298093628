package bucketize

import "testing"

func TestBucket(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0-1"},
		{1, "0-1"},
		{2, "2-3"},
		{3, "2-3"},
		{4, "4-7"},
		{7, "4-7"},
		{8, "8-15"},
		{1023, "512-1023"},
		{1024, "1024-2047"},
	}
	for _, tt := range tests {
		if got := Bucket(tt.n); got != tt.want {
			t.Errorf("Bucket(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestAggregate(t *testing.T) {
	samples := []TokenPair{
		{InputTokens: 1, OutputTokens: 1}, // 0-1 / 0-1
		{InputTokens: 1, OutputTokens: 1}, // 0-1 / 0-1
		{InputTokens: 5, OutputTokens: 5}, // 4-7 / 4-7
	}

	requestTypes, demand := Aggregate(samples, 100, 50)

	if len(requestTypes) != 2 {
		t.Fatalf("expected 2 distinct buckets, got %d", len(requestTypes))
	}

	var smallID, bigID string
	for _, rt := range requestTypes {
		if rt.InputSizeBucket == "0-1" {
			smallID = rt.ID
		} else {
			bigID = rt.ID
		}
		if rt.SLOMs != 50 {
			t.Fatalf("expected sloMs=50 on every request type, got %d", rt.SLOMs)
		}
	}

	// 2 of 3 samples in the 0-1/0-1 bucket: rate = 2/3 * 100.
	if demand[smallID] < 66.6 || demand[smallID] > 66.7 {
		t.Fatalf("expected ~66.67 rate for the majority bucket, got %f", demand[smallID])
	}
	if demand[bigID] < 33.3 || demand[bigID] > 33.4 {
		t.Fatalf("expected ~33.33 rate for the minority bucket, got %f", demand[bigID])
	}
}

func TestAggregateEmpty(t *testing.T) {
	requestTypes, demand := Aggregate(nil, 100, 50)
	if requestTypes != nil {
		t.Fatalf("expected nil request types for no samples")
	}
	if len(demand) != 0 {
		t.Fatalf("expected empty demand for no samples")
	}
}
