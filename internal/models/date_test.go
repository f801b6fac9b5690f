package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_String(t *testing.T) {
	d := NewDate(2025, time.July, 15)
	if got := d.String(); got != "2025-07-15" {
		t.Errorf("String() = %q, want %q", got, "2025-07-15")
	}
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	data, err := json.Marshal(wrapper{Date: NewDate(2026, time.January, 8)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"date":"2026-01-08"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"date":"2025-12-18"}`), &w); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !w.Date.Equal(NewDate(2025, time.December, 18).Time) {
		t.Errorf("Unmarshal() = %v", w.Date)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2025-10-02", false},
		{"invalid month", "2025-13-01", true},
		{"timestamp", "2025-10-02T10:00:00Z", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
