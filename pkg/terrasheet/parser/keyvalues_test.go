package parser

import (
	"testing"

	"github.com/wabcloud/terrasheet/pkg/terrasheet/models"
)

func TestExtractKeyValues(t *testing.T) {
	raw := models.RawSheet{Name: "Build_ENV", Grid: [][]string{
		{"Location:", "here"},
		{"Subscription", "prod-sub-01", "extra cells ignored"},
		{"nan", "value"},
		{"Key", "none"},
		{"", "orphan value"},
		{"orphan key", ""},
		{"  Admin User  ", "  cisadmin  "},
	}}

	pairs := ExtractKeyValues(raw)
	if len(pairs) != 3 {
		t.Fatalf("Expected 3 pairs, got %d: %v", len(pairs), pairs)
	}

	// Trailing colon and whitespace are trimmed from keys.
	if pairs[0].Key != "Location" || pairs[0].Value != "here" {
		t.Errorf("Expected Location=here, got %s=%s", pairs[0].Key, pairs[0].Value)
	}
	if pairs[1].Key != "Subscription" || pairs[1].Value != "prod-sub-01" {
		t.Errorf("Expected Subscription=prod-sub-01, got %s=%s", pairs[1].Key, pairs[1].Value)
	}
	if pairs[2].Key != "Admin User" || pairs[2].Value != "cisadmin" {
		t.Errorf("Expected trimmed pair, got %s=%s", pairs[2].Key, pairs[2].Value)
	}
}

func TestExtractKeyValuesSingleColumn(t *testing.T) {
	raw := models.RawSheet{Name: "Notes", Grid: [][]string{
		{"just one column"},
		{"another"},
	}}

	if pairs := ExtractKeyValues(raw); pairs != nil {
		t.Errorf("Expected nil for single-column sheet, got %v", pairs)
	}
}

func TestMeaningful(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"value", true},
		{"", false},
		{"nan", false},
		{"NaN", false},
		{"none", false},
		{"None", false},
		{"0", true},
	}

	for _, tt := range tests {
		if got := meaningful(tt.input); got != tt.expected {
			t.Errorf("meaningful(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
