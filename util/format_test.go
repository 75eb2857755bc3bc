package util

import "testing"

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{"bytes", 512, "512 B"},
		{"kilobytes", 2048, "2.0 KB"},
		{"megabytes", 5 * 1024 * 1024, "5.0 MB"},
		{"gigabytes", 3 * 1024 * 1024 * 1024, "3.0 GB"},
		{"fractional", 1536, "1.5 KB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatSize(tc.bytes); got != tc.expected {
				t.Errorf("FormatSize(%d) = %s, want %s", tc.bytes, got, tc.expected)
			}
		})
	}
}
