package util

import (
	"fmt"
)

// FormatSize converts bytes to a human-readable string (KB, MB, GB).
func FormatSize(sizeBytes int64) string {
	if sizeBytes < 1024 {
		return fmt.Sprintf("%d B", sizeBytes)
	}
	sizeKB := float64(sizeBytes) / 1024
	if sizeKB < 1024 {
		return fmt.Sprintf("%.1f KB", sizeKB)
	}
	sizeMB := sizeKB / 1024
	if sizeMB < 1024 {
		return fmt.Sprintf("%.1f MB", sizeMB)
	}
	sizeGB := sizeMB / 1024
	return fmt.Sprintf("%.1f GB", sizeGB)
}
