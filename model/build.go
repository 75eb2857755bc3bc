package model

import (
	"encoding/json"
	"time"
)

// Timestamp is a custom type to handle Unix timestamp decoding from JSON numbers.
type Timestamp time.Time

// UnmarshalJSON implements the json.Unmarshaler interface for Timestamp.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	// Try to unmarshal as an integer (Unix timestamp)
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err == nil {
		// It's a Unix timestamp (seconds)
		*t = Timestamp(time.Unix(timestamp, 0))
		return nil
	}

	// If not an integer, try a string with RFC3339 format
	var timeStr string
	if err := json.Unmarshal(b, &timeStr); err == nil {
		parsedTime, err := time.Parse(time.RFC3339, timeStr)
		if err == nil {
			*t = Timestamp(parsedTime)
			return nil
		}
	}

	// If neither worked, it might be an object, we'll use current time
	// This is a fallback to prevent breaking the whole program
	*t = Timestamp(time.Now())
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Timestamp.
// This ensures the timestamp is properly saved in version.json as RFC3339 formatted string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	// Convert to RFC3339 string format for consistent serialization
	return json.Marshal(time.Time(t).Format(time.RFC3339))
}

// Time returns the underlying time.Time value.
// This provides convenience for using the value as a standard time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// BlenderBuild represents an installed Blender build discovered in the
// builds directory. Most fields come from the version.json metadata file
// written when the build was installed.
type BlenderBuild struct {
	// Fields from version.json
	Version      string    `json:"version"`
	Branch       string    `json:"branch"`
	Hash         string    `json:"hash"`       // Git commit hash short identifier
	BuildDate    Timestamp `json:"file_mtime"` // Use custom Timestamp type
	Size         int64     `json:"file_size"`  // Original archive size in bytes
	FileName     string    `json:"file_name"`  // Full name of the downloaded file
	ReleaseCycle string    `json:"release_cycle"`

	// Filled in by the scanner, not from metadata
	DirName    string `json:"-"` // Name of the build directory
	Executable string `json:"-"` // Path to the Blender executable, if found
}
