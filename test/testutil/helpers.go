// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// DataFile returns the absolute path of a file under the repository's
// data directory. Tests run with the package directory as working
// directory, so relative paths into data/ do not resolve from here.
func DataFile(t *testing.T, filename string) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate the testutil source file")
	}

	// testutil lives in test/testutil, two levels below the root
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "data", filename)
}

// LoadDataJSON loads a JSON file from the data directory.
// This is a convenience function for loading the bundled mock dataset.
func LoadDataJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(DataFile(t, filename))
	if err != nil {
		t.Fatalf("Failed to load data file %s: %v", filename, err)
	}
	return data
}

// MustParseTime parses an RFC3339 timestamp, failing the test on error.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a YYYY-MM-DD date, failing the test on error.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to v. Handy for pointer fields in table tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64, as used by max-price filters.
func FloatPtr(f float64) *float64 {
	return &f
}

// IntPtr returns a pointer to an int.
func IntPtr(i int) *int {
	return &i
}

// StringSlice builds a string slice from its arguments.
func StringSlice(s ...string) []string {
	return s
}
