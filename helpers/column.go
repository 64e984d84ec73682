package helpers

import "fmt"

// Column returns the field at index i, with negative indices counting back from the end of the row
func Column(row []string, i int) (string, error) {
	idx := i
	if idx < 0 {
		idx = len(row) + idx
	}
	if idx < 0 || idx >= len(row) {
		return "", fmt.Errorf("column index %d out of range for row with %d fields", i, len(row))
	}
	return row[idx], nil
}
