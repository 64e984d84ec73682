package filepaths

import (
	"fmt"
	"os"
)

// EnsureDir ensures the directory exists, creating it and any parents if needed
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return fmt.Errorf("could not create directory %s: %w", dir, err)
		}
	}
	return nil
}
