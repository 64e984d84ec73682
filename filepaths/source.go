package filepaths

import (
	"path/filepath"

	"github.com/iancoleman/strcase"
)

// LoaderDirName returns the directory name used for a loader, e.g. "ClinGenDosageSensitivity" -> "clin_gen_dosage_sensitivity"
func LoaderDirName(loaderId string) string {
	return strcase.ToSnake(loaderId)
}

// EnsureLoaderPath ensures the per-loader directory under baseDir exists and returns it
// this is used for both the downloaded source files and the KGX output
func EnsureLoaderPath(baseDir, loaderId string) (string, error) {
	dir := filepath.Join(baseDir, LoaderDirName(loaderId))
	if err := EnsureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}
