package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/str4t3gy/sweetbakery/internal/logger"
)

// EnvFiles lists the .env candidates in load order: the explicit file if
// given, then the working directory, then the directory of the executable.
func EnvFiles(explicit string) []string {
	var files []string
	if explicit != "" {
		files = append(files, explicit)
	}
	files = append(files, ".env")

	if execPath, err := os.Executable(); err == nil {
		files = append(files, filepath.Join(filepath.Dir(execPath), ".env"))
	} else {
		logger.Debug("Could not determine executable path: %v", err)
	}
	return files
}

// LoadEnvironment loads every .env candidate that exists. godotenv never
// overrides variables that are already set, so earlier files win.
// It returns the files that were loaded.
func LoadEnvironment(explicit string) []string {
	var loaded []string
	for _, path := range EnvFiles(explicit) {
		if err := godotenv.Load(path); err != nil {
			if path == explicit {
				logger.Warn("Could not load env file %s: %v", path, err)
			} else {
				logger.Debug("No env file at %s: %v", path, err)
			}
			continue
		}
		logger.Debug("Loaded env file %s", path)
		loaded = append(loaded, path)
	}
	return loaded
}
