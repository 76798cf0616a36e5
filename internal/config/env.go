package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read from the working directory at startup
const DefaultEnvFile = ".env"

// LoadEnvFiles loads KEY=VALUE pairs into the process environment.
// Missing files are not an error; variables already set are kept.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}
