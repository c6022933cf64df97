package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"

	rcerrors "github.com/matzehuels/repocards/pkg/errors"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// LoadDotEnv reads KEY=value pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return rcerrors.Wrap(rcerrors.ErrCodeInvalidInput, err, "load env file %s", path)
}
