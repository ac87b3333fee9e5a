package utils

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnvFile loads variables from a dotenv file without overriding the ones
// already set in the environment. A missing file is not an error.
func LoadEnvFile(logger *logrus.Logger, path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.WithField("env_file", path).Debug("no env file found, using environment only")
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	logger.WithField("env_file", path).Info("loaded env file")
	return nil
}
