package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file.
// The TTE_ENV_PATH environment variable overrides the default path.
// A missing file at the default path is not an error since every
// setting read from the environment also has a flag default.
func LoadDotEnv(defaultPath string) error {
	envPath := defaultPath
	explicit := false
	if os.Getenv("TTE_ENV_PATH") != "" {
		envPath = os.Getenv("TTE_ENV_PATH")
		explicit = true
	}

	err := godotenv.Load(envPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			slog.Debug("No .env file found, skipping", "path", envPath)
			return nil
		}
		slog.Error("Failed to load environment variables", "path", envPath, "error", err)
		return err
	}

	return nil
}
