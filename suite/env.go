package suite

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvPathVar   = "BSPKIT_ENV_PATH"
	BinDirVar    = "BSPKIT_BIN_DIR"
	ModuleDirVar = "BSPKIT_MODULE_DIR"
)

// Env holds host-side defaults.
type Env struct {
	BinDir    string
	ModuleDir string
}

// LoadEnv loads a .env file and reads host defaults from the environment.
// The file named by BSPKIT_ENV_PATH must exist; the default ./.env may be
// absent. Variables already set in the process win over the file.
func LoadEnv(logger *slog.Logger) (Env, error) {
	envPath := os.Getenv(EnvPathVar)
	explicit := envPath != ""
	if !explicit {
		envPath = ".env"
	}

	if err := godotenv.Load(envPath); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Env{}, err
		}
		logger.Debug("Skipping .env", "path", envPath)
	}

	return Env{
		BinDir:    getenv(BinDirVar, "bin"),
		ModuleDir: getenv(ModuleDirVar, "."),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
