package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig = ".config"
	appName   = "rs"
	envName   = ".env"
)

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

// EnvFile is the per-user dotenv file read after the working directory's.
func EnvFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, envName), nil
}

// EnvFiles lists the dotenv files the CLI loads, in precedence order, keeping
// only those that exist.
func EnvFiles() []string {
	candidates := []string{envName}
	if f, err := EnvFile(); err == nil {
		candidates = append(candidates, f)
	}

	var files []string
	for _, f := range candidates {
		if info, err := os.Stat(f); err == nil && !info.IsDir() {
			files = append(files, f)
		}
	}
	return files
}
