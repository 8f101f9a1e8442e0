// Package env loads optional .env files so scripts can reference download
// credentials (private release tokens and the like) without putting them in
// the package file.
package env

import (
	"bufio"
	"os"
	"strings"
)

// LoadDefault loads PACKRUN_ENV_FILE if set, otherwise ./.env. A missing
// file is not an error.
func LoadDefault() error {
	if path := os.Getenv("PACKRUN_ENV_FILE"); path != "" {
		return Load(path)
	}
	return Load(".env")
}

// Load reads KEY=VALUE lines from path into the process environment.
// Variables that already exist are never overwritten.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, val, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, val)
	}
	return scanner.Err()
}

func parseLine(line string) (key, val string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")

	key, val, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	val = strings.Trim(strings.TrimSpace(val), `"'`)
	return key, val, true
}
