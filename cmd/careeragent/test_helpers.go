package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// getBinaryPath returns the path to the careeragent binary for testing
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "careeragent")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/careeragent ./cmd/careeragent'", binaryPath)
	}

	return binaryPath
}

// environWithout returns the current environment with the named variables
// and their _FILE variants removed, for subprocesses that must not see them.
func environWithout(names ...string) []string {
	drop := make(map[string]struct{}, len(names)*2)
	for _, name := range names {
		drop[name] = struct{}{}
		drop[name+"_FILE"] = struct{}{}
	}

	env := make([]string, 0, len(os.Environ()))
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if _, skip := drop[key]; skip {
			continue
		}
		env = append(env, kv)
	}
	return env
}
