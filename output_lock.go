package main

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"strings"
)

// outputLockKey identifies an output directory independently of how it was spelled.
func outputLockKey(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve output directory: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(filepath.Clean(abs))))
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
