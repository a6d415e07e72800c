//go:build !windows

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"spritegen/internal/app"
)

type outputLock struct {
	lock *flock.Flock
}

func (l *outputLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if !l.lock.Locked() {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("unlock output lock: %w", err)
	}
	return nil
}

// outputLockPath places the lock under the user cache dir, never in the output directory.
func outputLockPath(dir string) (string, error) {
	key, err := outputLockKey(dir)
	if err != nil {
		return "", err
	}
	root, err := os.UserCacheDir()
	if err != nil {
		root = os.TempDir()
	}
	return filepath.Join(root, "spritegen", key+".lock"), nil
}

func acquireOutputLock(dir string) (*outputLock, error) {
	lockPath, err := outputLockPath(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	f := flock.New(lockPath)
	locked, err := f.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return nil, app.ErrOutputLocked
	}
	return &outputLock{lock: f}, nil
}
