//go:build !windows

package main

import (
	"errors"
	"testing"

	"spritegen/internal/app"
)

func TestAcquireOutputLock_SecondHolderRejected(t *testing.T) {
	dir := t.TempDir()
	first, err := acquireOutputLock(dir)
	if err != nil {
		t.Fatalf("acquireOutputLock failed: %v", err)
	}
	if _, err := acquireOutputLock(dir); !errors.Is(err, app.ErrOutputLocked) {
		t.Fatalf("second acquireOutputLock error = %v, want ErrOutputLocked", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	again, err := acquireOutputLock(dir)
	if err != nil {
		t.Fatalf("acquireOutputLock after release failed: %v", err)
	}
	_ = again.Release()
}

func TestOutputLockReleaseNil(t *testing.T) {
	var l *outputLock
	if err := l.Release(); err != nil {
		t.Fatalf("Release on nil lock = %v", err)
	}
}
