//go:build windows

package main

import (
	"fmt"

	"golang.org/x/sys/windows"

	"spritegen/internal/app"
)

type outputLock struct {
	handle windows.Handle
}

func (l *outputLock) Release() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("close output mutex handle: %w", err)
	}
	return nil
}

func outputMutexName(dir string) (string, error) {
	key, err := outputLockKey(dir)
	if err != nil {
		return "", err
	}
	return `Local\SpritegenOutput-` + key, nil
}

func acquireOutputLock(dir string) (*outputLock, error) {
	mutexName, err := outputMutexName(dir)
	if err != nil {
		return nil, err
	}
	name, err := windows.UTF16PtrFromString(mutexName)
	if err != nil {
		return nil, fmt.Errorf("encode mutex name: %w", err)
	}
	handle, err := windows.CreateMutex(nil, false, name)
	if err != nil {
		return nil, fmt.Errorf("create output mutex: %w", err)
	}
	if windows.GetLastError() == windows.ERROR_ALREADY_EXISTS {
		_ = windows.CloseHandle(handle)
		return nil, app.ErrOutputLocked
	}
	return &outputLock{handle: handle}, nil
}
