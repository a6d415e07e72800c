package app

import "errors"

var (
	ErrOutputLocked = errors.New("output directory is locked by another spritegen run")
)
