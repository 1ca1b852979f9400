package domain

import "errors"

// ErrInvalidBounds is returned when the platform reports a non-positive maze size.
var ErrInvalidBounds = errors.New("invalid maze bounds")

// ErrStepLimit is returned by the runner when the optional tick ceiling is reached.
var ErrStepLimit = errors.New("step limit reached")

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ErrPlatformClosed is returned when the platform transport is gone (e.g. stdin EOF).
var ErrPlatformClosed = errors.New("platform closed")
