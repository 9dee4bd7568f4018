// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small wrappers around error handling
// that log any non-nil error using [slog], so that errors that
// would otherwise be silently discarded are still recorded.
// It also re-exports the standard library [errors] functions
// so that this package can be used as a drop-in replacement.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error that formats as the given text, per [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target, per [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target, per [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join wraps the given errors into one, per [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Wrap returns an error wrapping err with the given message,
// using the %w verb. Returns nil if err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// CallerInfo returns the file and line number of the caller
// of the function that calls CallerInfo, for error logging context.
func CallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// Log takes the given error and logs it if it is non-nil,
// adding the caller's file and line information,
// and returns it unmodified so that it can be chained.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error(), "from", CallerInfo())
	}
	return err
}

// Log1 takes the given value and error, logs the error if it is
// non-nil, and returns the value. It is useful for passing through
// a single return value from a function that also returns an error.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error(), "from", CallerInfo())
	}
	return v
}

// Ignore1 takes the given value and error and returns the value,
// ignoring the error. Use when the error is known to be irrelevant.
func Ignore1[T any](v T, err error) T {
	return v
}

// Must panics if the given error is non-nil.
// Use only where an error indicates a programming bug.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns the given value, panicking if the error is non-nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
