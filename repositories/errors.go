// Package repositories wraps all database access behind small
// per-entity interfaces so controllers can be wired with fakes in
// tests. Sentinel errors let handlers pick the right status code
// without inspecting gorm internals.
package repositories

import "errors"

// ErrNotFound is returned when a referenced id does not resolve.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a uniqueness constraint would be
// violated, such as reusing an active category name.
var ErrConflict = errors.New("conflict")

// ErrDependency is returned when a soft delete is blocked by
// dependent rows, such as a category that still has active services.
var ErrDependency = errors.New("dependent records exist")
