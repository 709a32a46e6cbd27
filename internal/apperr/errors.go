// Package apperr holds sentinel errors shared by the data and HTTP layers.
package apperr

import "errors"

// ErrNotFound is returned by repositories when no row matches the requested id.
var ErrNotFound = errors.New("not found")
