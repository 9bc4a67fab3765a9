package db

import "errors"

// ErrNotFound is returned by repositories when a document does not exist.
// Services translate it into their family-specific not-found errors.
var ErrNotFound = errors.New("document not found")
