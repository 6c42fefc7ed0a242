package models

import "errors"

// ErrDuplicate is returned by repositories when a unique constraint is violated.
var ErrDuplicate = errors.New("duplicate key value")
