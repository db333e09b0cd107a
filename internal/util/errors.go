package util

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrIDMismatch     = errors.New("path id does not match body id")
	ErrOptimisticLock = errors.New("record was modified by another request, reload and retry")
	ErrTableNotEmpty  = errors.New("table already contains data, seeding refused")
	ErrUnsupported    = errors.New("operation not supported by this resource")
)
