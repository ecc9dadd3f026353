package catalog

import "errors"

var (
	ErrUnknownResourceType = errors.New("unknown or inactive resource type")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrInvalidDateKey      = errors.New("invalid date key, expected YYYY-MM-DD")
)
