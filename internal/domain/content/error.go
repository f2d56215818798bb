package content

import "errors"

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrBackendUnavailable = errors.New("content backend unavailable")
)
