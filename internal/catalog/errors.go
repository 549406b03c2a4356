package catalog

import "errors"

var (
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidSortOrder = errors.New("invalid sort order")
	ErrInvalidPageSize  = errors.New("invalid page size")
	ErrInvalidPage      = errors.New("invalid page")
	ErrProductNotFound  = errors.New("product not found")
)
