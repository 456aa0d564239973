package constants

import "errors"

// Errors
var (
	ErrUnknownContext  = errors.New("context is not in the catalog")
	ErrUnknownSection  = errors.New("section does not exist")
	ErrUnknownRepeater = errors.New("repeater does not exist")
	ErrUnknownSource   = errors.New("unknown assignment source")
)

var (
	ErrUnknownFormat  = errors.New("unknown catalog format")
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

var (
	ErrNotConnectable = errors.New("contexts cannot be connected at this scope")
	ErrNotAttached    = errors.New("context is not attached at this scope")
	ErrUnknownItem    = errors.New("item is not in the context")
)
