package feature

import "errors"

// Predefined errors for the feature package.
var (
	// ErrInvalidFeature indicates that a feature definition is invalid.
	ErrInvalidFeature = errors.New("invalid feature definition")

	// ErrInvalidVariant indicates that a variant definition is invalid.
	ErrInvalidVariant = errors.New("invalid variant definition")

	// ErrDuplicateVariant indicates two variants share an id within one feature.
	ErrDuplicateVariant = errors.New("duplicate variant id")
)
