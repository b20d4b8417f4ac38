package settings

import "errors"

// Predefined errors for the settings package.
var (
	// ErrBind indicates the resolved section could not be decoded onto
	// the destination.
	ErrBind = errors.New("failed to bind configuration section")

	// ErrNilDestination indicates a nil destination was passed to Bind.
	ErrNilDestination = errors.New("nil destination provided to bind")
)
