package provider

import "errors"

// Predefined errors for the provider package.
var (
	// ErrParseDefinitions indicates a definition document could not be decoded.
	ErrParseDefinitions = errors.New("failed to parse feature definitions")

	// ErrMalformedAllocation indicates an allocation string does not match
	// the "NN%" or "[a;b)" grammar.
	ErrMalformedAllocation = errors.New("malformed allocation string")

	// ErrReadDefinitions indicates the definition source could not be read.
	ErrReadDefinitions = errors.New("failed to read feature definitions")

	// ErrInvalidRedisURL is returned when the Redis connection string cannot be parsed.
	ErrInvalidRedisURL = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady is returned when the Redis server cannot be reached.
	ErrRedisNotReady = errors.New("redis server is not ready")
)
