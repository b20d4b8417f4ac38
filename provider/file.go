package provider

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/experiments/feature"
)

// File loads feature definitions from a YAML or JSON file on every fetch.
// Wrap it with Cached to refresh on an interval instead of per evaluation.
type File struct {
	name string
	path string
	log  *slog.Logger
}

// FileOption configures a File provider.
type FileOption func(*File)

// WithFileLogger sets the logger for decode diagnostics.
func WithFileLogger(log *slog.Logger) FileOption {
	return func(f *File) {
		if log != nil {
			f.log = log
		}
	}
}

// NewFile creates a provider reading definitions from the given path.
func NewFile(name, path string, opts ...FileOption) *File {
	f := &File{name: name, path: path, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name implements feature.Provider.
func (f *File) Name() string { return f.name }

// GetFeatures implements feature.Provider.
func (f *File) GetFeatures(ctx context.Context) ([]feature.Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Join(ErrReadDefinitions, err)
	}

	defs, err := ParseDefinitions(data)
	if err != nil {
		return nil, err
	}
	return DecodeFeatures(f.name, defs, f.log), nil
}
