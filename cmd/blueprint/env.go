package main

import (
	"context"
	"io"
	"os"
	"time"

	blueprint "github.com/alnah/go-blueprint"
)

// Builder is the part of blueprint.Builder the CLI drives.
type Builder interface {
	Build(ctx context.Context, input blueprint.Input) (*blueprint.Result, error)
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	NewBuilder func(opts ...blueprint.Option) (Builder, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewBuilder: func(opts ...blueprint.Option) (Builder, error) {
			return blueprint.NewBuilder(opts...)
		},
	}
}
