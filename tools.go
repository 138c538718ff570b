//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose (migrations, also listed as a go.mod tool)
// - github.com/matryer/moq (service and middleware test mocks)
