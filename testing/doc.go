// Package testing provides testing utilities for stmtkit.
//
// # Mocks
//
// The mocks subpackage provides testify-based mock implementations of the
// statement builder interface and a no-op logger.
//
// # Fixtures
//
// The fixtures subpackage provides pre-configured mocks for common scenarios,
// such as a builder that renders a fixed statement or one that always fails.
//
// # Usage
//
//	import (
//		"github.com/gaborage/stmtkit/testing/mocks"
//		"github.com/gaborage/stmtkit/testing/fixtures"
//	)
package testing
