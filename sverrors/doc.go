// Package sverrors provides structured error types for the schemavisit library.
//
// Import path: github.com/erraggy/schemavisit/sverrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides two core error types:
//
//   - [ReplaceError]: a replacement or deletion committed through a slot that
//     cannot be rebound (the traversal root, elements yielded by pure
//     iterators) or whose type cannot hold the new value
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrUnsupportedReplace]: Matches any [ReplaceError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage with errors.Is
//
//	err := visitor.Visit(root, visitor.WithSchemaHook(hook))
//	if errors.Is(err, sverrors.ErrUnsupportedReplace) {
//	    // A hook tried to replace the root or an iterator-yielded item.
//	}
//
// Note that nodes skipped during traversal (nil slots, already-visited nodes
// on a cycle) are not errors; they are the normal cycle-termination mechanism
// and never surface through this package.
package sverrors
