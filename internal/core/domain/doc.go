// Package domain defines the core business entities for taskmgr.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Task: A single to-do record (description, done flag, due date, priority)
//   - DueDate: An optional due date kept as the text the user supplied
//   - TaskFilter: Done/priority predicates applied when listing
//   - ListedTask: A task paired with its due-date classification
//   - AppSettings: User-facing configuration
//
// A task has no durable identifier. Its position (1-based) in the current
// collection is the only handle callers get, and it shifts when earlier
// tasks are removed.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
