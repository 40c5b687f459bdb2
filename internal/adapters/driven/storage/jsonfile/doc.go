// Package jsonfile implements driven.TaskStore on a single JSON document.
//
// The document is a JSON array of task objects. It is validated against an
// embedded JSON Schema on every load and replaced atomically on every save
// (temp file in the same directory, fsync, rename), so an interrupted save
// leaves either the old document or the new one.
package jsonfile
