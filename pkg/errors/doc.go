/*
Package errors provides structured error handling for the system.

It defines a standard AppError type that carries:
  - Code: a stable, machine-matchable string (NOT_FOUND, INTERNAL, ...)
  - Message: a human-readable description
  - Err: the wrapped underlying cause, if any

As and Is are re-exported from the standard library so call sites only
need one errors import.
*/
package errors
