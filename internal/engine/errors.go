package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrReadOnly indicates a mutation was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")

	// ErrParse indicates the document or clipboard text could not be parsed.
	ErrParse = errors.New("parse failed")

	// ErrNoParser indicates the engine was built without a parse function.
	ErrNoParser = errors.New("no parse function configured")
)
