package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgUpstreamUnavailable = "upstream unavailable"
	ErrMsgUpstreamSchema      = "upstream schema mismatch"
	ErrMsgUnknownDrop         = "unknown drop"
	ErrMsgCorruptState        = "persisted state is corrupt"
	ErrMsgUnknownGame         = "unknown game"
	ErrMsgCatalogUnavailable  = "catalog unavailable"
	ErrMsgRunInProgress       = "run already in progress"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Network failure or non-2xx status from a fetch
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)

	// Envelope retcode != 0, missing list or malformed JSON
	ErrUpstreamSchema = errors.New(ErrMsgUpstreamSchema)

	// Drop with no catalog match. Diagnostic only, never fatal
	ErrUnknownDrop = errors.New(ErrMsgUnknownDrop)

	// Ledger or collection on disk failed validation
	ErrCorruptState = errors.New(ErrMsgCorruptState)

	ErrUnknownGame = errors.New(ErrMsgUnknownGame)

	// Rosters could not be loaded. The run aborts before the ledger is touched
	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)

	// A previous run for the same game has not finished
	ErrRunInProgress = errors.New(ErrMsgRunInProgress)
)
