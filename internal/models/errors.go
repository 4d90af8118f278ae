package models

import "errors"

// Validation errors shared between the models and the screen services. These
// are raised before any upstream call is made.
var (
	ErrNoReasons          = errors.New("at least one report reason is required")
	ErrTooManyReasons     = errors.New("a report carries at most three reasons")
	ErrUnknownReason      = errors.New("unknown report reason")
	ErrDescriptionTooLong = errors.New("report description exceeds 100 characters")
	ErrBadTarget          = errors.New("unknown report target type")
	ErrBadStatus          = errors.New("unknown report status")
	ErrBadTransition      = errors.New("report status transition not allowed")
	ErrAppealTooShort     = errors.New("appeal reason must be at least 10 characters")
	ErrEmptyRationale     = errors.New("a decision rationale is required")
)
