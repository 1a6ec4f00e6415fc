// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// error reasons
type CleanupReason string

const (
	// error is not clear
	ReasonUnknown = ""

	// network or HTTP failure while talking to the platform
	ReasonTransport = "Transport"

	// a remote asynchronous operation reported failure
	ReasonJobFailed = "JobFailed"

	// a remote asynchronous operation never reached a terminal state
	ReasonJobTimeout = "JobTimeout"

	// the whole cleanup run exceeded its wall-clock budget
	ReasonDeadlineExceeded = "DeadlineExceeded"

	// the whole-run retry budget is used up
	ReasonRetryBudgetExhausted = "RetryBudgetExhausted"
)

type cleanupError struct {
	message string
	reason  CleanupReason
	cause   error
}

var _ error = &cleanupError{}

// Error implements the error interface
func (e *cleanupError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap exposes the underlying cause so that errors.Is and errors.As
// can see through the cleanup error.
func (e *cleanupError) Unwrap() error {
	return e.cause
}

// newError returns a new cleanup error with a reason
func newError(reason CleanupReason, message string, cause error) error {
	return &cleanupError{
		message: message,
		reason:  reason,
		cause:   cause,
	}
}

// NewTransportError returns an error indicating that a request to the platform failed.
func NewTransportError(message string, cause error) error {
	return newError(ReasonTransport, message, cause)
}

// NewJobFailedError returns an error indicating that a remote job reported failure.
func NewJobFailedError(message string) error {
	return newError(ReasonJobFailed, message, nil)
}

// NewJobTimeoutError returns an error indicating that a remote job never reached
// a terminal state within the polling ceiling.
func NewJobTimeoutError(message string, cause error) error {
	return newError(ReasonJobTimeout, message, cause)
}

// NewDeadlineExceededError returns an error indicating that the cleanup run
// exceeded its wall-clock budget.
func NewDeadlineExceededError(message string, cause error) error {
	return newError(ReasonDeadlineExceeded, message, cause)
}

// NewRetryBudgetExhaustedError returns an error indicating that the whole-run
// retry budget is used up.
func NewRetryBudgetExhaustedError(message string, cause error) error {
	return newError(ReasonRetryBudgetExhausted, message, cause)
}

// IsTransport determines if the error indicates a transport failure
func IsTransport(err error) bool {
	return reasonForError(err) == ReasonTransport
}

// IsJobFailed determines if the error indicates a failed remote job
func IsJobFailed(err error) bool {
	return reasonForError(err) == ReasonJobFailed
}

// IsJobTimeout determines if the error indicates a remote job that never finished
func IsJobTimeout(err error) bool {
	return reasonForError(err) == ReasonJobTimeout
}

// IsDeadlineExceeded determines if the error indicates an exceeded run deadline
func IsDeadlineExceeded(err error) bool {
	return reasonForError(err) == ReasonDeadlineExceeded
}

// IsRetryBudgetExhausted determines if the error indicates an exhausted retry budget
func IsRetryBudgetExhausted(err error) bool {
	return reasonForError(err) == ReasonRetryBudgetExhausted
}

// reasonForError returns the CleanupReason for a particular error.
func reasonForError(err error) CleanupReason {
	cleanupErr := &cleanupError{}
	if errors.As(err, &cleanupErr) {
		return cleanupErr.reason
	}
	return ReasonUnknown
}
