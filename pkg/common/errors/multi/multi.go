/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package multi is an error type that holds multiple errors, for operations
// that act on several resources and continue past the first failure. For
// example, releasing the gateway session and the peer connection.
package multi

import (
	"strings"
)

// Errors is used to represent multiple errors
type Errors []error

// New returns nil when errs holds no non-nil error, the error itself when it
// holds exactly one, and Errors otherwise.
func New(errs ...error) error {
	var errors Errors
	for _, err := range errs {
		if err != nil {
			errors = append(errors, err)
		}
	}
	return errors.ToError()
}

// Append adds err to errs. If errs is not an Errors value, one is created.
func Append(errs error, err error) error {
	m, ok := errs.(Errors)
	if !ok {
		return New(errs, err)
	}
	if err == nil {
		return errs
	}
	return append(m, err)
}

// ToError returns nil if no errors are present, the single error if only one
// is present, and errs otherwise
func (errs Errors) ToError() error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errs
	}
}

// Error joins the messages of all errors
func (errs Errors) Error() string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msgs := make([]string, 0, len(errs)+1)
	if len(errs) > 0 {
		msgs = append(msgs, "Multiple errors occurred:")
	}
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, " - ")
}

// Unwrap exposes the errors to errors.Is and errors.As
func (errs Errors) Unwrap() []error {
	return errs
}
