// Copyright 2026 Wei Tang. All rights reserved.
// Use of this source code is governed by a GNU-style
// license that can be found in the LICENSE file.

package at91pm

type PmErrorCode int

const (
	ErrorOK                  PmErrorCode = 0
	ErrorPrecondition                    = -1
	ErrorResourceUnavailable             = -2
	ErrorBadState                        = -3
	ErrorConfig                          = -4
)

type PmError struct {
	errorString string
	PmErrorCode PmErrorCode
}

func (e *PmError) Error() string {
	return e.errorString
}

func NewPmError(msg string, code PmErrorCode) error {
	return &PmError{msg, code}
}
