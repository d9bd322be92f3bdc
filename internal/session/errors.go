// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import "fmt"

// AuthError is the error raised by failed sign-in and sign-out operations.
// Registration and hydration never raise; their failures surface through
// LastError only.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *AuthError) Unwrap() error { return e.Err }
