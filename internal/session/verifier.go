// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import "crypto/subtle"

// demoPassword is the single password the placeholder check accepts.
const demoPassword = "demo123"

// Verifier decides whether a credential pair is valid. The default is the
// shared demo password check; a backend-based implementation plugs in here
// once accounts move off the device.
type Verifier interface {
	Verify(email, password string) bool
}

type demoVerifier struct{}

func (demoVerifier) Verify(_, password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(demoPassword)) == 1
}
