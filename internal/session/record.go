// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"encoding/json"
	"strings"

	errs "shelterapp/cli/internal/errors"
)

// UserRecord describes the signed-in user as persisted on this device.
type UserRecord struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// adminDomain marks shelter staff accounts.
const adminDomain = "@shelter.com"

// displayName derives a name from the email local part. Emails without an
// at sign come back unchanged.
func displayName(email string) string {
	return strings.Split(email, "@")[0]
}

// isAdminEmail reports whether the address belongs to shelter staff.
func isAdminEmail(email string) bool {
	return strings.HasSuffix(email, adminDomain)
}

func encodeRecord(r UserRecord) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func decodeRecord(data []byte) (UserRecord, error) {
	var r UserRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return r, errs.Wrap(errs.StateCorrupt, "stored session record is not valid JSON", err)
	}
	return r, nil
}
