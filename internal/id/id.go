package id

import "github.com/google/uuid"

// NewToken creates an opaque unique token. Used for visitor session
// cookies and result ids.
func NewToken() string {
	return uuid.NewString()
}
