// Package util provides utility functions for the inventory system.
package util

import "github.com/google/uuid"

// NewID returns a RFC4122-compliant v4 UUID string for entity identifiers.
func NewID() string {
	return uuid.NewString()
}
