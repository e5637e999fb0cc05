package id

import (
	"strings"

	"github.com/google/uuid"
)

// GetUUID returns a random UUID string, used for entity ids.
func GetUUID() string {
	return uuid.NewString()
}

// GetUUIDWithoutDashes returns a random UUID with the dashes stripped,
// handy where the id feeds into slugs or file names.
func GetUUIDWithoutDashes() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
