package utils

import (
	"strings"

	"github.com/google/uuid"
)

const refCodeLength = 8

// NewRefCode returns a short shareable code for a psychologist, derived from
// a fresh UUID so collisions are left to the unique constraint to catch.
func NewRefCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:refCodeLength])
}
