package models

import (
	"strings"

	"github.com/google/uuid"
)

// IDLength is the width of the CHAR(9) keys used by users and requests.
const IDLength = 9

// NewID returns a fresh 9-character identifier cut from a random uuid.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:IDLength]
}
