package utils

import (
	"github.com/google/uuid"
)

// GenerateDraftID assigns an id to a review submission that is logged but
// never stored.
func GenerateDraftID() string {
	return uuid.New().String()
}
