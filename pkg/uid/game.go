package uid

import "github.com/google/uuid"

// GenerateRunID returns a fresh identifier for one tournament run.
func GenerateRunID() string {
	return uuid.New().String()
}
