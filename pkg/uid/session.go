package uid

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateSessionID returns an identifier for an interactive game session.
func GenerateSessionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate session ID: %v", err)
	}
	return id.String(), nil
}
