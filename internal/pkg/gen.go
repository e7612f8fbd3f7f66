package pkg

import "github.com/google/uuid"

// GenerateGameID - generates a unique identifier for a browser session's game.
func GenerateGameID() string {
	return uuid.New().String()
}
