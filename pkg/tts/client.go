package tts

import "context"

// Speaker converts text to raw audio bytes.
type Speaker interface {
	Speak(ctx context.Context, text string) ([]byte, error)
}
