// Package validation contains the input checks performed by the action
// layer before any collaborator is called. Each check returns a tagged
// validation fault with the caller-facing message, or nil.
package validation

import (
	"strings"

	"github.com/ngoiyaeric/dash/internal/fault"
)

const (
	// DisplayNameMaxLen is the longest accepted display name.
	DisplayNameMaxLen = 32

	// AvatarMaxBytes is the largest accepted avatar upload (2 MiB,
	// inclusive).
	AvatarMaxBytes = 2 * 1024 * 1024

	// SystemPromptMaxLen and NotesMaxLen bound the personalization
	// fields, inclusive.
	SystemPromptMaxLen = 1000
	NotesMaxLen        = 2000
)

// DisplayName validates a profile display name: present, length in
// [1, DisplayNameMaxLen].
func DisplayName(name string) error {
	if name == "" {
		return fault.Validation("Display name is required")
	}
	if len([]rune(name)) > DisplayNameMaxLen {
		return fault.Validation("Display name must be 32 characters or less")
	}
	return nil
}

// Avatar validates an avatar upload. Checks run in order and the first
// failure wins: non-empty file, size cap, image MIME type.
func Avatar(size int64, contentType string) error {
	if size <= 0 {
		return fault.Validation("Please select a file to upload")
	}
	if size > AvatarMaxBytes {
		return fault.Validation("File size must be less than 2MB")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return fault.Validation("File must be an image")
	}
	return nil
}

// Personalization validates the personalization fields. The system prompt
// is checked before the notes.
func Personalization(systemPrompt, notes string) error {
	if len([]rune(systemPrompt)) > SystemPromptMaxLen {
		return fault.Validation("System prompt must be 1000 characters or less")
	}
	if len([]rune(notes)) > NotesMaxLen {
		return fault.Validation("Notes must be 2000 characters or less")
	}
	return nil
}
