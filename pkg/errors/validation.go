package errors

import (
	"strings"
	"unicode"
)

// ValidateSaveName checks that name can be joined onto the save directory
// without escaping it. Only bare file names are accepted; paths are resolved
// by the caller before this point.
func ValidateSaveName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "save name cannot be empty")
	}
	if len(name) > 255 {
		return New(ErrCodeInvalidInput, "save name too long (max 255 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "save name contains control characters")
		}
	}
	for _, pattern := range []string{"..", "/", "\\", "\x00"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "save name contains invalid characters: %q", pattern)
		}
	}
	return nil
}
