package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateAddress validates a blockchain address string for safety.
// It rejects values that could be used for path traversal or injection
// when the address is interpolated into URLs or cache keys.
//
// The validation rules are intentionally conservative:
//   - No empty addresses
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
//
// Chain-specific checksum validation belongs to the collaborator service,
// not this core.
func ValidateAddress(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidAddress, "address cannot be empty")
	}

	if len(addr) > 128 {
		return New(ErrCodeInvalidAddress, "address too long (max 128 characters)")
	}

	for _, r := range addr {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidAddress, "address contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(addr, pattern) {
			return New(ErrCodeInvalidAddress, "address contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// chainNameRegex matches supported chain identifiers (lowercase slug).
var chainNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateChain validates a chain identifier (e.g., "ethereum", "bitcoin").
func ValidateChain(chain string) error {
	if chain == "" {
		return New(ErrCodeInvalidChain, "chain cannot be empty")
	}

	if !chainNameRegex.MatchString(chain) {
		return New(ErrCodeInvalidChain, "invalid chain identifier: %q", chain)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
