// Package validator provides content inspection helpers shared by tools.
package validator

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MatchesContentType validates that the provided MIME type is in the allowed list
func MatchesContentType(contentType string, allowedMimeTypes []string) bool {
	if contentType == "" || len(allowedMimeTypes) == 0 {
		return false
	}

	// Parse content type and extract the base type (e.g., "image/png" from "image/png; charset=utf-8")
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	mimeType = strings.ToLower(strings.TrimSpace(mimeType))

	// Check exact matches and wildcard patterns
	for _, allowed := range allowedMimeTypes {
		allowed = strings.ToLower(strings.TrimSpace(allowed))

		// Exact match
		if mimeType == allowed {
			return true
		}

		// Wildcard match (e.g., "image/*" matches "image/png")
		if strings.HasSuffix(allowed, "/*") {
			prefix := strings.TrimSuffix(allowed, "/*")
			if strings.HasPrefix(mimeType, prefix+"/") {
				return true
			}
		}
	}

	return false
}

// DetectContentType detects the MIME type from raw content.
// Returns the bare media type without parameters, or "" for empty input.
func DetectContentType(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	detected := mimetype.Detect(data).String()
	mimeType, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return detected
	}
	return mimeType
}
