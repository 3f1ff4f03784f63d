package errors

import (
	"math"
	"strings"
	"unicode"
)

// Supported output formats and visual styles. Kept here so both the CLI and
// the HTTP server validate against the same sets.
var (
	validFormats = map[string]bool{"svg": true, "json": true}
	validStyles  = map[string]bool{"simple": true}
)

// MaxTreeDepth bounds recursion on decoded trees. Real severity/type
// breakdowns are two or three levels deep; anything past this is almost
// certainly a malformed or adversarial document.
const MaxTreeDepth = 64

// ValidateFormat checks that the requested output format is supported.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !validFormats[format] {
		return New(ErrCodeInvalidFormat, "invalid format: %s (must be 'svg' or 'json')", format)
	}
	return nil
}

// ValidateStyle checks that the requested visual style is supported.
func ValidateStyle(style string) error {
	if style == "" {
		return New(ErrCodeInvalidStyle, "style cannot be empty")
	}
	if !validStyles[style] {
		return New(ErrCodeInvalidStyle, "invalid style: %s (must be 'simple')", style)
	}
	return nil
}

// ValidateFrame checks chart dimensions: both must be positive and finite.
func ValidateFrame(width, height float64) error {
	for _, v := range []float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidFrame, "frame dimensions must be finite")
		}
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidFrame, "frame dimensions must be positive (got %gx%g)", width, height)
	}
	return nil
}

// ValidateLevels checks a ring count. Zero is allowed and means "derive from
// the tree's depth"; negative values are rejected.
func ValidateLevels(levels int) error {
	if levels < 0 {
		return New(ErrCodeInvalidLevels, "levels cannot be negative (got %d)", levels)
	}
	return nil
}

// ValidateNodeName validates a node name for rendering safety.
//
// The layout itself accepts any name; this guards the surfaces that embed
// names in documents and cache keys:
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateNodeName(name string) error {
	if len(name) > 256 {
		return New(ErrCodeInvalidTree, "node name too long (max 256 characters)")
	}
	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidTree, "node name contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates an output file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
