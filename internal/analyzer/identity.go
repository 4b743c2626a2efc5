package analyzer

import (
	"strings"

	"string-analyzer/internal/shared/util"
)

// ID returns the content-addressed identifier of text.
func ID(text string) string {
	return util.HashText(text)
}

// NormalizeID canonicalizes a caller-supplied identifier so that hex digests
// match regardless of letter case.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
