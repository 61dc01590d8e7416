package blogservice

import "regexp"

var scriptTagPattern = regexp.MustCompile(`(?i)<\s*script[^>]*>(.*?)<\s*/\s*script\s*>`)

// sanitizeDescription strips script tags from user-supplied description text
// before it is stored.
func sanitizeDescription(description string) string {
	return scriptTagPattern.ReplaceAllString(description, "")
}
