package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength is the longest query, in characters, accepted for routing.
const MaxQueryLength = 4096

// ValidateQuery checks that a query is present and within the length limit.
// Whitespace-only queries count as missing.
func ValidateQuery(query string) (bool, string) {
	if strings.TrimSpace(query) == "" {
		return false, "query is required"
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return false, "query is too long"
	}
	return true, ""
}

// NormalizeQuery lowercases a query so keyword matching is case-insensitive.
// Surrounding whitespace is kept: the relevance filter matches the whole
// query as typed.
func NormalizeQuery(query string) string {
	return strings.ToLower(query)
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// Used for upstream LLM endpoints supplied through configuration.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
