package logging

import "strings"

// secretKeyPatterns are substrings that mark an attribute key as sensitive.
// Keys are matched case-insensitively.
var secretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
}

// tokenPrefixes are known credential prefixes that mark a value as sensitive
// regardless of its key.
var tokenPrefixes = []string{
	"AIza", // Google API key, as used by translation services
	"sk-",
	"ghp_",
	"xoxb-",
	"AKIA",
}

// IsSecret reports whether an attribute should be masked.
func IsSecret(key, value string) bool {
	return ShouldMask(key) || ContainsTokenPrefix(value)
}

// ShouldMask returns true if the key name suggests it contains sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix returns true if the value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}
