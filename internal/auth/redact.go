package auth

import "strings"

const suffixLen = 4

// Redact returns a display form of a secret showing only its last four
// characters, e.g. "...a1b2". Secrets too short to redact are fully masked.
func Redact(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= suffixLen {
		return strings.Repeat("*", len(secret))
	}
	return "..." + secret[len(secret)-suffixLen:]
}

// Scrub replaces every occurrence of secret in s with its redacted form.
// Used on subprocess output before it reaches the terminal, since git echoes
// remote URLs (token included) in its error messages.
func Scrub(s, secret string) string {
	if secret == "" {
		return s
	}
	return strings.ReplaceAll(s, secret, Redact(secret))
}

// Kind classifies a GitHub token by its prefix.
func Kind(secret string) string {
	switch {
	case strings.HasPrefix(secret, "github_pat_"):
		return "Fine-grained Personal Access Token"
	case strings.HasPrefix(secret, "ghp_"):
		return "Classic Personal Access Token"
	default:
		return "Unknown format"
	}
}
