// Package errors dresses low-level failures in actionable messages for
// the CLI surfaces. The TUI renders its own error states; this is for
// one-shot commands that exit with the error text.
package errors

import (
	"strings"
)

// UserFriendlyError pairs a user-facing message with a suggestion and
// keeps the original error for logs.
type UserFriendlyError struct {
	Message    string
	Suggestion string
	Details    error
}

func (e *UserFriendlyError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString("\n\nHow to fix:\n")
		sb.WriteString(e.Suggestion)
	}
	return sb.String()
}

func (e *UserFriendlyError) Unwrap() error {
	return e.Details
}

// Network classifies a gateway failure. The catalog service is public
// and unauthenticated, so the usual causes are connectivity and
// outages.
func Network(err error) *UserFriendlyError {
	msg := "Could not reach the Pokédex catalog service"
	suggestion := "Check your internet connection and try again"

	if err != nil {
		errStr := err.Error()
		switch {
		case strings.Contains(errStr, "no such host"), strings.Contains(errStr, "name resolution"):
			msg = "Cannot resolve the catalog host - DNS lookup failed"
			suggestion = "Check your internet connection and DNS settings"
		case strings.Contains(errStr, "connection refused"):
			msg = "The catalog service refused the connection"
			suggestion = "The service may be down. Try again later."
		case strings.Contains(errStr, "context deadline exceeded"), strings.Contains(errStr, "Client.Timeout"):
			msg = "The catalog service did not answer in time"
			suggestion = "Try again, or raise api.timeout_seconds in the config"
		case strings.Contains(errStr, "unexpected status 404"):
			msg = "No Pokémon with that name or id"
			suggestion = "Check the spelling, e.g. pokedex show pikachu"
		}
	}

	return &UserFriendlyError{Message: msg, Suggestion: suggestion, Details: err}
}
